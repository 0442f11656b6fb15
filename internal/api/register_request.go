package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required" example:"Alice Doe"`
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,max=72" example:"Secret123!"`
}
