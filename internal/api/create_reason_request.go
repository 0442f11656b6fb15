package api

// swagger:model api.CreateReasonRequest
type CreateReasonRequest struct {
	Name string `json:"name" form:"name" validate:"required" example:"Consultation"`
}
