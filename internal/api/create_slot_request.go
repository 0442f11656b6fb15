package api

// swagger:model api.CreateSlotRequest
type CreateSlotRequest struct {
	Date string `json:"date" form:"date" validate:"required,datetime=2006-01-02" example:"2024-06-01"`
	Time string `json:"time" form:"time" validate:"required,datetime=15:04" example:"09:00"`
}
