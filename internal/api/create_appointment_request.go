package api

// Reason is optional and may be either the numeric id or the literal name.
// swagger:model api.CreateAppointmentRequest
type CreateAppointmentRequest struct {
	Date   string `json:"date" form:"date" validate:"required,datetime=2006-01-02" example:"2024-06-01"`
	Time   string `json:"time" form:"time" validate:"required,datetime=15:04" example:"09:00"`
	Reason string `json:"reason,omitempty" form:"reason" example:"Consultation"`
}
