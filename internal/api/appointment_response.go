package api

// swagger:model api.AppointmentResponse
type AppointmentResponse struct {
	ID     int    `json:"id" example:"1"`
	Date   string `json:"date" example:"2024-06-01"`
	Time   string `json:"time" example:"09:00"`
	Reason string `json:"reason,omitempty" example:"Consultation"`
	// UserName is only populated on the admin listing.
	UserName string `json:"user_name,omitempty" example:"Alice Doe"`
}
