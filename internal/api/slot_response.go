package api

// swagger:model api.SlotResponse
type SlotResponse struct {
	ID   int    `json:"id" example:"1"`
	Date string `json:"date" example:"2024-06-01"`
	Time string `json:"time" example:"09:00"`
}
