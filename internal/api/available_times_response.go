package api

// swagger:model api.AvailableTimesResponse
type AvailableTimesResponse struct {
	Date  string   `json:"date" example:"2024-06-01"`
	Times []string `json:"times" example:"09:00,09:30"`
}
