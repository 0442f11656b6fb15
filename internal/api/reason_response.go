package api

// swagger:model api.ReasonResponse
type ReasonResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Consultation"`
}
