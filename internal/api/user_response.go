package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID           int       `json:"id" example:"1"`
	Username     string    `json:"username" example:"alice"`
	Email        string    `json:"email" example:"alice@example.com"`
	FullName     string    `json:"full_name" example:"Alice Doe"`
	IsAdmin      bool      `json:"is_admin" example:"false"`
	AuthProvider string    `json:"auth_provider" example:"local"`
	CreatedAt    time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
