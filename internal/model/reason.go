// File: internal/model/reason.go
package model

// Reason is a named category attachable to an appointment.
type Reason struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
