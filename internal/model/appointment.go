// File: internal/model/appointment.go
package model

import "time"

type Appointment struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	ReasonID  *int      `db:"reason_id" json:"reason_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AppointmentDetail is the read shape for listings: the reason joined by
// name (empty when none was set or it was later deleted) and, on admin
// listings, the owner's full name.
type AppointmentDetail struct {
	ID       int
	Date     time.Time
	Time     string
	Reason   string
	UserName string
}
