// File: internal/model/slot.go
package model

import "time"

// Slot is an admin-declared bookable date and time of day.
// Time is the zero-padded "HH:MM" string the whole booking flow keys on.
type Slot struct {
	ID   int       `db:"id" json:"id"`
	Date time.Time `db:"date" json:"date"`
	Time string    `db:"time" json:"time"`
}
