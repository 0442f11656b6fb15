// File: internal/service/booking.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"citas-api/internal/database"
	"citas-api/internal/model"
	"citas-api/internal/store"
)

// Wire formats for booking inputs, parsed strictly.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	// ErrSlotTaken signals another appointment already occupies the exact
	// (date, time), regardless of who booked it.
	ErrSlotTaken = errors.New("time slot already booked")
	// ErrReasonNotFound signals a supplied reason resolved to nothing.
	ErrReasonNotFound = errors.New("reason not found")
	// ErrAppointmentNotFound covers both an unknown id and an appointment
	// owned by someone else; callers must not distinguish the two.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses a strict 24-hour HH:MM time of day and returns it
// re-formatted, so downstream comparisons always see the zero-padded form.
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// AvailableTimes computes the free times for a date: the admin-declared
// slots minus the times with an existing appointment, by exact HH:MM string
// match, preserving the slot listing order.
func AvailableTimes(ctx context.Context, db database.DB, date time.Time) ([]string, error) {
	slotTimes, err := store.ListSlotTimesByDate(ctx, db, date)
	if err != nil {
		return nil, err
	}
	bookedTimes, err := store.ListBookedTimes(ctx, db, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}
	free := make([]string, 0, len(slotTimes))
	for _, t := range slotTimes {
		if _, ok := booked[t]; !ok {
			free = append(free, t)
		}
	}
	return free, nil
}

// Book creates an appointment for user at (date, clock), optionally tagged
// with a reason referenced by id or name. Uniqueness of (date, time) is
// enforced by the storage constraint rather than a pre-check, so concurrent
// requests for the same slot cannot both succeed.
func Book(ctx context.Context, db database.DB, user *model.User, date time.Time, clock, reasonRef string) (*model.AppointmentDetail, error) {
	var reasonID *int
	var reasonName string
	if reasonRef != "" {
		reason, err := store.GetReasonByRef(ctx, db, reasonRef)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrReasonNotFound
			}
			return nil, err
		}
		reasonID = &reason.ID
		reasonName = reason.Name
	}

	appt := &model.Appointment{
		UserID:   user.ID,
		Date:     date,
		Time:     clock,
		ReasonID: reasonID,
	}
	if _, err := store.CreateAppointment(ctx, db, appt); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &model.AppointmentDetail{
		ID:       appt.ID,
		Date:     appt.Date,
		Time:     appt.Time,
		Reason:   reasonName,
		UserName: user.FullName,
	}, nil
}

// Cancel deletes an appointment owned by userID and returns the date it was
// on. Appointments belonging to other users are reported as not found.
func Cancel(ctx context.Context, db database.DB, userID, appointmentID int) (time.Time, error) {
	date, err := store.DeleteAppointmentOwned(ctx, db, appointmentID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrAppointmentNotFound
		}
		return time.Time{}, err
	}
	return date, nil
}
