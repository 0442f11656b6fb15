package store

import (
	"context"
	"fmt"
	"time"

	"citas-api/internal/database"
	"citas-api/internal/model"
)

func CreateAppointment(ctx context.Context, db database.DB, a *model.Appointment) (*model.Appointment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO appointments (user_id, reason_id, date, "time")
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.UserID,
		a.ReasonID,
		a.Date,
		a.Time,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateAppointment: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}
	return a, nil
}

func ListBookedTimes(ctx context.Context, db database.DB, date time.Time) ([]string, error) {
	rows, err := db.Query(ctx,
		`SELECT "time" FROM appointments WHERE date = $1`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookedTimes: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("ListBookedTimes: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookedTimes: %w", err)
	}
	return times, nil
}

func ListAppointmentsByUser(ctx context.Context, db database.DB, userID int) ([]model.AppointmentDetail, error) {
	rows, err := db.Query(ctx,
		`SELECT a.id, a.date, a."time", COALESCE(r.name, '')
		 FROM appointments a
		 LEFT JOIN reasons r ON r.id = a.reason_id
		 WHERE a.user_id = $1
		 ORDER BY a.date, a."time"`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
	}
	defer rows.Close()

	var appts []model.AppointmentDetail
	for rows.Next() {
		var a model.AppointmentDetail
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Reason); err != nil {
			return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAppointmentsByUser: %w", err)
	}
	return appts, nil
}

func ListAppointments(ctx context.Context, db database.DB) ([]model.AppointmentDetail, error) {
	rows, err := db.Query(ctx,
		`SELECT a.id, a.date, a."time", COALESCE(r.name, ''), u.full_name
		 FROM appointments a
		 JOIN users u ON u.id = a.user_id
		 LEFT JOIN reasons r ON r.id = a.reason_id
		 ORDER BY a.date, a."time"`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAppointments: %w", err)
	}
	defer rows.Close()

	var appts []model.AppointmentDetail
	for rows.Next() {
		var a model.AppointmentDetail
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Reason, &a.UserName); err != nil {
			return nil, fmt.Errorf("ListAppointments: %w", err)
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAppointments: %w", err)
	}
	return appts, nil
}

// DeleteAppointmentOwned deletes an appointment only when it belongs to
// userID, and reports the date it was on for cache invalidation. Both a
// missing id and someone else's appointment surface as pgx.ErrNoRows.
func DeleteAppointmentOwned(ctx context.Context, db database.DB, id, userID int) (time.Time, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM appointments WHERE id = $1 AND user_id = $2 RETURNING date`,
		id,
		userID,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		return time.Time{}, fmt.Errorf("DeleteAppointmentOwned: %w", err)
	}
	return date, nil
}
