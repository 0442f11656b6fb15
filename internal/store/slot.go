package store

import (
	"context"
	"fmt"
	"time"

	"citas-api/internal/database"
	"citas-api/internal/model"
)

func CreateSlot(ctx context.Context, db database.DB, s *model.Slot) (*model.Slot, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO available_slots (date, "time")
		 VALUES ($1, $2)
		 RETURNING id`,
		s.Date,
		s.Time,
	)
	if err := row.Scan(&s.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateSlot: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateSlot: %w", err)
	}
	return s, nil
}

// DeleteSlot removes a slot and reports the date it was on, so callers can
// invalidate the cached availability for that date. A missing id surfaces as
// pgx.ErrNoRows.
func DeleteSlot(ctx context.Context, db database.DB, id int) (time.Time, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM available_slots WHERE id = $1 RETURNING date`,
		id,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		return time.Time{}, fmt.Errorf("DeleteSlot: %w", err)
	}
	return date, nil
}

func ListSlots(ctx context.Context, db database.DB) ([]model.Slot, error) {
	rows, err := db.Query(ctx,
		`SELECT id, date, "time" FROM available_slots ORDER BY date, "time"`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSlots: %w", err)
	}
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time); err != nil {
			return nil, fmt.Errorf("ListSlots: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSlots: %w", err)
	}
	return slots, nil
}

func ListSlotTimesByDate(ctx context.Context, db database.DB, date time.Time) ([]string, error) {
	rows, err := db.Query(ctx,
		`SELECT "time" FROM available_slots WHERE date = $1 ORDER BY "time"`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSlotTimesByDate: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("ListSlotTimesByDate: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSlotTimesByDate: %w", err)
	}
	return times, nil
}
