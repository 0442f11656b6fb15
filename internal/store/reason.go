package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"citas-api/internal/database"
	"citas-api/internal/model"
)

func CreateReason(ctx context.Context, db database.DB, r *model.Reason) (*model.Reason, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reasons (name) VALUES ($1) RETURNING id`,
		r.Name,
	)
	if err := row.Scan(&r.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateReason: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateReason: %w", err)
	}
	return r, nil
}

func DeleteReason(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM reasons WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteReason: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteReason: %w", pgx.ErrNoRows)
	}
	return nil
}

func ListReasons(ctx context.Context, db database.DB) ([]model.Reason, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name FROM reasons ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReasons: %w", err)
	}
	defer rows.Close()

	var reasons []model.Reason
	for rows.Next() {
		var r model.Reason
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("ListReasons: %w", err)
		}
		reasons = append(reasons, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReasons: %w", err)
	}
	return reasons, nil
}

// GetReasonByRef resolves a reason from a client-supplied reference, which
// may be either the numeric id or the literal name. A numeric ref resolves
// by id first and falls back to name, so a reason named "2" can never
// shadow the reason with id 2.
func GetReasonByRef(ctx context.Context, db database.DB, ref string) (*model.Reason, error) {
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		r, err := getReasonBy(ctx, db, `SELECT id, name FROM reasons WHERE id = $1`, id)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetReasonByRef: %w", err)
		}
	}
	r, err := getReasonBy(ctx, db, `SELECT id, name FROM reasons WHERE name = $1`, ref)
	if err != nil {
		return nil, fmt.Errorf("GetReasonByRef: %w", err)
	}
	return r, nil
}

func getReasonBy(ctx context.Context, db database.DB, sql string, arg any) (*model.Reason, error) {
	r := &model.Reason{}
	if err := db.QueryRow(ctx, sql, arg).Scan(&r.ID, &r.Name); err != nil {
		return nil, err
	}
	return r, nil
}
