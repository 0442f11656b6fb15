package store

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"citas-api/internal/database"
	"citas-api/internal/model"
)

func TestReasonRepository(t *testing.T) {
	t.Run("CreateReason ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"Consultation"}, args)
				return &fakeRow{vals: []any{1}}
			},
		}
		r := &model.Reason{Name: "Consultation"}
		_, err := CreateReason(context.Background(), p, r)
		require.NoError(t, err)
		require.Equal(t, 1, r.ID)
	})

	t.Run("CreateReason duplicate", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: uniqueViolation()}
			},
		}
		_, err := CreateReason(context.Background(), p, &model.Reason{Name: "Consultation"})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("DeleteReason ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteReason(context.Background(), p, 1))
	})

	t.Run("DeleteReason not found", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		err := DeleteReason(context.Background(), p, 99)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("ListReasons ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{{1, "Consultation"}, {2, "Follow-up"}}}, nil
			},
		}
		reasons, err := ListReasons(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, reasons, 2)
		require.Equal(t, "Follow-up", reasons[1].Name)
	})

	t.Run("GetReasonByRef numeric resolves by id", func(t *testing.T) {
		calls := 0
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				calls++
				require.Contains(t, sql, "WHERE id")
				require.Equal(t, []any{2}, args)
				return &fakeRow{vals: []any{2, "Follow-up"}}
			},
		}
		r, err := GetReasonByRef(context.Background(), p, "2")
		require.NoError(t, err)
		require.Equal(t, "Follow-up", r.Name)
		require.Equal(t, 1, calls)
	})

	t.Run("GetReasonByRef id match wins over a same-named reason", func(t *testing.T) {
		// catalog holds id 2 "Follow-up" and a reason literally named "2";
		// ref "2" must deterministically pick the id match
		calls := 0
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				calls++
				require.Contains(t, sql, "WHERE id")
				return &fakeRow{vals: []any{2, "Follow-up"}}
			},
		}
		r, err := GetReasonByRef(context.Background(), p, "2")
		require.NoError(t, err)
		require.Equal(t, 2, r.ID)
		require.Equal(t, 1, calls)
	})

	t.Run("GetReasonByRef numeric falls back to name", func(t *testing.T) {
		var sqls []string
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				sqls = append(sqls, sql)
				if strings.Contains(sql, "WHERE id") {
					return &fakeRow{scanErr: pgx.ErrNoRows}
				}
				require.Equal(t, []any{"42"}, args)
				return &fakeRow{vals: []any{9, "42"}}
			},
		}
		r, err := GetReasonByRef(context.Background(), p, "42")
		require.NoError(t, err)
		require.Equal(t, 9, r.ID)
		require.Len(t, sqls, 2)
	})

	t.Run("GetReasonByRef by name", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE name")
				require.Equal(t, []any{"Follow-up"}, args)
				return &fakeRow{vals: []any{2, "Follow-up"}}
			},
		}
		r, err := GetReasonByRef(context.Background(), p, "Follow-up")
		require.NoError(t, err)
		require.Equal(t, 2, r.ID)
	})

	t.Run("GetReasonByRef not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetReasonByRef(context.Background(), p, "nope")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("GetReasonByRef id lookup error propagates", func(t *testing.T) {
		// a transport failure must not degrade into the name fallback
		calls := 0
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				calls++
				return &fakeRow{scanErr: pgx.ErrTxClosed}
			},
		}
		_, err := GetReasonByRef(context.Background(), p, "2")
		require.ErrorIs(t, err, pgx.ErrTxClosed)
		require.Equal(t, 1, calls)
	})
}
