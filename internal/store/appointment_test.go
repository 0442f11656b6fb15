package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"citas-api/internal/database"
	"citas-api/internal/model"
)

func TestAppointmentRepository(t *testing.T) {
	now := time.Now().UTC()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("CreateAppointment ok", func(t *testing.T) {
		reasonID := 2
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{1, &reasonID, day, "09:00"}, args)
				return &fakeRow{vals: []any{5, now}}
			},
		}
		a := &model.Appointment{UserID: 1, ReasonID: &reasonID, Date: day, Time: "09:00"}
		_, err := CreateAppointment(context.Background(), p, a)
		require.NoError(t, err)
		require.Equal(t, 5, a.ID)
	})

	t.Run("CreateAppointment slot taken", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: uniqueViolation()}
			},
		}
		_, err := CreateAppointment(context.Background(), p, &model.Appointment{UserID: 1, Date: day, Time: "09:00"})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("ListBookedTimes ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{day}, args)
				return &fakeRows{data: [][]any{{"09:00"}}}, nil
			},
		}
		times, err := ListBookedTimes(context.Background(), p, day)
		require.NoError(t, err)
		require.Equal(t, []string{"09:00"}, times)
	})

	t.Run("ListAppointmentsByUser ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{1}, args)
				return &fakeRows{data: [][]any{
					{5, day, "09:00", "Consultation"},
					{6, day, "09:30", ""},
				}}, nil
			},
		}
		appts, err := ListAppointmentsByUser(context.Background(), p, 1)
		require.NoError(t, err)
		require.Len(t, appts, 2)
		require.Equal(t, "Consultation", appts[0].Reason)
		require.Empty(t, appts[1].Reason)
	})

	t.Run("ListAppointments ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{
					{5, day, "09:00", "Consultation", "Ana García"},
				}}, nil
			},
		}
		appts, err := ListAppointments(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, appts, 1)
		require.Equal(t, "Ana García", appts[0].UserName)
	})

	t.Run("DeleteAppointmentOwned ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{5, 1}, args)
				return &fakeRow{vals: []any{day}}
			},
		}
		got, err := DeleteAppointmentOwned(context.Background(), p, 5, 1)
		require.NoError(t, err)
		require.Equal(t, day, got)
	})

	t.Run("DeleteAppointmentOwned wrong owner", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := DeleteAppointmentOwned(context.Background(), p, 5, 2)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
