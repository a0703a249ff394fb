package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/limbo/stepcount/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stepColumns = []string{"id", "user_id", "date", "step_count", "created_at", "updated_at"}

func TestUpsertSteps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	stepsRepo := repository.NewStepsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO steps (user_id, date, step_count) VALUES ($1, $2, $3) ON CONFLICT (user_id, date) DO UPDATE SET step_count = EXCLUDED.step_count, updated_at = now(), deleted_at = NULL RETURNING id, user_id, date, step_count, created_at, updated_at, (xmax = 0) AS inserted;`)
	userID := int64(7)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	upsertColumns := append(append([]string{}, stepColumns...), "inserted")
	testCases := []struct {
		Desc            string
		Count           int
		Error           error
		Inserted        bool
		Expected        *entity.Step
		MockPrepareFunc func(count int)
	}{
		{
			Desc:     "inserted",
			Count:    10000,
			Inserted: true,
			Expected: &entity.Step{ID: 1, UserID: userID, Date: date, StepCount: 10000, CreatedAt: createdAt, UpdatedAt: createdAt},
			MockPrepareFunc: func(count int) {
				mock.ExpectQuery(query).WithArgs(userID, date, count).
					WillReturnRows(pgxmock.NewRows(upsertColumns).AddRow(int64(1), userID, date, count, createdAt, createdAt, true))
			},
		},
		{
			Desc:     "updated",
			Count:    7000,
			Inserted: false,
			Expected: &entity.Step{ID: 1, UserID: userID, Date: date, StepCount: 7000, CreatedAt: createdAt, UpdatedAt: updatedAt},
			MockPrepareFunc: func(count int) {
				mock.ExpectQuery(query).WithArgs(userID, date, count).
					WillReturnRows(pgxmock.NewRows(upsertColumns).AddRow(int64(1), userID, date, count, createdAt, updatedAt, false))
			},
		},
		{
			Desc:  "fk violation",
			Count: 100,
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func(count int) {
				mock.ExpectQuery(query).WithArgs(userID, date, count).WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "check violation",
			Count: -1,
			Error: errorvalues.ErrValidation,
			MockPrepareFunc: func(count int) {
				mock.ExpectQuery(query).WithArgs(userID, date, count).WillReturnError(&pgconn.PgError{
					Code: "23514",
				})
			},
		},
		{
			Desc:  "db error",
			Count: 100,
			Error: errors.New("upserting steps error: db error"),
			MockPrepareFunc: func(count int) {
				mock.ExpectQuery(query).WithArgs(userID, date, count).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc(tc.Count)
			step, inserted, err := stepsRepo.Upsert(ctx, userID, date, tc.Count)
			if tc.Error != nil {
				if errors.Is(err, tc.Error) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
				}
				assert.Nil(t, step)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Inserted, inserted)
			assert.Equal(t, tc.Expected, step)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSteps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	stepsRepo := repository.NewStepsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, date, step_count, created_at, updated_at FROM steps WHERE deleted_at IS NULL ORDER BY date DESC, id ASC;`)
	ts := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	t.Run("ordered rows", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(stepColumns).
			AddRow(int64(2), int64(1), day(3), 300, ts, ts).
			AddRow(int64(3), int64(1), day(2), 200, ts, ts).
			AddRow(int64(1), int64(1), day(1), 100, ts, ts))
		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.Equal(t, day(3), steps[0].Date)
		assert.Equal(t, day(2), steps[1].Date)
		assert.Equal(t, day(1), steps[2].Date)
		assert.Equal(t, 300, steps[0].StepCount)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(stepColumns))
		steps, err := stepsRepo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, steps)
		assert.Empty(t, steps)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := stepsRepo.List(ctx)
		assert.EqualError(t, err, "listing steps error: db error")
	})
	t.Run("rows error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(stepColumns).
			AddRow(int64(1), int64(1), day(1), 100, ts, ts).
			RowError(0, errors.New("broken row")))
		_, err := stepsRepo.List(ctx)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteSteps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	stepsRepo := repository.NewStepsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE steps SET deleted_at = now(), updated_at = now() WHERE user_id = $1 AND date = $2 AND deleted_at IS NULL;`)
	userID := int64(3)
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, date).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, stepsRepo.SoftDelete(ctx, userID, date))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, date).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, stepsRepo.SoftDelete(ctx, userID, date), errorvalues.ErrStepsNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID, date).WillReturnError(errors.New("db error"))
		assert.EqualError(t, stepsRepo.SoftDelete(ctx, userID, date), "deleting steps error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
