package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/pkg/entity"
)

type StepsRepository struct {
	conn PgConnection
}

func NewStepsRepoWithConn(conn PgConnection) *StepsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stepsRepo: " + err.Error())
	}
	return &StepsRepository{
		conn: conn,
	}
}

// Upsert relies on unique (user_id, date) so concurrent writers for the same day end up on one row.
// A soft-deleted row for the key is revived with the same id.
func (sr *StepsRepository) Upsert(ctx context.Context, userID int64, date time.Time, stepCount int) (*entity.Step, bool, error) {
	var (
		step     entity.Step
		inserted bool
	)
	row := sr.conn.QueryRow(
		ctx,
		`INSERT INTO steps (user_id, date, step_count) VALUES ($1, $2, $3) ON CONFLICT (user_id, date) DO UPDATE SET step_count = EXCLUDED.step_count, updated_at = now(), deleted_at = NULL RETURNING id, user_id, date, step_count, created_at, updated_at, (xmax = 0) AS inserted;`,
		userID,
		date,
		stepCount,
	)
	err := row.Scan(&step.ID, &step.UserID, &step.Date, &step.StepCount, &step.CreatedAt, &step.UpdatedAt, &inserted)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, false, errorvalues.ErrUserNotFound
			// Check violation
			case "23514":
				return nil, false, errorvalues.ErrValidation
			}
		}
		return nil, false, errors.New("upserting steps error: " + err.Error())
	}
	return &step, inserted, nil
}

func (sr *StepsRepository) List(ctx context.Context) ([]*entity.Step, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, date, step_count, created_at, updated_at FROM steps WHERE deleted_at IS NULL ORDER BY date DESC, id ASC;`,
	)
	if err != nil {
		return nil, errors.New("listing steps error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Step, 0)
	for rows.Next() {
		step := entity.Step{}
		err = rows.Scan(&step.ID, &step.UserID, &step.Date, &step.StepCount, &step.CreatedAt, &step.UpdatedAt)
		if err != nil {
			return nil, errors.New("steps row parsing error: " + err.Error())
		}
		result = append(result, &step)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected steps rows error: " + err.Error())
	}
	return result, nil
}

func (sr *StepsRepository) SoftDelete(ctx context.Context, userID int64, date time.Time) error {
	ct, err := sr.conn.Exec(
		ctx,
		`UPDATE steps SET deleted_at = now(), updated_at = now() WHERE user_id = $1 AND date = $2 AND deleted_at IS NULL;`,
		userID,
		date,
	)
	if err != nil {
		return errors.New("deleting steps error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStepsNotFound
	}
	return nil
}
