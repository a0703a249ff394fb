package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/stepcount/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/limbo/stepcount/internal/repository UsersRepositoryI,StepsRepositoryI

type UsersRepositoryI interface {
	// Inserts user with given email or returns the existing one. Atomic, safe for concurrent callers
	Ensure(ctx context.Context, email, name string) (*entity.User, error)
	// Looks up user by id
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}

type StepsRepositoryI interface {
	// Inserts a step record or updates step_count of the existing one keyed by (userID, date).
	// Reports whether a new row was inserted
	Upsert(ctx context.Context, userID int64, date time.Time, stepCount int) (*entity.Step, bool, error)
	// Lists all non-deleted records, most recent date first
	List(ctx context.Context) ([]*entity.Step, error)
	// Marks the record of userID on date as deleted
	SoftDelete(ctx context.Context, userID int64, date time.Time) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
