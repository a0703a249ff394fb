package service

import (
	"context"

	"github.com/limbo/stepcount/pkg/entity"
)

type LogStepsRequest struct {
	Date      string `json:"date" validate:"required,calendar_date"`
	StepCount *int64 `json:"stepCount" validate:"required,min=0,max=2147483647"`
}

type IdentityRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=255"`
}

type StepsServiceI interface {
	// Validates request and upserts the record of userID for the requested day. Reports whether it was created
	LogDailySteps(ctx context.Context, userID int64, req *LogStepsRequest) (*entity.Step, bool, error)
	// Lists every non-deleted record, most recent day first
	ListSteps(ctx context.Context) ([]*entity.Step, error)
	// Soft deletes the record of userID for date (YYYY-MM-DD)
	DeleteSteps(ctx context.Context, userID int64, date string) error
}

type UserServiceI interface {
	// Returns the user identified by email, creating it on first call
	ResolveIdentity(ctx context.Context, req *IdentityRequest) (*entity.User, error)
	// Returns the user by id, ErrUserNotFound when it doesn't exist
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
