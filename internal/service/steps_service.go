package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/internal/repository"
	"github.com/limbo/stepcount/pkg/entity"
)

type StepsService struct {
	repo repository.StepsRepositoryI
}

func NewStepsService(stepsRepo repository.StepsRepositoryI) *StepsService {
	if stepsRepo == nil {
		log.Fatal("provided nil stepsRepo")
	}
	return &StepsService{
		repo: stepsRepo,
	}
}

func (ss *StepsService) LogDailySteps(ctx context.Context, userID int64, req *LogStepsRequest) (*entity.Step, bool, error) {
	if req == nil {
		return nil, false, errors.New("log steps request is nil")
	}
	if err := validateStruct(req); err != nil {
		return nil, false, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, false, err
	}
	step, created, err := ss.repo.Upsert(ctx, userID, date, int(*req.StepCount))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, false, err
		case errors.Is(err, errorvalues.ErrValidation):
			ve := NewValidationError()
			ve.Add("stepCount", "The stepCount field must be at least 0.")
			return nil, false, ve
		}
		return nil, false, errors.New("steps repository error: " + err.Error())
	}
	return step, created, nil
}

func (ss *StepsService) ListSteps(ctx context.Context) ([]*entity.Step, error) {
	steps, err := ss.repo.List(ctx)
	if err != nil {
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return steps, nil
}

func (ss *StepsService) DeleteSteps(ctx context.Context, userID int64, date string) error {
	day, err := ParseDate(date)
	if err != nil {
		ve := NewValidationError()
		ve.Add("date", "The date field must be a valid date.")
		return ve
	}
	err = ss.repo.SoftDelete(ctx, userID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStepsNotFound) {
			return err
		}
		return errors.New("steps repository error: " + err.Error())
	}
	return nil
}
