package api

import (
	"context"
	"time"

	"github.com/limbo/stepcount/pkg/entity"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Identity is the user every request acts on behalf of.
type Identity struct {
	UserID int64
	Email  string
}

// StepResponse is the wire shape of a step record.
type StepResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StepCount int    `json:"stepCount"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewStepResponse(step *entity.Step) StepResponse {
	return StepResponse{
		ID:        step.ID,
		Date:      step.Date.Format(entity.DateLayout),
		StepCount: step.StepCount,
		CreatedAt: step.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: step.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewStepResponses(steps []*entity.Step) []StepResponse {
	result := make([]StepResponse, 0, len(steps))
	for _, step := range steps {
		result = append(result, NewStepResponse(step))
	}
	return result
}
