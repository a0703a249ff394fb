package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/stepcount/internal/error_values"
	"github.com/limbo/stepcount/internal/service"
	"github.com/limbo/stepcount/pkg/httputil"
)

// Counts beyond this lose integer precision as JSON numbers; they are clamped and left to range validation.
const maxExactJSONInt = 1 << 53

// LogStepsRequest keeps raw JSON values so type mismatches become field errors instead of a bad body.
type LogStepsRequest struct {
	Date      any `json:"date"`
	StepCount any `json:"stepCount"`
}

func (req *LogStepsRequest) toServiceRequest() (*service.LogStepsRequest, *service.ValidationError) {
	ve := service.NewValidationError()
	result := &service.LogStepsRequest{}
	switch v := req.Date.(type) {
	case nil:
	case string:
		result.Date = v
	default:
		ve.Add("date", "The date field must be a valid date.")
	}
	switch v := req.StepCount.(type) {
	case nil:
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			ve.Add("stepCount", "The stepCount field must be an integer.")
			break
		}
		v = math.Max(math.Min(v, maxExactJSONInt), -maxExactJSONInt)
		n := int64(v)
		result.StepCount = &n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			ve.Add("stepCount", "The stepCount field must be an integer.")
			break
		}
		result.StepCount = &n
	default:
		ve.Add("stepCount", "The stepCount field must be an integer.")
	}
	if !ve.Empty() {
		return nil, ve
	}
	return result, nil
}

// decodeLogStepsRequest treats a blank body as {}. Otherwise the body must hold a single JSON value.
func decodeLogStepsRequest(body io.ReadCloser) (*LogStepsRequest, error) {
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.New("reading body error: " + err.Error())
	}
	var req LogStepsRequest
	if len(bytes.TrimSpace(raw)) == 0 {
		return &req, nil
	}
	if err := sonic.ConfigDefault.Unmarshal(raw, &req); err != nil {
		return nil, errors.New("unmarshalling body error: " + err.Error())
	}
	return &req, nil
}

// @Summary List logged steps
// @Produce json
// @Success 200 {object} httputil.Envelope
// @Failure 500 {object} httputil.ErrorResponse
// @Router /steps [get]
func (s *Server) ListSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	steps, err := s.stepsService.ListSteps(ctx)
	if err != nil {
		logger.Error("listing steps error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting steps list", nil)
		return
	}
	httputil.WriteEnvelope(w, http.StatusOK, NewStepResponses(steps))
	logger.Info("steps provided", slog.Int("count", len(steps)))
}

// @Summary Log steps for a day, replacing the count already logged for it
// @Accept json
// @Produce json
// @Success 201 {object} httputil.Envelope
// @Success 200 {object} httputil.Envelope
// @Failure 422 {object} httputil.ErrorResponse
// @Router /steps [post]
func (s *Server) LogSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log steps error: no identity")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "no user identity configured", nil)
		return
	}
	req, err := decodeLogStepsRequest(r.Body)
	if err != nil {
		logger.Error("log steps error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq, ve := req.toServiceRequest()
	if ve != nil {
		logger.Info("log steps error: invalid field types", slog.Any("fields", ve.Fields))
		httputil.WriteValidationErrorResponse(w, ve.Message(), ve.Fields)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	step, created, err := s.stepsService.LogDailySteps(ctx, uid, serviceReq)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.Info("log steps error: validation failed", slog.Any("fields", validationErr.Fields))
			httputil.WriteValidationErrorResponse(w, validationErr.Message(), validationErr.Fields)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log steps error: identity user doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "configured user doesn't exist", nil)
		default:
			logger.Error("log steps error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging steps", nil)
		}
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.WriteEnvelope(w, status, NewStepResponse(step))
	logger.Info("steps logged", slog.Int64("step_id", step.ID), slog.Bool("created", created))
}

// @Summary Soft delete the steps logged for a day
// @Param date path string true "YYYY-MM-DD"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Router /steps/{date} [delete]
func (s *Server) DeleteSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("steps deletion error: no identity")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "no user identity configured", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.stepsService.DeleteSteps(ctx, uid, chi.URLParam(r, "date"))
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.Info("steps deletion error: invalid date in path value")
			httputil.WriteValidationErrorResponse(w, validationErr.Message(), validationErr.Fields)
		case errors.Is(err, errorvalues.ErrStepsNotFound):
			logger.Info("steps deletion error: nothing logged for date")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no steps logged for given date", nil)
		default:
			logger.Error("steps deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting steps", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("steps deleted")
}

// @Summary Check storage and the configured identity user
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} httputil.ErrorResponse
// @Router /healthz [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*3)
	defer cancel()
	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			logger.Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable", nil)
			return
		}
	}
	if s.userService != nil && s.identity != nil {
		_, err := s.userService.GetByID(ctx, s.identity.UserID)
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("health check failed: identity user is gone", slog.Int64("uid", s.identity.UserID))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "configured user doesn't exist", nil)
			return
		case err != nil:
			logger.Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}
