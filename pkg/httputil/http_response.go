package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Envelope wraps the primary payload of successful responses.
type Envelope struct {
	Data any `json:"data"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeError(w, statusCode, resp)
}

// WriteValidationErrorResponse answers 422 with messages keyed by request field.
func WriteValidationErrorResponse(w http.ResponseWriter, message string, fields map[string][]string) {
	writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  fields,
	})
}

func writeError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

func WriteEnvelope(w http.ResponseWriter, statusCode int, data any) {
	WriteJSONResponse(w, statusCode, Envelope{Data: data})
}
