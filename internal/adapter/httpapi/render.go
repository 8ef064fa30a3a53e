package httpapi

import (
	"encoding/json"
	"net/http"
)

type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "success"
	StatusFailed  ResponseStatus = "failed"
)

type ErrorCode string

const (
	CodeInvalidJSON      ErrorCode = "invalid_json"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeNotFound         ErrorCode = "not_found"
	CodeAuthRequired     ErrorCode = "auth_required"
	CodeInternal         ErrorCode = "internal"
)

type ErrorResponse struct {
	Status  ResponseStatus      `json:"status"`
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func ResponseError(code ErrorCode, message string, errors map[string][]string) *ErrorResponse {
	return &ErrorResponse{
		Status:  StatusFailed,
		Code:    code,
		Message: message,
		Errors:  errors,
	}
}

type RenderOption = func(w http.ResponseWriter, r *http.Request)

type Renderer struct{}

func (Renderer) Status(status int) RenderOption {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}
}

var Render = Renderer{}

func RenderJSON(w http.ResponseWriter, r *http.Request, payload any, opts ...RenderOption) {
	w.Header().Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(w, r)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, ResponseError(CodeNotFound, "Task not found", nil), Render.Status(http.StatusNotFound))
}

func renderInternal(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, ResponseError(CodeInternal, "Internal server error", nil), Render.Status(http.StatusInternalServerError))
}
