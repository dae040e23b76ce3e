package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perrors "phishx/internal/errors"
)

const maxJsonBody = 64 << 10

type ApiResponse struct {
	Status  string `json:"status"` // success | fail
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DecodeRequestBody decodes exactly one JSON value with no unknown fields.
func DecodeRequestBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJsonBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after json value")
	}
	return nil
}

func WriteJson(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func RespondSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, ApiResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func RespondFail(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, ApiResponse{
		Status:  "fail",
		Message: message,
		Data:    data,
	})
}

// StatusForKind maps an error category onto the status a caller sees.
func StatusForKind(kind perrors.Kind) int {
	switch kind {
	case perrors.KindValidation:
		return http.StatusBadRequest
	case perrors.KindNotFound:
		return http.StatusNotFound
	case perrors.KindConflict:
		return http.StatusConflict
	case perrors.KindConfig:
		return http.StatusServiceUnavailable
	case perrors.KindUnavailable, perrors.KindUpstream, perrors.KindDecode:
		return http.StatusBadGateway
	case perrors.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
