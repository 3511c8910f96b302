package server

import (
	"SkinToneAdvisor/internal/apperr"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thedevsaddam/govalidator"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeRequired разбирает JSON-тело в dst и требует непустое поле field.
func decodeRequired(r *http.Request, dst any, field, message string) error {
	opts := govalidator.Options{
		Request: r,
		Data:    dst,
		Rules:   govalidator.MapData{field: []string{"required"}},
	}
	errs := govalidator.New(opts).ValidateJSON()
	if len(errs) == 0 {
		return nil
	}
	if _, bad := errs["_error"]; bad {
		return apperr.Validation("", "request body must be a JSON object")
	}
	return apperr.Validation(field, message)
}

// failure описывает, что показать клиенту при ошибке конкретного обработчика.
type failure struct {
	message     string // текст для 500
	withDetails bool   // добавлять ли текст ошибки в details
}

// writeFailure логирует ошибку и отвечает 400 или 500.
func writeFailure(w http.ResponseWriter, logger *zap.SugaredLogger, route string, err error, f failure) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		logger.Warnw("Invalid request", "route", route, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message})
		return
	}

	logger.Errorw("Request failed", "route", route, "error", err)
	resp := errorResponse{Error: f.message}
	var ne *apperr.NormalizationError
	if errors.As(err, &ne) {
		resp.Error = apperr.NormalizationMessage
	}
	if f.withDetails {
		resp.Details = err.Error()
	}
	writeJSON(w, apperr.Status(err), resp)
}
