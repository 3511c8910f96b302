package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError — в запросе отсутствует обязательное поле. Message показывается клиенту как есть.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpstreamError: сбой сетевого вызова или внешнего провайдера (модель, хранилище, загрузка картинки).
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NormalizationError: ответ модели нельзя превратить в ожидаемую структуру.
type NormalizationError struct {
	Err error
}

// NormalizationMessage отличается от текста обычной ошибки разбора JSON, чтобы клиент мог их различать.
const NormalizationMessage = "model reply is not a valid skin tone recommendation"

func (e *NormalizationError) Error() string {
	if e.Err == nil {
		return NormalizationMessage
	}
	return fmt.Sprintf("%s: %v", NormalizationMessage, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func Upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func Normalization(err error) error {
	return &NormalizationError{Err: err}
}

// Status возвращает HTTP-статус для ошибки. Всё, что не ValidationError, считается 500.
func Status(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
