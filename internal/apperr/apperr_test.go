package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"SkinToneAdvisor/internal/apperr"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.Validation("imageUrl", "imageUrl is required"), want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("handler: %w", apperr.Validation("fileName", "required")), want: http.StatusBadRequest},
		{name: "upstream", err: apperr.Upstream("fetch image", errors.New("connection refused")), want: http.StatusInternalServerError},
		{name: "normalization", err: apperr.Normalization(errors.New("bad json")), want: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpstreamUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := apperr.Upstream("gemini generate content", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false")
	}
	var ue *apperr.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("errors.As UpstreamError = false")
	}
	if ue.Op != "gemini generate content" {
		t.Errorf("Op = %q", ue.Op)
	}
}

func TestNormalizationMessageIsDistinct(t *testing.T) {
	err := apperr.Normalization(errors.New("invalid character 'x' looking for beginning of value"))

	if !strings.HasPrefix(err.Error(), apperr.NormalizationMessage) {
		t.Errorf("Error() = %q, want prefix %q", err.Error(), apperr.NormalizationMessage)
	}
	if got := apperr.Normalization(nil).Error(); got != apperr.NormalizationMessage {
		t.Errorf("Error() without cause = %q", got)
	}
}
