package image_test

import (
	"SkinToneAdvisor/internal/apperr"
	"SkinToneAdvisor/internal/service/image"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFetch(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/typed.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(jpeg)
		case "/untyped":
			// пустой Content-Type не даём net/http подставить сам
			w.Header()["Content-Type"] = nil
			_, _ = w.Write(jpeg)
		case "/empty":
			w.Header().Set("Content-Type", "image/jpeg")
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write(jpeg)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name         string
		path         string
		timeout      time.Duration
		wantMime     string
		wantUpstream bool
	}{
		{name: "content type from header", path: "/typed.jpg", wantMime: "image/jpeg"},
		{name: "content type sniffed", path: "/untyped", wantMime: "image/jpeg"},
		{name: "not found", path: "/missing.png", wantUpstream: true},
		{name: "empty body", path: "/empty", wantUpstream: true},
		{name: "timeout", path: "/slow", timeout: 50 * time.Millisecond, wantUpstream: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := image.NewFetcher(tt.timeout, zap.NewNop().Sugar())
			media, err := f.Fetch(context.Background(), srv.URL+tt.path)

			if tt.wantUpstream {
				var ue *apperr.UpstreamError
				if !errors.As(err, &ue) {
					t.Fatalf("Fetch() error = %v, want UpstreamError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if media.MimeType != tt.wantMime {
				t.Errorf("MimeType = %q, want %q", media.MimeType, tt.wantMime)
			}
			if !bytes.Equal(media.Data, jpeg) {
				t.Errorf("Data = %v, want %v", media.Data, jpeg)
			}
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	f := image.NewFetcher(time.Second, zap.NewNop().Sugar())
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/none.jpg")

	var ue *apperr.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("Fetch() error = %v, want UpstreamError", err)
	}
}
