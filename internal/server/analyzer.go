package server

import (
	"SkinToneAdvisor/internal/service/analysis"
	"SkinToneAdvisor/internal/service/upload"
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Analyzer interface {
	Analyze(ctx context.Context, imageURL string) (analysis.Recommendation, error)
}

type Uploader interface {
	IssueURL(ctx context.Context, fileName string) (upload.URL, error)
}

type analyzeRequest struct {
	ImageURL string `json:"imageUrl"`
}

type analyzeResponse struct {
	Analysis analysis.Recommendation `json:"analysis"`
	ImageURL string                  `json:"imageUrl"`
}

type uploadURLRequest struct {
	FileName string `json:"fileName"`
}

// NewAnalyzerRouter собирает маршруты сервиса анализа изображений.
func NewAnalyzerRouter(a Analyzer, u Uploader, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(accessLog(logger))
	router.HandleFunc("/api/analyze-image", analyzeImage(a, logger)).Methods(http.MethodPost)
	router.HandleFunc("/api/get-upload-url", getUploadURL(u, logger)).Methods(http.MethodPost)
	return router
}

func analyzeImage(a Analyzer, logger *zap.SugaredLogger) http.HandlerFunc {
	const route = "analyze-image"
	fail := failure{message: "failed to analyze image", withDetails: true}

	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := decodeRequired(r, &req, "imageUrl", "imageUrl is required"); err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}

		rec, err := a.Analyze(r.Context(), req.ImageURL)
		if err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}
		writeJSON(w, http.StatusOK, analyzeResponse{Analysis: rec, ImageURL: req.ImageURL})
	}
}

func getUploadURL(u Uploader, logger *zap.SugaredLogger) http.HandlerFunc {
	const route = "get-upload-url"
	fail := failure{message: "failed to create upload URL", withDetails: true}

	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadURLRequest
		if err := decodeRequired(r, &req, "fileName", "fileName is required"); err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}

		resp, err := u.IssueURL(r.Context(), req.FileName)
		if err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
