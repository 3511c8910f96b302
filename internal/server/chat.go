package server

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Liveness — ответ на GET / сервиса чата.
const Liveness = "Chat API is running!"

type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// NewChatRouter собирает маршруты сервиса чата.
func NewChatRouter(c Replier, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(accessLog(logger))
	router.HandleFunc("/", liveness).Methods(http.MethodGet)
	router.HandleFunc("/api/chat", chat(c, logger)).Methods(http.MethodPost)
	return router
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, Liveness)
}

func chat(c Replier, logger *zap.SugaredLogger) http.HandlerFunc {
	const route = "chat"
	// Детали ошибки провайдера наружу не отдаём
	fail := failure{message: "Failed to get a response"}

	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeRequired(r, &req, "message", "Message is required"); err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}

		reply, err := c.Reply(r.Context(), req.Message)
		if err != nil {
			writeFailure(w, logger, route, err, fail)
			return
		}
		writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
	}
}
