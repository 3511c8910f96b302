package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Server — HTTP-сервер с graceful shutdown. Один экземпляр на процесс.
type Server struct {
	name    string
	srv     *http.Server
	ln      net.Listener
	logger  *zap.SugaredLogger
	running atomic.Bool

	stopOnce sync.Once
	stopErr  error
}

func New(name, addr string, handler http.Handler, logger *zap.SugaredLogger) *Server {
	return &Server{
		name:   name,
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start открывает порт и обслуживает запросы в отдельной горутине.
// Ошибка прослушивания возвращается сразу. Отмена ctx останавливает сервер.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.running.Store(false)
		return err
	}
	s.ln = ln

	go func() {
		s.logger.Infow("Server listening", "name", s.name, "addr", ln.Addr().String())
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) && err != nil {
			s.logger.Errorw("Server stopped with error", "name", s.name, "error", err)
		} else {
			s.logger.Infow("Server stopped", "name", s.name)
		}
	}()

	go func() {
		<-ctx.Done()
		_ = s.Stop(context.WithoutCancel(ctx))
	}()
	return nil
}

// Stop выполняет shutdown один раз; параллельные вызовы ждут его завершения.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}
	s.stopOnce.Do(func() { s.stopErr = s.shutdown(ctx) })
	return s.stopErr
}

func (s *Server) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeoutCause(ctx, 5*time.Second, errors.New(s.name+" shutdown timeout"))
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warnw("graceful shutdown error", "name", s.name, "error", err)
		return s.srv.Close()
	}
	return nil
}

// Addr возвращает фактический адрес после Start, до него настроенный.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
