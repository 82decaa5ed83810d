// Package httppanel exposes a remote's buttons over HTTP.
package httppanel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"remote-control/internal/domain"
	"remote-control/internal/remote"
)

// Panel is what the server drives. *application.Panel implements it.
type Panel interface {
	Press(ctx context.Context, press domain.Press) (string, error)
	Layout() []domain.SlotView
	Macros() []domain.MacroView
	Appliances() []domain.ApplianceState
}

type Server struct {
	addr        string
	panel       Panel
	server      *http.Server
	logger      *slog.Logger
	mu          sync.Mutex
	running     bool
	mux         *http.ServeMux
	rateLimiter *RateLimiter
	authToken   string
}

func NewServer(addr, authToken string, panel Panel, logger *slog.Logger) *Server {
	s := &Server{
		addr:        addr,
		panel:       panel,
		logger:      logger,
		mux:         http.NewServeMux(),
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 presses per minute per IP
		authToken:   authToken,
	}
	s.mux.HandleFunc("POST /slots/{slot}/on", s.rateLimiter.Middleware(s.requireToken(s.handlePress(domain.ButtonOn))))
	s.mux.HandleFunc("POST /slots/{slot}/off", s.rateLimiter.Middleware(s.requireToken(s.handlePress(domain.ButtonOff))))
	s.mux.HandleFunc("POST /undo", s.rateLimiter.Middleware(s.requireToken(s.handlePress(domain.ButtonUndo))))
	s.mux.HandleFunc("GET /slots", s.handleSlots)
	s.mux.HandleFunc("GET /appliances", s.handleAppliances)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	return s
}

func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info("HTTP panel starting", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Warn("graceful shutdown failed, forcing close", "error", err)
			if err := s.server.Close(); err != nil {
				return fmt.Errorf("closing server: %w", err)
			}
		}
	}

	s.running = false
	return nil
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken != "" {
			token := r.Header.Get("X-Auth-Token")
			if token == "" {
				token = r.URL.Query().Get("token")
			}
			if token != s.authToken {
				s.logger.Warn("unauthorized press", "remote_addr", r.RemoteAddr)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handlePress(button domain.Button) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		press := domain.Press{Button: button}

		if button != domain.ButtonUndo {
			slot, err := strconv.Atoi(r.PathValue("slot"))
			if err != nil {
				http.Error(w, "invalid slot", http.StatusBadRequest)
				return
			}
			press.Slot = slot
		}

		result, err := s.panel.Press(r.Context(), press)
		if err != nil {
			s.logger.Warn("press failed", "button", button, "slot", press.Slot, "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, remote.ErrSlotOutOfRange) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"result": result,
		})
	}
}

func (s *Server) handleSlots(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"slots":  s.panel.Layout(),
		"macros": s.panel.Macros(),
	})
}

func (s *Server) handleAppliances(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"appliances": s.panel.Appliances()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	status := "ok"
	statusCode := http.StatusOK

	if !running {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, map[string]any{"status": status, "running": running})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
