package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

type Server struct {
	tables   *game.Manager
	newTable func(bankroll int) *game.Table
	bankroll int
	log      *zap.Logger
}

// NewServer serves tables created by newTable. bankroll is used when a
// create request does not name one.
func NewServer(tables *game.Manager, newTable func(bankroll int) *game.Table, bankroll int, log *zap.Logger) *Server {
	return &Server{
		tables:   tables,
		newTable: newTable,
		bankroll: bankroll,
		log:      log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api/tables", func(r chi.Router) {
		r.Post("/", s.createTable)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getTable)
			r.Delete("/", s.deleteTable)
			r.Post("/deal", s.deal)
			r.Post("/{action:hit|stand|double|split|switch}", s.act)
		})
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrTableNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrIllegalAction):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidBet),
		errors.Is(err, game.ErrNoFunds),
		errors.Is(err, game.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
