package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

type tableResponse struct {
	ID       string        `json:"id"`
	Snapshot game.Snapshot `json:"snapshot"`
	Legal    []game.Action `json:"legal"`
}

type createRequest struct {
	Bankroll int `json:"bankroll"`
}

type dealRequest struct {
	Bet int `json:"bet"`
}

// respond hides the dealer's hole card until it is revealed.
func respond(w http.ResponseWriter, status int, id string, snap game.Snapshot) {
	legal := game.LegalActions(snap)
	if legal == nil {
		legal = []game.Action{}
	}
	snap.Dealer = snap.VisibleDealer()
	writeJSON(w, status, tableResponse{ID: id, Snapshot: snap, Legal: legal})
}

// decode reads an optional JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func (s *Server) createTable(w http.ResponseWriter, r *http.Request) {
	req := createRequest{Bankroll: s.bankroll}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Bankroll <= 0 || req.Bankroll > game.MaxBankroll {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("bankroll must be between 1 and %d", game.MaxBankroll))
		return
	}

	id := uuid.NewString()
	t := s.newTable(req.Bankroll)
	s.tables.Set(id, t)

	s.log.Info("table created", zap.String("table_id", id), zap.Int("bankroll", req.Bankroll))
	respond(w, http.StatusCreated, id, t.Snapshot())
}

func (s *Server) getTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var snap game.Snapshot
	err := s.tables.With(id, func(t *game.Table) error {
		snap = t.Snapshot()
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, id, snap)
}

func (s *Server) deleteTable(w http.ResponseWriter, r *http.Request) {
	if !s.tables.Delete(chi.URLParam(r, "id")) {
		s.fail(w, r, game.ErrTableNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dealRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var snap game.Snapshot
	err := s.tables.With(id, func(t *game.Table) error {
		var err error
		snap, err = t.PlaceBet(req.Bet)
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.log.Debug("round started", zap.String("table_id", id), zap.String("round_id", snap.RoundID), zap.Int("bet", req.Bet))
	respond(w, http.StatusOK, id, snap)
}

func (s *Server) act(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	action := game.Action(chi.URLParam(r, "action"))

	var snap game.Snapshot
	err := s.tables.With(id, func(t *game.Table) error {
		var err error
		snap, err = t.Do(action)
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if snap.Phase == game.PhaseResolved {
		s.log.Debug("round finished",
			zap.String("table_id", id),
			zap.String("round_id", snap.RoundID),
			zap.String("outcome", snap.Outcome),
			zap.Int("bankroll", snap.Bankroll))
	}
	respond(w, http.StatusOK, id, snap)
}
