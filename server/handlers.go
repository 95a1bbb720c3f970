package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"wargame/game"
	"wargame/gamemaster"
	"wargame/meta"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type handlers struct {
	gm     *gamemaster.GameMaster
	logger zerolog.Logger
}

type createRequest struct {
	Players int `json:"players"`
}

// actionRequest requires an explicit type; the zero ActionType is a valid action.
type actionRequest struct {
	Type *game.ActionType `json:"type"`
	game.Action
}

type clickRequest struct {
	Territory *int `json:"territory"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	req := createRequest{Players: meta.DEFAULT_PLAYERS}
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.gm.Create(req.Players)
	if errors.Is(err, game.ErrPlayerCount) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create game")
		http.Error(w, "failed to create game", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Location", "/games/"+view.ID)
	h.writeView(w, http.StatusCreated, view)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	view, err := h.gm.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, view)
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gm.Delete(chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Type == nil {
		http.Error(w, "bad request: action type is required", http.StatusBadRequest)
		return
	}
	action := req.Action
	action.Type = *req.Type
	view, err := h.gm.Dispatch(chi.URLParam(r, "id"), action)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, view)
}

func (h *handlers) click(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Territory == nil {
		http.Error(w, "bad request: territory is required", http.StatusBadRequest)
		return
	}
	view, err := h.gm.Click(chi.URLParam(r, "id"), *req.Territory)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, view)
}

func (h *handlers) metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.gm.Metrics(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *handlers) writeView(w http.ResponseWriter, status int, view gamemaster.View) {
	w.Header().Set("ETag", fmt.Sprintf(`"%x"`, uint64(view.State.Hash())))
	writeJSON(w, status, view)
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, gamemaster.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// decodeBody fills v from a JSON body. An empty body is an error wrapping io.EOF.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("empty body: %w", err)
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
