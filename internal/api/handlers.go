package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"campus_nav/internal/graph"
	"campus_nav/internal/models"
	"campus_nav/internal/pathfinding"
	"campus_nav/internal/services"
)

const msgNoRoute = "no hay ruta disponible"

type Handler struct {
	nav    Navigator
	logger *slog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type inaccessibleResponse struct {
	Accessible   []string `json:"accessible"`
	Inaccessible []string `json:"inaccessible"`
}

func (h *Handler) Nodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.nav.Nodes(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nodes)
}

func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "Los parámetros 'from' y 'to' son requeridos.")
		return
	}

	route, ok, err := h.nav.FindRoute(r.Context(), from, to)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, msgNoRoute)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func (h *Handler) Reachable(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	seconds, err := strconv.ParseFloat(r.URL.Query().Get("seconds"), 64)
	if from == "" || err != nil || seconds < 0 {
		writeError(w, http.StatusBadRequest, "Los parámetros 'from' y 'seconds' (mayor o igual a 0) son requeridos.")
		return
	}

	reachable, err := h.nav.ReachableWithin(r.Context(), from, seconds)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reachable)
}

func (h *Handler) Inaccessible(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		writeError(w, http.StatusBadRequest, "El parámetro 'from' es requerido.")
		return
	}

	accessible, inaccessible, err := h.nav.FindInaccessible(r.Context(), from)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inaccessibleResponse{Accessible: accessible, Inaccessible: inaccessible})
}

func (h *Handler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.nav.Blocked(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if blocked == nil {
		blocked = []models.BlockedPath{}
	}
	writeJSON(w, http.StatusOK, blocked)
}

func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	var req models.BlockedPath
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud JSON inválida")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "Los parámetros 'from' y 'to' son requeridos.")
		return
	}

	if err := h.nav.BlockPath(r.Context(), req); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "path blocked", "from", req.From, "to", req.To, "temporary", req.Temporary)
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "Los parámetros 'from' y 'to' son requeridos.")
		return
	}

	if err := h.nav.UnblockPath(r.Context(), from, to); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "path unblocked", "from", from, "to", to)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GraphDOT(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.nav.WriteDOT(r.Context(), &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write(buf.Bytes())
}

// fail traduce los errores del dominio a códigos HTTP.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *pathfinding.InvalidNodeError
	var cfgErr *graph.ConfigurationError

	switch {
	case errors.As(err, &invalid), errors.As(err, &cfgErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrBlockNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, pathfinding.ErrSearchLimit):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "error interno")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
