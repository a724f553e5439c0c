package prefill

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tawdev/mahtaaj-sub005/internal/httpx"
	"github.com/tawdev/mahtaaj-sub005/internal/middleware"
	"github.com/tawdev/mahtaaj-sub005/internal/transport"
)

type Handler struct {
	store *Store
	log   *slog.Logger
}

func NewHandler(store *Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var payload Payload
	if err := httpx.DecodeJSON(r.Body, &payload); err != nil {
		log.Warn("prefill create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	token, err := h.store.Save(r.Context(), payload)
	if err != nil {
		log.Error("prefill create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	log.Info("prefill create: ok", slog.String("token", token))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{"token": token})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	token := strings.TrimSpace(chi.URLParam(r, "token"))
	if token == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing token", nil)
		return
	}

	payload, err := h.store.Load(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "prefill not found", nil)
			return
		}
		log.Error("prefill get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, payload)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	token := strings.TrimSpace(chi.URLParam(r, "token"))
	if token == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing token", nil)
		return
	}

	if err := h.store.Remove(r.Context(), token); err != nil {
		log.Error("prefill delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "removed"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
