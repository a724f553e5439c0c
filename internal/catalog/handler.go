package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tawdev/mahtaaj-sub005/internal/cache"
	"github.com/tawdev/mahtaaj-sub005/internal/httpx"
	"github.com/tawdev/mahtaaj-sub005/internal/middleware"
	"github.com/tawdev/mahtaaj-sub005/internal/pricing"
	"github.com/tawdev/mahtaaj-sub005/internal/transport"
	"github.com/tawdev/mahtaaj-sub005/internal/validation"
)

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, cacheStore cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) ListFamily(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	family := chi.URLParam(r, "family")

	cacheKey := "catalog:" + family
	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("catalog list: cache hit", slog.String("family", family))
			transport.WriteRawJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListFamily(ctx, family)
	if err != nil {
		if errors.Is(err, ErrUnknownFamily) {
			log.Warn("catalog list: unknown family", slog.String("family", family))
			transport.WriteError(w, http.StatusNotFound, "unknown family", nil)
			return
		}
		log.Error("catalog list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{
		"family": family,
		"items":  items,
	}

	if h.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
		}
	}

	log.Info("catalog list: ok", slog.String("family", family), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) GetFamilyItem(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	family := chi.URLParam(r, "family")
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetFamilyItem(ctx, family, id)
	if err != nil {
		if errors.Is(err, ErrUnknownFamily) {
			transport.WriteError(w, http.StatusNotFound, "unknown family", nil)
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("catalog get: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "catalog item not found", nil)
			return
		}
		log.Error("catalog get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{
		"item": item,
	}
	if item.Bookable {
		if table, ok := pricing.TableForLabel(item.Label); ok {
			response["rates"] = table
			response["currency"] = pricing.Currency
		}
	}

	log.Info("catalog get: ok", slog.String("item_id", id), slog.String("label", item.Label))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin catalog create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin catalog create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			transport.WriteError(w, http.StatusConflict, "duplicate slug", nil)
			return
		}
		log.Error("admin catalog create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidateListings(r)
	log.Info("admin catalog create: ok", slog.String("item_id", item.ID), slog.String("category", item.CategoryID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin catalog update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin catalog update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin catalog update: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "catalog item not found", nil)
			return
		}
		if errors.Is(err, ErrDuplicateSlug) {
			transport.WriteError(w, http.StatusConflict, "duplicate slug", nil)
			return
		}
		log.Error("admin catalog update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidateListings(r)
	log.Info("admin catalog update: ok", slog.String("item_id", item.ID))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin catalog delete: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "catalog item not found", nil)
			return
		}
		log.Error("admin catalog delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidateListings(r)
	log.Info("admin catalog delete: ok", slog.String("item_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "deleted"})
}

func (h *Handler) invalidateListings(r *http.Request) {
	if h.cache != nil {
		_ = h.cache.DeletePrefix(r.Context(), "catalog:")
	}
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
