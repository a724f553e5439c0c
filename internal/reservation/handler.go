package reservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tawdev/mahtaaj-sub005/internal/httpx"
	"github.com/tawdev/mahtaaj-sub005/internal/middleware"
	"github.com/tawdev/mahtaaj-sub005/internal/pricing"
	"github.com/tawdev/mahtaaj-sub005/internal/transport"
	"github.com/tawdev/mahtaaj-sub005/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

// Quote prices a selection without persisting anything, so booking pages can
// refresh the displayed total as the user types.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req QuoteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("quote: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("quote: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, table, quote, err := h.service.PrepareQuote(ctx, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			transport.WriteError(w, http.StatusNotFound, "catalog item not found", nil)
			return
		}
		if errors.Is(err, ErrNotBookable) {
			transport.WriteError(w, http.StatusBadRequest, "item is not bookable", nil)
			return
		}
		log.Error("quote: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("quote: ok", slog.String("item_id", item.ID), slog.Float64("total", quote.Total))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"label":    item.Label,
		"currency": pricing.Currency,
		"quote":    quote,
		"valid":    pricing.Valid(req.Selection, table),
		"state":    pricing.State(req.Selection, table),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reservations create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("reservations create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	customerID := ""
	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		customerID = session.UserID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	res, drifted, err := h.service.Create(ctx, req, customerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			log.Warn("reservations create: item not found", slog.String("item_id", req.ItemID))
			transport.WriteError(w, http.StatusBadRequest, "catalog item not found", nil)
		case errors.Is(err, ErrNotBookable):
			log.Warn("reservations create: item not bookable", slog.String("item_id", req.ItemID))
			transport.WriteError(w, http.StatusBadRequest, "item is not bookable", nil)
		case errors.Is(err, ErrInvalidSelection):
			log.Warn("reservations create: invalid selection", slog.String("item_id", req.ItemID))
			transport.WriteError(w, http.StatusBadRequest, "invalid selection", nil)
		default:
			log.Error("reservations create: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	if drifted {
		log.Warn("reservations create: quoted price drift",
			slog.String("reservation_id", res.ID),
			slog.Float64("quoted", res.QuotedPrice),
			slog.Float64("final", res.FinalPrice),
		)
	}

	go func(created Reservation) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyConfirmation(notifyCtx, created); err != nil {
			h.log.Warn("reservations create: confirmation email failed",
				slog.String("reservation_id", created.ID),
				slog.String("email", created.Email),
				slog.String("error", err.Error()),
			)
		}
	}(res)

	log.Info("reservations create: ok",
		slog.String("reservation_id", res.ID),
		slog.String("family", res.Family),
		slog.String("label", res.Label),
		slog.Float64("final_price", res.FinalPrice),
	)
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"reservation": res,
	})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("reservations get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("reservations get: not found", slog.String("reservation_id", id))
			transport.WriteError(w, http.StatusNotFound, "reservation not found", nil)
			return
		}
		log.Error("reservations get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reservations get: ok", slog.String("reservation_id", id))
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin reservations list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Family: strings.TrimSpace(r.URL.Query().Get("family")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"status": "oneof"})
			return
		}
		log.Error("admin reservations list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin reservations list: ok", slog.Int("count", len(items)))
	transport.WriteList(w, items, limit, offset, total)
}

func (h *Handler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin reservations status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req AdminStatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin reservations status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin reservations status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin reservations status: not found", slog.String("reservation_id", id))
			transport.WriteError(w, http.StatusNotFound, "reservation not found", nil)
			return
		}
		log.Error("admin reservations status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin reservations status: ok", slog.String("reservation_id", id), slog.String("status", res.Status))
	transport.WriteJSON(w, http.StatusOK, res)
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
