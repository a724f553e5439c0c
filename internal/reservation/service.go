package reservation

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tawdev/mahtaaj-sub005/internal/catalog"
	"github.com/tawdev/mahtaaj-sub005/internal/pricing"
)

var (
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrNotBookable      = errors.New("item is not bookable")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNotFound         = errors.New("reservation not found")
)

// PriceDriftTolerance is the accepted gap between the client's quoted price
// and the server recomputation before the booking is flagged.
const PriceDriftTolerance = 0.01

type Notifier interface {
	SendReservationConfirmation(ctx context.Context, res Reservation) (string, error)
}

type Service struct {
	repo     Repository
	catalog  *catalog.Service
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, catalogService *catalog.Service, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalogService,
		location: location,
		notifier: notifier,
	}
}

// PrepareQuote resolves the item's rate table and prices the selection
// without persisting anything.
func (s *Service) PrepareQuote(ctx context.Context, req QuoteRequest) (catalog.ListedItem, pricing.RateTable, pricing.QuoteResult, error) {
	item, err := s.catalog.GetFamilyItem(ctx, req.Family, req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, catalog.ErrUnknownFamily) {
			return catalog.ListedItem{}, nil, pricing.QuoteResult{}, ErrItemNotFound
		}
		return catalog.ListedItem{}, nil, pricing.QuoteResult{}, err
	}
	if !item.Bookable {
		return catalog.ListedItem{}, nil, pricing.QuoteResult{}, ErrNotBookable
	}

	table, ok := pricing.TableForLabel(item.Label)
	if !ok {
		return catalog.ListedItem{}, nil, pricing.QuoteResult{}, ErrNotBookable
	}

	return item, table, pricing.Quote(req.Selection, table), nil
}

// Create recomputes the price server-side from the submitted selection and
// persists the server value as the final price. A drifted client quote is
// reported to the caller, not rejected.
func (s *Service) Create(ctx context.Context, req CreateRequest, customerID string) (Reservation, bool, error) {
	item, table, quote, err := s.PrepareQuote(ctx, QuoteRequest{
		Family:    req.Family,
		ItemID:    req.ItemID,
		Selection: req.Selection,
	})
	if err != nil {
		return Reservation{}, false, err
	}

	if !pricing.Valid(req.Selection, table) {
		return Reservation{}, false, ErrInvalidSelection
	}

	drifted := math.Abs(quote.Total-req.QuotedPrice) > PriceDriftTolerance

	now := time.Now().In(s.location)
	res := Reservation{
		ID:            primitive.NewObjectID().Hex(),
		Name:          strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Location:      strings.TrimSpace(req.Location),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		Message:       strings.TrimSpace(req.Message),
		ItemID:        item.ID,
		ItemName:      item.DisplayName(),
		Family:        req.Family,
		Label:         item.Label,
		Selection:     req.Selection,
		QuotedPrice:   pricing.Round2(req.QuotedPrice),
		FinalPrice:    quote.Total,
		Currency:      pricing.Currency,
		CustomerID:    customerID,
		Status:        StatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return Reservation{}, false, err
	}

	return res, drifted, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Reservation, error) {
	res, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Reservation{}, ErrNotFound
		}
		return Reservation{}, err
	}
	return res, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Reservation, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Family = strings.ToLower(strings.TrimSpace(filter.Family))

	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Reservation, error) {
	id = strings.TrimSpace(id)
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Reservation{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Reservation{}, ErrNotFound
		}
		return Reservation{}, err
	}
	return updated, nil
}

func (s *Service) NotifyConfirmation(ctx context.Context, res Reservation) error {
	if s.notifier == nil {
		return nil
	}
	if strings.TrimSpace(res.Email) == "" {
		return nil
	}
	_, err := s.notifier.SendReservationConfirmation(ctx, res)
	return err
}
