package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tawdev/mahtaaj-sub005/internal/catalog"
	"github.com/tawdev/mahtaaj-sub005/internal/pricing"
)

type fakeCatalogRepo struct {
	items map[string]catalog.Item
}

func (f *fakeCatalogRepo) ListByCategory(ctx context.Context, categoryID string) ([]catalog.Item, error) {
	out := make([]catalog.Item, 0)
	for _, item := range f.items {
		if categoryID == "" || item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id string) (catalog.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return catalog.Item{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeCatalogRepo) Create(ctx context.Context, item catalog.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, item catalog.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeReservationRepo struct {
	created []Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, res Reservation) error {
	f.created = append(f.created, res)
	return nil
}

func (f *fakeReservationRepo) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Reservation, error) {
	return f.created, nil
}

func (f *fakeReservationRepo) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (Reservation, error) {
	for _, res := range f.created {
		if res.ID == id {
			return res, nil
		}
	}
	return Reservation{}, mongo.ErrNoDocuments
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, status string, now time.Time) (Reservation, error) {
	for i, res := range f.created {
		if res.ID == id {
			f.created[i].Status = status
			f.created[i].UpdatedAt = now
			return f.created[i], nil
		}
	}
	return Reservation{}, mongo.ErrNoDocuments
}

func newTestService(t *testing.T) (*Service, *fakeReservationRepo) {
	t.Helper()
	catalogRepo := &fakeCatalogRepo{items: map[string]catalog.Item{
		"sofa-item": {
			ID:         "sofa-item",
			NameFR:     "Nettoyage Canapés",
			CategoryID: "tapis-canapes",
		},
		"info-item": {
			ID:         "info-item",
			NameFR:     "Conseils d'entretien",
			CategoryID: "tapis-canapes",
		},
	}}
	catalogService := catalog.NewService(catalogRepo, time.UTC)
	repo := &fakeReservationRepo{}
	return NewService(repo, catalogService, time.UTC, nil), repo
}

func sofaSelection(lengthCM, widthCM float64) pricing.Selection {
	return pricing.Selection{Options: map[string]pricing.Option{
		"sofa": {Selected: true, Dimensions: []pricing.Dimension{{LengthCM: lengthCM, WidthCM: widthCM}}},
	}}
}

func TestCreateRecomputesFinalPrice(t *testing.T) {
	service, repo := newTestService(t)

	// 2 m2 of sofa lands under the tier threshold: 800 flat.
	res, drifted, err := service.Create(context.Background(), CreateRequest{
		Family:      "tapis-canapes",
		ItemID:      "sofa-item",
		Name:        "Amina",
		Phone:       "+212600000000",
		Selection:   sofaSelection(100, 200),
		QuotedPrice: 800,
	}, "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if drifted {
		t.Fatalf("matching quote should not be flagged as drifted")
	}
	if res.FinalPrice != 800 {
		t.Fatalf("expected final price 800, got %v", res.FinalPrice)
	}
	if res.Status != StatusNew {
		t.Fatalf("expected status new, got %q", res.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted reservation, got %d", len(repo.created))
	}
}

func TestCreateFlagsQuoteDrift(t *testing.T) {
	service, _ := newTestService(t)

	res, drifted, err := service.Create(context.Background(), CreateRequest{
		Family:      "tapis-canapes",
		ItemID:      "sofa-item",
		Name:        "Amina",
		Phone:       "+212600000000",
		Selection:   sofaSelection(100, 200),
		QuotedPrice: 12.5,
	}, "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !drifted {
		t.Fatalf("expected drift flag for a mismatched client quote")
	}
	if res.FinalPrice != 800 {
		t.Fatalf("server price must win, got %v", res.FinalPrice)
	}
}

func TestCreateRejectsInvalidSelection(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.Create(context.Background(), CreateRequest{
		Family:    "tapis-canapes",
		ItemID:    "sofa-item",
		Name:      "Amina",
		Phone:     "+212600000000",
		Selection: sofaSelection(100, 0),
	}, "")
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestCreateRejectsUnbookableItem(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.Create(context.Background(), CreateRequest{
		Family:    "tapis-canapes",
		ItemID:    "info-item",
		Name:      "Amina",
		Phone:     "+212600000000",
		Selection: sofaSelection(100, 200),
	}, "")
	if !errors.Is(err, ErrNotBookable) {
		t.Fatalf("expected ErrNotBookable, got %v", err)
	}
}

func TestCreateStampsCustomerID(t *testing.T) {
	service, _ := newTestService(t)

	res, _, err := service.Create(context.Background(), CreateRequest{
		Family:      "tapis-canapes",
		ItemID:      "sofa-item",
		Name:        "Amina",
		Phone:       "+212600000000",
		Selection:   sofaSelection(100, 200),
		QuotedPrice: 800,
	}, "user-42")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if res.CustomerID != "user-42" {
		t.Fatalf("expected customer id stamped, got %q", res.CustomerID)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.UpdateStatus(context.Background(), "whatever", "sideways"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), "missing", StatusDone); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
