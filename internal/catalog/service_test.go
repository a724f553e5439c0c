package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items []Item
}

func (f *fakeRepo) ListByCategory(ctx context.Context, categoryID string) ([]Item, error) {
	out := make([]Item, 0)
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) Create(ctx context.Context, item Item) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, item Item) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func newTestService(items []Item) *Service {
	return NewService(&fakeRepo{items: items}, time.UTC)
}

func TestListFamilyAttachesLabels(t *testing.T) {
	service := newTestService([]Item{
		{ID: "1", NameFR: "Ménage de Villa", CategoryID: "menage"},
		{ID: "2", NameFR: "Maison d'hôte", CategoryID: "menage"},
		{ID: "3", NameFR: "Conseils d'entretien", CategoryID: "menage"},
	})

	listed, err := service.ListFamily(context.Background(), "menage")
	if err != nil {
		t.Fatalf("ListFamily: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 items, got %d", len(listed))
	}

	byID := make(map[string]ListedItem)
	for _, entry := range listed {
		byID[entry.ID] = entry
	}
	if byID["1"].Label != "villa" || !byID["1"].Bookable {
		t.Errorf("villa item: label=%q bookable=%v", byID["1"].Label, byID["1"].Bookable)
	}
	if byID["2"].Label != "guest_house" || !byID["2"].Bookable {
		t.Errorf("guest house item: label=%q bookable=%v", byID["2"].Label, byID["2"].Bookable)
	}
	if byID["3"].Bookable || byID["3"].Label != "" {
		t.Errorf("unclassified item should stay listed but not bookable, got label=%q", byID["3"].Label)
	}
}

func TestListFamilyDropsOtherFamilies(t *testing.T) {
	service := newTestService([]Item{
		{ID: "1", NameFR: "Ménage de Maison", CategoryID: "menage"},
		{ID: "2", NameFR: "Nettoyage de Piscine", CategoryID: "menage"},
		{ID: "3", NameEN: "Carpet Refresh", CategoryID: "menage"},
	})

	listed, err := service.ListFamily(context.Background(), "menage")
	if err != nil {
		t.Fatalf("ListFamily: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected pool and carpet records dropped, got %d items", len(listed))
	}
	if listed[0].ID != "1" {
		t.Errorf("expected house item to survive, got %s", listed[0].ID)
	}
}

func TestListFamilyUnknown(t *testing.T) {
	service := newTestService(nil)
	if _, err := service.ListFamily(context.Background(), "jardinage"); !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
}

func TestGetFamilyItemAgreesWithListing(t *testing.T) {
	service := newTestService([]Item{
		{ID: "1", NameFR: "Nettoyage Profond de Piscine", CategoryID: "piscine"},
		{ID: "2", NameFR: "Ménage de Maison", CategoryID: "menage"},
	})

	entry, err := service.GetFamilyItem(context.Background(), "piscine", "1")
	if err != nil {
		t.Fatalf("GetFamilyItem: %v", err)
	}
	if entry.Label != "pool_deep_clean" || !entry.Bookable {
		t.Errorf("pool item: label=%q bookable=%v", entry.Label, entry.Bookable)
	}

	// An item cannot be fetched through another family's route.
	if _, err := service.GetFamilyItem(context.Background(), "piscine", "2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-family access, got %v", err)
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	service := newTestService(nil)

	item, err := service.Create(context.Background(), CreateRequest{
		NameFR:     "Nettoyage de Canapés",
		CategoryID: "tapis-canapes",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Slug != "nettoyage-de-canapes" {
		t.Errorf("slug = %q", item.Slug)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
}
