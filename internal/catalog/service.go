package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tawdev/mahtaaj-sub005/internal/classify"
	"github.com/tawdev/mahtaaj-sub005/internal/utils"
)

var (
	ErrUnknownFamily = errors.New("unknown family")
	ErrNotFound      = errors.New("catalog item not found")
	ErrDuplicateSlug = errors.New("duplicate slug")
)

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{repo: repo, location: location}
}

// ListFamily returns a family's items newest first, drops records that belong
// to other families and attaches the bookable sub-category of each survivor.
func (s *Service) ListFamily(ctx context.Context, familyKey string) ([]ListedItem, error) {
	family, ok := classify.FamilyByKey(familyKey)
	if !ok {
		return nil, ErrUnknownFamily
	}

	items, err := s.repo.ListByCategory(ctx, family.Key)
	if err != nil {
		return nil, err
	}

	listed := make([]ListedItem, 0, len(items))
	for _, item := range items {
		if len(family.Exclusions) > 0 && classify.ExcludedFromFamily(item.Names(), family.Exclusions) {
			continue
		}
		entry := ListedItem{Item: item}
		if label, ok := classify.Classify(item.Names(), family.Rules); ok {
			entry.Label = string(label)
			entry.Bookable = true
		}
		listed = append(listed, entry)
	}

	return listed, nil
}

// GetFamilyItem resolves one item within a family, classified the same way as
// the listing so booking pages agree with listing pages.
func (s *Service) GetFamilyItem(ctx context.Context, familyKey, id string) (ListedItem, error) {
	family, ok := classify.FamilyByKey(familyKey)
	if !ok {
		return ListedItem{}, ErrUnknownFamily
	}

	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ListedItem{}, ErrNotFound
		}
		return ListedItem{}, err
	}
	if item.CategoryID != family.Key {
		return ListedItem{}, ErrNotFound
	}
	if len(family.Exclusions) > 0 && classify.ExcludedFromFamily(item.Names(), family.Exclusions) {
		return ListedItem{}, ErrNotFound
	}

	entry := ListedItem{Item: item}
	if label, ok := classify.Classify(item.Names(), family.Rules); ok {
		entry.Label = string(label)
		entry.Bookable = true
	}
	return entry, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Item, error) {
	item := Item{
		ID:            primitive.NewObjectID().Hex(),
		NameFR:        strings.TrimSpace(req.NameFR),
		NameAR:        strings.TrimSpace(req.NameAR),
		NameEN:        strings.TrimSpace(req.NameEN),
		DescriptionFR: strings.TrimSpace(req.DescriptionFR),
		DescriptionAR: strings.TrimSpace(req.DescriptionAR),
		DescriptionEN: strings.TrimSpace(req.DescriptionEN),
		BaseRate:      req.BaseRate,
		ImageURL:      strings.TrimSpace(req.ImageURL),
		CategoryID:    strings.TrimSpace(req.CategoryID),
		CreatedAt:     time.Now().In(s.location),
	}
	item.Slug = utils.Slugify(item.DisplayName())

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Item{}, ErrDuplicateSlug
		}
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Item, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Item{}, err
	}

	existing.NameFR = strings.TrimSpace(req.NameFR)
	existing.NameAR = strings.TrimSpace(req.NameAR)
	existing.NameEN = strings.TrimSpace(req.NameEN)
	existing.DescriptionFR = strings.TrimSpace(req.DescriptionFR)
	existing.DescriptionAR = strings.TrimSpace(req.DescriptionAR)
	existing.DescriptionEN = strings.TrimSpace(req.DescriptionEN)
	existing.BaseRate = req.BaseRate
	existing.ImageURL = strings.TrimSpace(req.ImageURL)
	existing.CategoryID = strings.TrimSpace(req.CategoryID)
	existing.Slug = utils.Slugify(existing.DisplayName())

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return Item{}, ErrDuplicateSlug
		}
		return Item{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
