package catalog

import (
	"strings"
	"time"
)

// Item is a purchasable service variant maintained by the back office.
// Names and descriptions exist in French, Arabic and English; at least one
// name is always non-empty.
type Item struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	NameFR        string    `bson:"nameFr" json:"nameFr"`
	NameAR        string    `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	NameEN        string    `bson:"nameEn,omitempty" json:"nameEn,omitempty"`
	DescriptionFR string    `bson:"descriptionFr,omitempty" json:"descriptionFr,omitempty"`
	DescriptionAR string    `bson:"descriptionAr,omitempty" json:"descriptionAr,omitempty"`
	DescriptionEN string    `bson:"descriptionEn,omitempty" json:"descriptionEn,omitempty"`
	BaseRate      *float64  `bson:"baseRate,omitempty" json:"baseRate,omitempty"`
	ImageURL      string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CategoryID    string    `bson:"categoryId" json:"categoryId"`
	Slug          string    `bson:"slug" json:"slug"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Names returns the localized name fields in classifier order.
func (i Item) Names() []string {
	return []string{i.NameFR, i.NameAR, i.NameEN}
}

// DisplayName falls back French, then English, then Arabic.
func (i Item) DisplayName() string {
	for _, name := range []string{i.NameFR, i.NameEN, i.NameAR} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	return ""
}

// ListedItem is an Item decorated with its classification for a listing page.
// Unclassified items stay visible but are not bookable.
type ListedItem struct {
	Item
	Label    string `json:"label,omitempty"`
	Bookable bool   `json:"bookable"`
}

type CreateRequest struct {
	NameFR        string   `json:"nameFr" validate:"required"`
	NameAR        string   `json:"nameAr"`
	NameEN        string   `json:"nameEn"`
	DescriptionFR string   `json:"descriptionFr"`
	DescriptionAR string   `json:"descriptionAr"`
	DescriptionEN string   `json:"descriptionEn"`
	BaseRate      *float64 `json:"baseRate" validate:"omitempty,gte=0"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	CategoryID    string   `json:"categoryId" validate:"required"`
}

type UpdateRequest struct {
	NameFR        string   `json:"nameFr" validate:"required"`
	NameAR        string   `json:"nameAr"`
	NameEN        string   `json:"nameEn"`
	DescriptionFR string   `json:"descriptionFr"`
	DescriptionAR string   `json:"descriptionAr"`
	DescriptionEN string   `json:"descriptionEn"`
	BaseRate      *float64 `json:"baseRate" validate:"omitempty,gte=0"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	CategoryID    string   `json:"categoryId" validate:"required"`
}
