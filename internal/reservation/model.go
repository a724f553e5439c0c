package reservation

import (
	"time"

	"github.com/tawdev/mahtaaj-sub005/internal/pricing"
)

const (
	StatusNew        = "new"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

var validStatuses = map[string]struct{}{
	StatusNew:        {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusDone:       {},
	StatusCanceled:   {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// Reservation is the persisted booking. The selection detail is stored
// verbatim for audit; FinalPrice is recomputed server-side from it, the
// client's quoted price is kept only to measure drift.
type Reservation struct {
	ID            string            `bson:"_id,omitempty" json:"id"`
	Name          string            `bson:"name" json:"name"`
	Phone         string            `bson:"phone" json:"phone"`
	Email         string            `bson:"email,omitempty" json:"email,omitempty"`
	Location      string            `bson:"location,omitempty" json:"location,omitempty"`
	PreferredDate string            `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	Message       string            `bson:"message,omitempty" json:"message,omitempty"`
	ItemID        string            `bson:"itemId" json:"itemId"`
	ItemName      string            `bson:"itemName" json:"itemName"`
	Family        string            `bson:"family" json:"family"`
	Label         string            `bson:"label" json:"label"`
	Selection     pricing.Selection `bson:"selection" json:"selection"`
	QuotedPrice   float64           `bson:"quotedPrice" json:"quotedPrice"`
	FinalPrice    float64           `bson:"finalPrice" json:"finalPrice"`
	Currency      string            `bson:"currency" json:"currency"`
	CustomerID    string            `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Status        string            `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Family        string            `json:"family" validate:"required"`
	ItemID        string            `json:"itemId" validate:"required"`
	Name          string            `json:"name" validate:"required"`
	Phone         string            `json:"phone" validate:"required,phone"`
	Email         string            `json:"email" validate:"omitempty,email"`
	Location      string            `json:"location"`
	PreferredDate string            `json:"preferredDate" validate:"omitempty,date"`
	Message       string            `json:"message"`
	Selection     pricing.Selection `json:"selection"`
	QuotedPrice   float64           `json:"quotedPrice" validate:"gte=0"`
}

type QuoteRequest struct {
	Family    string            `json:"family" validate:"required"`
	ItemID    string            `json:"itemId" validate:"required"`
	Selection pricing.Selection `json:"selection"`
}

type AdminStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new confirmed in_progress done canceled"`
}

type ListFilter struct {
	Status string
	Family string
}
