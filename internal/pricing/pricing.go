// Package pricing turns a booking selection into a single currency amount.
// Three recurring pricing modes exist across the catalog: per-piece flat
// rates, per-area rates and area rates with a tiered minimum. All arithmetic
// is pure; malformed input degrades to zero instead of erroring.
package pricing

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type Mode string

const (
	ModePerPiece   Mode = "per_piece"
	ModePerArea    Mode = "per_area"
	ModeTieredArea Mode = "tiered_area"
	ModeFlat       Mode = "flat"
)

// Dimension is a user-entered length/width pair in centimeters.
type Dimension struct {
	LengthCM float64 `json:"lengthCm" bson:"lengthCm"`
	WidthCM  float64 `json:"widthCm" bson:"widthCm"`
}

// Complete reports whether both sides are positive. Incomplete dimensions
// contribute nothing to area sums and block the reservable state.
func (d Dimension) Complete() bool {
	return d.LengthCM > 0 && d.WidthCM > 0
}

func (d Dimension) AreaM2() float64 {
	if !d.Complete() {
		return 0
	}
	return d.LengthCM * d.WidthCM / 10000
}

// ParseDecimal sanitizes free-text numeric input. Comma decimal separators
// are accepted; garbage, negatives and non-finite values collapse to 0.
func ParseDecimal(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

type Rate struct {
	Mode        Mode    `json:"mode"`
	Unit        float64 `json:"unit,omitempty"`
	ThresholdM2 float64 `json:"thresholdM2,omitempty"`
	Minimum     float64 `json:"minimum,omitempty"`
	Flat        float64 `json:"flat,omitempty"`
}

type RateTable map[string]Rate

type Line struct {
	Key        string  `json:"key"`
	Mode       Mode    `json:"mode"`
	Quantity   int     `json:"quantity,omitempty"`
	AreaM2     float64 `json:"areaM2,omitempty"`
	Amount     float64 `json:"amount"`
	Incomplete bool    `json:"incomplete,omitempty"`
}

type QuoteResult struct {
	Total      float64 `json:"total"`
	Lines      []Line  `json:"lines"`
	Incomplete bool    `json:"incomplete"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quote computes the total for every selected option that has a rate in the
// table. Sub-totals are independent, so the composite total is additive and
// order-independent.
func Quote(sel Selection, table RateTable) QuoteResult {
	keys := make([]string, 0, len(sel.Options))
	for key, opt := range sel.Options {
		if !opt.Selected {
			continue
		}
		if _, ok := table[key]; !ok {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := QuoteResult{Lines: make([]Line, 0, len(keys))}
	for _, key := range keys {
		line := quoteLine(key, sel.Options[key], table[key])
		result.Lines = append(result.Lines, line)
		result.Total += line.Amount
		if line.Incomplete {
			result.Incomplete = true
		}
	}
	result.Total = Round2(result.Total)
	if result.Total < 0 {
		result.Total = 0
	}
	return result
}

func quoteLine(key string, opt Option, rate Rate) Line {
	line := Line{Key: key, Mode: rate.Mode}

	switch rate.Mode {
	case ModePerPiece:
		line.Quantity = opt.Quantity
		if opt.Quantity > 0 {
			line.Amount = Round2(rate.Unit * float64(opt.Quantity))
		} else {
			line.Incomplete = true
		}
	case ModePerArea:
		area := totalArea(opt.Dimensions)
		line.AreaM2 = area
		line.Amount = Round2(area * rate.Unit)
		line.Incomplete = !hasCompleteDimension(opt.Dimensions)
	case ModeTieredArea:
		area := totalArea(opt.Dimensions)
		line.AreaM2 = area
		if !hasCompleteDimension(opt.Dimensions) {
			line.Incomplete = true
			break
		}
		// The minimum applies up to and including the threshold.
		if area <= rate.ThresholdM2 {
			line.Amount = Round2(rate.Minimum)
		} else {
			line.Amount = Round2(area * rate.Unit)
		}
	case ModeFlat:
		line.Amount = Round2(rate.Flat)
	}

	return line
}

func totalArea(dims []Dimension) float64 {
	total := 0.0
	for _, d := range dims {
		total += d.AreaM2()
	}
	return total
}

func hasCompleteDimension(dims []Dimension) bool {
	for _, d := range dims {
		if d.Complete() {
			return true
		}
	}
	return false
}

// Valid gates the reserve action: at least one priced option is selected,
// every selected area option carries a complete dimension and every selected
// per-piece option carries a positive quantity. Re-derivable from the
// selection alone.
func Valid(sel Selection, table RateTable) bool {
	selected := 0
	for key, opt := range sel.Options {
		if !opt.Selected {
			continue
		}
		rate, ok := table[key]
		if !ok {
			continue
		}
		selected++

		switch rate.Mode {
		case ModePerPiece:
			if opt.Quantity <= 0 {
				return false
			}
		case ModePerArea, ModeTieredArea:
			if !hasCompleteDimension(opt.Dimensions) {
				return false
			}
		}
	}
	return selected > 0
}

type BookingState string

const (
	StateBrowsing       BookingState = "browsing"
	StateOptionSelected BookingState = "option_selected"
	StateReservable     BookingState = "reservable"
)

// State derives the booking page state from the selection. Submitting and
// terminal states are owned by the reservation flow, not the selection.
func State(sel Selection, table RateTable) BookingState {
	selected := false
	for key, opt := range sel.Options {
		if opt.Selected {
			if _, ok := table[key]; ok {
				selected = true
				break
			}
		}
	}
	if !selected {
		return StateBrowsing
	}
	if Valid(sel, table) {
		return StateReservable
	}
	return StateOptionSelected
}
