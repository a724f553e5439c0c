package pricing

import (
	"math"
	"testing"
)

func selectionWith(key string, opt Option) Selection {
	opt.Selected = true
	return Selection{Options: map[string]Option{key: opt}}
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]float64{
		"200":    200,
		" 12.5 ": 12.5,
		"3,75":   3.75,
		"":       0,
		"abc":    0,
		"-40":    0,
		"NaN":    0,
	}
	for raw, want := range cases {
		if got := ParseDecimal(raw); got != want {
			t.Fatalf("ParseDecimal(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestPerAreaZeroDimensionIsFree(t *testing.T) {
	table := RateTable{"carpet": {Mode: ModePerArea, Unit: CarpetRatePerM2}}
	sel := selectionWith("carpet", Option{Dimensions: []Dimension{{LengthCM: 0, WidthCM: 400}}})

	result := Quote(sel, table)
	if result.Total != 0 {
		t.Fatalf("expected 0 for incomplete dimension, got %v", result.Total)
	}
	if !result.Incomplete {
		t.Fatalf("expected quote to be flagged incomplete")
	}
}

func TestPerAreaCarpetRate(t *testing.T) {
	// 200cm x 400cm = 8 m2 at 35 MAD/m2.
	sel := selectionWith("carpet", Option{Dimensions: []Dimension{{LengthCM: 200, WidthCM: 400}}})
	result := Quote(sel, carpetTable)
	if result.Total != 280.00 {
		t.Fatalf("expected 280.00, got %v", result.Total)
	}
}

func TestPerAreaPoolRates(t *testing.T) {
	dims := []Dimension{{LengthCM: 500, WidthCM: 1000}} // 50 m2
	deep := Quote(selectionWith("pool", Option{Dimensions: dims}), poolDeepTable)
	if deep.Total != 1250.00 {
		t.Fatalf("deep clean: expected 1250.00, got %v", deep.Total)
	}
	standard := Quote(selectionWith("pool", Option{Dimensions: dims}), poolStandardTable)
	if standard.Total != 750.00 {
		t.Fatalf("standard clean: expected 750.00, got %v", standard.Total)
	}
}

func TestTieredMinimumBoundary(t *testing.T) {
	// 8 m2 exactly: the minimum still applies.
	atThreshold := selectionWith("sofa", Option{Dimensions: []Dimension{{LengthCM: 200, WidthCM: 400}}})
	result := Quote(atThreshold, sofaTable)
	if result.Total != SofaMinimumPrice {
		t.Fatalf("expected minimum %v at threshold, got %v", SofaMinimumPrice, result.Total)
	}

	// 8.01 m2: area pricing takes over.
	aboveThreshold := selectionWith("sofa", Option{Dimensions: []Dimension{{LengthCM: 200.25, WidthCM: 400}}})
	result = Quote(aboveThreshold, sofaTable)
	if result.Total != 801.00 {
		t.Fatalf("expected 801.00 just above threshold, got %v", result.Total)
	}
}

func TestTieredMinimumSmallArea(t *testing.T) {
	sel := selectionWith("sofa", Option{Dimensions: []Dimension{{LengthCM: 100, WidthCM: 100}}})
	result := Quote(sel, sofaTable)
	if result.Total != SofaMinimumPrice {
		t.Fatalf("expected flat minimum for 1 m2, got %v", result.Total)
	}
}

func TestPerPieceIroning(t *testing.T) {
	sel := Selection{Options: map[string]Option{
		"shirt": {Selected: true, Quantity: 3},
		"dress": {Selected: true, Quantity: 2},
	}}
	result := Quote(sel, ironingTable)
	want := 3*IroningShirtPrice + 2*IroningDressPrice
	if result.Total != want {
		t.Fatalf("expected %v, got %v", want, result.Total)
	}
}

func TestCompositeTotalIsAdditive(t *testing.T) {
	rooms := Option{Selected: true, Dimensions: []Dimension{{LengthCM: 400, WidthCM: 500}}}
	suites := Option{Selected: true, Dimensions: []Dimension{{LengthCM: 300, WidthCM: 600}}}

	combined := Quote(Selection{Options: map[string]Option{
		"rooms":     rooms,
		"suites":    suites,
		"breakfast": {Selected: true},
	}}, guestHouseTable)

	roomsOnly := Quote(Selection{Options: map[string]Option{"rooms": rooms}}, guestHouseTable)
	suitesOnly := Quote(Selection{Options: map[string]Option{"suites": suites}}, guestHouseTable)

	want := Round2(roomsOnly.Total + suitesOnly.Total + BreakfastPrice)
	if combined.Total != want {
		t.Fatalf("composite total %v, want %v", combined.Total, want)
	}
}

func TestQuoteIgnoresUnpricedKeys(t *testing.T) {
	sel := Selection{Options: map[string]Option{
		"carpet":  {Selected: true, Dimensions: []Dimension{{LengthCM: 100, WidthCM: 100}}},
		"unknown": {Selected: true, Quantity: 5},
	}}
	result := Quote(sel, carpetTable)
	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(result.Lines))
	}
	if result.Lines[0].Key != "carpet" {
		t.Fatalf("unexpected line key %q", result.Lines[0].Key)
	}
}

func TestQuoteRounding(t *testing.T) {
	table := RateTable{"carpet": {Mode: ModePerArea, Unit: 33.33}}
	sel := selectionWith("carpet", Option{Dimensions: []Dimension{{LengthCM: 123, WidthCM: 77}}})
	result := Quote(sel, table)
	cents := result.Total * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		t.Fatalf("total %v not rounded to 2 decimals", result.Total)
	}
}

func TestValidRequiresSelection(t *testing.T) {
	if Valid(NewSelection(), carpetTable) {
		t.Fatalf("empty selection must not be valid")
	}
}

func TestValidRequiresCompleteDimensions(t *testing.T) {
	incomplete := selectionWith("carpet", Option{Dimensions: []Dimension{{LengthCM: 200, WidthCM: 0}}})
	if Valid(incomplete, carpetTable) {
		t.Fatalf("all-zero width must not be valid")
	}

	complete := selectionWith("carpet", Option{Dimensions: []Dimension{
		{LengthCM: 200, WidthCM: 0},
		{LengthCM: 150, WidthCM: 200},
	}})
	if !Valid(complete, carpetTable) {
		t.Fatalf("one complete dimension should be enough")
	}
}

func TestValidRequiresPositiveQuantity(t *testing.T) {
	sel := selectionWith("shirt", Option{Quantity: 0})
	if Valid(sel, ironingTable) {
		t.Fatalf("zero quantity must not be valid")
	}

	sel = selectionWith("shirt", Option{Quantity: 2})
	if !Valid(sel, ironingTable) {
		t.Fatalf("positive quantity should be valid")
	}
}

func TestTableForLabel(t *testing.T) {
	for _, label := range []string{
		"carpet", "sofa", "carpet_and_sofa",
		"pool_deep_clean", "pool_standard_clean",
		"guest_house", "house", "apartment", "villa", "hotel", "resort_hotel",
		"ironing",
	} {
		if _, ok := TableForLabel(label); !ok {
			t.Fatalf("missing rate table for %q", label)
		}
	}
	if _, ok := TableForLabel("nope"); ok {
		t.Fatalf("unexpected table for unknown label")
	}
}
