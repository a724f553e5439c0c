package pricing

import "testing"

func TestApplyDoesNotMutateInput(t *testing.T) {
	original := Apply(NewSelection(), Action{Type: ActionAddDimension, Key: "carpet", Length: "200", Width: "300"})
	_ = Apply(original, Action{Type: ActionSetDimension, Key: "carpet", Index: 0, Length: "999", Width: "999"})

	if original.Options["carpet"].Dimensions[0].LengthCM != 200 {
		t.Fatalf("input selection was mutated")
	}
}

func TestApplySelectDeselect(t *testing.T) {
	sel := Apply(NewSelection(), Action{Type: ActionSelect, Key: "breakfast"})
	if !sel.Options["breakfast"].Selected {
		t.Fatalf("expected breakfast selected")
	}

	sel = Apply(sel, Action{Type: ActionDeselect, Key: "breakfast"})
	if sel.Options["breakfast"].Selected {
		t.Fatalf("expected breakfast deselected")
	}
}

func TestApplyQuantityClampsNegative(t *testing.T) {
	sel := Apply(NewSelection(), Action{Type: ActionSetQuantity, Key: "shirt", Value: -3})
	if sel.Options["shirt"].Quantity != 0 {
		t.Fatalf("negative quantity should clamp to 0, got %d", sel.Options["shirt"].Quantity)
	}
}

func TestApplyDimensionLifecycle(t *testing.T) {
	sel := Apply(NewSelection(), Action{Type: ActionAddDimension, Key: "carpet", Length: "150", Width: "2,5"})
	dims := sel.Options["carpet"].Dimensions
	if len(dims) != 1 || dims[0].LengthCM != 150 || dims[0].WidthCM != 2.5 {
		t.Fatalf("unexpected dimensions after add: %+v", dims)
	}

	sel = Apply(sel, Action{Type: ActionSetDimension, Key: "carpet", Index: 0, Length: "200", Width: "400"})
	if sel.Options["carpet"].Dimensions[0].WidthCM != 400 {
		t.Fatalf("set dimension did not apply")
	}

	sel = Apply(sel, Action{Type: ActionRemoveDimension, Key: "carpet", Index: 0})
	if len(sel.Options["carpet"].Dimensions) != 0 {
		t.Fatalf("expected no dimensions after remove")
	}
}

func TestApplyOutOfRangeIndexIsNoop(t *testing.T) {
	sel := Apply(NewSelection(), Action{Type: ActionAddDimension, Key: "carpet", Length: "100", Width: "100"})
	next := Apply(sel, Action{Type: ActionSetDimension, Key: "carpet", Index: 5, Length: "1", Width: "1"})
	if next.Options["carpet"].Dimensions[0].LengthCM != 100 {
		t.Fatalf("out-of-range set should leave the selection unchanged")
	}
}

func TestApplyReset(t *testing.T) {
	sel := Apply(NewSelection(), Action{Type: ActionSelect, Key: "sofa"})
	sel = Apply(sel, Action{Type: ActionReset})
	if len(sel.Options) != 0 {
		t.Fatalf("reset should clear all options")
	}
}

func TestStateMachine(t *testing.T) {
	sel := NewSelection()
	if got := State(sel, carpetTable); got != StateBrowsing {
		t.Fatalf("expected browsing, got %q", got)
	}

	sel = Apply(sel, Action{Type: ActionSelect, Key: "carpet"})
	if got := State(sel, carpetTable); got != StateOptionSelected {
		t.Fatalf("expected option_selected, got %q", got)
	}

	sel = Apply(sel, Action{Type: ActionAddDimension, Key: "carpet", Length: "200", Width: "0"})
	if got := State(sel, carpetTable); got != StateOptionSelected {
		t.Fatalf("incomplete dimension must not be reservable, got %q", got)
	}

	sel = Apply(sel, Action{Type: ActionSetDimension, Key: "carpet", Index: 0, Length: "200", Width: "300"})
	if got := State(sel, carpetTable); got != StateReservable {
		t.Fatalf("expected reservable, got %q", got)
	}
}
