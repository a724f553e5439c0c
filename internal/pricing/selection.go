package pricing

// Selection is the immutable value describing one booking attempt. Apply
// returns a new Selection for every action so page state transitions stay
// unit-testable without any UI.

type Option struct {
	Selected   bool        `json:"selected" bson:"selected"`
	Quantity   int         `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Dimensions []Dimension `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
}

type Selection struct {
	Options map[string]Option `json:"options" bson:"options"`
}

func NewSelection() Selection {
	return Selection{Options: map[string]Option{}}
}

type ActionType string

const (
	ActionSelect          ActionType = "select"
	ActionDeselect        ActionType = "deselect"
	ActionSetQuantity     ActionType = "set_quantity"
	ActionAddDimension    ActionType = "add_dimension"
	ActionSetDimension    ActionType = "set_dimension"
	ActionRemoveDimension ActionType = "remove_dimension"
	ActionReset           ActionType = "reset"
)

type Action struct {
	Type  ActionType
	Key   string
	Value int
	Index int
	// Raw user input for dimension fields, sanitized by ParseDecimal.
	Length string
	Width  string
}

// Apply transitions the selection. The input value is never mutated.
func Apply(sel Selection, action Action) Selection {
	if action.Type == ActionReset {
		return NewSelection()
	}

	next := clone(sel)
	opt := next.Options[action.Key]

	switch action.Type {
	case ActionSelect:
		opt.Selected = true
	case ActionDeselect:
		opt = Option{}
	case ActionSetQuantity:
		opt.Selected = true
		if action.Value < 0 {
			opt.Quantity = 0
		} else {
			opt.Quantity = action.Value
		}
	case ActionAddDimension:
		opt.Selected = true
		opt.Dimensions = append(opt.Dimensions, Dimension{
			LengthCM: ParseDecimal(action.Length),
			WidthCM:  ParseDecimal(action.Width),
		})
	case ActionSetDimension:
		if action.Index < 0 || action.Index >= len(opt.Dimensions) {
			return sel
		}
		opt.Dimensions[action.Index] = Dimension{
			LengthCM: ParseDecimal(action.Length),
			WidthCM:  ParseDecimal(action.Width),
		}
	case ActionRemoveDimension:
		if action.Index < 0 || action.Index >= len(opt.Dimensions) {
			return sel
		}
		opt.Dimensions = append(opt.Dimensions[:action.Index], opt.Dimensions[action.Index+1:]...)
	default:
		return sel
	}

	next.Options[action.Key] = opt
	return next
}

func clone(sel Selection) Selection {
	next := Selection{Options: make(map[string]Option, len(sel.Options))}
	for key, opt := range sel.Options {
		copied := opt
		if len(opt.Dimensions) > 0 {
			copied.Dimensions = make([]Dimension, len(opt.Dimensions))
			copy(copied.Dimensions, opt.Dimensions)
		}
		next.Options[key] = copied
	}
	return next
}
