package lineup

import "fmt"

// DefaultEdgePadding keeps default-layout markers off the field border.
const DefaultEdgePadding = 2.0

// Half identifies which half of the field a team defends.
type Half int

const (
	Bottom Half = iota // own goal at y=100, attacking upwards
	Top                // own goal at y=0, attacking downwards
)

func (h Half) String() string {
	if h == Top {
		return "top"
	}
	return "bottom"
}

// Slot is a resolved field coordinate for one position.
type Slot struct {
	Position Position
	X        float64
	Y        float64
}

// Resolve converts the zone pairs of f into absolute percentage coordinates
// for a team playing in half h. Both axes are clamped into
// [padding, 100-padding] before the top team's y axis is mirrored; x is
// never mirrored.
func Resolve(f Formation, h Half, padding float64) ([]Slot, error) {
	if padding < 0 || padding >= 50 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidPadding, padding)
	}
	slots := make([]Slot, 0, len(f.Entries))
	for _, e := range f.Entries {
		x := clamp(e.H.Percent(), padding, 100-padding)
		y := clamp(e.V.Percent(), padding, 100-padding)
		if h == Top {
			y = 100 - y
		}
		slots = append(slots, Slot{Position: e.Position, X: x, Y: y})
	}
	return slots, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPercent limits v to the field box [0, 100].
func ClampPercent(v float64) float64 {
	return clamp(v, 0, 100)
}
