// Package lineup lays out two soccer teams on a normalized 0-100 field and
// tracks the live match: roster assignment, drag repositioning, renames and
// payments.
package lineup

import "fmt"

// HZone is a horizontal band of the field, ordered left to right.
type HZone int

const (
	WideLeft HZone = iota
	HalfLeft
	Center
	HalfRight
	WideRight
	hZoneCount
)

// VZone is a vertical band of the field, ordered from a team's own goal
// towards the halfway line.
type VZone int

const (
	GoalArea VZone = iota
	Defense
	Flank
	Midfield
	AttackingMidfield
	ForwardLine
	vZoneCount
)

// horizontalPercent maps each HZone to its x coordinate (percent of width).
var horizontalPercent = [hZoneCount]float64{
	WideLeft:  20,
	HalfLeft:  35,
	Center:    50,
	HalfRight: 65,
	WideRight: 80,
}

// verticalPercent maps each VZone to its y coordinate for the bottom half
// of the field. Values shrink as the zone moves away from the own goal.
var verticalPercent = [vZoneCount]float64{
	GoalArea:          96,
	Defense:           86,
	Flank:             80,
	Midfield:          71,
	AttackingMidfield: 65,
	ForwardLine:       59,
}

var hZoneNames = [hZoneCount]string{"wide-left", "half-left", "center", "half-right", "wide-right"}

var vZoneNames = [vZoneCount]string{"goal-area", "defense", "flank", "midfield", "attacking-midfield", "forward-line"}

// Percent returns the x coordinate of the zone. Panics on values outside
// the enumeration.
func (z HZone) Percent() float64 {
	if z < 0 || z >= hZoneCount {
		panic(fmt.Sprintf("lineup: horizontal zone %d out of range", int(z)))
	}
	return horizontalPercent[z]
}

// Percent returns the bottom-half y coordinate of the zone. Panics on
// values outside the enumeration.
func (z VZone) Percent() float64 {
	if z < 0 || z >= vZoneCount {
		panic(fmt.Sprintf("lineup: vertical zone %d out of range", int(z)))
	}
	return verticalPercent[z]
}

func (z HZone) String() string {
	if z < 0 || z >= hZoneCount {
		return fmt.Sprintf("HZone(%d)", int(z))
	}
	return hZoneNames[z]
}

func (z VZone) String() string {
	if z < 0 || z >= vZoneCount {
		return fmt.Sprintf("VZone(%d)", int(z))
	}
	return vZoneNames[z]
}
