package lineup

import (
	"fmt"
	"strings"
)

// Position is a named role on the field.
type Position int

const (
	Goalkeeper Position = iota
	CenterBack
	LeftBack
	RightBack
	Midfielder  // single midfielder, 6-a-side only
	Midfielder1 // left of the midfield pair, 7-a-side only
	Midfielder2 // right of the midfield pair, 7-a-side only
	Forward
	positionCount
)

var positionLabels = [positionCount]string{
	Goalkeeper:  "Portero",
	CenterBack:  "Defensa Central",
	LeftBack:    "Lateral Izquierdo",
	RightBack:   "Lateral Derecho",
	Midfielder:  "Mediocampista",
	Midfielder1: "Mediocampista 1",
	Midfielder2: "Mediocampista 2",
	Forward:     "Delantero",
}

// String returns the display label used on markers and exports.
func (p Position) String() string {
	if p < 0 || p >= positionCount {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionLabels[p]
}

// MarshalText encodes the position as its display label.
func (p Position) MarshalText() ([]byte, error) {
	if p < 0 || p >= positionCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return []byte(positionLabels[p]), nil
}

// UnmarshalText decodes a display label.
func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePosition resolves a display label (case-insensitive) to a Position.
func ParsePosition(label string) (Position, error) {
	l := strings.TrimSpace(label)
	for i, name := range positionLabels {
		if strings.EqualFold(name, l) {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, label)
}

var (
	positions6 = []Position{Goalkeeper, CenterBack, LeftBack, RightBack, Midfielder, Forward}
	positions7 = []Position{Goalkeeper, CenterBack, LeftBack, RightBack, Midfielder1, Midfielder2, Forward}
)

// PositionsFor returns the fixed role set for a team size, in formation order.
func PositionsFor(size int) ([]Position, error) {
	switch size {
	case 6:
		return append([]Position(nil), positions6...), nil
	case 7:
		return append([]Position(nil), positions7...), nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrInvalidTeamSize, size)
}

// FormationType identifies the tactical shape of a team.
type FormationType int

const (
	FormationBalanced  FormationType = iota // "Equilibrada": two lines behind a lone forward
	FormationDefensive                      // "Defensiva": full-backs tucked in, forward drops
	FormationAttacking                      // "Ofensiva": back line pushed up to midfield
	formationTypeCount
)

// DefaultFormation is used when a setup does not name one.
const DefaultFormation = FormationBalanced

var formationNames = [formationTypeCount]string{
	FormationBalanced:  "Equilibrada",
	FormationDefensive: "Defensiva",
	FormationAttacking: "Ofensiva",
}

func (ft FormationType) String() string {
	if ft < 0 || ft >= formationTypeCount {
		return fmt.Sprintf("FormationType(%d)", int(ft))
	}
	return formationNames[ft]
}

// FormationTypes lists every available shape.
func FormationTypes() []FormationType {
	out := make([]FormationType, 0, formationTypeCount)
	for ft := FormationType(0); ft < formationTypeCount; ft++ {
		out = append(out, ft)
	}
	return out
}

// ParseFormation resolves a formation name. An empty name yields the default.
func ParseFormation(name string) (FormationType, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return DefaultFormation, nil
	}
	for i, fn := range formationNames {
		if strings.EqualFold(fn, n) {
			return FormationType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
}

// FormationEntry assigns one position to a zone pair.
type FormationEntry struct {
	Position Position
	H        HZone
	V        VZone
}

// Formation is the ordered list of entries for one team, covering every
// position of its size exactly once.
type Formation struct {
	Type    FormationType
	Size    int
	Entries []FormationEntry
}

// FormationFor returns the layout of shape ft for a team of size players.
func FormationFor(size int, ft FormationType) (Formation, error) {
	if size != 6 && size != 7 {
		return Formation{}, fmt.Errorf("%w: got %d", ErrInvalidTeamSize, size)
	}
	if ft < 0 || ft >= formationTypeCount {
		return Formation{}, fmt.Errorf("%w: %d", ErrUnknownFormation, int(ft))
	}
	f := Formation{Type: ft, Size: size, Entries: formationEntries(size, ft)}
	return f, nil
}

func formationEntries(size int, ft FormationType) []FormationEntry {
	if size == 6 {
		switch ft {
		case FormationDefensive:
			return []FormationEntry{
				{Goalkeeper, Center, GoalArea},
				{CenterBack, Center, Defense},
				{LeftBack, HalfLeft, Defense},
				{RightBack, HalfRight, Defense},
				{Midfielder, Center, Flank},
				{Forward, Center, AttackingMidfield},
			}
		case FormationAttacking:
			return []FormationEntry{
				{Goalkeeper, Center, GoalArea},
				{CenterBack, Center, Flank},
				{LeftBack, WideLeft, Midfield},
				{RightBack, WideRight, Midfield},
				{Midfielder, Center, AttackingMidfield},
				{Forward, Center, ForwardLine},
			}
		default:
			return []FormationEntry{
				{Goalkeeper, Center, GoalArea},
				{CenterBack, Center, Defense},
				{LeftBack, WideLeft, Flank},
				{RightBack, WideRight, Flank},
				{Midfielder, Center, Midfield},
				{Forward, Center, ForwardLine},
			}
		}
	}

	switch ft {
	case FormationDefensive:
		return []FormationEntry{
			{Goalkeeper, Center, GoalArea},
			{CenterBack, Center, Defense},
			{LeftBack, WideLeft, Defense},
			{RightBack, WideRight, Defense},
			{Midfielder1, HalfLeft, Midfield},
			{Midfielder2, HalfRight, Midfield},
			{Forward, Center, AttackingMidfield},
		}
	case FormationAttacking:
		return []FormationEntry{
			{Goalkeeper, Center, GoalArea},
			{CenterBack, Center, Flank},
			{LeftBack, WideLeft, Midfield},
			{RightBack, WideRight, Midfield},
			{Midfielder1, HalfLeft, AttackingMidfield},
			{Midfielder2, HalfRight, AttackingMidfield},
			{Forward, Center, ForwardLine},
		}
	default:
		return []FormationEntry{
			{Goalkeeper, Center, GoalArea},
			{CenterBack, Center, Defense},
			{LeftBack, WideLeft, Flank},
			{RightBack, WideRight, Flank},
			{Midfielder1, HalfLeft, Midfield},
			{Midfielder2, HalfRight, Midfield},
			{Forward, Center, ForwardLine},
		}
	}
}
