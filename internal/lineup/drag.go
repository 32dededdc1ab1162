package lineup

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Rect is the live pixel rectangle of the field container.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// PixelOf converts percentage coordinates to pixels relative to the rect's
// origin.
func (r Rect) PixelOf(xPct, yPct float64) Point {
	return Point{X: xPct / 100 * r.W, Y: yPct / 100 * r.H}
}

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a normalized mouse or touch event. On PointerDown,
// OnMarker and Target name the marker under the pointer, if any.
type PointerEvent struct {
	Kind     PointerKind
	Pos      Point // absolute pixels, same space as Field
	Field    Rect
	Target   int
	OnMarker bool
}

// Positioner is the collection a drag mutates.
type Positioner interface {
	Position(id int) (x, y float64, ok bool)
	Reposition(id int, x, y float64) bool
}

// EditState reports markers whose name is being edited; those cannot be
// dragged.
type EditState interface {
	Editing(id int) bool
}

// Dragger turns pointer events into player moves. It is either idle or
// dragging exactly one player.
type Dragger struct {
	target   Positioner
	edits    EditState
	active   bool
	playerID int
	offset   Point
}

// NewDragger returns an idle dragger writing into target. edits may be nil.
func NewDragger(target Positioner, edits EditState) *Dragger {
	return &Dragger{target: target, edits: edits}
}

// Active returns the dragged player id, if any.
func (d *Dragger) Active() (int, bool) {
	return d.playerID, d.active
}

// Handle dispatches ev and reports whether a player moved.
func (d *Dragger) Handle(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.OnMarker {
			d.Begin(ev.Target, ev.Pos, ev.Field)
		}
	case PointerMove:
		_, _, moved := d.Move(ev.Pos, ev.Field)
		return moved
	case PointerUp, PointerCancel:
		d.End()
	}
	return false
}

// Begin starts dragging player id from pointer position p. It is ignored
// while another drag is active, while the marker is being renamed, or when
// the player is unknown. The offset between pointer and marker centre is
// captured once so the marker does not jump under the pointer.
func (d *Dragger) Begin(id int, p Point, field Rect) bool {
	if d.active || field.Empty() {
		return false
	}
	if d.edits != nil && d.edits.Editing(id) {
		return false
	}
	x, y, ok := d.target.Position(id)
	if !ok {
		return false
	}
	center := field.PixelOf(x, y)
	d.offset = Point{
		X: (p.X - field.X) - center.X,
		Y: (p.Y - field.Y) - center.Y,
	}
	d.playerID = id
	d.active = true
	return true
}

// Move applies a pointer move to the dragged player and returns its new
// coordinates, clamped to [0, 100].
func (d *Dragger) Move(p Point, field Rect) (x, y float64, ok bool) {
	if !d.active || field.Empty() {
		return 0, 0, false
	}
	cx := (p.X - field.X) - d.offset.X
	cy := (p.Y - field.Y) - d.offset.Y
	x = ClampPercent(cx / field.W * 100)
	y = ClampPercent(cy / field.H * 100)
	if !d.target.Reposition(d.playerID, x, y) {
		// Player vanished mid-drag (match reset).
		d.End()
		return 0, 0, false
	}
	return x, y, true
}

// End returns the dragger to idle.
func (d *Dragger) End() {
	d.active = false
	d.playerID = 0
	d.offset = Point{}
}
