package game

import (
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const noTouch ebiten.TouchID = -1

// pointerFrame is the raw pointer state sampled once per Update.
type pointerFrame struct {
	mouseDown bool
	mouse     lineup.Point
	touches   []ebiten.TouchID
	touchPos  map[ebiten.TouchID]lineup.Point
}

// pointerSample is a pointer transition before hit-testing.
type pointerSample struct {
	kind lineup.PointerKind
	pos  lineup.Point
}

// pointerSource folds mouse and touch into a single pointer. The first
// touch to go down owns the pointer until it lifts; while it does, the
// mouse is ignored.
type pointerSource struct {
	mouseDown   bool
	activeTouch ebiten.TouchID
	last        lineup.Point
}

func newPointerSource() *pointerSource {
	return &pointerSource{activeTouch: noTouch}
}

// step compares f with the previous frame and returns the transitions.
func (s *pointerSource) step(f pointerFrame) []pointerSample {
	var out []pointerSample

	if s.activeTouch != noTouch {
		pos, ok := f.touchPos[s.activeTouch]
		if !ok {
			s.activeTouch = noTouch
			return append(out, pointerSample{kind: lineup.PointerUp, pos: s.last})
		}
		if pos != s.last {
			s.last = pos
			out = append(out, pointerSample{kind: lineup.PointerMove, pos: pos})
		}
		return out
	}
	if !s.mouseDown && len(f.touches) > 0 {
		id := f.touches[0]
		s.activeTouch = id
		s.last = f.touchPos[id]
		return append(out, pointerSample{kind: lineup.PointerDown, pos: s.last})
	}

	switch {
	case f.mouseDown && !s.mouseDown:
		out = append(out, pointerSample{kind: lineup.PointerDown, pos: f.mouse})
	case f.mouseDown && f.mouse != s.last:
		out = append(out, pointerSample{kind: lineup.PointerMove, pos: f.mouse})
	case !f.mouseDown && s.mouseDown:
		out = append(out, pointerSample{kind: lineup.PointerUp, pos: f.mouse})
	}
	s.mouseDown = f.mouseDown
	s.last = f.mouse
	return out
}

// cancel drops whatever pointer is held, e.g. when the window loses focus.
func (s *pointerSource) cancel() bool {
	held := s.mouseDown || s.activeTouch != noTouch
	s.mouseDown = false
	s.activeTouch = noTouch
	return held
}

// readPointerFrame samples ebiten's mouse and touch state.
func readPointerFrame() pointerFrame {
	mx, my := ebiten.CursorPosition()
	f := pointerFrame{
		mouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		mouse:     lineup.Point{X: float64(mx), Y: float64(my)},
		touches:   ebiten.AppendTouchIDs(nil),
	}
	if len(f.touches) > 0 {
		f.touchPos = make(map[ebiten.TouchID]lineup.Point, len(f.touches))
		for _, id := range f.touches {
			tx, ty := ebiten.TouchPosition(id)
			f.touchPos[id] = lineup.Point{X: float64(tx), Y: float64(ty)}
		}
	}
	return f
}

// rightClick reports a secondary click this frame and where it landed.
func rightClick() (lineup.Point, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return lineup.Point{}, false
	}
	mx, my := ebiten.CursorPosition()
	return lineup.Point{X: float64(mx), Y: float64(my)}, true
}

// action is a keyboard command outside name editing.
type action int

const (
	actionNone action = iota
	actionExportPNG
	actionExportJSON
	actionCopyText
	actionSave
	actionReset
	actionToggleHelp
)

var actionKeys = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyE, actionExportPNG},
	{ebiten.KeyJ, actionExportJSON},
	{ebiten.KeyC, actionCopyText},
	{ebiten.KeyS, actionSave},
	{ebiten.KeyR, actionReset},
	{ebiten.KeyH, actionToggleHelp},
}

// pressedActions returns the commands whose key went down this frame.
func pressedActions() []action {
	var out []action
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, k.act)
		}
	}
	return out
}

// editKeys is the key state relevant to an open name edit.
type editKeys struct {
	runes     []rune
	backspace bool
	commit    bool
	cancel    bool
	paste     bool
}

func readEditKeys(buf []rune) editKeys {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return editKeys{
		runes:     ebiten.AppendInputChars(buf[:0]),
		backspace: repeating(ebiten.KeyBackspace),
		commit:    inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		cancel:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		paste:     ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV),
	}
}

// repeating fires on press and then every few frames while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 30 && d%4 == 0)
}
