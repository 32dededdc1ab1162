package lineup

import "strings"

// maxNameRunes bounds typed names so labels stay readable on the field.
const maxNameRunes = 24

// NameEditor holds at most one in-progress rename.
type NameEditor struct {
	active   bool
	id       int
	original string
	buf      []rune
}

// Begin opens an edit on player id, seeded with its current name. Any
// previous edit is discarded.
func (e *NameEditor) Begin(id int, current string) {
	e.active = true
	e.id = id
	e.original = current
	e.buf = []rune(current)
}

// Editing reports whether id is being renamed.
func (e *NameEditor) Editing(id int) bool {
	return e.active && e.id == id
}

// Active returns the id under edit, if any.
func (e *NameEditor) Active() (int, bool) {
	return e.id, e.active
}

// Text returns the current buffer.
func (e *NameEditor) Text() string {
	return string(e.buf)
}

// Insert appends typed runes, ignoring control characters.
func (e *NameEditor) Insert(rs []rune) {
	if !e.active {
		return
	}
	for _, r := range rs {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if len(e.buf) >= maxNameRunes {
			return
		}
		e.buf = append(e.buf, r)
	}
}

// Backspace removes the last rune.
func (e *NameEditor) Backspace() {
	if e.active && len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

// Commit closes the edit. changed is false when the trimmed text is blank
// or equal to the original name; the caller then keeps the old name.
func (e *NameEditor) Commit() (id int, name string, changed bool) {
	if !e.active {
		return 0, "", false
	}
	id = e.id
	name = strings.TrimSpace(string(e.buf))
	changed = name != "" && name != e.original
	e.reset()
	return id, name, changed
}

// Cancel closes the edit without a result.
func (e *NameEditor) Cancel() {
	e.reset()
}

func (e *NameEditor) reset() {
	e.active = false
	e.id = 0
	e.original = ""
	e.buf = nil
}
