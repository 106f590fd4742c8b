package bezel

import "github.com/hajimehoshi/ebiten/v2"

// LineEdit is a minimal text entry field: while the pointer hovers its box
// collision shape, printable input appends to the text and backspace erases
// the last character. There is no cursor, selection, or clipboard.
//
// The zero value is an unusable placeholder; construct with [NewLineEdit].
type LineEdit struct {
	Clickable[*Box]

	label       *Label
	initialized bool
}

var _ Widget = (*LineEdit)(nil)

// NewLineEdit creates a line edit from a box collision shape and a label.
func NewLineEdit(shape *Box, label *Label) *LineEdit {
	if shape == nil || label == nil {
		panic("bezel: NewLineEdit requires a shape and a label")
	}
	e := &LineEdit{label: label, initialized: true}
	e.Clickable = NewClickable(shape)
	return e
}

// HandleEvent delegates to the state machine, then — while hovered —
// appends the character of a text event whose code is printable (≥ 32) and
// erases the last character on a backspace key event.
func (e *LineEdit) HandleEvent(ev Event) {
	e.mustInit()
	e.Clickable.HandleEvent(ev)

	if e.State() != StateHover {
		return
	}
	switch ev.Type {
	case EventText:
		if ev.Char >= 32 {
			e.label.Append(ev.Char)
		}
	case EventKey:
		if ev.Key == ebiten.KeyBackspace {
			e.label.TrimLast()
		}
	}
}

// Update runs the state machine and re-centers the label on the widget's
// transform.
func (e *LineEdit) Update(pointer Vec2) {
	e.mustInit()
	e.Clickable.Update(pointer)

	e.label.SetPosition(e.X, e.Y)
	e.label.SetScale(e.ScaleX, e.ScaleY)
	e.label.CenterOrigin()
}

// SetString replaces the entered text.
func (e *LineEdit) SetString(s string) {
	e.mustInit()
	e.label.SetText(s)
}

// String returns the entered text.
func (e *LineEdit) String() string {
	e.mustInit()
	return e.label.Text()
}

// Label returns the text visual.
func (e *LineEdit) Label() *Label {
	e.mustInit()
	return e.label
}

// Draw renders the entered text.
func (e *LineEdit) Draw(dst *ebiten.Image) {
	e.mustInit()
	e.label.Draw(dst)
}

func (e *LineEdit) mustInit() {
	if !e.initialized {
		panic("bezel: LineEdit used before construction with NewLineEdit")
	}
}
