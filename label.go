package bezel

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label is a single line of positioned text. LineEdit owns one as its
// visual; it is also usable standalone for captions next to widgets.
type Label struct {
	// Face renders and measures the text. Nil is allowed until Draw is
	// called; measurement of a nil face reports zero.
	Face text.Face

	// Color is the fill color.
	Color Color

	X, Y             float64
	ScaleX, ScaleY   float64
	OriginX, OriginY float64

	content string
}

// NewLabel creates a label with the given content and face.
func NewLabel(content string, face text.Face) *Label {
	return &Label{
		Face:    face,
		Color:   ColorWhite,
		ScaleX:  1,
		ScaleY:  1,
		content: content,
	}
}

// SetText replaces the label's content.
func (l *Label) SetText(content string) {
	l.content = content
}

// Text returns the label's content.
func (l *Label) Text() string {
	return l.content
}

// Append appends one character to the content.
func (l *Label) Append(r rune) {
	l.content += string(r)
}

// TrimLast removes the last character of the content. No-op when empty.
func (l *Label) TrimLast() {
	if l.content == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.content)
	l.content = l.content[:len(l.content)-size]
}

// SetPosition sets the label's position.
func (l *Label) SetPosition(x, y float64) {
	l.X = x
	l.Y = y
}

// SetScale sets the label's scale.
func (l *Label) SetScale(sx, sy float64) {
	l.ScaleX = sx
	l.ScaleY = sy
}

// Measure returns the unscaled size of the rendered content.
// Zero when the face is nil or the content empty.
func (l *Label) Measure() (w, h float64) {
	if l.Face == nil || l.content == "" {
		return 0, 0
	}
	m := l.Face.Metrics()
	return text.Measure(l.content, l.Face, m.HAscent+m.HDescent+m.HLineGap)
}

// CenterOrigin moves the local origin to the measured center of the content.
func (l *Label) CenterOrigin() {
	w, h := l.Measure()
	l.OriginX = w / 2
	l.OriginY = h / 2
}

// Draw renders the label to dst. Panics if no face is attached.
func (l *Label) Draw(dst *ebiten.Image) {
	if l.Face == nil {
		panic("bezel: label has no face")
	}
	if l.content == "" {
		return
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(-l.OriginX, -l.OriginY)
	opts.GeoM.Scale(l.ScaleX, l.ScaleY)
	opts.GeoM.Translate(l.X, l.Y)
	opts.ColorScale.Scale(
		float32(l.Color.R*l.Color.A),
		float32(l.Color.G*l.Color.A),
		float32(l.Color.B*l.Color.A),
		float32(l.Color.A),
	)
	text.Draw(dst, l.content, l.Face, opts)
}
