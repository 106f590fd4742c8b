package bezel

import "github.com/hajimehoshi/ebiten/v2"

// Slider is a dragable control with a box collision shape and a continuous
// value in [-1, 1], read from the pointer's offset along one axis while
// pressed. Horizontal sliders increase rightward, vertical ones upward.
// The visual follows the same vertical-sheet convention as [Knob].
//
// A frozen Slider is a progress bar: transitions are suspended, and the
// host drives the value through SetValue (or a [ValueTween]).
//
// The zero value is an unusable placeholder; construct with [NewSlider].
type Slider struct {
	Clickable[*Box]

	sprite      *Sprite
	orientation Orientation
	value       float64
	initialized bool
}

var _ Widget = (*Slider)(nil)

// NewSlider creates a slider from a box collision shape, a sheet sprite,
// and a fixed orientation. The shape must have a positive size on both
// axes — the value formula divides by it.
func NewSlider(shape *Box, sheet *Sprite, orientation Orientation) *Slider {
	if shape == nil || sheet == nil {
		panic("bezel: NewSlider requires a shape and a sprite")
	}
	if shape.W <= 0 || shape.H <= 0 {
		panic("bezel: NewSlider requires a shape with positive size")
	}
	s := &Slider{sprite: sheet, orientation: orientation, initialized: true}
	s.Clickable = NewClickable(shape)
	return s
}

// Update runs the state machine, moves the sprite to the slider's
// transform, and — while pressed — recomputes the value from the pointer's
// offset from the slider's position along its axis, normalized by the
// shape size and the widget scale. The value is clamped to [-1, 1] and the
// sheet row reselected every call.
func (s *Slider) Update(pointer Vec2) {
	s.mustInit()
	s.Clickable.Update(pointer)

	s.sprite.SetPosition(s.X, s.Y)
	s.sprite.SetScale(s.ScaleX, s.ScaleY)
	s.sprite.CenterOrigin()

	if s.State() == StatePressed {
		switch s.orientation {
		case Horizontal:
			v := (pointer.X - s.X) / s.Shape().W
			s.value = v * 2 / s.ScaleX
		case Vertical:
			v := (s.Y - pointer.Y) / s.Shape().H
			s.value = v * 2 / s.ScaleY
		}
	}

	s.value = clamp(s.value, -1, 1)
	s.sprite.SetRow(sheetRow(s.value, s.sprite.Rows))
}

// Orientation returns the slider's drag axis.
func (s *Slider) Orientation() Orientation {
	s.mustInit()
	return s.orientation
}

// Value returns the slider's value in [-1, 1].
func (s *Slider) Value() float64 {
	s.mustInit()
	return s.value
}

// SetValue sets the slider's value directly, clamped to [-1, 1]. Works
// while frozen — this is the progress-bar path.
func (s *Slider) SetValue(v float64) {
	s.mustInit()
	s.value = clamp(v, -1, 1)
}

// Draw renders the slider's sprite.
func (s *Slider) Draw(dst *ebiten.Image) {
	s.mustInit()
	s.sprite.Draw(dst)
}

func (s *Slider) mustInit() {
	if !s.initialized {
		panic("bezel: Slider used before construction with NewSlider")
	}
}
