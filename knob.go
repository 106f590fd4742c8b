package bezel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Knob is a rotary control with a circular collision shape and a continuous
// value in [-1, 1]. Scroll the wheel while hovering, or press and drag
// vertically — dragging upward increases the value. The visual is a
// vertical sheet sprite; the displayed row tracks the value.
type Knob struct {
	Clickable[*Circle]

	sprite       *Sprite
	value        float64
	prevPointerY float64
}

var _ Widget = (*Knob)(nil)

// NewKnob creates a knob from a circular collision shape and a sheet sprite.
func NewKnob(shape *Circle, sheet *Sprite) *Knob {
	if shape == nil || sheet == nil {
		panic("bezel: NewKnob requires a shape and a sprite")
	}
	k := &Knob{sprite: sheet}
	k.Clickable = NewClickable(shape)
	return k
}

// HandleEvent delegates to the state machine, then applies value input:
// a wheel event while hovered nudges the value by the scaled scroll delta;
// while pressed, any event except the press that started the interaction
// nudges it by the scaled vertical drag distance. Excluding the initiating
// press avoids a value jump from the stale previous-frame pointer position.
// Each single event's contribution is capped, and the value is re-clamped
// to [-1, 1] afterwards.
func (k *Knob) HandleEvent(ev Event) {
	k.Clickable.HandleEvent(ev)

	if k.State() == StateHover && ev.Type == EventWheel {
		k.value += math.Min(ev.WheelY*KnobScrollSensitivity, KnobMaxScrollDelta)
	}

	if k.State() == StatePressed && ev.Type != EventPointerDown {
		k.value += math.Min((k.prevPointerY-ev.Y)*KnobDragSensitivity, KnobMaxDragDelta)
	}

	k.value = clamp(k.value, -1, 1)
}

// Update runs the state machine, selects the sheet row for the current
// value, moves the sprite to the knob's transform, and records the pointer
// Y for the next frame's drag delta.
func (k *Knob) Update(pointer Vec2) {
	k.Clickable.Update(pointer)

	k.value = clamp(k.value, -1, 1)
	k.sprite.SetRow(sheetRow(k.value, k.sprite.Rows))
	k.sprite.SetPosition(k.X, k.Y)
	k.sprite.SetScale(k.ScaleX, k.ScaleY)
	k.sprite.CenterOrigin()
	k.prevPointerY = pointer.Y
}

// Value returns the knob's value in [-1, 1].
func (k *Knob) Value() float64 {
	return k.value
}

// SetValue sets the value from a normalized position in [0, 1], remapped to
// the internal [-1, 1] range: 0 maps to -1, 0.5 to 0, 1 to +1.
// Panics outside [0, 1].
func (k *Knob) SetValue(v float64) {
	if v < 0 || v > 1 {
		panic("bezel: Knob.SetValue requires a value in [0, 1]")
	}
	k.value = (v - 0.5) * 2
}

// Draw renders the knob's sprite.
func (k *Knob) Draw(dst *ebiten.Image) {
	k.sprite.Draw(dst)
}
