package bezel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default sprite tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// State is a widget's current interaction phase. Each widget is in exactly
// one state at a time; sprites and callbacks are keyed by it.
type State uint8

const (
	StateIdle    State = iota // pointer outside the collision shape
	StateHover                // pointer inside the shape, button up
	StatePressed              // primary button held after a press while hovered
)

// StateCount is the number of interaction states. Callback and sprite
// tables are indexed by State and sized by this.
const StateCount = 3

// Orientation selects a Slider's drag axis. Fixed at construction.
type Orientation uint8

const (
	Horizontal Orientation = iota // value increases rightward
	Vertical                      // value increases upward
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer button was pressed
	EventPointerUp                    // a pointer button was released
	EventPointerMove                  // the pointer moved since last frame
	EventWheel                        // the scroll wheel turned
	EventText                         // a printable character was entered
	EventKey                          // a key went down
)

// Event is a single discrete input event. Every event carries the cursor
// position at the time it was polled; the remaining fields are meaningful
// only for the matching Type.
type Event struct {
	Type   EventType
	Button MouseButton // EventPointerDown / EventPointerUp
	X, Y   float64     // cursor position when the event was polled
	WheelX float64     // EventWheel
	WheelY float64     // EventWheel; positive is scroll up
	Char   rune        // EventText
	Key    ebiten.Key  // EventKey
}

// Tuning constants for Knob input. Scroll and drag distances are scaled by
// the sensitivities and each single event's contribution is capped by the
// matching ceiling.
const (
	KnobDragSensitivity   = 0.01
	KnobScrollSensitivity = 0.1
	KnobMaxScrollDelta    = 0.1
	KnobMaxDragDelta      = 0.1
)

// Widget is the capability set shared by all four widget kinds.
type Widget interface {
	HandleEvent(Event)
	Update(pointer Vec2)
	Draw(dst *ebiten.Image)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
