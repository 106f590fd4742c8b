package bezel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventQueue converts Ebitengine's polled input state into the discrete
// [Event] values widgets consume. Call Poll once per frame from your game's
// Update, before the widgets' HandleEvent/Update calls:
//
//	for _, ev := range g.queue.Poll() {
//		widget.HandleEvent(ev)
//	}
//	widget.Update(bezel.Cursor())
//
// The returned slice is reused across frames; do not retain it.
type EventQueue struct {
	buf   []Event
	chars []rune
	keys  []ebiten.Key

	prevX, prevY float64
	started      bool
}

// mouseButtons maps ebiten's mouse buttons to bezel's.
var mouseButtons = [...]struct {
	src    ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Poll reads this frame's input state and returns the resulting events:
// button press/release edges, a pointer move when the cursor changed
// position, wheel motion, entered characters, and just-pressed keys. Every
// event carries the cursor position at poll time.
func (q *EventQueue) Poll() []Event {
	q.buf = q.buf[:0]

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.src) {
			q.buf = append(q.buf, Event{Type: EventPointerDown, Button: mb.button, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(mb.src) {
			q.buf = append(q.buf, Event{Type: EventPointerUp, Button: mb.button, X: x, Y: y})
		}
	}

	if q.started && (x != q.prevX || y != q.prevY) {
		q.buf = append(q.buf, Event{Type: EventPointerMove, X: x, Y: y})
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		q.buf = append(q.buf, Event{Type: EventWheel, X: x, Y: y, WheelX: wx, WheelY: wy})
	}

	q.chars = ebiten.AppendInputChars(q.chars[:0])
	for _, r := range q.chars {
		q.buf = append(q.buf, Event{Type: EventText, X: x, Y: y, Char: r})
	}

	q.keys = inpututil.AppendJustPressedKeys(q.keys[:0])
	for _, k := range q.keys {
		q.buf = append(q.buf, Event{Type: EventKey, X: x, Y: y, Key: k})
	}

	q.prevX, q.prevY = x, y
	q.started = true
	return q.buf
}

// Cursor returns the current pointer position in screen coordinates.
// Pass the result to each widget's Update.
func Cursor() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}
}
