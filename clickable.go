package bezel

// Clickable is the interaction core every widget composes. It is invisible:
// it owns only a collision shape, the current [State], a callback per state,
// and a freeze flag. Widgets embed it and layer their own value and visual
// logic on top.
//
// The state graph is Idle ↔ Hover ↔ Pressed. Update moves between Idle and
// Hover from per-frame hit-testing; HandleEvent moves between Hover and
// Pressed on primary-button press/release. There is no Idle ↔ Pressed edge.
// Each transition writes the state field first, then fires the callback
// bound to the new state, exactly once.
type Clickable[S Shape] struct {
	// X, Y, ScaleX, ScaleY form the widget's transform. Update pushes them
	// onto the collision shape (and subclasses push them onto visuals).
	X, Y           float64
	ScaleX, ScaleY float64

	shape     S
	state     State
	callbacks [StateCount]func()
	frozen    bool
}

// NewClickable creates an interaction core around the given collision shape.
// The result is typically embedded in a widget struct, not used directly.
// Every state starts with a no-op callback bound.
func NewClickable[S Shape](shape S) Clickable[S] {
	c := Clickable[S]{shape: shape, ScaleX: 1, ScaleY: 1}
	for i := range c.callbacks {
		c.callbacks[i] = func() {}
	}
	return c
}

// Bind replaces the callback fired when the widget enters the given state.
// Binding nil restores the no-op default.
func (c *Clickable[S]) Bind(state State, fn func()) {
	if fn == nil {
		fn = func() {}
	}
	c.callbacks[state] = fn
}

// Freeze pins the widget in the given state and suspends state transitions:
// HandleEvent and Update become transition-inert until Unfreeze. Value
// setters on the concrete widgets keep working, which is how a Slider
// becomes a progress bar.
func (c *Clickable[S]) Freeze(state State) {
	c.state = state
	c.frozen = true
}

// Unfreeze resumes state transitions from whatever state was last set.
func (c *Clickable[S]) Unfreeze() {
	c.frozen = false
}

// HandleEvent feeds one input event to the state machine. A primary-button
// press while hovered enters Pressed; a primary-button release while pressed
// returns to Hover. A press while Idle or already Pressed, and a release
// while not Pressed, are ignored. No-op while frozen.
func (c *Clickable[S]) HandleEvent(ev Event) {
	if c.frozen {
		return
	}

	switch ev.Type {
	case EventPointerDown:
		if c.state == StateHover && ev.Button == MouseButtonLeft {
			c.state = StatePressed
			c.call()
		}
	case EventPointerUp:
		if c.state == StatePressed && ev.Button == MouseButtonLeft {
			c.state = StateHover
			c.call()
		}
	}
}

// Update repositions the collision shape to the widget's transform, then
// hit-tests the pointer: Idle becomes Hover when the pointer enters the
// shape, Hover becomes Idle when it leaves. Pressed is only exited by
// HandleEvent's release path, so dragging outside the shape does not drop
// the interaction. The shape keeps tracking the transform while frozen;
// only the transitions are suspended.
func (c *Clickable[S]) Update(pointer Vec2) {
	c.shape.SetPosition(c.X, c.Y)
	c.shape.SetScale(c.ScaleX, c.ScaleY)
	c.shape.CenterOrigin()

	if c.frozen {
		return
	}

	inside := c.shape.Contains(pointer.X, pointer.Y)
	switch {
	case c.state == StateIdle && inside:
		c.state = StateHover
		c.call()
	case c.state == StateHover && !inside:
		c.state = StateIdle
		c.call()
	}
}

// SetPosition sets the widget's position.
func (c *Clickable[S]) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
}

// SetScale sets the widget's scale.
func (c *Clickable[S]) SetScale(sx, sy float64) {
	c.ScaleX = sx
	c.ScaleY = sy
}

// Position returns the widget's position.
func (c *Clickable[S]) Position() Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}

// Scale returns the widget's scale.
func (c *Clickable[S]) Scale() Vec2 {
	return Vec2{X: c.ScaleX, Y: c.ScaleY}
}

// Shape returns the collision shape.
func (c *Clickable[S]) Shape() S {
	return c.shape
}

// State returns the current interaction state.
func (c *Clickable[S]) State() State {
	return c.state
}

// Callback returns the callback bound to the given state. Never nil.
func (c *Clickable[S]) Callback(state State) func() {
	return c.callbacks[state]
}

// Frozen reports whether state transitions are suspended.
func (c *Clickable[S]) Frozen() bool {
	return c.frozen
}

// call fires the callback for the current state.
func (c *Clickable[S]) call() {
	c.callbacks[c.state]()
}
