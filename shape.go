package bezel

import "math"

// Shape is the collision-shape capability required by [Clickable]. A shape
// owns a local origin, a position, and a scale; Update repositions it every
// frame so containment tests track the widget's transform.
type Shape interface {
	SetPosition(x, y float64)
	SetScale(sx, sy float64)
	CenterOrigin()
	Contains(x, y float64) bool
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// --- Circle ---

// Circle is a circular collision shape. Containment is tested against the
// distance from the circle's position to the point, not against bounding-box
// corners — a box test would over-include at the corners. The radius is not
// scaled by SetScale; size the circle to the rendered knob.
type Circle struct {
	Radius           float64
	X, Y             float64
	ScaleX, ScaleY   float64
	OriginX, OriginY float64
}

// NewCircle creates a circle shape with the given radius.
func NewCircle(radius float64) *Circle {
	return &Circle{Radius: radius, ScaleX: 1, ScaleY: 1}
}

// SetPosition sets the circle's position.
func (c *Circle) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
}

// SetScale sets the circle's scale.
func (c *Circle) SetScale(sx, sy float64) {
	c.ScaleX = sx
	c.ScaleY = sy
}

// CenterOrigin moves the local origin to the circle's center, so the
// position names the center rather than the top-left of the enclosing box.
func (c *Circle) CenterOrigin() {
	c.OriginX = c.Radius
	c.OriginY = c.Radius
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c *Circle) Contains(x, y float64) bool {
	return Distance(Vec2{X: x, Y: y}, Vec2{X: c.X, Y: c.Y}) < c.Radius
}

// --- Box ---

// Box is an axis-aligned rectangular collision shape.
type Box struct {
	W, H             float64
	X, Y             float64
	ScaleX, ScaleY   float64
	OriginX, OriginY float64
}

// NewBox creates a box shape with the given size.
func NewBox(w, h float64) *Box {
	return &Box{W: w, H: h, ScaleX: 1, ScaleY: 1}
}

// SetPosition sets the box's position.
func (b *Box) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// SetScale sets the box's scale.
func (b *Box) SetScale(sx, sy float64) {
	b.ScaleX = sx
	b.ScaleY = sy
}

// CenterOrigin moves the local origin to the box's center.
func (b *Box) CenterOrigin() {
	b.OriginX = b.W / 2
	b.OriginY = b.H / 2
}

// Bounds returns the box's global bounds: position offset by the scaled
// origin, size scaled.
func (b *Box) Bounds() Rect {
	return Rect{
		X:      b.X - b.OriginX*b.ScaleX,
		Y:      b.Y - b.OriginY*b.ScaleY,
		Width:  b.W * b.ScaleX,
		Height: b.H * b.ScaleY,
	}
}

// Contains reports whether (x, y) lies inside the box's global bounds.
func (b *Box) Contains(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}
