package bezel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws one frame of a texture with a position, scale, origin, and
// tint. Knob and Slider use vertical sheet sprites: a single column of Rows
// equal frames stacked top to bottom, with the displayed row selected from
// the widget's value.
//
// A Sprite also satisfies [Shape]: containment is its global bounds. Button
// relies on this — its idle sprite doubles as the collision shape.
type Sprite struct {
	// Image is the source texture. Nil is allowed until Draw is called:
	// an image-less sprite still has bounds and can serve as a collision
	// shape or layout placeholder.
	Image *ebiten.Image

	// FrameW, FrameH is the size of one frame in texels.
	FrameW, FrameH float64

	// Rows is the number of vertically stacked frames. 1 means the whole
	// image is the frame.
	Rows int

	// Color tints the sprite. ColorWhite leaves the texture unmodified.
	Color Color

	X, Y             float64
	ScaleX, ScaleY   float64
	OriginX, OriginY float64

	row int
}

// NewSprite creates a single-frame sprite covering the whole image.
func NewSprite(img *ebiten.Image) *Sprite {
	if img == nil {
		panic("bezel: NewSprite requires an image")
	}
	b := img.Bounds()
	return &Sprite{
		Image:  img,
		FrameW: float64(b.Dx()),
		FrameH: float64(b.Dy()),
		Rows:   1,
		Color:  ColorWhite,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// NewSheet creates a sprite over a vertical sheet of rows equal frames.
// The image height must divide evenly by rows.
func NewSheet(img *ebiten.Image, rows int) *Sprite {
	if img == nil {
		panic("bezel: NewSheet requires an image")
	}
	if rows < 1 {
		panic("bezel: NewSheet requires at least one row")
	}
	b := img.Bounds()
	if b.Dy()%rows != 0 {
		panic("bezel: sheet height does not divide evenly into rows")
	}
	return &Sprite{
		Image:  img,
		FrameW: float64(b.Dx()),
		FrameH: float64(b.Dy() / rows),
		Rows:   rows,
		Color:  ColorWhite,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// NewFrame creates an image-less sprite with the given frame size. It has
// bounds for collision and layout but panics if drawn; attach a texture by
// setting Image before the first Draw.
func NewFrame(w, h float64) *Sprite {
	return &Sprite{
		FrameW: w,
		FrameH: h,
		Rows:   1,
		Color:  ColorWhite,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// SetPosition sets the sprite's position.
func (s *Sprite) SetPosition(x, y float64) {
	s.X = x
	s.Y = y
}

// SetScale sets the sprite's scale.
func (s *Sprite) SetScale(sx, sy float64) {
	s.ScaleX = sx
	s.ScaleY = sy
}

// CenterOrigin moves the local origin to the frame's center.
func (s *Sprite) CenterOrigin() {
	s.OriginX = s.FrameW / 2
	s.OriginY = s.FrameH / 2
}

// Bounds returns the sprite's global bounds: position offset by the scaled
// origin, frame size scaled.
func (s *Sprite) Bounds() Rect {
	return Rect{
		X:      s.X - s.OriginX*s.ScaleX,
		Y:      s.Y - s.OriginY*s.ScaleY,
		Width:  s.FrameW * s.ScaleX,
		Height: s.FrameH * s.ScaleY,
	}
}

// Contains reports whether (x, y) lies inside the sprite's global bounds.
func (s *Sprite) Contains(x, y float64) bool {
	return s.Bounds().Contains(x, y)
}

// SetRow selects the displayed frame of a sheet sprite.
// Panics if row is outside [0, Rows).
func (s *Sprite) SetRow(row int) {
	if row < 0 || row >= s.Rows {
		panic("bezel: sprite row out of range")
	}
	s.row = row
}

// Row returns the currently displayed frame index.
func (s *Sprite) Row() int {
	return s.row
}

// Draw renders the current frame to dst. Panics if no image is attached.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if s.Image == nil {
		panic("bezel: sprite has no image")
	}

	src := s.Image
	if s.Rows > 1 {
		fw := int(s.FrameW)
		fh := int(s.FrameH)
		origin := s.Image.Bounds().Min
		r := image.Rect(origin.X, origin.Y+s.row*fh, origin.X+fw, origin.Y+(s.row+1)*fh)
		src = s.Image.SubImage(r).(*ebiten.Image)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-s.OriginX, -s.OriginY)
	opts.GeoM.Scale(s.ScaleX, s.ScaleY)
	opts.GeoM.Translate(s.X, s.Y)
	opts.ColorScale.Scale(
		float32(s.Color.R*s.Color.A),
		float32(s.Color.G*s.Color.A),
		float32(s.Color.B*s.Color.A),
		float32(s.Color.A),
	)
	dst.DrawImage(src, opts)
}

// sheetRow maps a continuous value in [-1, 1] to a frame index of a sheet
// with the given row count: round((rows-1) * (value+1)/2).
func sheetRow(value float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	return int(math.Round(float64(rows-1) * (value + 1) / 2))
}
