package bezel

import "github.com/hajimehoshi/ebiten/v2"

// Button is a clickable widget with one sprite per state. The idle sprite
// doubles as the collision shape, so hit-testing follows the idle frame's
// bounds. Bind a callback to [StatePressed] for click handling.
type Button struct {
	Clickable[*Sprite]

	sprites [StateCount]*Sprite
}

var _ Widget = (*Button)(nil)

// NewButton creates a button from three sprites, one per state in
// Idle, Hover, Pressed order. All three are required.
func NewButton(idle, hover, pressed *Sprite) *Button {
	if idle == nil || hover == nil || pressed == nil {
		panic("bezel: NewButton requires a sprite for every state")
	}
	b := &Button{sprites: [StateCount]*Sprite{idle, hover, pressed}}
	b.Clickable = NewClickable(idle)
	return b
}

// Update runs the interaction state machine and moves all three sprites to
// the button's transform.
func (b *Button) Update(pointer Vec2) {
	b.Clickable.Update(pointer)

	for _, sprite := range b.sprites {
		sprite.SetPosition(b.X, b.Y)
		sprite.SetScale(b.ScaleX, b.ScaleY)
		sprite.CenterOrigin()
	}
}

// Sprite returns the sprite shown in the given state.
func (b *Button) Sprite(state State) *Sprite {
	return b.sprites[state]
}

// Draw renders exactly one sprite: the one matching the current state.
func (b *Button) Draw(dst *ebiten.Image) {
	b.sprites[b.State()].Draw(dst)
}
