// Package bezel is a small image-based widget kit for [Ebitengine].
//
// Bezel provides four interactive widgets — [Button], [Knob], [Slider], and
// [LineEdit] — that render caller-supplied sprites and fire callbacks on
// interaction state changes. All four compose the same [Clickable] core: a
// tiny state machine that hit-tests the pointer against a collision shape,
// tracks Idle/Hover/Pressed transitions, and invokes the callback bound to
// each state.
//
// # Quick start
//
// Build widgets from your own textures, then drive them from an
// [ebiten.Game]:
//
//	btn := bezel.NewButton(
//		bezel.NewSprite(idleImg),
//		bezel.NewSprite(hoverImg),
//		bezel.NewSprite(pressedImg),
//	)
//	btn.SetPosition(320, 240)
//	btn.Bind(bezel.StatePressed, func() { fmt.Println("clicked") })
//
//	func (g *Game) Update() error {
//		for _, ev := range g.queue.Poll() {
//			btn.HandleEvent(ev)
//		}
//		btn.Update(bezel.Cursor())
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		btn.Draw(screen)
//	}
//
// The ordering contract is HandleEvent for each queued event, then one
// Update per frame. [EventQueue.Poll] produces the events from Ebitengine's
// polled input state; tests (and custom hosts) may construct [Event] values
// directly instead.
//
// # Frozen widgets
//
// [Clickable.Freeze] pins a widget in one state and suspends transitions
// while visual tracking continues. A frozen [Slider] doubles as a progress
// bar: drive it externally with [Slider.SetValue], or animate it with
// [TweenSliderValue] (via [gween]).
//
// Bezel is single-threaded and callback-driven. Contract violations (using
// a zero-value Slider, drawing a sprite with no image, a Knob value outside
// [0, 1]) panic immediately; valid input never fails.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bezel
