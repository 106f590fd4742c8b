package bezel

import (
	"math"
	"testing"
)

func newTestKnob() *Knob {
	sheet := NewFrame(32, 32)
	sheet.Rows = 11
	return NewKnob(NewCircle(50), sheet)
}

func wheel(delta float64) Event {
	return Event{Type: EventWheel, WheelY: delta}
}

func moveTo(y float64) Event {
	return Event{Type: EventPointerMove, Y: y}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestKnobScrollWhileHover(t *testing.T) {
	k := newTestKnob()
	k.Update(inside) // -> Hover

	k.HandleEvent(wheel(1))
	if !approx(k.Value(), KnobScrollSensitivity) {
		t.Errorf("value = %v after one wheel tick, want %v", k.Value(), KnobScrollSensitivity)
	}
}

func TestKnobScrollIgnoredWhileIdle(t *testing.T) {
	k := newTestKnob()
	k.Update(outside)

	k.HandleEvent(wheel(1))
	if k.Value() != 0 {
		t.Errorf("value = %v after wheel while idle, want 0", k.Value())
	}
}

func TestKnobScrollDeltaCapped(t *testing.T) {
	k := newTestKnob()
	k.Update(inside)

	k.HandleEvent(wheel(100))
	if !approx(k.Value(), KnobMaxScrollDelta) {
		t.Errorf("value = %v after huge wheel delta, want cap %v", k.Value(), KnobMaxScrollDelta)
	}
}

func TestKnobDragUpwardIncreases(t *testing.T) {
	k := newTestKnob()
	k.Update(inside) // -> Hover, prevPointerY = 0

	// The initiating press applies no delta.
	k.HandleEvent(press())
	if k.Value() != 0 {
		t.Fatalf("value = %v after initiating press, want 0", k.Value())
	}
	k.Update(inside) // records prevPointerY = 0

	k.HandleEvent(moveTo(-10)) // pointer moved up 10px
	want := 10 * KnobDragSensitivity
	if !approx(k.Value(), want) {
		t.Errorf("value = %v after upward drag, want %v", k.Value(), want)
	}
}

func TestKnobDragDownwardDecreases(t *testing.T) {
	k := newTestKnob()
	k.Update(inside)
	k.HandleEvent(press())
	k.Update(inside)

	k.HandleEvent(moveTo(10))
	want := -10 * KnobDragSensitivity
	if !approx(k.Value(), want) {
		t.Errorf("value = %v after downward drag, want %v", k.Value(), want)
	}
}

func TestKnobDragDeltaCapped(t *testing.T) {
	k := newTestKnob()
	k.Update(inside)
	k.HandleEvent(press())
	k.Update(inside)

	k.HandleEvent(moveTo(-1000))
	if !approx(k.Value(), KnobMaxDragDelta) {
		t.Errorf("value = %v after huge drag, want cap %v", k.Value(), KnobMaxDragDelta)
	}
}

func TestKnobDragIgnoredWhileHover(t *testing.T) {
	k := newTestKnob()
	k.Update(inside) // Hover, not Pressed

	k.HandleEvent(moveTo(-10))
	if k.Value() != 0 {
		t.Errorf("value = %v after move without press, want 0", k.Value())
	}
}

func TestKnobValueClamped(t *testing.T) {
	k := newTestKnob()
	k.Update(inside)

	for i := 0; i < 50; i++ {
		k.HandleEvent(wheel(1))
	}
	if k.Value() != 1 {
		t.Errorf("value = %v after many scroll-ups, want 1", k.Value())
	}

	k.HandleEvent(wheel(-100)) // negative deltas are not capped, only clamped
	if k.Value() != -1 {
		t.Errorf("value = %v after huge scroll-down, want -1", k.Value())
	}
}

func TestKnobSetValueMapping(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, -1},
		{0.25, -0.5},
		{0.5, 0},
		{0.75, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		k := newTestKnob()
		k.SetValue(tt.in)
		if !approx(k.Value(), tt.want) {
			t.Errorf("SetValue(%v): value = %v, want %v", tt.in, k.Value(), tt.want)
		}
	}
}

func TestKnobSetValueOutOfRangePanics(t *testing.T) {
	for _, v := range []float64{-0.01, 1.01, 2, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetValue(%v) should panic", v)
				}
			}()
			newTestKnob().SetValue(v)
		}()
	}
}

func TestKnobSheetRowTracksValue(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},   // value -1 -> first frame
		{0.5, 5}, // value 0 -> middle frame
		{1, 10},  // value +1 -> last frame
	}
	for _, tt := range tests {
		k := newTestKnob()
		k.SetValue(tt.in)
		k.Update(outside)
		if k.sprite.Row() != tt.want {
			t.Errorf("SetValue(%v): row = %d, want %d", tt.in, k.sprite.Row(), tt.want)
		}
	}
}

func TestKnobSpriteTracksTransform(t *testing.T) {
	k := newTestKnob()
	k.SetPosition(300, 200)
	k.SetScale(2, 2)
	k.Update(outside)

	if k.sprite.X != 300 || k.sprite.Y != 200 {
		t.Errorf("sprite position = (%v, %v), want (300, 200)", k.sprite.X, k.sprite.Y)
	}
	if k.sprite.OriginX != 16 || k.sprite.OriginY != 16 {
		t.Errorf("sprite origin = (%v, %v), want (16, 16)", k.sprite.OriginX, k.sprite.OriginY)
	}
}
