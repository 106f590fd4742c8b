package bezel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueTween animates a Knob or Slider value over time. Create one via
// [TweenSliderValue] or [TweenKnobValue] and call Update(dt) each frame;
// the tween writes through the widget's value setter, so it works on frozen
// widgets — the intended use is animating a frozen Slider in progress-bar
// mode.
//
// There is no global animation manager — users call Update themselves.
type ValueTween struct {
	tween *gween.Tween
	apply func(float64)
	Done  bool
}

// TweenSliderValue creates a ValueTween that animates the slider's value to
// the given target in [-1, 1] over the specified duration using the easing
// function.
func TweenSliderValue(s *Slider, to float64, duration float32, fn ease.TweenFunc) *ValueTween {
	return &ValueTween{
		tween: gween.New(float32(s.Value()), float32(clamp(to, -1, 1)), duration, fn),
		apply: s.SetValue,
	}
}

// TweenKnobValue creates a ValueTween that animates the knob's value to the
// given target in [0, 1] (Knob.SetValue's normalized range) over the
// specified duration using the easing function. Panics outside [0, 1].
func TweenKnobValue(k *Knob, to float64, duration float32, fn ease.TweenFunc) *ValueTween {
	if to < 0 || to > 1 {
		panic("bezel: TweenKnobValue requires a target in [0, 1]")
	}
	return &ValueTween{
		tween: gween.New(float32((k.Value()+1)/2), float32(to), duration, fn),
		apply: k.SetValue,
	}
}

// Update advances the tween by dt seconds and writes the current value to
// the widget. Done is set once the tween finishes; further calls are no-ops.
func (t *ValueTween) Update(dt float32) {
	if t.Done {
		return
	}
	v, finished := t.tween.Update(dt)
	t.apply(float64(v))
	t.Done = finished
}
