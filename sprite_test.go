package bezel

import "testing"

func TestSpriteBounds(t *testing.T) {
	s := NewFrame(100, 50)
	s.SetPosition(10, 20)

	got := s.Bounds()
	want := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	s.CenterOrigin()
	got = s.Bounds()
	want = Rect{X: -40, Y: -5, Width: 100, Height: 50}
	if got != want {
		t.Errorf("Bounds() after CenterOrigin = %+v, want %+v", got, want)
	}
}

func TestSpriteContains(t *testing.T) {
	s := NewFrame(100, 100)
	s.CenterOrigin()
	s.SetScale(0.5, 0.5)

	// Scaled bounds: 50x50 centered on (0, 0).
	if !s.Contains(0, 0) || !s.Contains(24, 24) {
		t.Error("sprite should contain points inside scaled bounds")
	}
	if s.Contains(26, 0) {
		t.Error("sprite should not contain point outside scaled bounds")
	}
}

func TestSpriteSetRow(t *testing.T) {
	s := NewFrame(32, 32)
	s.Rows = 4

	s.SetRow(3)
	if s.Row() != 3 {
		t.Errorf("Row() = %d, want 3", s.Row())
	}

	defer func() {
		if recover() == nil {
			t.Error("SetRow out of range should panic")
		}
	}()
	s.SetRow(4)
}

func TestSheetRow(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		rows  int
		want  int
	}{
		{"single row", 1, 1, 0},
		{"min value", -1, 5, 0},
		{"max value", 1, 5, 4},
		{"midpoint", 0, 5, 2},
		{"midpoint odd span", 0, 11, 5},
		{"quarter", -0.5, 5, 1},
		{"three quarters", 0.5, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheetRow(tt.value, tt.rows); got != tt.want {
				t.Errorf("sheetRow(%v, %d) = %d, want %d", tt.value, tt.rows, got, tt.want)
			}
		})
	}
}

func TestSpriteDrawWithoutImagePanics(t *testing.T) {
	s := NewFrame(10, 10)
	defer func() {
		if recover() == nil {
			t.Error("Draw with no image should panic")
		}
	}()
	s.Draw(nil)
}
