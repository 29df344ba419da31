package geometry

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{}, true},
		{Rect{Width: 10}, true},
		{Rect{Width: 10, Height: -1}, true},
		{Rect{Width: 10, Height: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 10, Y: 10, Width: 100, Height: 20}
	tests := []struct {
		inner Rect
		want  bool
	}{
		{Rect{X: 10, Y: 10, Width: 100, Height: 20}, true},
		{Rect{X: 50, Y: 15, Width: 10, Height: 5}, true},
		{Rect{X: 9, Y: 10, Width: 10, Height: 5}, false},
		{Rect{X: 105, Y: 10, Width: 10, Height: 5}, false},
		{Rect{}, true}, // empty rects are contained anywhere
	}
	for _, tt := range tests {
		if got := outer.Contains(tt.inner); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
		}
	}
}
