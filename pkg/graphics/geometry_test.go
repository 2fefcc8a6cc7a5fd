package graphics

import "testing"

func TestPointString(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Pt(0, 0), "(0, 0)"},
		{Pt(3, 66.5), "(3, 66.5)"},
		{Pt(-2, 10), "(-2, 10)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(10, 10, 20, 5)
	if !r.Contains(Pt(10, 10)) {
		t.Error("expected top-left corner to be contained")
	}
	if r.Contains(Pt(30, 12)) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(Pt(15, 15)) {
		t.Error("bottom edge is exclusive")
	}
}

func TestRectUnion(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(5, 20, 10, 10)
	got := a.Union(b)
	want := Rect{Min: Pt(0, 0), Max: Pt(15, 30)}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %d, want 3", got)
	}
	if got := Clamp(-1.5, 0, 3); got != 0 {
		t.Errorf("Clamp(-1.5, 0, 3) = %v, want 0", got)
	}
	if got := Clamp(1.25, 0, 3); got != 1.25 {
		t.Errorf("Clamp(1.25, 0, 3) = %v, want 1.25", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 0.0, 0.5); got != 1 {
		t.Errorf("Lerp(2, 0, 0.5) = %v, want 1", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10, 20, 1) = %v, want 20", got)
	}
}
