package forms

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func uvsApprox(a, b UVs) bool {
	return approxEqual(a.U1, b.U1) && approxEqual(a.V1, b.V1) &&
		approxEqual(a.U2, b.U2) && approxEqual(a.V2, b.V2)
}

func TestGenerateUVs(t *testing.T) {
	tests := []struct {
		name       string
		tw, th     float64
		x, y, w, h float64
		want       UVs
	}{
		{
			name: "full texture",
			tw:   100, th: 100,
			x: 0, y: 0, w: 100, h: 100,
			want: UVs{U1: 0, V1: 1, U2: 1, V2: 0},
		},
		{
			name: "top left quarter",
			tw:   100, th: 100,
			x: 0, y: 0, w: 50, h: 50,
			want: UVs{U1: 0, V1: 1, U2: 0.5, V2: 0.5},
		},
		{
			name: "bottom right quarter",
			tw:   100, th: 100,
			x: 50, y: 50, w: 50, h: 50,
			want: UVs{U1: 0.5, V1: 0.5, U2: 1, V2: 0},
		},
		{
			name: "offset region",
			tw:   200, th: 100,
			x: 20, y: 10, w: 40, h: 30,
			want: UVs{U1: 0.1, V1: 0.9, U2: 0.3, V2: 0.6},
		},
		{
			name: "empty region",
			tw:   100, th: 100,
			x: 25, y: 25, w: 0, h: 0,
			want: UVs{U1: 0.25, V1: 0.75, U2: 0.25, V2: 0.75},
		},
		{
			name: "zero texture",
			tw:   0, th: 0,
			x: 10, y: 10, w: 10, h: 10,
			want: UVs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateUVs(tt.tw, tt.th, tt.x, tt.y, tt.w, tt.h)
			if !uvsApprox(got, tt.want) {
				t.Errorf("GenerateUVs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGenerateUVsVFlip(t *testing.T) {
	// V grows downward in pixel space and upward in UV space, so a
	// non-empty region always has V1 > V2.
	uv := GenerateUVs(256, 256, 32, 64, 16, 16)
	if uv.V1 <= uv.V2 {
		t.Errorf("expected V1 > V2, got V1=%v V2=%v", uv.V1, uv.V2)
	}
	if uv.U1 >= uv.U2 {
		t.Errorf("expected U1 < U2, got U1=%v U2=%v", uv.U1, uv.U2)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 25, 40, true},
		{"top left corner", 10, 20, true},
		{"bottom right corner", 40, 60, true},
		{"left edge", 10, 30, true},
		{"outside left", 9.99, 30, false},
		{"outside right", 40.01, 30, false},
		{"outside above", 25, 19.99, false},
		{"outside below", 25, 60.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if NewRect(0, 0, 10, 10).Empty() {
		t.Error("10x10 rect should not be empty")
	}
	if !NewRect(5, 5, 0, 10).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if !NewRect(5, 5, 10, -1).Empty() {
		t.Error("negative-height rect should be empty")
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(10, 10, 100, 80)
	got := r.Inset(Padding{Top: 5, Bottom: 10, Left: 15, Right: 20})
	want := NewRect(25, 15, 65, 65)

	if got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}
}
