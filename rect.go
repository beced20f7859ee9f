package forms

// Rect represents a pixel-space rectangle with its origin at the top-left.
// W and H are the width and height in pixels.
type Rect struct {
	X, Y, W, H float64
}

// NewRect is a convenience function to create a Rect.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point (x, y) lies within the rectangle.
// Points on the edges are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns the rectangle shrunk by the given side widths.
// Layouts use this to step from a control's bounds to its content area.
func (r Rect) Inset(s SideRegions) Rect {
	return Rect{
		X: r.X + s.Left,
		Y: r.Y + s.Top,
		W: r.W - s.Left - s.Right,
		H: r.H - s.Top - s.Bottom,
	}
}

// UVs represents the texture coordinates of a rectangular image within an
// atlas. U1/V1 address the top-left pixel corner and U2/V2 the bottom-right,
// with V measured from the bottom of the texture (GL convention), so
// V1 >= V2 for any non-empty region.
type UVs struct {
	U1, V1, U2, V2 float64
}

// GenerateUVs maps the pixel region (x, y, w, h) of a texture sized tw by th
// to UV coordinates. The pixel origin is top-left; the UV origin is
// bottom-left, so V is flipped.
func GenerateUVs(tw, th, x, y, w, h float64) UVs {
	if tw <= 0 || th <= 0 {
		return UVs{}
	}
	u1 := x / tw
	v1 := 1 - y/th
	return UVs{
		U1: u1,
		V1: v1,
		U2: u1 + w/tw,
		V2: v1 - h/th,
	}
}

// SideRegions holds the width or height of each side of a rectangular frame.
// It describes margins, borders, and padding.
type SideRegions struct {
	Top, Bottom, Left, Right float64
}

// Margin is the space a layout keeps between adjacent controls.
type Margin = SideRegions

// Border is the width of each border side of a skin.
type Border = SideRegions

// Padding is the space between a control's border and its content.
type Padding = SideRegions
