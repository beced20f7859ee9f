package forms

// SkinArea identifies one of the nine sub-regions of a skin. The corners
// are drawn at their native size; the edges stretch along one axis and the
// center stretches along both.
type SkinArea int

const (
	SkinTopLeft SkinArea = iota
	SkinTop
	SkinTopRight
	SkinLeft
	SkinCenter
	SkinRight
	SkinBottomLeft
	SkinBottom
	SkinBottomRight

	skinAreaCount
)

// String returns the area name as it appears in theme files.
func (a SkinArea) String() string {
	switch a {
	case SkinTopLeft:
		return "topLeft"
	case SkinTop:
		return "top"
	case SkinTopRight:
		return "topRight"
	case SkinLeft:
		return "left"
	case SkinCenter:
		return "center"
	case SkinRight:
		return "right"
	case SkinBottomLeft:
		return "bottomLeft"
	case SkinBottom:
		return "bottom"
	case SkinBottomRight:
		return "bottomRight"
	default:
		return "unknown"
	}
}

// Skin defines the border and background of a control as nine sprites cut
// from a single atlas region. The border side widths determine where the
// region is sliced; the remainder forms the stretchable center.
type Skin struct {
	id     string
	border Border
	region Rect
	color  RGBA
	uvs    [skinAreaCount]UVs
	tw, th float64
}

// newSkin creates a skin and computes the nine UV quads.
func newSkin(id string, tw, th float64, region Rect, border Border, color RGBA) *Skin {
	s := &Skin{
		id:     id,
		border: border,
		color:  color,
		tw:     tw,
		th:     th,
	}
	s.SetRegion(region)
	return s
}

// ID returns this skin's ID.
func (s *Skin) ID() string { return s.id }

// Border returns this skin's border side widths.
func (s *Skin) Border() Border { return s.border }

// Region returns the total skin region within the atlas, border included.
func (s *Skin) Region() Rect { return s.region }

// Color returns this skin's blend color.
func (s *Skin) Color() RGBA { return s.color }

// UVs returns the texture coordinates of one of the nine skin areas.
func (s *Skin) UVs(area SkinArea) UVs {
	if area < 0 || area >= skinAreaCount {
		return UVs{}
	}
	return s.uvs[area]
}

// SetRegion repositions the skin within the atlas and recomputes all nine
// UV quads. Zero border sides produce empty strips for the matching areas.
func (s *Skin) SetRegion(region Rect) {
	s.region = region

	x, y := region.X, region.Y
	w, h := region.W, region.H
	b := s.border

	midW := w - b.Left - b.Right
	midH := h - b.Top - b.Bottom

	gen := func(rx, ry, rw, rh float64) UVs {
		return GenerateUVs(s.tw, s.th, rx, ry, rw, rh)
	}

	s.uvs[SkinTopLeft] = gen(x, y, b.Left, b.Top)
	s.uvs[SkinTop] = gen(x+b.Left, y, midW, b.Top)
	s.uvs[SkinTopRight] = gen(x+w-b.Right, y, b.Right, b.Top)

	s.uvs[SkinLeft] = gen(x, y+b.Top, b.Left, midH)
	s.uvs[SkinCenter] = gen(x+b.Left, y+b.Top, midW, midH)
	s.uvs[SkinRight] = gen(x+w-b.Right, y+b.Top, b.Right, midH)

	s.uvs[SkinBottomLeft] = gen(x, y+h-b.Bottom, b.Left, b.Bottom)
	s.uvs[SkinBottom] = gen(x+b.Left, y+h-b.Bottom, midW, b.Bottom)
	s.uvs[SkinBottomRight] = gen(x+w-b.Right, y+h-b.Bottom, b.Right, b.Bottom)
}

// Areas returns the nine destination rectangles for drawing this skin into
// bounds. Corner sizes come from the border; edges and center stretch to
// fill. Callers pair each rectangle with UVs(area) when emitting quads.
func (s *Skin) Areas(bounds Rect) [9]Rect {
	b := s.border
	bl, br, bt, bb := b.Left, b.Right, b.Top, b.Bottom

	// Shrink the border when the destination is too small for the corners.
	if bl+br > bounds.W {
		bl = bounds.W / 2
		br = bounds.W / 2
	}
	if bt+bb > bounds.H {
		bt = bounds.H / 2
		bb = bounds.H / 2
	}

	midW := bounds.W - bl - br
	midH := bounds.H - bt - bb
	x, y := bounds.X, bounds.Y

	return [9]Rect{
		SkinTopLeft:     {X: x, Y: y, W: bl, H: bt},
		SkinTop:         {X: x + bl, Y: y, W: midW, H: bt},
		SkinTopRight:    {X: x + bounds.W - br, Y: y, W: br, H: bt},
		SkinLeft:        {X: x, Y: y + bt, W: bl, H: midH},
		SkinCenter:      {X: x + bl, Y: y + bt, W: midW, H: midH},
		SkinRight:       {X: x + bounds.W - br, Y: y + bt, W: br, H: midH},
		SkinBottomLeft:  {X: x, Y: y + bounds.H - bb, W: bl, H: bb},
		SkinBottom:      {X: x + bl, Y: y + bounds.H - bb, W: midW, H: bb},
		SkinBottomRight: {X: x + bounds.W - br, Y: y + bounds.H - bb, W: br, H: bb},
	}
}

// Draw emits the nine skin quads into bounds through the batch, skipping
// empty areas. The skin's own color is modulated by tint.
func (s *Skin) Draw(batch SpriteBatch, bounds Rect, tint RGBA) {
	areas := s.Areas(bounds)
	color := s.color.Modulate(tint)
	for i, dst := range areas {
		if dst.Empty() {
			continue
		}
		batch.Draw(dst.X, dst.Y, dst.W, dst.H, s.uvs[i], color)
	}
}
