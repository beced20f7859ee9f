package forms

// Icon describes the pair of images used for CheckBox and RadioButton
// sprites: one region for the unchecked / unselected state and one for the
// checked / selected state. Both share a size and a blend color.
type Icon struct {
	id     string
	width  float64
	height float64
	offUVs UVs
	onUVs  UVs
	color  RGBA
}

// newIcon computes both UV quads from the icon's size and state positions.
func newIcon(id string, tw, th, w, h float64, off, on Vec2, color RGBA) *Icon {
	return &Icon{
		id:     id,
		width:  w,
		height: h,
		offUVs: GenerateUVs(tw, th, off.X, off.Y, w, h),
		onUVs:  GenerateUVs(tw, th, on.X, on.Y, w, h),
		color:  color,
	}
}

// ID returns the icon's ID.
func (ic *Icon) ID() string { return ic.id }

// Size returns the icon's width and height in pixels.
func (ic *Icon) Size() (w, h float64) { return ic.width, ic.height }

// UVs returns the texture coordinates for the icon in the given state:
// the on image when checked, the off image otherwise.
func (ic *Icon) UVs(checked bool) UVs {
	if checked {
		return ic.onUVs
	}
	return ic.offUVs
}

// Color returns the icon's blend color.
func (ic *Icon) Color() RGBA { return ic.color }
