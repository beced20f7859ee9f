package forms

// ThemeImage describes one sprite within the theme's texture atlas: a pixel
// region, a blend color, and the UV coordinates computed from the region.
type ThemeImage struct {
	id     string
	region Rect
	color  RGBA
	uvs    UVs
}

// newThemeImage computes UVs for the region against a texture of size
// tw by th.
func newThemeImage(id string, tw, th float64, region Rect, color RGBA) *ThemeImage {
	return &ThemeImage{
		id:     id,
		region: region,
		color:  color,
		uvs:    GenerateUVs(tw, th, region.X, region.Y, region.W, region.H),
	}
}

// ID returns the image's ID.
func (img *ThemeImage) ID() string { return img.id }

// UVs returns the image's texture coordinates.
func (img *ThemeImage) UVs() UVs { return img.uvs }

// Region returns the image's pixel region within the atlas.
func (img *ThemeImage) Region() Rect { return img.region }

// Color returns the image's blend color.
func (img *ThemeImage) Color() RGBA { return img.color }

// ImageList is a collection of theme images. An image list can be assigned
// to each overlay of a style; controls using the style retrieve images by
// ID in order to draw themselves.
type ImageList struct {
	id     string
	color  RGBA
	images []*ThemeImage
}

// ID returns the list's ID.
func (l *ImageList) ID() string { return l.id }

// Color returns the list's default blend color. Images that declare no
// color of their own inherit it.
func (l *ImageList) Color() RGBA { return l.color }

// Image returns the image with the given ID, or nil if the list has none.
// A miss is logged at warn level: a control asking for a sprite the theme
// does not define is usually a theme authoring mistake.
func (l *ImageList) Image(id string) *ThemeImage {
	for _, img := range l.images {
		if img.id == id {
			return img
		}
	}
	Logger().Warn("forms: image not found in list", "list", l.id, "image", id)
	return nil
}

// Len returns the number of images in the list.
func (l *ImageList) Len() int { return len(l.images) }
