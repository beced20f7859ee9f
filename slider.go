package forms

// Slider describes the four sprites of a slider control: the two end caps,
// the track the marker slides along, and the marker showing the current
// position. All four share a blend color.
type Slider struct {
	id     string
	minCap *ThemeImage
	maxCap *ThemeImage
	marker *ThemeImage
	track  *ThemeImage
	color  RGBA
}

// ID returns the slider's ID.
func (s *Slider) ID() string { return s.id }

// MinCap returns the left / bottom cap image.
func (s *Slider) MinCap() *ThemeImage { return s.minCap }

// MaxCap returns the right / top cap image.
func (s *Slider) MaxCap() *ThemeImage { return s.maxCap }

// Marker returns the marker image.
func (s *Slider) Marker() *ThemeImage { return s.marker }

// Track returns the track image.
func (s *Slider) Track() *ThemeImage { return s.track }

// Color returns the slider's blend color.
func (s *Slider) Color() RGBA { return s.color }
