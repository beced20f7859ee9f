package forms

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/forms/cache"
)

// Direction is the reading direction of a run of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection returns the base direction of s using the Unicode
// bidirectional algorithm. Styles that do not force a direction via
// rightToLeft can use this to pick one per string.
func DetectDirection(s string) Direction {
	var p bidi.Paragraph
	p.SetString(s)
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// Font is a parsed font usable for measuring themed text. The underlying
// parsed font is read-only and safe for concurrent use.
type Font struct {
	path string
	font *font.Font
}

// Path returns the path the font was loaded from.
func (f *Font) Path() string { return f.path }

// TextExtents holds the measured dimensions of a shaped run of text. All
// values are in pixels at the requested size. Descent is the distance from
// the baseline to the bottom of the line, as a positive value.
type TextExtents struct {
	Width   float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the total line height, ascent plus descent.
func (e TextExtents) Height() float64 { return e.Ascent + e.Descent }

// fontCacheCapacity bounds the per-set font cache. Themes reference a
// handful of font files at most.
const fontCacheCapacity = 16

// FontSet loads and caches fonts for a theme and measures text with them.
// It is safe for concurrent use: parsed fonts are shared, while the
// HarfBuzz shapers (which carry mutable buffers) are pooled per call.
type FontSet struct {
	fonts *cache.Cache[string, *Font]

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper is not
	// safe for concurrent use, but reusing across sequential calls avoids
	// re-allocating its buffers.
	shaperPool sync.Pool
}

// NewFontSet creates an empty font set.
func NewFontSet() *FontSet {
	return &FontSet{
		fonts: cache.New[string, *Font](fontCacheCapacity),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Load reads and parses a TTF or OTF font file. Parsed fonts are cached by
// path; pass WithoutCache to force a re-parse, or WithFS to read from an
// fs.FS instead of the OS filesystem.
func (s *FontSet) Load(p string, opts ...Option) (*Font, error) {
	o := newLoadOptions(opts)

	if !o.noCache {
		if f, ok := s.fonts.Get(p); ok {
			return f, nil
		}
	}

	data, err := readFile(o.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("forms: read font %s: %w", p, err)
	}
	f, err := ParseFont(p, data)
	if err != nil {
		return nil, err
	}

	if !o.noCache {
		s.fonts.Set(p, f)
	}
	return f, nil
}

// ParseFont parses raw TTF or OTF font data. The path is recorded for
// diagnostics only.
func ParseFont(p string, data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("forms: parse font %s: %w", p, err)
	}
	// Keep the thread-safe *Font; a fresh Face wraps it per measurement.
	return &Font{path: p, font: face.Font}, nil
}

// Measure shapes text at the given pixel size and returns its extents.
// The direction affects shaping of bidirectional scripts; pass the style's
// direction or the result of DetectDirection.
func (s *FontSet) Measure(f *Font, text string, size float64, dir Direction) TextExtents {
	if f == nil || text == "" || size <= 0 {
		return TextExtents{}
	}

	// font.Face is not safe for concurrent use; create one per call. It is
	// a cheap wrapper over the shared *Font.
	face := font.NewFace(f.font)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      face,
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	s.shaperPool.Put(shaper)

	return TextExtents{
		Width:   fromFixed(out.Advance),
		Ascent:  fromFixed(out.LineBounds.Ascent),
		Descent: -fromFixed(out.LineBounds.Descent),
		LineGap: fromFixed(out.LineBounds.Gap),
	}
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split into runs before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// toFixed converts a pixel size to 26.6 fixed point.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a 26.6 fixed point value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
