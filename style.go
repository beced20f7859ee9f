package forms

import (
	"fmt"
	"strings"
)

// ControlState identifies which overlay of a style a control draws with.
type ControlState int

const (
	// StateNormal is used when a control is enabled but not active or
	// focused.
	StateNormal ControlState = iota

	// StateFocus is used when the control is in focus.
	StateFocus

	// StateActive is used when the control is active (touch or mouse is
	// down within the control).
	StateActive

	stateCount
)

// String returns the state name as it appears in theme files.
func (s ControlState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateFocus:
		return "focus"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// TextAlignment positions a control's text within its content area.
// Horizontal and vertical flags combine with bitwise OR.
type TextAlignment int

const (
	AlignLeft TextAlignment = 1 << iota
	AlignHCenter
	AlignRight
	AlignTop
	AlignVCenter
	AlignBottom
)

// Combined alignments.
const (
	AlignTopLeft       = AlignTop | AlignLeft
	AlignTopHCenter    = AlignTop | AlignHCenter
	AlignTopRight      = AlignTop | AlignRight
	AlignVCenterLeft   = AlignVCenter | AlignLeft
	AlignCenter        = AlignVCenter | AlignHCenter
	AlignVCenterRight  = AlignVCenter | AlignRight
	AlignBottomLeft    = AlignBottom | AlignLeft
	AlignBottomHCenter = AlignBottom | AlignHCenter
	AlignBottomRight   = AlignBottom | AlignRight
)

// alignmentTokens maps theme-file tokens to alignment flags.
var alignmentTokens = map[string]TextAlignment{
	"left":    AlignLeft,
	"hcenter": AlignHCenter,
	"right":   AlignRight,
	"top":     AlignTop,
	"vcenter": AlignVCenter,
	"bottom":  AlignBottom,
	"center":  AlignCenter,
}

// ParseAlignment parses an alignment string from a theme file. Tokens are
// separated by '|', e.g. "top|left" or "vcenter|hcenter"; "center" is
// shorthand for both axes centered. Matching is case-insensitive.
func ParseAlignment(s string) (TextAlignment, error) {
	var a TextAlignment
	for _, tok := range strings.Split(s, "|") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		flag, ok := alignmentTokens[tok]
		if !ok {
			return 0, fmt.Errorf("forms: unknown alignment token %q in %q", tok, s)
		}
		a |= flag
	}
	return a, nil
}

// Overlay is the per-state appearance of a style: which skin frames the
// control, which sprites it may draw, which cursors apply, and how its
// text is rendered.
type Overlay struct {
	skin        *Skin
	imageList   *ImageList
	checkBox    *Icon
	radioButton *Icon
	slider      *Slider
	mouseCursor *ThemeImage
	textCursor  *ThemeImage

	fontPath    string
	fontSize    float64
	textColor   RGBA
	alignment   TextAlignment
	rightToLeft bool
}

// Skin returns the skin used for border and background sprites, or nil.
func (o *Overlay) Skin() *Skin { return o.skin }

// ImageList returns the overlay's image list, or nil.
func (o *Overlay) ImageList() *ImageList { return o.imageList }

// CheckBoxIcon returns the icon used for checkbox sprites, or nil.
func (o *Overlay) CheckBoxIcon() *Icon { return o.checkBox }

// RadioButtonIcon returns the icon used for radio button sprites, or nil.
func (o *Overlay) RadioButtonIcon() *Icon { return o.radioButton }

// Slider returns the slider sprites, or nil.
func (o *Overlay) Slider() *Slider { return o.slider }

// MouseCursor returns the cursor shown while the mouse is over the
// control, or nil.
func (o *Overlay) MouseCursor() *ThemeImage { return o.mouseCursor }

// TextCursor returns the caret image used within a text box, or nil.
func (o *Overlay) TextCursor() *ThemeImage { return o.textCursor }

// FontPath returns the path of the font used for the control's text.
func (o *Overlay) FontPath() string { return o.fontPath }

// FontSize returns the text size in points.
func (o *Overlay) FontSize() float64 { return o.fontSize }

// TextColor returns the text color.
func (o *Overlay) TextColor() RGBA { return o.textColor }

// Alignment returns the text alignment.
func (o *Overlay) Alignment() TextAlignment { return o.alignment }

// RightToLeft reports whether text is drawn right to left. When the theme
// does not force a direction, callers can fall back to DetectDirection.
func (o *Overlay) RightToLeft() bool { return o.rightToLeft }

// Style is a set of themed attributes that can be assigned to a control:
// margin, padding, and one overlay per control state.
type Style struct {
	id       string
	margin   Margin
	padding  Padding
	overlays [stateCount]*Overlay
}

// ID returns this style's ID.
func (s *Style) ID() string { return s.id }

// Margin returns the space layouts keep around controls using this style.
func (s *Style) Margin() Margin { return s.margin }

// Padding returns the space between the control's border and its content.
func (s *Style) Padding() Padding { return s.padding }

// Overlay returns the overlay for the given state. Styles that declare no
// focus or active overlay fall back to the normal overlay, which is always
// present.
func (s *Style) Overlay(state ControlState) *Overlay {
	if state < 0 || state >= stateCount {
		return s.overlays[StateNormal]
	}
	if o := s.overlays[state]; o != nil {
		return o
	}
	return s.overlays[StateNormal]
}
