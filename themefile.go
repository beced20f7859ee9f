package forms

import (
	"fmt"
	"image"
)

// themeFile mirrors the on-disk TOML structure of a theme. IDs are the keys
// of the per-kind tables, e.g. [icon.checkBox] or [style.buttonStyle].
type themeFile struct {
	Texture string `toml:"texture"`

	Icons      map[string]iconDef      `toml:"icon"`
	Cursors    map[string]imageDef     `toml:"cursor"`
	Images     map[string]imageDef     `toml:"image"`
	ImageLists map[string]imageListDef `toml:"imageList"`
	Sliders    map[string]sliderDef    `toml:"slider"`
	Skins      map[string]skinDef      `toml:"skin"`
	Styles     map[string]styleDef     `toml:"style"`
}

type iconDef struct {
	Size        []float64 `toml:"size"`
	OffPosition []float64 `toml:"offPosition"`
	OnPosition  []float64 `toml:"onPosition"`
	Color       string    `toml:"color"`
}

type imageDef struct {
	Region []float64 `toml:"region"`
	Color  string    `toml:"color"`
}

type imageListDef struct {
	Color  string              `toml:"color"`
	Images map[string]imageDef `toml:"image"`
}

type sliderDef struct {
	MinCapRegion []float64 `toml:"minCapRegion"`
	MaxCapRegion []float64 `toml:"maxCapRegion"`
	MarkerRegion []float64 `toml:"markerRegion"`
	TrackRegion  []float64 `toml:"trackRegion"`
	Color        string    `toml:"color"`
}

type skinDef struct {
	Region []float64 `toml:"region"`
	Color  string    `toml:"color"`
	Border sidesDef  `toml:"border"`
}

type sidesDef struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

func (d sidesDef) sides() SideRegions {
	return SideRegions{Top: d.Top, Bottom: d.Bottom, Left: d.Left, Right: d.Right}
}

type styleDef struct {
	Margin  sidesDef `toml:"margin"`
	Padding sidesDef `toml:"padding"`

	Normal *overlayDef `toml:"normal"`
	Focus  *overlayDef `toml:"focus"`
	Active *overlayDef `toml:"active"`
}

type overlayDef struct {
	Skin        string `toml:"skin"`
	ImageList   string `toml:"imageList"`
	CheckBox    string `toml:"checkBox"`
	RadioButton string `toml:"radioButton"`
	Slider      string `toml:"slider"`
	MouseCursor string `toml:"mouseCursor"`
	TextCursor  string `toml:"textCursor"`

	Font        string  `toml:"font"`
	FontSize    float64 `toml:"fontSize"`
	TextColor   string  `toml:"textColor"`
	Alignment   string  `toml:"alignment"`
	RightToLeft bool    `toml:"rightToLeft"`
}

// buildTheme turns a decoded theme file into a Theme, computing UVs for
// every sprite and resolving style overlay references. Every region is
// validated against the atlas bounds; unresolved references are errors.
func buildTheme(p, texPath string, atlas image.Image, doc *themeFile) (*Theme, error) {
	bounds := atlas.Bounds()
	tw := float64(bounds.Dx())
	th := float64(bounds.Dy())

	t := &Theme{
		path:        p,
		texturePath: texPath,
		tw:          tw,
		th:          th,
		atlas:       atlas,
		images:      make(map[string]*ThemeImage),
		imageLists:  make(map[string]*ImageList),
		icons:       make(map[string]*Icon),
		sliders:     make(map[string]*Slider),
		skins:       make(map[string]*Skin),
		styles:      make(map[string]*Style),
	}

	b := themeBuilder{theme: t, path: p}

	for id, def := range doc.Images {
		img, err := b.buildImage("image", id, def, White)
		if err != nil {
			return nil, err
		}
		t.images[id] = img
	}
	for id, def := range doc.Cursors {
		img, err := b.buildImage("cursor", id, def, White)
		if err != nil {
			return nil, err
		}
		t.images[id] = img
	}
	for id, def := range doc.ImageLists {
		list, err := b.buildImageList(id, def)
		if err != nil {
			return nil, err
		}
		t.imageLists[id] = list
	}
	for id, def := range doc.Icons {
		ic, err := b.buildIcon(id, def)
		if err != nil {
			return nil, err
		}
		t.icons[id] = ic
	}
	for id, def := range doc.Sliders {
		sl, err := b.buildSlider(id, def)
		if err != nil {
			return nil, err
		}
		t.sliders[id] = sl
	}
	for id, def := range doc.Skins {
		sk, err := b.buildSkin(id, def)
		if err != nil {
			return nil, err
		}
		t.skins[id] = sk
	}

	// Styles resolve references, so they build after everything else.
	for id, def := range doc.Styles {
		st, err := b.buildStyle(id, def)
		if err != nil {
			return nil, err
		}
		t.styles[id] = st
	}

	return t, nil
}

// themeBuilder carries the context needed to build and validate descriptors.
type themeBuilder struct {
	theme *Theme
	path  string
}

func (b *themeBuilder) errf(format string, args ...any) error {
	return fmt.Errorf("forms: theme %s: %s", b.path, fmt.Sprintf(format, args...))
}

// region converts a 4-element [x, y, width, height] array and checks that
// it lies within the atlas.
func (b *themeBuilder) region(what, id string, v []float64) (Rect, error) {
	if len(v) != 4 {
		return Rect{}, b.errf("%s %q: region needs [x, y, width, height], got %d values", what, id, len(v))
	}
	r := Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	if r.W < 0 || r.H < 0 {
		return Rect{}, b.errf("%s %q: negative region size", what, id)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > b.theme.tw || r.Y+r.H > b.theme.th {
		return Rect{}, b.errf("%s %q: region (%g, %g, %g, %g) outside %gx%g texture",
			what, id, r.X, r.Y, r.W, r.H, b.theme.tw, b.theme.th)
	}
	return r, nil
}

// point converts a 2-element [x, y] array.
func (b *themeBuilder) point(what, id, field string, v []float64) (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, b.errf("%s %q: %s needs [x, y], got %d values", what, id, field, len(v))
	}
	return Vec2{X: v[0], Y: v[1]}, nil
}

// color parses a hex color string, falling back to def when empty.
func (b *themeBuilder) color(what, id, s string, def RGBA) (RGBA, error) {
	if s == "" {
		return def, nil
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return RGBA{}, b.errf("%s %q: %v", what, id, err)
	}
	return c, nil
}

func (b *themeBuilder) buildImage(what, id string, def imageDef, defColor RGBA) (*ThemeImage, error) {
	r, err := b.region(what, id, def.Region)
	if err != nil {
		return nil, err
	}
	c, err := b.color(what, id, def.Color, defColor)
	if err != nil {
		return nil, err
	}
	return newThemeImage(id, b.theme.tw, b.theme.th, r, c), nil
}

func (b *themeBuilder) buildImageList(id string, def imageListDef) (*ImageList, error) {
	listColor, err := b.color("imageList", id, def.Color, White)
	if err != nil {
		return nil, err
	}
	list := &ImageList{id: id, color: listColor}
	for imgID, imgDef := range def.Images {
		// Images without an explicit color inherit the list color.
		img, err := b.buildImage("imageList "+id+" image", imgID, imgDef, listColor)
		if err != nil {
			return nil, err
		}
		list.images = append(list.images, img)
	}
	return list, nil
}

func (b *themeBuilder) buildIcon(id string, def iconDef) (*Icon, error) {
	size, err := b.point("icon", id, "size", def.Size)
	if err != nil {
		return nil, err
	}
	off, err := b.point("icon", id, "offPosition", def.OffPosition)
	if err != nil {
		return nil, err
	}
	on, err := b.point("icon", id, "onPosition", def.OnPosition)
	if err != nil {
		return nil, err
	}
	if _, err := b.region("icon", id, []float64{off.X, off.Y, size.X, size.Y}); err != nil {
		return nil, err
	}
	if _, err := b.region("icon", id, []float64{on.X, on.Y, size.X, size.Y}); err != nil {
		return nil, err
	}
	c, err := b.color("icon", id, def.Color, White)
	if err != nil {
		return nil, err
	}
	return newIcon(id, b.theme.tw, b.theme.th, size.X, size.Y, off, on, c), nil
}

func (b *themeBuilder) buildSlider(id string, def sliderDef) (*Slider, error) {
	c, err := b.color("slider", id, def.Color, White)
	if err != nil {
		return nil, err
	}
	part := func(field string, v []float64) (*ThemeImage, error) {
		r, err := b.region("slider", id, v)
		if err != nil {
			return nil, fmt.Errorf("%w (%s)", err, field)
		}
		return newThemeImage(id+"."+field, b.theme.tw, b.theme.th, r, c), nil
	}
	minCap, err := part("minCapRegion", def.MinCapRegion)
	if err != nil {
		return nil, err
	}
	maxCap, err := part("maxCapRegion", def.MaxCapRegion)
	if err != nil {
		return nil, err
	}
	marker, err := part("markerRegion", def.MarkerRegion)
	if err != nil {
		return nil, err
	}
	track, err := part("trackRegion", def.TrackRegion)
	if err != nil {
		return nil, err
	}
	return &Slider{
		id:     id,
		minCap: minCap,
		maxCap: maxCap,
		marker: marker,
		track:  track,
		color:  c,
	}, nil
}

func (b *themeBuilder) buildSkin(id string, def skinDef) (*Skin, error) {
	r, err := b.region("skin", id, def.Region)
	if err != nil {
		return nil, err
	}
	border := def.Border.sides()
	if border.Left+border.Right > r.W || border.Top+border.Bottom > r.H {
		return nil, b.errf("skin %q: border exceeds region size", id)
	}
	c, err := b.color("skin", id, def.Color, White)
	if err != nil {
		return nil, err
	}
	return newSkin(id, b.theme.tw, b.theme.th, r, Border(border), c), nil
}

func (b *themeBuilder) buildStyle(id string, def styleDef) (*Style, error) {
	if def.Normal == nil {
		return nil, b.errf("style %q: missing normal overlay", id)
	}

	st := &Style{
		id:      id,
		margin:  Margin(def.Margin.sides()),
		padding: Padding(def.Padding.sides()),
	}

	defs := [stateCount]*overlayDef{
		StateNormal: def.Normal,
		StateFocus:  def.Focus,
		StateActive: def.Active,
	}
	for state, od := range defs {
		if od == nil {
			continue
		}
		ov, err := b.buildOverlay(id, ControlState(state), od)
		if err != nil {
			return nil, err
		}
		st.overlays[state] = ov
	}
	return st, nil
}

func (b *themeBuilder) buildOverlay(styleID string, state ControlState, def *overlayDef) (*Overlay, error) {
	where := fmt.Sprintf("style %q %s overlay", styleID, state)
	ov := &Overlay{
		fontPath: def.Font,
		fontSize: def.FontSize,
	}

	if def.Skin != "" {
		sk, ok := b.theme.skins[def.Skin]
		if !ok {
			return nil, b.errf("%s: unknown skin %q", where, def.Skin)
		}
		ov.skin = sk
	}
	if def.ImageList != "" {
		l, ok := b.theme.imageLists[def.ImageList]
		if !ok {
			return nil, b.errf("%s: unknown imageList %q", where, def.ImageList)
		}
		ov.imageList = l
	}
	if def.CheckBox != "" {
		ic, ok := b.theme.icons[def.CheckBox]
		if !ok {
			return nil, b.errf("%s: unknown checkBox icon %q", where, def.CheckBox)
		}
		ov.checkBox = ic
	}
	if def.RadioButton != "" {
		ic, ok := b.theme.icons[def.RadioButton]
		if !ok {
			return nil, b.errf("%s: unknown radioButton icon %q", where, def.RadioButton)
		}
		ov.radioButton = ic
	}
	if def.Slider != "" {
		sl, ok := b.theme.sliders[def.Slider]
		if !ok {
			return nil, b.errf("%s: unknown slider %q", where, def.Slider)
		}
		ov.slider = sl
	}
	if def.MouseCursor != "" {
		img, ok := b.theme.images[def.MouseCursor]
		if !ok {
			return nil, b.errf("%s: unknown mouseCursor %q", where, def.MouseCursor)
		}
		ov.mouseCursor = img
	}
	if def.TextCursor != "" {
		img, ok := b.theme.images[def.TextCursor]
		if !ok {
			return nil, b.errf("%s: unknown textCursor %q", where, def.TextCursor)
		}
		ov.textCursor = img
	}

	ov.textColor = White
	if def.TextColor != "" {
		c, err := ParseHexColor(def.TextColor)
		if err != nil {
			return nil, b.errf("%s: %v", where, err)
		}
		ov.textColor = c
	}

	ov.alignment = AlignTopLeft
	if def.Alignment != "" {
		a, err := ParseAlignment(def.Alignment)
		if err != nil {
			return nil, b.errf("%s: %v", where, err)
		}
		ov.alignment = a
	}
	ov.rightToLeft = def.RightToLeft

	return ov, nil
}
