package forms

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// encodePNG returns a w by h PNG filled with a solid color.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const testThemeTOML = `
texture = "atlas.png"

[icon.checkBox]
size = [20, 20]
offPosition = [0, 0]
onPosition = [20, 0]

[cursor.arrow]
region = [40, 0, 16, 16]

[image.logo]
region = [0, 40, 30, 20]
color = "#ff0000"

[imageList.buttons]
color = "#00ff0080"

[imageList.buttons.image.up]
region = [60, 0, 10, 10]

[imageList.buttons.image.down]
region = [70, 0, 10, 10]
color = "#0000ff"

[slider.volume]
minCapRegion = [0, 60, 10, 10]
maxCapRegion = [10, 60, 10, 10]
markerRegion = [20, 60, 10, 10]
trackRegion = [30, 60, 10, 10]

[skin.panel]
region = [10, 20, 60, 40]

[skin.panel.border]
top = 5
bottom = 5
left = 10
right = 10

[style.button]

[style.button.margin]
top = 2
bottom = 2
left = 4
right = 4

[style.button.padding]
top = 1
bottom = 1
left = 3
right = 3

[style.button.normal]
skin = "panel"
imageList = "buttons"
checkBox = "checkBox"
slider = "volume"
mouseCursor = "arrow"
fontSize = 14
textColor = "#112233"
alignment = "vcenter|hcenter"

[style.button.focus]
skin = "panel"
fontSize = 16
`

// testThemeFS builds an in-memory filesystem holding the test theme and
// its atlas.
func testThemeFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"ui/test.theme": &fstest.MapFile{Data: []byte(testThemeTOML)},
		"ui/atlas.png":  &fstest.MapFile{Data: encodePNG(t, 100, 100)},
	}
}

func loadTestTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := LoadTheme("ui/test.theme", WithFS(testThemeFS(t)), WithoutCache())
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	return theme
}

func TestLoadTheme(t *testing.T) {
	theme := loadTestTheme(t)

	if w, h := theme.TextureSize(); w != 100 || h != 100 {
		t.Errorf("TextureSize() = %v, %v, want 100, 100", w, h)
	}
	if theme.Atlas() == nil {
		t.Error("Atlas() returned nil")
	}
	if got := theme.TexturePath(); got != "ui/atlas.png" {
		t.Errorf("TexturePath() = %q, want ui/atlas.png", got)
	}
}

func TestThemeIcon(t *testing.T) {
	theme := loadTestTheme(t)

	ic := theme.Icon("checkBox")
	if ic == nil {
		t.Fatal("icon checkBox not found")
	}

	if w, h := ic.Size(); w != 20 || h != 20 {
		t.Errorf("Size() = %v, %v, want 20, 20", w, h)
	}

	wantOff := GenerateUVs(100, 100, 0, 0, 20, 20)
	wantOn := GenerateUVs(100, 100, 20, 0, 20, 20)
	if got := ic.UVs(false); !uvsApprox(got, wantOff) {
		t.Errorf("UVs(false) = %+v, want %+v", got, wantOff)
	}
	if got := ic.UVs(true); !uvsApprox(got, wantOn) {
		t.Errorf("UVs(true) = %+v, want %+v", got, wantOn)
	}
	// Unspecified color defaults to opaque white.
	if !rgbaApprox(ic.Color(), White) {
		t.Errorf("Color() = %+v, want white", ic.Color())
	}
}

func TestThemeImageList(t *testing.T) {
	theme := loadTestTheme(t)

	list := theme.ImageList("buttons")
	if list == nil {
		t.Fatal("image list buttons not found")
	}
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}

	// "up" declares no color and inherits the list color.
	up := list.Image("up")
	if up == nil {
		t.Fatal("image up not found")
	}
	wantInherited := RGBA{G: 1, A: 128.0 / 255}
	if !rgbaApprox(up.Color(), wantInherited) {
		t.Errorf("up color = %+v, want %+v", up.Color(), wantInherited)
	}

	// "down" declares its own color.
	down := list.Image("down")
	if down == nil {
		t.Fatal("image down not found")
	}
	if !rgbaApprox(down.Color(), RGBA{B: 1, A: 1}) {
		t.Errorf("down color = %+v, want opaque blue", down.Color())
	}

	if list.Image("missing") != nil {
		t.Error("missing image should return nil")
	}
}

func TestThemeSkin(t *testing.T) {
	theme := loadTestTheme(t)

	skin := theme.Skin("panel")
	if skin == nil {
		t.Fatal("skin panel not found")
	}
	if got := skin.Region(); got != NewRect(10, 20, 60, 40) {
		t.Errorf("Region() = %+v", got)
	}
	if got := skin.Border(); got != (Border{Top: 5, Bottom: 5, Left: 10, Right: 10}) {
		t.Errorf("Border() = %+v", got)
	}
}

func TestThemeSlider(t *testing.T) {
	theme := loadTestTheme(t)

	slider := theme.Slider("volume")
	if slider == nil {
		t.Fatal("slider volume not found")
	}
	if got := slider.MinCap().Region(); got != NewRect(0, 60, 10, 10) {
		t.Errorf("MinCap region = %+v", got)
	}
	if got := slider.Track().Region(); got != NewRect(30, 60, 10, 10) {
		t.Errorf("Track region = %+v", got)
	}
}

func TestThemeStyle(t *testing.T) {
	theme := loadTestTheme(t)

	style := theme.Style("button")
	if style == nil {
		t.Fatal("style button not found")
	}

	if got := style.Margin(); got != (Margin{Top: 2, Bottom: 2, Left: 4, Right: 4}) {
		t.Errorf("Margin() = %+v", got)
	}
	if got := style.Padding(); got != (Padding{Top: 1, Bottom: 1, Left: 3, Right: 3}) {
		t.Errorf("Padding() = %+v", got)
	}

	normal := style.Overlay(StateNormal)
	if normal.Skin() != theme.Skin("panel") {
		t.Error("normal overlay skin should be the theme's panel skin")
	}
	if normal.ImageList() != theme.ImageList("buttons") {
		t.Error("normal overlay image list mismatch")
	}
	if normal.CheckBoxIcon() != theme.Icon("checkBox") {
		t.Error("normal overlay checkbox icon mismatch")
	}
	if normal.Slider() != theme.Slider("volume") {
		t.Error("normal overlay slider mismatch")
	}
	if normal.MouseCursor() != theme.Image("arrow") {
		t.Error("normal overlay mouse cursor mismatch")
	}
	if normal.FontSize() != 14 {
		t.Errorf("FontSize() = %v, want 14", normal.FontSize())
	}
	if !rgbaApprox(normal.TextColor(), RGBA{R: 0x11 / 255.0, G: 0x22 / 255.0, B: 0x33 / 255.0, A: 1}) {
		t.Errorf("TextColor() = %+v", normal.TextColor())
	}
	if normal.Alignment() != AlignCenter {
		t.Errorf("Alignment() = %v, want center", normal.Alignment())
	}

	focus := style.Overlay(StateFocus)
	if focus == normal {
		t.Error("focus overlay should be distinct")
	}
	if focus.FontSize() != 16 {
		t.Errorf("focus FontSize() = %v, want 16", focus.FontSize())
	}
	// Focus declares no alignment: defaults to top-left.
	if focus.Alignment() != AlignTopLeft {
		t.Errorf("focus Alignment() = %v, want top-left", focus.Alignment())
	}

	// No active overlay declared: falls back to normal.
	if style.Overlay(StateActive) != normal {
		t.Error("active overlay should fall back to normal")
	}
}

func TestThemeLookupMisses(t *testing.T) {
	theme := loadTestTheme(t)

	if theme.Style("nope") != nil {
		t.Error("missing style should return nil")
	}
	if theme.Skin("nope") != nil {
		t.Error("missing skin should return nil")
	}
	if theme.Icon("nope") != nil {
		t.Error("missing icon should return nil")
	}
	if theme.Slider("nope") != nil {
		t.Error("missing slider should return nil")
	}
	if theme.Image("nope") != nil {
		t.Error("missing image should return nil")
	}
	if theme.ImageList("nope") != nil {
		t.Error("missing image list should return nil")
	}
}

func TestThemeIDs(t *testing.T) {
	theme := loadTestTheme(t)

	if got := theme.SkinIDs(); len(got) != 1 || got[0] != "panel" {
		t.Errorf("SkinIDs() = %v", got)
	}
	if got := theme.StyleIDs(); len(got) != 1 || got[0] != "button" {
		t.Errorf("StyleIDs() = %v", got)
	}
	// Cursors and standalone images share the image namespace.
	if got := theme.ImageIDs(); len(got) != 2 || got[0] != "arrow" || got[1] != "logo" {
		t.Errorf("ImageIDs() = %v", got)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	atlas := encodePNG(t, 100, 100)

	tests := []struct {
		name    string
		theme   string
		wantSub string
	}{
		{
			name:    "no texture",
			theme:   "[skin.a]\nregion = [0, 0, 10, 10]\n",
			wantSub: "declares no texture",
		},
		{
			name:    "texture file missing",
			theme:   "texture = \"nothere.png\"\n",
			wantSub: "nothere.png",
		},
		{
			name:    "region out of bounds",
			theme:   "texture = \"atlas.png\"\n[skin.a]\nregion = [90, 90, 20, 20]\n",
			wantSub: "outside",
		},
		{
			name:    "short region",
			theme:   "texture = \"atlas.png\"\n[image.a]\nregion = [1, 2, 3]\n",
			wantSub: "got 3 values",
		},
		{
			name:    "bad color",
			theme:   "texture = \"atlas.png\"\n[image.a]\nregion = [0, 0, 10, 10]\ncolor = \"#xyz\"\n",
			wantSub: "invalid hex color",
		},
		{
			name:    "style missing normal",
			theme:   "texture = \"atlas.png\"\n[style.a]\n[style.a.focus]\nfontSize = 10\n",
			wantSub: "missing normal overlay",
		},
		{
			name:    "unknown skin reference",
			theme:   "texture = \"atlas.png\"\n[style.a]\n[style.a.normal]\nskin = \"ghost\"\n",
			wantSub: "unknown skin",
		},
		{
			name:    "bad alignment",
			theme:   "texture = \"atlas.png\"\n[style.a]\n[style.a.normal]\nalignment = \"sideways\"\n",
			wantSub: "alignment",
		},
		{
			name:    "skin border exceeds region",
			theme:   "texture = \"atlas.png\"\n[skin.a]\nregion = [0, 0, 10, 10]\n[skin.a.border]\nleft = 6\nright = 6\n",
			wantSub: "border exceeds region",
		},
		{
			name:    "not toml",
			theme:   "{ json: true }",
			wantSub: "parse theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"bad.theme": &fstest.MapFile{Data: []byte(tt.theme)},
				"atlas.png": &fstest.MapFile{Data: atlas},
			}
			_, err := LoadTheme("bad.theme", WithFS(fsys), WithoutCache())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadThemeCache(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "cached.theme")
	atlasPath := filepath.Join(dir, "atlas.png")

	if err := os.WriteFile(themePath, []byte(testThemeTOML), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(atlasPath, encodePNG(t, 100, 100), 0o600); err != nil {
		t.Fatal(err)
	}

	first, err := LoadTheme(themePath)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := LoadTheme(themePath)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Error("cached load should return the same theme")
	}

	fresh, err := LoadTheme(themePath, WithoutCache())
	if err != nil {
		t.Fatalf("uncached load: %v", err)
	}
	if fresh == first {
		t.Error("WithoutCache should return a fresh theme")
	}

	ClearThemeCache()
	third, err := LoadTheme(themePath)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if third == first {
		t.Error("load after ClearThemeCache should re-read the file")
	}
}
