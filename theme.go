package forms

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // themes reference PNG atlases
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/forms/cache"
)

// themeCacheCapacity bounds the shared theme cache. Applications rarely
// load more than a handful of themes.
const themeCacheCapacity = 32

// themes memoizes loaded themes by file path.
var themes = cache.New[string, *Theme](themeCacheCapacity)

// Theme represents the appearance of a set of controls. A theme names one
// atlas texture containing all the icon, cursor, slider, and skin sprites
// it uses; each descriptor maps a pixel region of that texture to UV
// coordinates. The rest of the theme consists of styles that bundle
// margin, padding, per-state overlays, and text attributes.
type Theme struct {
	path        string
	texturePath string
	tw, th      float64
	atlas       image.Image

	images     map[string]*ThemeImage
	imageLists map[string]*ImageList
	icons      map[string]*Icon
	sliders    map[string]*Slider
	skins      map[string]*Skin
	styles     map[string]*Style
}

// LoadTheme reads a theme file, decodes the atlas texture it references,
// and builds all sprite descriptors. Loaded themes are cached by path;
// pass WithoutCache to force a fresh parse.
//
// The theme file is a TOML document; see the package documentation for the
// grammar. Texture paths are resolved relative to the theme file.
func LoadTheme(p string, opts ...Option) (*Theme, error) {
	o := newLoadOptions(opts)

	if !o.noCache {
		if t, ok := themes.Get(p); ok {
			return t, nil
		}
	}

	t, err := loadTheme(p, o)
	if err != nil {
		return nil, err
	}

	if !o.noCache {
		themes.Set(p, t)
	}
	return t, nil
}

// ClearThemeCache drops all cached themes. Subsequent loads re-read the
// files from disk.
func ClearThemeCache() {
	themes.Clear()
}

// loadTheme reads and parses one theme file without touching the cache.
func loadTheme(p string, o loadOptions) (*Theme, error) {
	data, err := readFile(o.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("forms: read theme %s: %w", p, err)
	}

	var doc themeFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("forms: parse theme %s: %w", p, err)
	}

	if doc.Texture == "" {
		return nil, fmt.Errorf("forms: theme %s declares no texture", p)
	}

	texPath := resolveRef(o.fsys, p, doc.Texture)
	atlas, err := loadAtlas(o.fsys, texPath)
	if err != nil {
		return nil, fmt.Errorf("forms: theme %s: %w", p, err)
	}

	t, err := buildTheme(p, texPath, atlas, &doc)
	if err != nil {
		return nil, err
	}

	Logger().Debug("forms: theme loaded",
		"path", p,
		"texture", texPath,
		"styles", len(t.styles),
		"skins", len(t.skins))
	return t, nil
}

// Path returns the path the theme was loaded from.
func (t *Theme) Path() string { return t.path }

// TexturePath returns the resolved path of the theme's atlas texture.
func (t *Theme) TexturePath() string { return t.texturePath }

// TextureSize returns the atlas texture dimensions in pixels.
func (t *Theme) TextureSize() (w, h float64) { return t.tw, t.th }

// Atlas returns the decoded atlas image. Renderers sample sprite regions
// from it; the theme itself never draws.
func (t *Theme) Atlas() image.Image { return t.atlas }

// Style returns the style with the given ID, or nil if the theme does not
// define it. A miss is logged at warn level.
func (t *Theme) Style(id string) *Style {
	s, ok := t.styles[id]
	if !ok {
		Logger().Warn("forms: style not found", "theme", t.path, "style", id)
		return nil
	}
	return s
}

// Skin returns the skin with the given ID, or nil.
func (t *Theme) Skin(id string) *Skin {
	s, ok := t.skins[id]
	if !ok {
		Logger().Warn("forms: skin not found", "theme", t.path, "skin", id)
		return nil
	}
	return s
}

// Image returns the standalone image or cursor with the given ID, or nil.
func (t *Theme) Image(id string) *ThemeImage {
	img, ok := t.images[id]
	if !ok {
		Logger().Warn("forms: image not found", "theme", t.path, "image", id)
		return nil
	}
	return img
}

// ImageList returns the image list with the given ID, or nil.
func (t *Theme) ImageList(id string) *ImageList {
	l, ok := t.imageLists[id]
	if !ok {
		Logger().Warn("forms: image list not found", "theme", t.path, "list", id)
		return nil
	}
	return l
}

// Icon returns the icon with the given ID, or nil.
func (t *Theme) Icon(id string) *Icon {
	ic, ok := t.icons[id]
	if !ok {
		Logger().Warn("forms: icon not found", "theme", t.path, "icon", id)
		return nil
	}
	return ic
}

// Slider returns the slider with the given ID, or nil.
func (t *Theme) Slider(id string) *Slider {
	sl, ok := t.sliders[id]
	if !ok {
		Logger().Warn("forms: slider not found", "theme", t.path, "slider", id)
		return nil
	}
	return sl
}

// StyleIDs returns the IDs of all styles, sorted.
func (t *Theme) StyleIDs() []string { return sortedKeys(t.styles) }

// SkinIDs returns the IDs of all skins, sorted.
func (t *Theme) SkinIDs() []string { return sortedKeys(t.skins) }

// IconIDs returns the IDs of all icons, sorted.
func (t *Theme) IconIDs() []string { return sortedKeys(t.icons) }

// SliderIDs returns the IDs of all sliders, sorted.
func (t *Theme) SliderIDs() []string { return sortedKeys(t.sliders) }

// ImageIDs returns the IDs of all standalone images and cursors, sorted.
func (t *Theme) ImageIDs() []string { return sortedKeys(t.images) }

// ImageListIDs returns the IDs of all image lists, sorted.
func (t *Theme) ImageListIDs() []string { return sortedKeys(t.imageLists) }

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// readFile reads from fsys when set, or from the OS filesystem.
func readFile(fsys fs.FS, p string) ([]byte, error) {
	if fsys != nil {
		return fs.ReadFile(fsys, p)
	}
	return os.ReadFile(p) //nolint:gosec // path is user-provided intentionally
}

// loadAtlas decodes the atlas texture at p.
func loadAtlas(fsys fs.FS, p string) (image.Image, error) {
	data, err := readFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read texture %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", p, err)
	}
	return img, nil
}

// resolveRef resolves a texture reference relative to the directory of the
// file that names it. fs.FS paths are always slash-separated; OS paths use
// the platform separator.
func resolveRef(fsys fs.FS, base, ref string) string {
	if fsys != nil {
		if path.IsAbs(ref) {
			return ref
		}
		return path.Join(path.Dir(base), ref)
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(base), ref)
}
