package forms

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// gamepadFile mirrors the on-disk TOML structure of a gamepad layout.
// Buttons and joysticks are arrays of tables, in slot order.
type gamepadFile struct {
	Texture   string        `toml:"texture"`
	Buttons   []buttonDef   `toml:"button"`
	Joysticks []joystickDef `toml:"joystick"`
}

type buttonDef struct {
	Bounds        []float64 `toml:"bounds"`
	DefaultRegion []float64 `toml:"defaultRegion"`
	FocusRegion   []float64 `toml:"focusRegion"`
}

type joystickDef struct {
	Radius       float64   `toml:"radius"`
	InnerRegion  []float64 `toml:"innerRegion"`
	InnerTexture []float64 `toml:"innerTexture"`
	OuterRegion  []float64 `toml:"outerRegion"`
	OuterTexture []float64 `toml:"outerTexture"`
}

// LoadGamepad reads a gamepad layout file, decodes the sprite texture it
// references, and builds a configured Gamepad. The texture path is
// resolved relative to the layout file; pass WithFS to read both from an
// fs.FS.
//
// Screen-space rectangles (button bounds, joystick inner and outer
// regions) are [x, y, width, height]; joystick region X, Y is the
// joystick center. Texture regions are pixel rectangles within the sprite
// texture and are validated against its bounds.
func LoadGamepad(p string, opts ...Option) (*Gamepad, error) {
	o := newLoadOptions(opts)

	data, err := readFile(o.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("forms: read gamepad %s: %w", p, err)
	}

	var doc gamepadFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("forms: parse gamepad %s: %w", p, err)
	}

	if doc.Texture == "" {
		return nil, fmt.Errorf("forms: gamepad %s declares no texture", p)
	}

	texPath := resolveRef(o.fsys, p, doc.Texture)
	atlas, err := loadAtlas(o.fsys, texPath)
	if err != nil {
		return nil, fmt.Errorf("forms: gamepad %s: %w", p, err)
	}

	bounds := atlas.Bounds()
	tw := float64(bounds.Dx())
	th := float64(bounds.Dy())

	g := NewGamepad(tw, th, len(doc.Joysticks), len(doc.Buttons))
	g.atlas = atlas

	rect4 := func(what string, i int, field string, v []float64, clip bool) (*Rect, error) {
		if v == nil {
			return nil, nil
		}
		if len(v) != 4 {
			return nil, fmt.Errorf("forms: gamepad %s: %s %d: %s needs [x, y, width, height], got %d values",
				p, what, i, field, len(v))
		}
		r := Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
		if clip && (r.X < 0 || r.Y < 0 || r.X+r.W > tw || r.Y+r.H > th) {
			return nil, fmt.Errorf("forms: gamepad %s: %s %d: %s outside %gx%g texture",
				p, what, i, field, tw, th)
		}
		return &r, nil
	}

	for i, def := range doc.Buttons {
		if def.Bounds == nil {
			return nil, fmt.Errorf("forms: gamepad %s: button %d: missing bounds", p, i)
		}
		boundsRect, err := rect4("button", i, "bounds", def.Bounds, false)
		if err != nil {
			return nil, err
		}
		defRegion, err := rect4("button", i, "defaultRegion", def.DefaultRegion, true)
		if err != nil {
			return nil, err
		}
		focusRegion, err := rect4("button", i, "focusRegion", def.FocusRegion, true)
		if err != nil {
			return nil, err
		}
		if err := g.SetButton(i, *boundsRect, defRegion, focusRegion); err != nil {
			return nil, err
		}
	}

	for i, def := range doc.Joysticks {
		if def.InnerRegion == nil {
			return nil, fmt.Errorf("forms: gamepad %s: joystick %d: missing innerRegion", p, i)
		}
		inner, err := rect4("joystick", i, "innerRegion", def.InnerRegion, false)
		if err != nil {
			return nil, err
		}
		outer := &Rect{}
		if def.OuterRegion != nil {
			outer, err = rect4("joystick", i, "outerRegion", def.OuterRegion, false)
			if err != nil {
				return nil, err
			}
		}
		innerTex, err := rect4("joystick", i, "innerTexture", def.InnerTexture, true)
		if err != nil {
			return nil, err
		}
		outerTex, err := rect4("joystick", i, "outerTexture", def.OuterTexture, true)
		if err != nil {
			return nil, err
		}
		if err := g.SetJoystick(i, *inner, innerTex, *outer, outerTex, def.Radius); err != nil {
			return nil, err
		}
	}

	Logger().Debug("forms: gamepad loaded",
		"path", p,
		"texture", texPath,
		"buttons", len(doc.Buttons),
		"joysticks", len(doc.Joysticks))
	return g, nil
}
