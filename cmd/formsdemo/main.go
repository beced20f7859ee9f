// Command formsdemo renders a theme's sprites, and optionally a virtual
// gamepad, into a PNG for visual inspection.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/forms"
	"github.com/gogpu/forms/render"
)

func main() {
	var (
		themePath   = flag.String("theme", "", "theme file to render")
		gamepadPath = flag.String("gamepad", "", "gamepad file to render")
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		output      = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	if *themePath == "" && *gamepadPath == "" {
		log.Fatal("need -theme or -gamepad")
	}

	target := render.NewPixmapTarget(*width, *height)
	target.Clear(color.RGBA{R: 30, G: 34, B: 42, A: 255})

	if *themePath != "" {
		theme, err := forms.LoadTheme(*themePath)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		if err := drawTheme(theme, target); err != nil {
			log.Fatalf("Failed to draw theme: %v", err)
		}
	}

	if *gamepadPath != "" {
		pad, err := forms.LoadGamepad(*gamepadPath)
		if err != nil {
			log.Fatalf("Failed to load gamepad: %v", err)
		}
		if err := drawGamepad(pad, target); err != nil {
			log.Fatalf("Failed to draw gamepad: %v", err)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, target.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawTheme lays the theme's sprites out in a loose grid: skins stretched
// into panels, icons in both states, slider parts in a row.
func drawTheme(theme *forms.Theme, target *render.PixmapTarget) error {
	batch, err := render.NewSoftwareBatch(theme.Atlas(), target)
	if err != nil {
		return err
	}

	batch.Begin()

	x, y := 20.0, 20.0

	for _, id := range theme.SkinIDs() {
		skin := theme.Skin(id)
		skin.Draw(batch, forms.NewRect(x, y, 160, 100), forms.White)
		x += 180
		if x > float64(target.Width())-180 {
			x = 20
			y += 120
		}
	}

	x, y = 20, y+120
	for _, id := range theme.IconIDs() {
		icon := theme.Icon(id)
		w, h := icon.Size()
		batch.Draw(x, y, w, h, icon.UVs(false), icon.Color())
		batch.Draw(x+w+8, y, w, h, icon.UVs(true), icon.Color())
		x += 2*w + 32
	}

	x, y = 20, y+80
	for _, id := range theme.SliderIDs() {
		slider := theme.Slider(id)
		drawSlider(batch, slider, x, y, 240)
		y += 48
	}

	return batch.End()
}

// drawSlider draws a slider's parts across the given width, with the
// marker at the midpoint.
func drawSlider(batch forms.SpriteBatch, slider *forms.Slider, x, y, width float64) {
	minCap := slider.MinCap().Region()
	maxCap := slider.MaxCap().Region()
	track := slider.Track().Region()
	marker := slider.Marker().Region()

	c := slider.Color()
	trackW := width - minCap.W - maxCap.W

	batch.Draw(x, y, minCap.W, minCap.H, slider.MinCap().UVs(), c)
	batch.Draw(x+minCap.W, y, trackW, track.H, slider.Track().UVs(), c)
	batch.Draw(x+width-maxCap.W, y, maxCap.W, maxCap.H, slider.MaxCap().UVs(), c)
	batch.Draw(x+width/2-marker.W/2, y-marker.H/4, marker.W, marker.H, slider.Marker().UVs(), c)
}

// drawGamepad presses the first joystick slightly off-center and the
// first button before drawing, so the output shows live state.
func drawGamepad(pad *forms.Gamepad, target *render.PixmapTarget) error {
	batch, err := render.NewSoftwareBatch(pad.Atlas(), target)
	if err != nil {
		return err
	}

	if pad.JoystickCount() > 0 {
		// Nudge the first joystick up and to the right.
		c := pad.JoystickCenter(0)
		r := pad.JoystickRadius(0)
		pad.Touch(c.X+r/2, c.Y-r/2, forms.TouchPress, 0)
	}

	return pad.Draw(batch, forms.White)
}
