// Package forms provides themed UI building blocks for Go.
//
// # Overview
//
// forms is the theming layer of the GoGPU UI stack. It parses declarative
// theme files into renderable sprite-atlas descriptors (nine-patch skins,
// icons, cursors, sliders) that GUI controls use to draw themselves, and it
// provides a virtual gamepad widget that renders on-screen joysticks and
// buttons and maps touch input to button and joystick state.
//
// # Quick Start
//
//	import "github.com/gogpu/forms"
//
//	theme, err := forms.LoadTheme("default.theme")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	style := theme.Style("button")
//	overlay := style.Overlay(forms.StateNormal)
//	skin := overlay.Skin() // nine-patch sprites for the control frame
//
// # Rendering
//
// forms does not rasterize anything itself. Controls and the gamepad emit
// textured quads through the SpriteBatch interface; the host application
// supplies the implementation. The render package ships a CPU reference
// batch (render.SoftwareBatch) and a GPU handle that receives its device
// from the host (render.GPUBatch), following the gogpu integration model.
//
// # Coordinate System
//
// Pixel-space regions use standard computer graphics coordinates: origin
// (0,0) at top-left, X increasing right, Y increasing down. UV coordinates
// generated from those regions use a GL-style bottom-left origin, so V is
// flipped relative to pixel Y.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Theme, Style, Skin, ImageList, Gamepad, SpriteBatch
//   - render/: render targets, device handles, reference sprite batches
//   - backend/native/: atlas texture residency via gogpu/wgpu
//   - cache/: the shared LRU cache for themes and fonts
package forms

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
