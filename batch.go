package forms

// SpriteBatch is the boundary between forms and the host's renderer.
// The theme engine and the gamepad emit textured quads through it; the host
// application decides how they reach the screen.
//
// A batch groups quads that share the theme's atlas texture. Calls follow
// the Begin / Draw* / End sequence; Draw outside an active batch is a
// programming error and implementations are free to drop the quad.
//
// The render package provides two implementations: SoftwareBatch (CPU
// reference, composites into an *image.RGBA) and GPUBatch (receives its
// device from the host application).
type SpriteBatch interface {
	// Begin starts a new batch of sprites.
	Begin()

	// Draw adds a quad at the pixel-space destination (x, y, w, h),
	// sampling the atlas at uv and modulating by tint.
	Draw(x, y, w, h float64, uv UVs, tint RGBA)

	// End submits the batch. It returns an error if the batch was not
	// active or if submission fails.
	End() error
}
