package forms

// recordBatch records Draw calls for inspection in tests.
type recordBatch struct {
	begun bool
	ended bool
	calls []recordedDraw
}

type recordedDraw struct {
	x, y, w, h float64
	uv         UVs
	tint       RGBA
}

func (b *recordBatch) Begin() {
	b.begun = true
	b.calls = nil
}

func (b *recordBatch) Draw(x, y, w, h float64, uv UVs, tint RGBA) {
	b.calls = append(b.calls, recordedDraw{x: x, y: y, w: w, h: h, uv: uv, tint: tint})
}

func (b *recordBatch) End() error {
	b.ended = true
	return nil
}

var _ SpriteBatch = (*recordBatch)(nil)
