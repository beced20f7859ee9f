// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/forms"
)

// Filter selects the sampling filter used when a sprite is drawn at a
// size different from its atlas region.
type Filter int

const (
	// FilterNearest is nearest-neighbor sampling. Crisp for pixel-art
	// themes and integer scales.
	FilterNearest Filter = iota

	// FilterBilinear is bilinear sampling. Smoother for arbitrary scales.
	FilterBilinear
)

// SoftwareBatch draws themed sprites on the CPU. It samples sprite
// regions from the atlas, scales them to their destination rectangles,
// modulates by the tint color, and composites source-over into a
// CPU-accessible render target.
//
// SoftwareBatch implements forms.SpriteBatch. It is not safe for
// concurrent use.
type SoftwareBatch struct {
	atlas  *image.RGBA
	tw, th float64

	target RenderTarget
	pix    []byte
	stride int
	w, h   int

	filter Filter
	open   bool
	err    error
}

// NewSoftwareBatch creates a batch drawing sprites from atlas into
// target. The target must be CPU-accessible and RGBA8. The atlas is
// converted to RGBA once up front; it is not modified.
func NewSoftwareBatch(atlas image.Image, target RenderTarget) (*SoftwareBatch, error) {
	if atlas == nil {
		return nil, errors.New("render: nil atlas")
	}
	if target == nil {
		return nil, errors.New("render: nil target")
	}
	if target.Pixels() == nil {
		return nil, errors.New("render: target has no CPU pixel access")
	}
	if f := target.Format(); f != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("render: unsupported target format %v", f)
	}

	rgba := toRGBA(atlas)
	return &SoftwareBatch{
		atlas:  rgba,
		tw:     float64(rgba.Bounds().Dx()),
		th:     float64(rgba.Bounds().Dy()),
		target: target,
		pix:    target.Pixels(),
		stride: target.Stride(),
		w:      target.Width(),
		h:      target.Height(),
	}, nil
}

// SetFilter selects the sampling filter for subsequent draws.
func (b *SoftwareBatch) SetFilter(f Filter) {
	b.filter = f
}

// Begin starts a batch of sprite draws.
func (b *SoftwareBatch) Begin() {
	b.open = true
}

// Draw composites one sprite: the atlas region identified by uv, scaled
// to the w by h rectangle at x, y, modulated by tint. Calls outside a
// Begin/End pair are recorded as an error returned by End.
func (b *SoftwareBatch) Draw(x, y, w, h float64, uv forms.UVs, tint forms.RGBA) {
	if !b.open {
		if b.err == nil {
			b.err = errors.New("render: Draw outside Begin/End")
		}
		return
	}
	if w <= 0 || h <= 0 || tint.A <= 0 {
		return
	}

	src := b.sourceRect(uv)
	if src.Empty() {
		return
	}

	dw := int(math.Round(w))
	dh := int(math.Round(h))
	if dw <= 0 || dh <= 0 {
		return
	}

	// Scale the atlas region to the destination size, then tint and
	// composite by hand. The scratch image is premultiplied RGBA, like
	// the target.
	tmp := image.NewRGBA(image.Rect(0, 0, dw, dh))
	b.scaler().Scale(tmp, tmp.Bounds(), b.atlas, src, xdraw.Src, nil)

	b.composite(tmp, int(math.Round(x)), int(math.Round(y)), tint)
}

// End finishes the batch and reports any draw errors, including Draw
// calls made outside a Begin/End pair since the last End.
func (b *SoftwareBatch) End() error {
	if !b.open {
		return errors.New("render: End without Begin")
	}
	b.open = false
	err := b.err
	b.err = nil
	return err
}

var _ forms.SpriteBatch = (*SoftwareBatch)(nil)

// sourceRect inverts UV coordinates back to the pixel region of the
// atlas. V is flipped: v1 marks the top edge measured from the bottom.
func (b *SoftwareBatch) sourceRect(uv forms.UVs) image.Rectangle {
	x := uv.U1 * b.tw
	y := (1 - uv.V1) * b.th
	w := (uv.U2 - uv.U1) * b.tw
	h := (uv.V1 - uv.V2) * b.th

	return image.Rect(
		int(math.Round(x)),
		int(math.Round(y)),
		int(math.Round(x+w)),
		int(math.Round(y+h)),
	)
}

func (b *SoftwareBatch) scaler() xdraw.Scaler {
	if b.filter == FilterBilinear {
		return xdraw.BiLinear
	}
	return xdraw.NearestNeighbor
}

// composite blends src into the target at dx, dy using source-over with
// the tint applied. Both images are premultiplied, so tinting multiplies
// each channel and the whole pixel by the tint alpha.
func (b *SoftwareBatch) composite(src *image.RGBA, dx, dy int, tint forms.RGBA) {
	tr := clamp01(tint.R)
	tg := clamp01(tint.G)
	tb := clamp01(tint.B)
	ta := clamp01(tint.A)

	bounds := src.Bounds()
	for sy := 0; sy < bounds.Dy(); sy++ {
		py := dy + sy
		if py < 0 || py >= b.h {
			continue
		}
		for sx := 0; sx < bounds.Dx(); sx++ {
			px := dx + sx
			if px < 0 || px >= b.w {
				continue
			}

			si := src.PixOffset(sx, sy)
			sa := float64(src.Pix[si+3]) * ta
			if sa <= 0 {
				continue
			}
			sr := float64(src.Pix[si+0]) * tr * ta
			sg := float64(src.Pix[si+1]) * tg * ta
			sb := float64(src.Pix[si+2]) * tb * ta

			di := py*b.stride + px*4
			inv := 1 - sa/255

			b.pix[di+0] = clamp255(sr + float64(b.pix[di+0])*inv)
			b.pix[di+1] = clamp255(sg + float64(b.pix[di+1])*inv)
			b.pix[di+2] = clamp255(sb + float64(b.pix[di+2])*inv)
			b.pix[di+3] = clamp255(sa + float64(b.pix[di+3])*inv)
		}
	}
}

// toRGBA returns img as *image.RGBA, converting only if needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	return rgba
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
