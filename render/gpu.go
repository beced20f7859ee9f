// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"github.com/gogpu/forms"
)

// GPUBatch draws themed sprites using a GPU device provided by the host
// application.
//
// The host (e.g. a gogpu.App) implements DeviceHandle and passes it in;
// GPUBatch does NOT create its own device. Sprite quads accumulated
// between Begin and End are meant to be submitted as a single instanced
// draw over the uploaded atlas texture.
//
// The GPU submission path is not implemented yet: CPU-accessible targets
// fall back to SoftwareBatch, and GPU-only targets return an error from
// End. The API is stable so hosts can integrate now and gain the GPU
// path transparently.
type GPUBatch struct {
	handle DeviceHandle

	// fallback performs CPU compositing for CPU-accessible targets.
	fallback *SoftwareBatch
}

// NewGPUBatch creates a batch drawing sprites from atlas into target
// using the host's GPU device.
func NewGPUBatch(handle DeviceHandle, atlas image.Image, target RenderTarget) (*GPUBatch, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}
	if target == nil {
		return nil, errors.New("render: nil target")
	}

	b := &GPUBatch{handle: handle}

	if target.Pixels() != nil {
		fb, err := NewSoftwareBatch(atlas, target)
		if err != nil {
			return nil, err
		}
		b.fallback = fb
	}
	return b, nil
}

// Begin starts a batch of sprite draws.
func (b *GPUBatch) Begin() {
	if b.fallback != nil {
		b.fallback.Begin()
	}
}

// Draw adds one sprite quad to the batch.
func (b *GPUBatch) Draw(x, y, w, h float64, uv forms.UVs, tint forms.RGBA) {
	if b.fallback != nil {
		b.fallback.Draw(x, y, w, h, uv, tint)
	}
}

// End submits the batch. GPU-only targets are not supported yet.
func (b *GPUBatch) End() error {
	if b.fallback != nil {
		return b.fallback.End()
	}
	return errors.New("render: GPU-only targets not yet implemented")
}

var _ forms.SpriteBatch = (*GPUBatch)(nil)
