// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/forms"
)

func TestNewGPUBatchNilHandle(t *testing.T) {
	target := NewPixmapTarget(8, 8)
	if _, err := NewGPUBatch(nil, testAtlas(), target); err == nil {
		t.Error("nil device handle should error")
	}
	if _, err := NewGPUBatch(NullDeviceHandle{}, testAtlas(), nil); err == nil {
		t.Error("nil target should error")
	}
}

func TestGPUBatchSoftwareFallback(t *testing.T) {
	target := NewPixmapTarget(16, 16)
	batch, err := NewGPUBatch(NullDeviceHandle{}, testAtlas(), target)
	if err != nil {
		t.Fatal(err)
	}

	uv := forms.GenerateUVs(8, 8, 0, 0, 4, 8)

	batch.Begin()
	batch.Draw(2, 3, 4, 8, uv, forms.White)
	if err := batch.End(); err != nil {
		t.Fatal(err)
	}

	// CPU target: the fallback composites like SoftwareBatch.
	if got := target.GetPixel(3, 5); !isColor(got, 255, 0, 0, 255) {
		t.Errorf("pixel inside sprite = %v, want red", got)
	}
}

// gpuOnlyTarget simulates a target without CPU pixel access.
type gpuOnlyTarget struct {
	*PixmapTarget
}

func (gpuOnlyTarget) Pixels() []byte { return nil }

func TestGPUBatchGPUOnlyTarget(t *testing.T) {
	target := gpuOnlyTarget{NewPixmapTarget(8, 8)}
	batch, err := NewGPUBatch(NullDeviceHandle{}, testAtlas(), target)
	if err != nil {
		t.Fatal(err)
	}

	batch.Begin()
	if err := batch.End(); err == nil {
		t.Error("GPU-only target should report unimplemented")
	}
}
