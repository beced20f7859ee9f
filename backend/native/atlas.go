// Package native uploads theme atlases to the GPU using gogpu/wgpu.
package native

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// Atlas texture errors.
var (
	// ErrNilDevice is returned when creating a texture without a HAL device.
	ErrNilDevice = errors.New("native: HAL device is nil")

	// ErrNilQueue is returned when uploading without a HAL queue.
	ErrNilQueue = errors.New("native: HAL queue is nil")

	// ErrNilAtlas is returned when creating a texture from a nil image.
	ErrNilAtlas = errors.New("native: atlas image is nil")

	// ErrAtlasDestroyed is returned when operating on a destroyed texture.
	ErrAtlasDestroyed = errors.New("native: atlas texture has been destroyed")

	// ErrInvalidAtlasSize is returned when the atlas dimensions are invalid.
	ErrInvalidAtlasSize = errors.New("native: invalid atlas size")
)

// AtlasTexture is a theme atlas uploaded to the GPU.
//
// It wraps a hal.Texture holding the RGBA atlas pixels, ready to be bound
// as a sampled texture by a sprite pipeline. The default view is created
// lazily via sync.Once, following the wgpu pattern of on-demand default
// views.
//
// AtlasTexture is safe for concurrent read access. Destroy should be
// called once, when the theme is unloaded.
type AtlasTexture struct {
	mu sync.RWMutex

	texture hal.Texture
	device  hal.Device

	width  uint32
	height uint32
	label  string

	viewOnce sync.Once
	view     hal.TextureView
	viewErr  error

	destroyed bool
}

// CreateAtlasTexture creates a GPU texture from the atlas image and
// uploads its pixels through the queue. The texture is RGBA8, one mip
// level, usable as a sampled texture.
func CreateAtlasTexture(device hal.Device, queue hal.Queue, atlas *image.RGBA, label string) (*AtlasTexture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if atlas == nil {
		return nil, ErrNilAtlas
	}

	bounds := atlas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidAtlasSize, w, h)
	}

	desc := &hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        types.TextureFormatRGBA8Unorm,
		Usage:         types.TextureUsageTextureBinding | types.TextureUsageCopyDst,
	}

	texture, err := device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("native: create atlas texture: %w", err)
	}

	dst := &hal.ImageCopyTexture{
		Texture:  texture,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   types.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(atlas.Stride),
		RowsPerImage: uint32(h),
	}
	size := &hal.Extent3D{
		Width:              uint32(w),
		Height:             uint32(h),
		DepthOrArrayLayers: 1,
	}
	queue.WriteTexture(dst, atlas.Pix, layout, size)

	return &AtlasTexture{
		texture: texture,
		device:  device,
		width:   uint32(w),
		height:  uint32(h),
		label:   label,
	}, nil
}

// Label returns the texture's debug label.
func (t *AtlasTexture) Label() string { return t.label }

// Width returns the atlas width in pixels.
func (t *AtlasTexture) Width() uint32 { return t.width }

// Height returns the atlas height in pixels.
func (t *AtlasTexture) Height() uint32 { return t.height }

// Raw returns the underlying HAL texture handle, or nil if the texture
// has been destroyed.
func (t *AtlasTexture) Raw() hal.Texture {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.texture
}

// IsDestroyed reports whether the texture has been destroyed.
func (t *AtlasTexture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// View returns the default texture view covering the whole atlas,
// creating it lazily on first call. Safe for concurrent use; the view is
// created exactly once.
func (t *AtlasTexture) View() (hal.TextureView, error) {
	t.mu.RLock()
	if t.destroyed {
		t.mu.RUnlock()
		return nil, ErrAtlasDestroyed
	}
	t.mu.RUnlock()

	t.viewOnce.Do(func() {
		t.view, t.viewErr = t.createView()
	})

	if t.viewErr != nil {
		return nil, t.viewErr
	}
	return t.view, nil
}

// createView creates the default view. Zero descriptor values inherit
// from the texture.
func (t *AtlasTexture) createView() (hal.TextureView, error) {
	t.mu.RLock()
	device := t.device
	texture := t.texture
	destroyed := t.destroyed
	t.mu.RUnlock()

	if destroyed {
		return nil, ErrAtlasDestroyed
	}

	desc := &hal.TextureViewDescriptor{
		Label:           t.label + " (default view)",
		Format:          types.TextureFormatUndefined,
		Dimension:       types.TextureViewDimensionUndefined,
		Aspect:          types.TextureAspectAll,
		BaseMipLevel:    0,
		MipLevelCount:   0,
		BaseArrayLayer:  0,
		ArrayLayerCount: 0,
	}

	view, err := device.CreateTextureView(texture, desc)
	if err != nil {
		return nil, fmt.Errorf("native: create atlas view: %w", err)
	}
	return view, nil
}

// Destroy releases the texture and its default view. Destroy is
// idempotent; further use of the texture returns ErrAtlasDestroyed.
func (t *AtlasTexture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return
	}
	t.destroyed = true

	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	t.device.DestroyTexture(t.texture)
}
