// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws themed sprites to render targets.
//
// The forms package itself only produces descriptors: pixel regions, UV
// coordinates, and blend colors. This package turns those descriptors
// into pixels. Two batch implementations are provided:
//
//   - SoftwareBatch samples the atlas on the CPU and composites into a
//     CPU-backed target. It needs no GPU and is the reference
//     implementation.
//   - GPUBatch uses a GPU device provided by the host application. It
//     currently falls back to software compositing for CPU targets.
//
// Both implement the forms.SpriteBatch interface, so themes, skins, and
// gamepads can draw through either.
package render
