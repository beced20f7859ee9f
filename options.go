package forms

import "io/fs"

// Option configures theme and gamepad loading.
// Use functional options to customize load behavior.
//
// Example:
//
//	// Default: read from the OS filesystem, cache by path
//	theme, err := forms.LoadTheme("default.theme")
//
//	// Load from an embedded filesystem, bypassing the cache
//	theme, err := forms.LoadTheme("default.theme",
//	    forms.WithFS(assets), forms.WithoutCache())
type Option func(*loadOptions)

// loadOptions holds optional configuration for loading.
type loadOptions struct {
	fsys    fs.FS
	noCache bool
}

// newLoadOptions applies opts over the defaults.
func newLoadOptions(opts []Option) loadOptions {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFS loads theme and gamepad files (and the textures they reference)
// from fsys instead of the OS filesystem. Texture paths inside the files
// are resolved relative to the file's directory in either case.
func WithFS(fsys fs.FS) Option {
	return func(o *loadOptions) {
		o.fsys = fsys
	}
}

// WithoutCache bypasses the shared theme cache for this load.
// Each call parses the file and decodes the atlas again, returning a
// fresh Theme. Use this when the file may have changed on disk.
func WithoutCache() Option {
	return func(o *loadOptions) {
		o.noCache = true
	}
}
