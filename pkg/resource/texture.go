// Package resource provides the shared, lockable texture used by image-like
// nodes and draw commands.
//
// A *Texture is shared by pointer: any number of nodes and commands may hold
// it and it lives as long as the longest holder. Pixels and metadata are
// guarded by a read/write lock because a loader goroutine may populate or
// swap them while the UI thread draws. Readers hold the lock only for the
// duration of a single read.
package resource

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// TextureInfo is a point-in-time copy of a texture's metadata.
type TextureInfo struct {
	Name    string
	Width   int
	Height  int
	Loaded  bool
	Version uint64
}

// Texture is a named RGBA pixel buffer shared between nodes and commands.
type Texture struct {
	name string

	mu      sync.RWMutex
	pixels  *image.RGBA
	version uint64
}

// NewTexture returns an empty, unloaded texture. Commands still reference
// it while it is unloaded; the renderer decides what to sample until
// pixels are supplied with Replace.
func NewTexture(name string) *Texture {
	return &Texture{name: name}
}

// NewTextureFromImage returns a loaded texture holding a copy of img.
func NewTextureFromImage(name string, img image.Image) *Texture {
	t := NewTexture(name)
	t.Replace(img)
	return t
}

// Name returns the texture name. It never changes.
func (t *Texture) Name() string {
	return t.name
}

// Replace swaps the pixel data for a copy of img converted to RGBA.
// Passing nil unloads the texture.
func (t *Texture) Replace(img image.Image) {
	var rgba *image.RGBA
	if img != nil {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	}

	t.mu.Lock()
	t.pixels = rgba
	t.version++
	t.mu.Unlock()
}

// Resize scales the current pixels to w×h with bilinear filtering.
// It is a no-op on an unloaded texture or a non-positive size.
func (t *Texture) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pixels == nil {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), t.pixels, t.pixels.Bounds(), draw.Src, nil)
	t.pixels = dst
	t.version++
}

// Info returns a copy of the texture metadata.
func (t *Texture) Info() TextureInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info := TextureInfo{Name: t.name, Version: t.version, Loaded: t.pixels != nil}
	if t.pixels != nil {
		b := t.pixels.Bounds()
		info.Width, info.Height = b.Dx(), b.Dy()
	}
	return info
}

// Size returns the pixel dimensions, zero when unloaded.
func (t *Texture) Size() (width, height int) {
	info := t.Info()
	return info.Width, info.Height
}

// IsLoaded reports whether the texture holds pixel data.
func (t *Texture) IsLoaded() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pixels != nil
}

// WithPixels calls fn with the pixel buffer under the read lock and reports
// whether the texture was loaded. fn must not retain the buffer or block.
func (t *Texture) WithPixels(fn func(pixels *image.RGBA)) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.pixels == nil {
		return false
	}
	fn(t.pixels)
	return true
}
