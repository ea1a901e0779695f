package ui

import (
	"github.com/go-drift/uicore/pkg/rendering"
	"github.com/go-drift/uicore/pkg/resource"
)

// Image draws its screen bounds filled with the widget color, sampled from
// an optional texture. Layout and update are the widget defaults.
type Image struct {
	Widget
	texture *resource.Texture
}

func (img *Image) kind() NodeKind { return KindImage }

// Texture returns the texture, or nil when the image is untextured.
func (img *Image) Texture() *resource.Texture { return img.texture }

// SetTexture replaces the texture. Nil makes the image untextured.
func (img *Image) SetTexture(t *resource.Texture) { img.texture = t }

// Draw emits one filled rect and commits it with the image's texture.
func (img *Image) Draw(dc *rendering.DrawingContext) {
	dc.PushRectFilled(img.ScreenBounds(), nil, img.Color())
	dc.Commit(rendering.Geometry, img.texture)
}

// ImageBuilder builds an Image.
type ImageBuilder struct {
	widgetBuilder *WidgetBuilder
	texture       *resource.Texture
}

// NewImageBuilder returns a builder for an Image with the widget settings
// of wb. A nil wb uses defaults.
func NewImageBuilder(wb *WidgetBuilder) *ImageBuilder {
	return &ImageBuilder{widgetBuilder: orDefault(wb)}
}

// WithTexture sets the texture.
func (b *ImageBuilder) WithTexture(t *resource.Texture) *ImageBuilder {
	b.texture = t
	return b
}

// WithOptTexture sets the texture when ok is true and clears it otherwise.
func (b *ImageBuilder) WithOptTexture(t *resource.Texture, ok bool) *ImageBuilder {
	if !ok {
		t = nil
	}
	b.texture = t
	return b
}

// Build adds the image to ui and returns its handle.
func (b *ImageBuilder) Build(ui *UserInterface) Handle {
	img := &Image{Widget: b.widgetBuilder.Build(), texture: b.texture}
	return b.widgetBuilder.add(ui, img)
}
