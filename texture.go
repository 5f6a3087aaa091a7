package symstyle

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// textureHandle holds the asynchronously produced symbol texture. The
// uniform callback reads it on every draw; nil means the resource is not
// ready yet, and the rendering collaborator decides what to do then.
type textureHandle struct {
	value atomic.Value // any: gpucontext texture or *image.RGBA
}

func (h *textureHandle) get() any {
	return h.value.Load()
}

// loadSymbolTexture starts a fire-and-forget load of the symbol image.
// The decoded image is converted to RGBA and, when a texture creator is
// configured, uploaded to the GPU; otherwise the *image.RGBA itself is
// handed out. Load failures are logged and leave the handle empty.
func loadSymbolTexture(src string, opts *compileOptions) *textureHandle {
	h := &textureHandle{}
	loader := opts.loadImage
	creator := opts.textures

	go func() {
		img, err := loader(src)
		if err != nil {
			Logger().Warn("symbol image load failed", slog.String("src", src), slog.Any("error", err))
			return
		}
		rgba := toRGBA(img)
		if creator == nil {
			h.value.Store(rgba)
			return
		}
		bounds := rgba.Bounds()
		tex, err := creator.NewTextureFromRGBA(bounds.Dx(), bounds.Dy(), rgba.Pix)
		if err != nil {
			Logger().Warn("symbol texture upload failed", slog.String("src", src), slog.Any("error", err))
			return
		}
		h.value.Store(tex)
		Logger().Debug("symbol texture ready",
			slog.String("src", src), slog.Int("width", bounds.Dx()), slog.Int("height", bounds.Dy()))
	}()

	return h
}

// loadImage loads an image from the given file path, auto-detecting the
// format. PNG and JPEG decoders are registered.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("symstyle: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("symstyle: decode image: %w", err)
	}
	return img, nil
}

// toRGBA converts a decoded image to tightly packed RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
