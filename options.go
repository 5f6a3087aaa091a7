package symstyle

import (
	"image"

	"github.com/gogpu/gpucontext"
)

// Option configures style compilation.
// Use functional options to customize CompileStyle behavior.
//
// Example:
//
//	// Default: decoded symbol images stay on the CPU
//	res, err := symstyle.CompileStyle(style)
//
//	// GPU texture upload (dependency injection)
//	res, err := symstyle.CompileStyle(style, symstyle.WithTextureCreator(creator))
type Option func(*compileOptions)

// compileOptions holds optional configuration for style compilation.
type compileOptions struct {
	textures  gpucontext.TextureCreator
	loadImage func(src string) (image.Image, error)
}

// defaultOptions returns the default compile options.
func defaultOptions() compileOptions {
	return compileOptions{
		textures:  nil,       // decoded images are handed out as-is
		loadImage: loadImage, // file-system loader
	}
}

// WithTextureCreator routes image-symbol textures through the given
// creator, typically obtained from a gpucontext.TextureDrawer. When set,
// the texture uniform yields the created GPU texture handle once the
// upload completes.
func WithTextureCreator(tc gpucontext.TextureCreator) Option {
	return func(o *compileOptions) {
		o.textures = tc
	}
}

// WithImageLoader replaces the source-path image loader used for image
// symbols. The default reads PNG and JPEG files from the file system.
//
// Example:
//
//	res, err := symstyle.CompileStyle(style, symstyle.WithImageLoader(
//	    func(src string) (image.Image, error) {
//	        return fetchFromAtlas(src)
//	    },
//	))
func WithImageLoader(fn func(src string) (image.Image, error)) Option {
	return func(o *compileOptions) {
		o.loadImage = fn
	}
}
