package symstyle

import (
	"errors"
	"image"
	"testing"
	"time"
)

func waitForHandle(t *testing.T, get UniformFunc) any {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if v := get(); v != nil {
			return v
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("texture handle never resolved")
	return nil
}

func TestImageSymbolTextureLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	res, err := CompileStyle(
		&Style{Symbol: Symbol{Type: SymbolImage, Src: "icon.png"}},
		WithImageLoader(func(src string) (image.Image, error) {
			if src != "icon.png" {
				t.Errorf("loader got src %q", src)
			}
			return img, nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Without a texture creator the handle resolves to the decoded RGBA.
	got := waitForHandle(t, res.Uniforms["u_texture"])
	if got != img {
		t.Errorf("texture handle = %T, want the decoded *image.RGBA", got)
	}
}

func TestImageSymbolLoadFailure(t *testing.T) {
	res, err := CompileStyle(
		&Style{Symbol: Symbol{Type: SymbolImage, Src: "gone.png"}},
		WithImageLoader(func(string) (image.Image, error) {
			return nil, errors.New("not found")
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	// A failed load leaves the handle empty rather than failing the style.
	time.Sleep(20 * time.Millisecond)
	if v := res.Uniforms["u_texture"](); v != nil {
		t.Errorf("texture handle = %v, want nil after load failure", v)
	}
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := toRGBA(rgba); got != rgba {
		t.Error("toRGBA did not pass an RGBA image through")
	}

	gray := image.NewGray(image.Rect(2, 2, 6, 5))
	got := toRGBA(gray)
	if b := got.Bounds(); b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("toRGBA bounds = %v, want 4x3 at origin", b)
	}
}
