package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vortex"
)

// ErrInvalidSize is returned for non-positive render dimensions.
var ErrInvalidSize = errors.New("preview: width and height must be > 0")

// Render evaluates the graph at every pixel of a width x height grid and
// returns the result as an image. Pixel centers map to fragment
// coordinates, row 0 at v=1 so the image matches what the generated
// shader draws.
func Render(g *vortex.Graph, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, width, height)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		v := 1 - (float32(y)+0.5)/float32(height)
		for x := 0; x < width; x++ {
			u := (float32(x) + 0.5) / float32(width)
			val, err := g.Eval(u, v)
			if err != nil {
				return nil, err
			}
			c := val.Convert(vortex.TypeColor)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(c.V[0]),
				G: channelByte(c.V[1]),
				B: channelByte(c.V[2]),
				A: channelByte(c.V[3]),
			})
		}
	}
	return img, nil
}

// Thumbnail scales an image down so its larger dimension equals size,
// preserving aspect ratio. Images already small enough are returned
// unchanged.
func Thumbnail(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return img
	}
	if w >= h {
		h = h * size / w
		w = size
	} else {
		w = w * size / h
		h = size
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG writes an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// channelByte converts a linear [0, 1] channel to 8 bits with clamping.
func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
