// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/katalvlaran/lvrank/matrix"
)

// DecodeFile opens path and decodes it with Decode.
// Every failure matches ErrDecode; a missing file also matches fs.ErrNotExist.
func DecodeFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Decode reads an image from r and returns its greyscale intensity matrix.
func Decode(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	gray, err := Grayscale(img, opts...)
	if err != nil {
		return nil, err
	}

	return ToMatrix(gray)
}

// Grayscale converts img to 8-bit luma, downsampling first when WithMaxDim
// asks for it. The result always starts at the origin.
func Grayscale(img image.Image, opts ...Option) (*image.Gray, error) {
	o := gatherOptions(opts...)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, w, h)
	}

	if longest := max(w, h); o.maxDim > 0 && longest > o.maxDim {
		nw := max(1, w*o.maxDim/longest)
		nh := max(1, h*o.maxDim/longest)
		dst := image.NewGray(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

		return dst, nil
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst, nil
}

// ToMatrix copies the pixels of g into a rows=height × cols=width matrix.
func ToMatrix(g *image.Gray) (*matrix.Dense, error) {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, w, h)
	}

	data := make([]float64, w*h)
	var x, y, row int
	for y = 0; y < h; y++ {
		row = g.PixOffset(b.Min.X, b.Min.Y+y)
		for x = 0; x < w; x++ {
			data[y*w+x] = float64(g.Pix[row+x])
		}
	}

	return matrix.NewFromData(h, w, data)
}
