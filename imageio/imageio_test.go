// SPDX-License-Identifier: MIT
package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvrank/imageio"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadrants paints a w×h greyscale image with value a on the top-left and
// bottom-right quarters and b elsewhere (rank 2 for a ≠ ±b).
func quadrants(w, h int, a, b uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x < w/2) == (y < h/2) {
				img.SetGray(x, y, color.Gray{Y: a})
			} else {
				img.SetGray(x, y, color.Gray{Y: b})
			}
		}
	}

	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestDecodeFile_PNGExactValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quad.png")
	writePNG(t, path, quadrants(8, 6, 250, 50))

	m, err := imageio.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Rows(), "rows = height")
	assert.Equal(t, 8, m.Cols(), "cols = width")

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 250.0, v)
	v, err = m.At(0, 7)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
	v, err = m.At(5, 7)
	require.NoError(t, err)
	assert.Equal(t, 250.0, v)

	r, err := rank.EstimateMatrixRank(m)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

func TestDecode_ColorToLuma(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	m, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{76, 150, 29}, m.RowMajor())
}

func TestDecode_JPEG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, quadrants(32, 16, 200, 20), &jpeg.Options{Quality: 95}))

	m, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, m.Rows())
	assert.Equal(t, 32, m.Cols())
}

func TestDecode_MaxDim(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, quadrants(40, 20, 255, 0)))

	m, err := imageio.Decode(bytes.NewReader(buf.Bytes()), imageio.WithMaxDim(10))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 10, m.Cols())

	m, err = imageio.Decode(bytes.NewReader(buf.Bytes()), imageio.WithMaxDim(100))
	require.NoError(t, err)
	assert.Equal(t, 20, m.Rows(), "smaller images are left alone")

	assert.Panics(t, func() { imageio.WithMaxDim(-1) })
}

func TestGrayscale_OffsetBounds(t *testing.T) {
	src := quadrants(4, 4, 9, 1).SubImage(image.Rect(2, 2, 4, 4))
	g, err := imageio.Grayscale(src)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), g.Bounds())

	m, err := imageio.ToMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 9, 9}, m.RowMajor())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := imageio.DecodeFile(filepath.Join(dir, "missing.jpg"))
	assert.ErrorIs(t, err, imageio.ErrDecode)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bogus := filepath.Join(dir, "bogus.jpg")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = imageio.DecodeFile(bogus)
	assert.ErrorIs(t, err, imageio.ErrDecode)
	assert.Contains(t, err.Error(), "bogus.jpg")

	_, err = imageio.Grayscale(image.NewGray(image.Rect(0, 0, 0, 3)))
	assert.ErrorIs(t, err, imageio.ErrDecode)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c.jpg", "a.jpg", "b.png", "d.JPG", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "e.jpg"), 0o755))

	got, err := imageio.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "c.jpg")}, got)

	got, err = imageio.Discover(dir, ".jpg", ".png")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.jpg"),
	}, got)

	_, err = imageio.Discover(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, imageio.ErrDiscover)
}
