package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/rmlines/pkg/lines"
)

func TestPNG(t *testing.T) {
	p := page([]lines.Line{
		line(lines.Fineliner, lines.Black, pt(100, 200, 4, 0.5), pt(300, 250, 4, 0.5)),
		line(lines.BallPoint, lines.Black, pt(100, 250, 2, 0.5), pt(300, 200, 4, 1)),
	})

	c := NewContext(nil)
	var buf bytes.Buffer
	require.NoError(t, c.PNG(p, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	c.AutoCrop = false
	buf.Reset()
	require.NoError(t, c.PNG(p, &buf))
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1404, img.Bounds().Dx())
	assert.Equal(t, 1872, img.Bounds().Dy())
}

func TestRaster(t *testing.T) {
	p := page([]lines.Line{
		line(lines.Fineliner, lines.Black, pt(0, 50, 10, 0.5), pt(100, 50, 10, 0.5)),
	})

	c := NewContext(nil)
	c.AutoCrop = false
	img, err := c.Raster(p)
	require.NoError(t, err)

	// on the line
	r, g, b, _ := img.At(50, 50).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	// background
	r, g, b, _ = img.At(50, 500).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestRasterBackground(t *testing.T) {
	c := NewContext(nil)
	c.Background = "not-a-color"
	_, err := c.Raster(page())
	assert.Error(t, err)
}
