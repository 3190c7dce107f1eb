package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/internal/imaging"
	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

// PNG paints the given page and writes the PNG data to the given writer.
//
// The image has one pixel per tablet unit, its size is the viewport size.
func (c *Context) PNG(p *lines.Page, w io.Writer) error {
	img, err := c.Raster(p)
	if err != nil {
		return err
	}

	err = png.Encode(w, img)
	if err != nil {
		return errors.NewIOError(err, "write PNG")
	}
	return nil
}

// Raster paints the given page to an image.
func (c *Context) Raster(p *lines.Page) (*image.RGBA, error) {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return nil, err
	}

	vp := c.viewport(p)
	width := int(math.Max(1, math.Ceil(float64(vp.Width))))
	height := int(math.Max(1, math.Ceil(float64(vp.Height))))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.ZP, draw.Src)

	m := imaging.Translation(-float64(vp.X), -float64(vp.Y))
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetLineJoin(draw2d.RoundJoin)

	err = walkPage(p, func(layer int, l *lines.Line, b geom.Brush) error {
		col := c.Palette.Color(layer, l.Color)
		gc.SetLineCap(lineCap(b.Cap()))

		if b.Constant() {
			gc.SetStrokeColor(withOpacity(col, b.Opacity(l.Points[0])))
			gc.SetLineWidth(float64(geom.LineWidth(b, l)))
			gc.BeginPath()
			x, y := m.Apply(float64(l.Points[0].X), float64(l.Points[0].Y))
			gc.MoveTo(x, y)
			for _, pt := range l.Points {
				x, y = m.Apply(float64(pt.X), float64(pt.Y))
				gc.LineTo(x, y)
			}
			gc.Stroke()
			return nil
		}

		for _, s := range segments(l) {
			gc.SetStrokeColor(withOpacity(col, b.Opacity(s.To)))
			gc.SetLineWidth(float64(b.Width(s.To)))
			gc.BeginPath()
			gc.MoveTo(m.Apply(float64(s.From.X), float64(s.From.Y)))
			gc.LineTo(m.Apply(float64(s.To.X), float64(s.To.Y)))
			gc.Stroke()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dst, nil
}

func lineCap(c geom.Cap) draw2d.LineCap {
	if c == geom.ButtCap {
		return draw2d.ButtCap
	}
	return draw2d.RoundCap
}
