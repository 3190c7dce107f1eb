package render

import (
	"github.com/akeil/rmlines/pkg/lines"
)

func pt(x, y, width, pressure float32) lines.Point {
	return lines.Point{X: x, Y: y, Speed: 0.3, Direction: 0.5, Width: width, Pressure: pressure}
}

func line(t lines.BrushType, c lines.BrushColor, pts ...lines.Point) lines.Line {
	return lines.Line{BrushType: t, Color: c, BaseSize: 2, Points: pts}
}

func page(layers ...[]lines.Line) *lines.Page {
	p := &lines.Page{}
	for _, l := range layers {
		p.Layers = append(p.Layers, lines.Layer{Lines: l})
	}
	return p
}

func document(pages ...*lines.Page) *lines.Document {
	d := &lines.Document{Version: lines.V5}
	for _, p := range pages {
		d.Pages = append(d.Pages, *p)
	}
	return d
}

// mixedPage has a fineliner, a ballpoint with two segments, a highlighter
// with two segments and lines that are never drawn.
func mixedPage() *lines.Page {
	return page(
		[]lines.Line{
			line(lines.Fineliner, lines.Black, pt(10, 20, 2, 0.5), pt(30, 40, 3, 0.5), pt(50, 20, 4, 0.5)),
			line(lines.Eraser, lines.White, pt(0, 0, 10, 1), pt(5, 5, 10, 1)),
			line(lines.BallPoint, lines.Grey),
		},
		[]lines.Line{
			line(lines.BallPoint, lines.Grey, pt(100, 100, 2, 0.5), pt(110, 100, 3, 0.5), pt(120, 110, 4, 1)),
			line(lines.EraseArea, lines.Black, pt(200, 200, 10, 1)),
			line(lines.Highlighter, lines.Black, pt(20, 50, 20, 1), pt(60, 50, 20, 1), pt(60, 90, 20, 1)),
		},
	)
}
