package geom

import (
	"math"

	"github.com/akeil/rmlines/pkg/lines"
)

// BoundingBox accumulates the extent of points, lines and pages.
//
// A new BoundingBox is unbounded (min at +Inf, max at -Inf)
// until the first point is added.
type BoundingBox struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	inf := float32(math.Inf(1))
	return BoundingBox{
		MinX: inf,
		MinY: inf,
		MaxX: -inf,
		MaxY: -inf,
	}
}

// IsEmpty tells if nothing was added to the box.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width is the horizontal extent of the box.
func (b BoundingBox) Width() float32 {
	return b.MaxX - b.MinX
}

// Height is the vertical extent of the box.
func (b BoundingBox) Height() float32 {
	return b.MaxY - b.MinY
}

// EnclosePoint returns a box that is widened to contain the given point.
func (b BoundingBox) EnclosePoint(p lines.Point) BoundingBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// EncloseLine returns a box that contains all points of the line.
func (b BoundingBox) EncloseLine(l *lines.Line) BoundingBox {
	for _, p := range l.Points {
		b = b.EnclosePoint(p)
	}
	return b
}

// EnclosePage returns a box that contains all lines on all layers of the
// given page.
func (b BoundingBox) EnclosePage(p *lines.Page) BoundingBox {
	for i := range p.Layers {
		for j := range p.Layers[i].Lines {
			l := &p.Layers[i].Lines[j]
			if l.IsEmpty() {
				continue
			}
			b = b.EncloseLine(l)
		}
	}
	return b
}

// Viewport is a visible rectangle in tablet coordinates.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// minExtent is the smallest width or height of a cropped viewport,
// e.g. for a page with a single dot.
const minExtent = 1

// DeviceViewport covers the complete display of the tablet.
var DeviceViewport = Viewport{0, 0, lines.MaxWidth, lines.MaxHeight}

// PageViewport determines the visible area of a page.
//
// With autoCrop, the viewport is the bounding box of all lines on that page.
// Pages without points, and all pages with autoCrop disabled,
// get the DeviceViewport.
func PageViewport(p *lines.Page, autoCrop bool) Viewport {
	if !autoCrop {
		return DeviceViewport
	}

	b := NewBoundingBox().EnclosePage(p)
	if b.IsEmpty() {
		return DeviceViewport
	}

	w, h := b.Width(), b.Height()
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	return Viewport{b.MinX, b.MinY, w, h}
}
