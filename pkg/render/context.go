package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

// DefaultHighlight is the color for highlighter annotations.
const DefaultHighlight = "#ffff00"

// Context holds parameters for rendering operations.
//
// A Context is not modified by rendering, so the same Context can be used
// for several documents.
type Context struct {
	// Palette assigns colors to lines, per layer.
	Palette *Palette
	// AutoCrop limits the output to the area covered by lines.
	// If false, the full display size of the tablet is used.
	AutoCrop bool
	// Debug adds a tooltip with the decoded values to each SVG element.
	Debug bool
	// Highlight is the color for highlighter annotations (XFDF).
	Highlight string
	// Background fills raster output.
	Background string
}

// NewContext sets up a new rendering context with the given palette.
// If p is nil, the DefaultPalette is used.
func NewContext(p *Palette) *Context {
	if p == nil {
		p = DefaultPalette()
	}
	return &Context{
		Palette:    p,
		AutoCrop:   true,
		Highlight:  DefaultHighlight,
		Background: "white",
	}
}

// viewport determines the visible area for a page.
func (c *Context) viewport(p *lines.Page) geom.Viewport {
	vp := geom.PageViewport(p, c.AutoCrop)
	logging.Debug("Viewport %v (auto crop: %v)", vp, c.AutoCrop)
	return vp
}

// lineVisitor is called for every line that produces output.
type lineVisitor func(layer int, l *lines.Line, b geom.Brush) error

// walkLayer calls fn for each visible line in the given layer,
// in stored order.
func walkLayer(layer int, l *lines.Layer, fn lineVisitor) error {
	for i := range l.Lines {
		line := &l.Lines[i]
		if line.IsEmpty() {
			continue
		}

		// The erased content is deleted,
		// but eraser strokes are recorded.
		b := geom.NewBrush(line.BrushType)
		if b == nil {
			logging.Debug("Skip %v line on layer %d", line.BrushType, layer)
			continue
		}

		err := fn(layer, line, b)
		if err != nil {
			return err
		}
	}
	return nil
}

// walkPage calls fn for each visible line on the page, layer by layer.
func walkPage(p *lines.Page, fn lineVisitor) error {
	for i := range p.Layers {
		err := walkLayer(i, &p.Layers[i], fn)
		if err != nil {
			return err
		}
	}
	return nil
}

// segments splits a non-empty line for variable width brushes.
// A single point becomes a zero length segment, drawn as a dot.
func segments(l *lines.Line) []geom.Segment {
	s := geom.Segments(l)
	if len(s) == 0 {
		return []geom.Segment{{From: l.Points[0], To: l.Points[0]}}
	}
	return s
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func describeLine(l *lines.Line) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BrushType: %v\n", l.BrushType)
	fmt.Fprintf(&sb, "Color: %v\n", l.Color)
	fmt.Fprintf(&sb, "Attribute1: %d\n", l.Attribute1)
	fmt.Fprintf(&sb, "BaseSize: %v\n", num(l.BaseSize))
	fmt.Fprintf(&sb, "Attribute2: %d\n", l.Attribute2)
	fmt.Fprintf(&sb, "Points: %d", len(l.Points))
	return sb.String()
}

func describePoint(p lines.Point) string {
	return fmt.Sprintf("X: %v, Y: %v, Speed: %v, Direction: %v, Width: %v, Pressure: %v",
		num(p.X), num(p.Y), num(p.Speed), num(p.Direction), num(p.Width), num(p.Pressure))
}
