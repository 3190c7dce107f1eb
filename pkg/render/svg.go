package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

const svgNamespace = "http://www.w3.org/2000/svg"

const debugStyle = `
path:hover {
    filter: drop-shadow(0 0 5px #e00);
    stroke: #e00;
}
`

type svgDocument struct {
	XMLName xml.Name   `xml:"svg"`
	Xmlns   string     `xml:"xmlns,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Style   *svgText   `xml:"style,omitempty"`
	Layers  []svgGroup `xml:"g"`
}

type svgText struct {
	Text string `xml:",chardata"`
}

type svgGroup struct {
	XMLName       xml.Name `xml:"g"`
	ID            string   `xml:"id,attr,omitempty"`
	DataName      string   `xml:"data-name,attr,omitempty"`
	Class         string   `xml:"class,attr,omitempty"`
	Fill          string   `xml:"fill,attr,omitempty"`
	Stroke        string   `xml:"stroke,attr,omitempty"`
	StrokeLinecap string   `xml:"stroke-linecap,attr,omitempty"`
	// Items are paths or groups, in paint order.
	Items []interface{}
}

type svgPath struct {
	XMLName       xml.Name `xml:"path"`
	Class         string   `xml:"class,attr,omitempty"`
	Fill          string   `xml:"fill,attr,omitempty"`
	Stroke        string   `xml:"stroke,attr,omitempty"`
	StrokeWidth   string   `xml:"stroke-width,attr"`
	StrokeLinecap string   `xml:"stroke-linecap,attr,omitempty"`
	StrokeOpacity string   `xml:"stroke-opacity,attr,omitempty"`
	D             string   `xml:"d,attr"`
	Title         *svgText `xml:"title,omitempty"`
}

// SVG renders a single page as an SVG document and writes it to w.
//
// Each layer becomes a group. If layerNames are given, they are used for
// the group IDs and data-name attributes. Repeated names get the layer
// number appended to keep the IDs unique.
func (c *Context) SVG(p *lines.Page, w io.Writer, layerNames ...string) error {
	vp := c.viewport(p)
	doc := svgDocument{
		Xmlns:   svgNamespace,
		ViewBox: fmt.Sprintf("%v %v %v %v", num(vp.X), num(vp.Y), num(vp.Width), num(vp.Height)),
	}
	if c.Debug {
		doc.Style = &svgText{debugStyle}
	}

	ids := make(map[string]bool)
	for i := range p.Layers {
		g := svgGroup{Class: "layer"}
		if i < len(layerNames) && layerNames[i] != "" {
			g.ID = layerID(layerNames[i])
			if ids[g.ID] {
				g.ID += "_" + strconv.Itoa(i+1)
			}
			ids[g.ID] = true
			g.DataName = layerNames[i]
		}

		err := walkLayer(i, &p.Layers[i], func(layer int, l *lines.Line, b geom.Brush) error {
			color := c.Palette.CSS(layer, l.Color)
			if b.Constant() {
				g.Items = append(g.Items, c.constantWidthPath(l, b, color))
			} else {
				g.Items = append(g.Items, c.variableWidthGroup(l, b, color))
			}
			return nil
		})
		if err != nil {
			return err
		}

		doc.Layers = append(doc.Layers, g)
	}

	return writeXML(w, doc)
}

// constantWidthPath draws a single path through all points of the line.
func (c *Context) constantWidthPath(l *lines.Line, b geom.Brush, color string) svgPath {
	var d strings.Builder
	first := l.Points[0]
	fmt.Fprintf(&d, "M %v %v", num(first.X), num(first.Y))
	for _, pt := range l.Points[1:] {
		fmt.Fprintf(&d, " L %v %v", num(pt.X), num(pt.Y))
	}
	if len(l.Points) == 1 {
		// a dot
		fmt.Fprintf(&d, " L %v %v", num(first.X), num(first.Y))
	}

	path := svgPath{
		Class:         b.Name(),
		Fill:          "none",
		Stroke:        color,
		StrokeWidth:   num(geom.LineWidth(b, l)),
		StrokeLinecap: b.Cap().String(),
		D:             d.String(),
	}
	if o := b.Opacity(first); o < 1 {
		path.StrokeOpacity = num(o)
	}
	if c.Debug {
		path.Title = &svgText{describeLine(l)}
	}

	return path
}

// variableWidthGroup draws one path per segment of the line,
// each with its own width and opacity. A single point becomes a dot.
func (c *Context) variableWidthGroup(l *lines.Line, b geom.Brush, color string) svgGroup {
	g := svgGroup{
		Class:         b.Name(),
		Fill:          "none",
		Stroke:        color,
		StrokeLinecap: b.Cap().String(),
	}

	for _, s := range segments(l) {
		path := svgPath{
			StrokeWidth: num(b.Width(s.To)),
			D: fmt.Sprintf("M %v %v L %v %v",
				num(s.From.X), num(s.From.Y), num(s.To.X), num(s.To.Y)),
		}
		if o := b.Opacity(s.To); o < 1 {
			path.StrokeOpacity = num(o)
		}
		if c.Debug {
			path.Title = &svgText{describePoint(s.From) + "\n" + describePoint(s.To)}
		}
		g.Items = append(g.Items, path)
	}

	return g
}

// layerID turns a layer name into a valid XML id.
func layerID(name string) string {
	id := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
	if id == "" || !unicode.IsLetter([]rune(id)[0]) {
		id = "layer_" + id
	}
	return id
}

func writeXML(w io.Writer, v interface{}) error {
	_, err := io.WriteString(w, xml.Header)
	if err != nil {
		return errors.NewIOError(err, "write XML header")
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err = enc.Encode(v)
	if err != nil {
		return errors.NewIOError(err, "write XML")
	}

	_, err = io.WriteString(w, "\n")
	if err != nil {
		return errors.NewIOError(err, "write XML")
	}
	return nil
}
