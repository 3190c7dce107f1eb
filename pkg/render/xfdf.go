package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

const (
	xfdfNamespace = "http://ns.adobe.com/xfdf/"
	xfdfTitle     = "reMarkable"
)

type xfdfDocument struct {
	XMLName xml.Name   `xml:"xfdf"`
	Xmlns   string     `xml:"xmlns,attr"`
	File    xfdfFile   `xml:"f"`
	Annots  xfdfAnnots `xml:"annots"`
}

type xfdfFile struct {
	Href string `xml:"href,attr"`
}

type xfdfAnnots struct {
	// Items are highlight or ink annotations, in paint order.
	Items []interface{}
}

type xfdfHighlight struct {
	XMLName xml.Name `xml:"highlight"`
	Page    int      `xml:"page,attr"`
	Color   string   `xml:"color,attr"`
	Opacity string   `xml:"opacity,attr"`
	Rect    string   `xml:"rect,attr"`
	Title   string   `xml:"title,attr"`
	Subject string   `xml:"subject,attr"`
	Coords  string   `xml:"coords,attr"`
}

type xfdfInk struct {
	XMLName xml.Name    `xml:"ink"`
	Page    int         `xml:"page,attr"`
	Color   string      `xml:"color,attr"`
	Rect    string      `xml:"rect,attr"`
	Title   string      `xml:"title,attr"`
	Subject string      `xml:"subject,attr"`
	Width   string      `xml:"width,attr"`
	Inklist xfdfInklist `xml:"inklist"`
}

type xfdfInklist struct {
	Gesture []string `xml:"gesture"`
}

// XFDF writes the lines of all pages as PDF annotations in XFDF format.
//
// Highlighter lines become highlight annotations, all other visible lines
// become ink annotations. The page attribute is the page index.
func (c *Context) XFDF(d *lines.Document, w io.Writer) error {
	doc := xfdfDocument{Xmlns: xfdfNamespace}

	highlight, err := ParseColor(c.Highlight)
	if err != nil {
		return err
	}

	for i := range d.Pages {
		page := i
		err = walkPage(&d.Pages[i], func(layer int, l *lines.Line, b geom.Brush) error {
			if l.BrushType == lines.Highlighter {
				doc.Annots.Items = append(doc.Annots.Items, highlightAnnotation(page, l, b, Hex(highlight)))
			} else {
				doc.Annots.Items = append(doc.Annots.Items, inkAnnotation(page, l, b, c.Palette.Hex(layer, l.Color)))
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return writeXML(w, doc)
}

// highlightAnnotation covers the line with one quad per segment.
func highlightAnnotation(page int, l *lines.Line, b geom.Brush, color string) xfdfHighlight {
	w := geom.LineWidth(b, l)
	var coords []string
	for _, q := range geom.SegmentQuads(l, float64(w)/2) {
		for _, v := range q.Coords() {
			coords = append(coords, num(float32(v)))
		}
	}

	return xfdfHighlight{
		Page:    page,
		Color:   color,
		Opacity: num(b.Opacity(l.Points[0])),
		Rect:    rect(l, w),
		Title:   xfdfTitle,
		Subject: b.Name(),
		Coords:  strings.Join(coords, ","),
	}
}

// inkAnnotation is a polyline through the points of the line.
func inkAnnotation(page int, l *lines.Line, b geom.Brush, color string) xfdfInk {
	w := averageWidth(l, b)
	pts := make([]string, len(l.Points))
	for i, p := range l.Points {
		pts[i] = fmt.Sprintf("%v,%v", num(p.X), num(p.Y))
	}

	return xfdfInk{
		Page:    page,
		Color:   color,
		Rect:    rect(l, w),
		Title:   xfdfTitle,
		Subject: b.Name(),
		Width:   num(w),
		Inklist: xfdfInklist{Gesture: []string{strings.Join(pts, ";")}},
	}
}

// rect is the bounding box of the line, widened by half the stroke width.
func rect(l *lines.Line, width float32) string {
	bb := geom.NewBoundingBox().EncloseLine(l)
	h := width / 2
	return fmt.Sprintf("%v,%v,%v,%v", num(bb.MinX-h), num(bb.MinY-h), num(bb.MaxX+h), num(bb.MaxY+h))
}

func averageWidth(l *lines.Line, b geom.Brush) float32 {
	var sum float32
	for _, p := range l.Points {
		sum += b.Width(p)
	}
	return sum / float32(len(l.Points))
}
