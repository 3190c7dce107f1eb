package render

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/internal/imaging"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

const tsFormat = "2006-01-02 15:04:05"

// PDFInfo is optional document information for PDF output.
type PDFInfo struct {
	Title    string
	Modified time.Time
}

// PDF renders all pages from a document to a PDF file, one page per page.
//
// The resulting PDF document is written to the given writer.
// If info is not nil, it is used for the document properties
// and a page footer.
func (c *Context) PDF(d *lines.Document, info *PDFInfo, w io.Writer) error {
	logging.Debug("Render PDF with %d pages", d.NumPages())
	pdf := setupPDF(info)

	for i := range d.Pages {
		pdf.AddPage()
		err := c.drawPDFPage(pdf, &d.Pages[i], c.viewport(&d.Pages[i]))
		if err != nil {
			return err
		}
	}

	return outputPDF(pdf, w)
}

func setupPDF(info *PDFInfo) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("rmlines", true)

	if info != nil {
		pdf.SetTitle(info.Title, true)
		if !info.Modified.IsZero() {
			modified := info.Modified.UTC()
			pdf.SetModificationDate(modified)
			pdf.SetCreationDate(modified)
		}

		pdf.SetFooterFunc(func() {
			pdf.SetY(-20)
			pdf.SetX(24)
			pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), info.Title)
		})
	}

	return pdf
}

// drawPDFPage draws all visible lines of a page on the current PDF page.
// The viewport is scaled to fit the page. Drawing stops at the first PDF error.
func (c *Context) drawPDFPage(pdf *gofpdf.Fpdf, p *lines.Page, vp geom.Viewport) error {
	pw, ph := pdf.GetPageSize()
	m, scale := imaging.Fit(float64(vp.X), float64(vp.Y), float64(vp.Width), float64(vp.Height), pw, ph)

	pdf.SetLineJoinStyle("round")
	return walkPage(p, func(layer int, l *lines.Line, b geom.Brush) error {
		col := c.Palette.Color(layer, l.Color)
		pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
		pdf.SetLineCapStyle(b.Cap().String())

		if b.Constant() {
			pdf.SetAlpha(float64(b.Opacity(l.Points[0])), "Normal")
			pdf.SetLineWidth(float64(geom.LineWidth(b, l)) * scale)
			pdf.MoveTo(m.Apply(float64(l.Points[0].X), float64(l.Points[0].Y)))
			for _, pt := range l.Points {
				pdf.LineTo(m.Apply(float64(pt.X), float64(pt.Y)))
			}
			pdf.DrawPath("D")
		} else {
			for _, s := range segments(l) {
				pdf.SetAlpha(float64(b.Opacity(s.To)), "Normal")
				pdf.SetLineWidth(float64(b.Width(s.To)) * scale)
				x0, y0 := m.Apply(float64(s.From.X), float64(s.From.Y))
				x1, y1 := m.Apply(float64(s.To.X), float64(s.To.Y))
				pdf.Line(x0, y0, x1, y1)
			}
		}

		pdf.SetAlpha(1, "Normal")
		if pdf.Err() {
			return pdf.Error()
		}
		return nil
	})
}

func outputPDF(pdf *gofpdf.Fpdf, w io.Writer) error {
	if pdf.Err() {
		return pdf.Error()
	}

	err := pdf.Output(w)
	if err != nil {
		return errors.NewIOError(err, "write PDF")
	}
	return nil
}
