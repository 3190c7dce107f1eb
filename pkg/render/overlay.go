package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

// OverlayPDF renders the pages of a document on top of the pages of the
// given PDF file.
//
// Page i of the document is drawn over page i of the PDF. Pages without a
// matching PDF page are drawn on a blank page. Lines always use the full
// device viewport so that they line up with the underlying page.
func (c *Context) OverlayPDF(d *lines.Document, info *PDFInfo, attachment io.ReadSeeker, w io.Writer) error {
	logging.Debug("Render PDF with overlay")

	n, err := pageCount(attachment)
	if err != nil {
		return err
	}
	if n < d.NumPages() {
		logging.Warning("PDF has %d pages, drawing has %d", n, d.NumPages())
	}

	pdf := setupPDF(info)
	im := gofpdi.NewImporter()

	for i := range d.Pages {
		pdf.AddPage()

		if i < n {
			_, err = attachment.Seek(0, io.SeekStart)
			if err != nil {
				return errors.NewIOError(err, "seek PDF")
			}

			var tpl int
			err = dontPanic(func() {
				// TODO: how do we know which box to use?
				tpl = im.ImportPageFromStream(pdf, &attachment, i+1, "/MediaBox")
			})
			if err != nil {
				return err
			}
			// setting h, w to 0 fills the page
			im.UseImportedTemplate(pdf, tpl, 0, 0, 0, 0)
		}

		logging.Debug("overlay the drawing for page %v", i)
		err = c.drawPDFPage(pdf, &d.Pages[i], geom.DeviceViewport)
		if err != nil {
			return err
		}
	}

	return outputPDF(pdf, w)
}

// pageCount reads the number of pages from a PDF document.
func pageCount(rs io.ReadSeeker) (int, error) {
	_, err := rs.Seek(0, io.SeekStart)
	if err != nil {
		return 0, errors.NewIOError(err, "seek PDF")
	}

	n, err := api.PageCount(rs, pdfcpu.NewDefaultConfiguration())
	if err != nil {
		return 0, errors.Wrap(err, "read PDF")
	}

	return n, nil
}

// dontPanic calls f and turns a panic into an error.
// The PDF importer panics on malformed input.
func dontPanic(f func()) (err error) {
	defer func() {
		x := recover()
		if x != nil {
			logging.Warning("Panic occured (recovered): %v", x)
			err = fmt.Errorf("recovered from: %v", x)
		}
	}()

	f()
	return nil
}
