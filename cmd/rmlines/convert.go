package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/rmlines/internal/fs"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/render"
)

func doConvert(s settings) error {
	format := outputFormat(s.format, s.output)
	if s.debug && format != "svg" {
		logging.Warning("debug-dump only has an effect when writing SVG output")
	}

	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	src, err := readInput(s.input)
	if err != nil {
		return err
	}
	if src.doc.NumPages() == 0 {
		return fmt.Errorf("input has no pages")
	}

	switch format {
	case "svg", "png":
		err = convertPages(rc, src, format, s.output)
	case "xfdf":
		err = writeOutput(s.output, func(w io.Writer) error {
			return rc.XFDF(src.doc, w)
		})
	case "pdf":
		err = convertPDF(rc, src, s.output)
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return err
	}

	if s.output != "" {
		fmt.Fprintf(os.Stderr, "%v %v saved as %q.\n", checkmark, strings.ToUpper(format), s.output)
	}
	return nil
}

func setupContext(s settings) (*render.Context, error) {
	p, err := render.ParsePalette(s.colors)
	if err != nil {
		return nil, err
	}

	_, err = render.ParseColor(s.highlight)
	if err != nil {
		return nil, err
	}

	rc := render.NewContext(p)
	rc.AutoCrop = !s.noCrop
	rc.Debug = s.debug
	rc.Highlight = s.highlight
	return rc, nil
}

// outputFormat is the explicit format or the one derived from the output
// file extension. SVG is the default.
func outputFormat(format, output string) string {
	if format != "" {
		return format
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	switch ext {
	case "svg", "xfdf", "png", "pdf":
		return ext
	}
	return "svg"
}

// convertPages writes one SVG or PNG file per page.
//
// With multiple pages, the page number is added to the output file name
// and pages are rendered concurrently.
func convertPages(rc *render.Context, src *source, format, output string) error {
	renderPage := func(i int, w io.Writer) error {
		p := &src.doc.Pages[i]
		if format == "png" {
			return rc.PNG(p, w)
		}
		return rc.SVG(p, w, src.layerNames(i)...)
	}

	n := src.doc.NumPages()
	if n == 1 {
		return writeOutput(output, func(w io.Writer) error {
			return renderPage(0, w)
		})
	}

	if output == "" {
		return fmt.Errorf("output file needed for %d pages of %v output", n, strings.ToUpper(format))
	}

	var group errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		path := pagePath(output, i, n)
		group.Go(func() error {
			fmt.Fprintf(os.Stderr, "%v render page %d\n", ellipsis, i+1)
			return writeOutput(path, func(w io.Writer) error {
				return renderPage(i, w)
			})
		})
	}
	return group.Wait()
}

// pagePath adds the zero-padded page number to the output file name,
// e.g. "notes.svg" becomes "notes-01.svg".
func pagePath(output string, page, total int) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	digits := len(fmt.Sprintf("%d", total))
	return fmt.Sprintf("%s-%0*d%s", base, digits, page+1, ext)
}

func convertPDF(rc *render.Context, src *source, output string) error {
	info := &render.PDFInfo{Title: src.title()}
	if src.nb != nil && src.nb.Metadata != nil {
		info.Modified = src.nb.Metadata.LastModified.Time
	}

	if src.nb != nil && src.nb.HasAttachment() {
		f, err := src.nb.OpenAttachment()
		if err != nil {
			return err
		}
		defer f.Close()

		return writeOutput(output, func(w io.Writer) error {
			return rc.OverlayPDF(src.doc, info, f, w)
		})
	}

	if info.Title == "" {
		info = nil
	}
	return writeOutput(output, func(w io.Writer) error {
		return rc.PDF(src.doc, info, w)
	})
}

// writeOutput writes to the given file, or to stdout if path is empty.
// Files are only created if fn succeeds.
func writeOutput(path string, fn func(w io.Writer) error) error {
	if path != "" {
		return fs.WriteFile(path, fn)
	}

	w := bufio.NewWriter(os.Stdout)
	err := fn(w)
	if err != nil {
		return err
	}
	return w.Flush()
}
