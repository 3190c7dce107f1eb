package lines

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/akeil/rmlines/internal/errors"
)

var endianess = binary.LittleEndian

// Progress reports that the decoder is about to read record Index (zero
// based) out of Total records of the given Kind ("page", "layer", "line",
// "point").
type Progress struct {
	Kind  string
	Index int
	Total int
}

// Option configures the decoder.
type Option func(*decodeContext)

// WithProgress registers a callback that is invoked for each record.
func WithProgress(fn func(Progress)) Option {
	return func(c *decodeContext) {
		c.progress = fn
	}
}

// Decode reads a complete lines file from the given reader.
//
// Either the fully decoded Document or an error is returned,
// never a partial Document.
func Decode(r io.Reader, opts ...Option) (*Document, error) {
	c := &decodeContext{r: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(c)
	}

	err := c.readHeader()
	if err != nil {
		return nil, err
	}

	pages, err := c.readPages()
	if err != nil {
		return nil, err
	}

	return &Document{Version: c.version, Pages: pages}, nil
}

// UnmarshalBinary reads a lines file from the given bytes.
func (d *Document) UnmarshalBinary(data []byte) error {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*d = *doc

	return nil
}

// ReadFile decodes the lines file at the given path.
func ReadFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(err, "open %q", path)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// decodeContext holds the state for decoding a single stream.
//
// The version is resolved once from the header;
// optional fields branch on it in one place each.
type decodeContext struct {
	r        io.Reader
	version  Version
	progress func(Progress)
}

// readHeader reads the header and checks if it is one of the supported headers.
func (c *decodeContext) readHeader() error {
	buf := make([]byte, headerLen)
	_, err := io.ReadFull(c.r, buf)
	if err != nil {
		return errors.NewIOError(err, "read header")
	}

	header := trimHeader(string(buf))
	switch header {
	case headerV3:
		c.version = V3
	case headerV5:
		c.version = V5
	case trimHeader(headerLegacy[:headerLen]):
		return errors.NewUnsupportedError(header)
	default:
		return errors.NewFormatError(header)
	}

	if c.version >= V3 {
		pad := make([]byte, headerPadding)
		_, err = io.ReadFull(c.r, pad)
		if err != nil {
			return errors.NewIOError(err, "read header padding")
		}
	}

	return nil
}

func trimHeader(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// pageCount is the number of pages in the stream.
// From V3 on, only a single page is stored per file and the number of pages
// is not stored any more.
func (c *decodeContext) pageCount() (int32, error) {
	if c.version >= V3 {
		return 1, nil
	}
	return c.readNumber("number of pages")
}

func (c *decodeContext) readPages() ([]Page, error) {
	n, err := c.pageCount()
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, 1)
	for i := int32(0); i < n; i++ {
		c.report("page", i, n)
		layers, err := c.readLayers()
		if err != nil {
			return nil, err
		}
		pages = append(pages, Page{Layers: layers})
	}

	return pages, nil
}

func (c *decodeContext) readLayers() ([]Layer, error) {
	n, err := c.readNumber("number of layers")
	if err != nil {
		return nil, err
	}

	var layers []Layer
	for i := int32(0); i < n; i++ {
		c.report("layer", i, n)
		l, err := c.readLines()
		if err != nil {
			return nil, err
		}
		layers = append(layers, Layer{Lines: l})
	}

	return layers, nil
}

func (c *decodeContext) readLines() ([]Line, error) {
	n, err := c.readNumber("number of lines")
	if err != nil {
		return nil, err
	}

	var lines []Line
	for i := int32(0); i < n; i++ {
		c.report("line", i, n)
		l, err := c.readLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// readLine reads a Line (incl. Points) from the stream.
func (c *decodeContext) readLine() (Line, error) {
	var l Line

	code, err := c.readNumber("brush type")
	if err != nil {
		return l, err
	}
	l.BrushType, err = ParseBrushType(code)
	if err != nil {
		return l, err
	}

	code, err = c.readNumber("brush color")
	if err != nil {
		return l, err
	}
	l.Color, err = ParseBrushColor(code)
	if err != nil {
		return l, err
	}

	l.Attribute1, err = c.readNumber("line attribute")
	if err != nil {
		return l, err
	}

	err = c.read(&l.BaseSize, "brush size")
	if err != nil {
		return l, err
	}

	l.Attribute2, err = c.optionalAttribute()
	if err != nil {
		return l, err
	}

	l.Points, err = c.readPoints()
	return l, err
}

// optionalAttribute reads the additional line attribute in V5 files.
func (c *decodeContext) optionalAttribute() (int32, error) {
	if c.version >= V5 {
		return c.readNumber("second line attribute")
	}
	return 0, nil
}

func (c *decodeContext) readPoints() ([]Point, error) {
	n, err := c.readNumber("number of points")
	if err != nil {
		return nil, err
	}

	var points []Point
	for i := int32(0); i < n; i++ {
		c.report("point", i, n)
		var p Point
		// Point has six float32 fields in file order.
		err = c.read(&p, "point")
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}

// readNumber reads an int32 from the stream.
func (c *decodeContext) readNumber(what string) (int32, error) {
	var n int32
	err := c.read(&n, what)
	return n, err
}

func (c *decodeContext) read(dst interface{}, what string) error {
	err := binary.Read(c.r, endianess, dst)
	if err != nil {
		return errors.NewIOError(err, "failed to read %v", what)
	}
	return nil
}

func (c *decodeContext) report(kind string, i, n int32) {
	if c.progress != nil {
		c.progress(Progress{Kind: kind, Index: int(i), Total: int(n)})
	}
}
