package lines

import (
	"bytes"
	e "errors"
	"io"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/akeil/rmlines/internal/errors"
)

func sampleDocument(v Version) *Document {
	return &Document{
		Version: v,
		Pages: []Page{{
			Layers: []Layer{
				{Lines: []Line{
					{
						BrushType:  Fineliner,
						Color:      Black,
						Attribute1: 7,
						BaseSize:   2.0,
						Attribute2: 3,
						Points: []Point{
							{X: 1, Y: 2, Speed: 0.5, Direction: 1.2, Width: 2.5, Pressure: 0.4},
							{X: 3, Y: 4, Speed: 0.6, Direction: 1.3, Width: 2.6, Pressure: 0.5},
							{X: 5, Y: 6, Speed: 0.7, Direction: 1.4, Width: 2.7, Pressure: 0.6},
						},
					},
					{BrushType: Eraser, Color: White, BaseSize: 1.875},
				}},
				{Lines: []Line{
					{
						BrushType: BallPoint,
						Color:     Grey,
						BaseSize:  2.125,
						Points:    []Point{{X: 10, Y: 10, Width: 3, Pressure: 1}},
					},
				}},
			},
		}},
	}
}

func TestDecodeV5(t *testing.T) {
	expected := sampleDocument(V5)
	data := encode(t, expected)

	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if d.Version != V5 {
		t.Errorf("wrong version number (%v != %v)", d.Version, V5)
	}
	if d.NumPages() != 1 {
		t.Errorf("wrong page count (%v != %v)", d.NumPages(), 1)
	}
	if !reflect.DeepEqual(d, expected) {
		t.Errorf("decoded document differs:\n%+v\n%+v", d, expected)
	}
}

func TestDecodeV3(t *testing.T) {
	src := sampleDocument(V3)
	data := encode(t, src)

	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if d.Version != V3 {
		t.Errorf("wrong version number (%v != %v)", d.Version, V3)
	}

	// V3 has no second line attribute
	l := d.Pages[0].Layers[0].Lines[0]
	if l.Attribute2 != 0 {
		t.Errorf("unexpected second attribute for V3: %v", l.Attribute2)
	}
	if l.Attribute1 != 7 {
		t.Errorf("first attribute not preserved: %v", l.Attribute1)
	}
	if len(l.Points) != 3 || l.Points[2].X != 5 {
		t.Errorf("unexpected points: %+v", l.Points)
	}
}

func TestDecodeEmptyLayers(t *testing.T) {
	d, err := Decode(bytes.NewReader(encode(t, &Document{Version: V5, Pages: []Page{{}}})))
	if err != nil {
		t.Fatal(err)
	}
	if d.NumPages() != 1 {
		t.Errorf("wrong page count (%v != %v)", d.NumPages(), 1)
	}
	if d.Pages[0].NumLayers() != 0 {
		t.Errorf("unexpected layers: %v", d.Pages[0].NumLayers())
	}
}

func TestDecodeHeaders(t *testing.T) {
	cases := []struct {
		header      string
		unsupported bool
	}{
		{"reMarkable lines with selections and layers", true},
		{"some other file format, version=9", false},
		{"", false},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		writeRawHeader(&buf, c.header)
		writeNumber(&buf, 0)

		_, err := Decode(&buf)
		if !errors.IsFormatError(err) {
			t.Errorf("expected format error for %q, got %v", c.header, err)
			continue
		}

		var f *errors.FormatError
		e.As(err, &f)
		if f.Unsupported != c.unsupported {
			t.Errorf("unexpected unsupported flag for %q", c.header)
		}
		if !strings.HasPrefix(c.header, f.Header) {
			t.Errorf("raw header not reported: %q", f.Header)
		}
	}
}

func TestDecodeUnknownBrush(t *testing.T) {
	src := sampleDocument(V5)
	src.Pages[0].Layers[1].Lines[0].BrushType = BrushType(99)

	_, err := Decode(bytes.NewReader(encode(t, src)))
	if !errors.IsValueError(err) {
		t.Fatalf("expected value error, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("offending code missing in %q", err.Error())
	}
}

func TestDecodeUnknownColor(t *testing.T) {
	src := sampleDocument(V3)
	src.Pages[0].Layers[0].Lines[1].Color = BrushColor(5)

	_, err := Decode(bytes.NewReader(encode(t, src)))
	if !errors.IsValueError(err) {
		t.Fatalf("expected value error, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := encode(t, sampleDocument(V5))

	// cut off in the header, in the padding, in a count and in a point
	for _, n := range []int{10, headerLen + 4, headerLen + headerPadding + 2, len(data) - 5} {
		d, err := Decode(bytes.NewReader(data[:n]))
		if d != nil {
			t.Errorf("partial document returned for %d bytes", n)
		}
		if !errors.IsIOError(err) {
			t.Errorf("expected io error for %d bytes, got %v", n, err)
		}
	}

	_, err := Decode(bytes.NewReader(data[:len(data)-5]))
	if !e.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("underlying error not preserved: %v", err)
	}
}

func TestDecodeHugeCount(t *testing.T) {
	var buf bytes.Buffer
	writeHeader(&buf, V5)
	writeNumber(&buf, 1)          // layers
	writeNumber(&buf, 0x7fffffff) // lines, but none follow

	_, err := Decode(&buf)
	if !errors.IsIOError(err) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestProgress(t *testing.T) {
	var kinds []string
	progress := func(p Progress) {
		if p.Index >= p.Total {
			t.Errorf("index out of range: %+v", p)
		}
		kinds = append(kinds, p.Kind)
	}

	_, err := Decode(bytes.NewReader(encode(t, sampleDocument(V5))), WithProgress(progress))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"page",
		"layer", "line", "point", "point", "point", "line",
		"layer", "line", "point",
	}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("unexpected progress sequence %v", kinds)
	}
}

func TestUnmarshalBinary(t *testing.T) {
	var d Document
	err := d.UnmarshalBinary(encode(t, sampleDocument(V3)))
	if err != nil {
		t.Fatal(err)
	}
	if d.Version != V3 || d.NumPages() != 1 {
		t.Errorf("unexpected document %+v", d)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.rm")
	err := ioutil.WriteFile(path, encode(t, sampleDocument(V5)), 0644)
	if err != nil {
		t.Fatal(err)
	}

	d, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Pages[0].NumLayers() != 2 {
		t.Errorf("wrong layer count (%v != %v)", d.Pages[0].NumLayers(), 2)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.rm"))
	if !errors.IsIOError(err) {
		t.Errorf("expected io error for missing file, got %v", err)
	}
}
