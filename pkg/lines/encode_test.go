package lines

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// encode writes the given document in the lines format.
// The library has no write support, this is for creating test data only.
func encode(t *testing.T, d *Document) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := write(buf, d)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func write(w io.Writer, d *Document) error {
	err := writeHeader(w, d.Version)
	if err != nil {
		return err
	}

	for _, p := range d.Pages {
		err = writeNumber(w, int32(len(p.Layers)))
		if err != nil {
			return err
		}
		for _, l := range p.Layers {
			err = writeLayer(w, d.Version, l)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func writeHeader(w io.Writer, v Version) error {
	var h string
	switch v {
	case V3:
		h = headerV3
	case V5:
		h = headerV5
	}
	return writeRawHeader(w, h)
}

// writeRawHeader pads h to the header length and adds the reserved bytes.
func writeRawHeader(w io.Writer, h string) error {
	buf := bytes.Repeat([]byte(" "), headerLen+headerPadding)
	copy(buf, h)
	_, err := w.Write(buf)
	return err
}

func writeLayer(w io.Writer, v Version, l Layer) error {
	err := writeNumber(w, int32(len(l.Lines)))
	if err != nil {
		return err
	}

	for _, s := range l.Lines {
		err = writeLine(w, v, s)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, v Version, l Line) error {
	fields := []interface{}{
		int32(l.BrushType),
		int32(l.Color),
		l.Attribute1,
		l.BaseSize,
	}
	if v == V5 {
		fields = append(fields, l.Attribute2)
	}
	fields = append(fields, int32(len(l.Points)))

	for _, f := range fields {
		err := binary.Write(w, endianess, f)
		if err != nil {
			return err
		}
	}

	for _, p := range l.Points {
		err := binary.Write(w, endianess, p)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeNumber(w io.Writer, n int32) error {
	return binary.Write(w, endianess, n)
}
