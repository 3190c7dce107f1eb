package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akeil/rmlines/pkg/geom"
	"github.com/akeil/rmlines/pkg/lines"
)

func doInfo(s settings) error {
	src, err := readInput(s.input)
	if err != nil {
		return err
	}

	if src.nb != nil {
		fmt.Printf("Notebook: %v\n", src.nb.Title())
		fmt.Printf("File type: %v\n", src.nb.Content.FileType)
		fmt.Printf("Orientation: %v\n", src.nb.Content.Orientation)
	}
	showDocument(os.Stdout, src)
	return nil
}

func showDocument(w io.Writer, src *source) {
	d := src.doc
	fmt.Fprintf(w, "Version: %d\n", d.Version)
	fmt.Fprintf(w, "Pages: %d\n", d.NumPages())

	for i := range d.Pages {
		p := &d.Pages[i]
		fmt.Fprintf(w, "\nPage %d\n", i+1)
		fmt.Fprintf(w, "  Layers: %d\n", p.NumLayers())

		names := src.layerNames(i)
		for j, l := range p.Layers {
			name := fmt.Sprintf("Layer %d", j+1)
			if j < len(names) {
				name = names[j]
			}
			n, points := countLines(l)
			fmt.Fprintf(w, "  - %v: %d lines, %d points\n", name, n, points)
		}

		bb := geom.NewBoundingBox().EnclosePage(p)
		if bb.IsEmpty() {
			fmt.Fprintf(w, "  Bounding box: empty\n")
		} else {
			fmt.Fprintf(w, "  Bounding box: %v,%v - %v,%v (%v x %v)\n",
				bb.MinX, bb.MinY, bb.MaxX, bb.MaxY, bb.Width(), bb.Height())
		}
	}
}

func countLines(l lines.Layer) (int, int) {
	var points int
	for _, line := range l.Lines {
		points += len(line.Points)
	}
	return len(l.Lines), points
}
