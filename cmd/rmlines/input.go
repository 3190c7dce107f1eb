package main

import (
	"os"

	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/bundle"
	"github.com/akeil/rmlines/pkg/lines"
)

// source is the decoded input, a single lines file or a notebook.
type source struct {
	doc *lines.Document
	// nb is set if the input is a notebook directory.
	nb *bundle.Bundle
}

func (s *source) title() string {
	if s.nb != nil {
		return s.nb.Title()
	}
	return ""
}

func (s *source) layerNames(page int) []string {
	if s.nb != nil {
		return s.nb.LayerNames(page)
	}
	return nil
}

func logProgress(p lines.Progress) {
	switch p.Kind {
	case "page", "layer":
		logging.Debug("Read %v %d/%d", p.Kind, p.Index+1, p.Total)
	}
}

// readInput decodes the input file, notebook directory or stdin.
func readInput(path string) (*source, error) {
	opt := lines.WithProgress(logProgress)

	if path == "" || path == "-" {
		logging.Debug("Read from stdin")
		d, err := lines.Decode(os.Stdin, opt)
		if err != nil {
			return nil, err
		}
		return &source{doc: d}, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		logging.Debug("Read notebook %v", path)
		nb, err := bundle.Load(path, opt)
		if err != nil {
			return nil, err
		}
		return &source{doc: nb.Document, nb: nb}, nil
	}

	d, err := lines.ReadFile(path, opt)
	if err != nil {
		return nil, err
	}
	return &source{doc: d}, nil
}
