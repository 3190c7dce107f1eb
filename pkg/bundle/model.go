package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/akeil/rmlines/internal/errors"
)

// NotebookType is used to distinguish betweeen documents and folders.
type NotebookType int

const (
	DocumentType NotebookType = iota
	CollectionType
)

// Orientation is the layout of a notebook page.
// It can be Portrait or Landscape.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// FileType are the different types of supported content for a notebook.
type FileType int

const (
	Notebook FileType = iota
	Epub
	Pdf
)

const maxLayers = 5
const defaultCoverPage = -1

// Content holds the data from the `.content` file.
// It describes the content for a notebook, specifically the sequence of pages.
type Content struct {
	// FileType is the type of content (i.e. handwritten Notebook or PDF, EPUB).
	FileType FileType `json:"fileType"`
	// Orientation gives the base layout orientation.
	Orientation Orientation `json:"orientation"`
	// PageCount is the number of pages in this notebook.
	PageCount int `json:"pageCount"`
	// Pages is a list of page IDs in the correct order.
	Pages []string `json:"pages"`
	// CoverPageNumber is the page that should be used as the cover in the UI.
	CoverPageNumber int `json:"coverPageNumber"`
}

// Validate checks the content for consistency.
// Page IDs must be UUIDs, they are used to build file names.
func (c *Content) Validate() error {
	switch c.FileType {
	case Notebook, Pdf, Epub:
		// ok
	default:
		return errors.NewValidationError("invalid file type %v", c.FileType)
	}

	switch c.Orientation {
	case Portrait, Landscape: // ok
	default:
		return errors.NewValidationError("invalid orientation %v", c.Orientation)
	}

	// some files do not have the pageCount
	if c.PageCount != 0 && c.PageCount != len(c.Pages) {
		return errors.NewValidationError("pageCount does not match number of pages %v != %v", c.PageCount, len(c.Pages))
	}

	if c.CoverPageNumber > len(c.Pages) {
		return errors.NewValidationError("cover page %v is not an existing page", c.CoverPageNumber)
	}

	for _, id := range c.Pages {
		_, err := uuid.Parse(id)
		if err != nil {
			return errors.NewValidationError("invalid page id %q", id)
		}
	}

	return nil
}

// PageMetadata holds the layer information for a single page.
//
// This maps to the `<page>-metadata.json` file.
type PageMetadata struct {
	// Layers is the list of layers for a page.
	Layers []LayerMetadata `json:"layers"`
}

func (p PageMetadata) Validate() error {
	if len(p.Layers) == 0 {
		return errors.NewValidationError("no layers defined")
	}
	if len(p.Layers) > maxLayers {
		return errors.NewValidationError("maximum number of layers exceeded")
	}

	for _, l := range p.Layers {
		err := l.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// LayerNames returns the names of all layers, in order.
func (p PageMetadata) LayerNames() []string {
	names := make([]string, len(p.Layers))
	for i, l := range p.Layers {
		names[i] = l.Name
	}
	return names
}

// LayerMetadata describes one layer.
type LayerMetadata struct {
	// Name is the display name for this layer.
	Name string `json:"name"`
}

func (l LayerMetadata) Validate() error {
	if l.Name == "" {
		return errors.NewValidationError("layer name must not be empty")
	}

	return nil
}

func (n *NotebookType) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var nt NotebookType
	switch s {
	case "DocumentType":
		nt = DocumentType
	case "CollectionType":
		nt = CollectionType
	default:
		return fmt.Errorf("invalid notebook type %q", s)
	}

	*n = nt
	return nil
}

func (n NotebookType) MarshalJSON() ([]byte, error) {
	s := n.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid notebook type %v", int(n))
	}
	return quote(s), nil
}

func (n NotebookType) String() string {
	switch n {
	case DocumentType:
		return "DocumentType"
	case CollectionType:
		return "CollectionType"
	default:
		return "UNKNOWN"
	}
}

func (o *Orientation) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var x Orientation
	switch s {
	case "portrait":
		x = Portrait
	case "landscape":
		x = Landscape
	default:
		return fmt.Errorf("invalid orientation %q", s)
	}

	*o = x
	return nil
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	s := o.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid orientation %v", int(o))
	}
	return quote(s), nil
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "UNKNOWN"
	}
}

func (f *FileType) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var ft FileType
	switch s {
	case "notebook", "":
		ft = Notebook
	case "epub":
		ft = Epub
	case "pdf":
		ft = Pdf
	default:
		return fmt.Errorf("invalid file type %q", s)
	}

	*f = ft
	return nil
}

func (f FileType) MarshalJSON() ([]byte, error) {
	s := f.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid file type %v", int(f))
	}
	return quote(s), nil
}

func (f FileType) String() string {
	switch f {
	case Notebook:
		return "notebook"
	case Epub:
		return "epub"
	case Pdf:
		return "pdf"
	default:
		return "UNKNOWN"
	}
}

func quote(s string) []byte {
	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)
	return buf.Bytes()
}
