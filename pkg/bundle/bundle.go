// Package bundle loads notebooks from the directory structure as found on
// the tablet itself.
//
// Assuming the path is "foo/<id>", these files are used:
//
//	foo/<id>.content                required, page ids and file type
//	foo/<id>.metadata               optional, display name and modified date
//	foo/<id>/<page>.rm              one drawing for each page id
//	foo/<id>/<page>-metadata.json   optional, layer names
//	foo/<id>.pdf                    attachment for file type pdf
package bundle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/akeil/rmlines/internal/errors"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
)

// Bundle is a notebook with all of its pages decoded.
type Bundle struct {
	// Path is the document path without extension.
	Path string
	// ID is the last element of the path, typically a UUID.
	ID       string
	Content  Content
	Metadata *Metadata
	// Document holds the pages of all drawings, in content order.
	Document *lines.Document
	// layers holds the layer names for each page, if known.
	layers [][]string
}

// Load reads the bundle at the given path.
//
// The drawing for each page is decoded with the given options and the
// resulting pages are concatenated in the order from the content file.
// All drawings must have the same version.
func Load(path string, opts ...lines.Option) (*Bundle, error) {
	path = filepath.Clean(path)
	path = strings.TrimSuffix(path, ".content")

	b := &Bundle{
		Path: path,
		ID:   filepath.Base(path),
	}

	err := readJSON(path+".content", &b.Content)
	if err != nil {
		return nil, err
	}
	err = b.Content.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid content for %v", b.ID)
	}

	var m Metadata
	err = readJSON(path+".metadata", &m)
	if err == nil {
		b.Metadata = &m
	} else if errors.IsNotFound(err) {
		logging.Info("No metadata for %v", b.ID)
	} else {
		return nil, err
	}

	err = b.readPages(opts...)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Bundle) readPages(opts ...lines.Option) error {
	if len(b.Content.Pages) == 0 {
		return errors.NewVersionError("can't determine version for document without pages")
	}

	b.Document = &lines.Document{}
	for i, id := range b.Content.Pages {
		d, err := b.readDrawing(id, opts...)
		if err != nil {
			return err
		}

		if i == 0 {
			b.Document.Version = d.Version
		} else if d.Version != b.Document.Version {
			return errors.NewVersionError("mixed versions: page %v has version %d, expected %d",
				id, d.Version, b.Document.Version)
		}

		names := b.readLayerNames(id)
		for range d.Pages {
			b.layers = append(b.layers, names)
		}
		b.Document.Pages = append(b.Document.Pages, d.Pages...)
	}

	return nil
}

func (b *Bundle) readDrawing(id string, opts ...lines.Option) (*lines.Document, error) {
	path := filepath.Join(b.Path, id+".rm")
	logging.Debug("Read drawing %v", path)

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound("no drawing for page %v", id)
	}

	d, err := lines.ReadFile(path, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "page %v", id)
	}
	return d, nil
}

// readLayerNames returns the layer names for a page,
// or nil if there is no usable metadata.
func (b *Bundle) readLayerNames(id string) []string {
	var pm PageMetadata
	err := readJSON(filepath.Join(b.Path, id+"-metadata.json"), &pm)
	if err != nil {
		logging.Info("No layer names for page %v: %v", id, err)
		return nil
	}

	err = pm.Validate()
	if err != nil {
		logging.Warning("Invalid page metadata for %v: %v", id, err)
		return nil
	}

	return pm.LayerNames()
}

// Title is the display name of the notebook, or its ID.
func (b *Bundle) Title() string {
	if b.Metadata != nil && b.Metadata.VisibleName != "" {
		return b.Metadata.VisibleName
	}
	return b.ID
}

// LayerNames returns the names of the layers for the page with the given
// index. The result is nil if the names are not known.
func (b *Bundle) LayerNames(page int) []string {
	if page < 0 || page >= len(b.layers) {
		return nil
	}
	return b.layers[page]
}

// AttachmentPath is the path to the PDF file for PDF notebooks.
func (b *Bundle) AttachmentPath() string {
	return b.Path + ".pdf"
}

// HasAttachment tells if this is a PDF notebook and the PDF file exists.
func (b *Bundle) HasAttachment() bool {
	if b.Content.FileType != Pdf {
		return false
	}
	_, err := os.Stat(b.AttachmentPath())
	return err == nil
}

// OpenAttachment opens the PDF file of a PDF notebook.
// The caller must close the file.
func (b *Bundle) OpenAttachment() (*os.File, error) {
	if b.Content.FileType != Pdf {
		return nil, errors.NewNotFound("%v has no attachment (file type %v)", b.ID, b.Content.FileType)
	}

	f, err := os.Open(b.AttachmentPath())
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound("attachment %v not found", b.AttachmentPath())
	} else if err != nil {
		return nil, errors.NewIOError(err, "open attachment")
	}
	return f, nil
}

func readJSON(path string, dst interface{}) error {
	logging.Debug("Read %v", path)
	r, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.NewNotFound("%v not found", path)
	} else if err != nil {
		return errors.NewIOError(err, "open %v", path)
	}
	defer r.Close()

	dec := json.NewDecoder(r)
	err = dec.Decode(dst)
	if err != nil {
		return errors.NewValidationError("invalid JSON in %v: %v", filepath.Base(path), err)
	}

	return nil
}
