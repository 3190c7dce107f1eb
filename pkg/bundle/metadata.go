package bundle

import (
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is the datatype for a UNIX timestamp in string format.
type Timestamp struct {
	time.Time
}

// Metadata holds the metadata for a notebook.
//
// This maps to the .metadata file from the tablet's file system.
type Metadata struct {
	// LastModified is the UTC date of the last edit as a Unix timestamp.
	LastModified Timestamp `json:"lastModified"`
	// Version is incremented with each change to the file, starting at "1".
	Version uint `json:"version"`
	// LastOpenedPage is set by the tablet to the page that was last viewed.
	LastOpenedPage uint `json:"lastOpenedPage"`
	// Parent is the ID of the parent folder.
	// It is empty if the notebook is located in the root folder.
	Parent string `json:"parent"`
	// Pinned is the bookmark/start for a notebook.
	Pinned bool `json:"pinned"`
	// Type tells whether this is a document or a folder.
	Type NotebookType `json:"type"`
	// VisibleName is the display name for this item.
	VisibleName string `json:"visibleName"`
	// Deleted is set for items in the trash.
	Deleted bool `json:"deleted"`
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	// Expects a string lke this: "1607462787637",
	// with the last three digits containing milliseconds.
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	secs := n / 1000
	nanos := (n - (secs * 1000)) * 1000000
	*t = Timestamp{time.Unix(secs, nanos).UTC()}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	millis := t.UnixNano() / 1000000
	return quote(strconv.FormatInt(millis, 10)), nil
}
