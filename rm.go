// Package rmlines reads handwritten notes from the reMarkable tablet and
// converts them to SVG, XFDF annotations, PNG and PDF.
//
// The lines format is decoded by package lines, package render turns the
// decoded pages into output and package bundle loads multi-page notebooks.
package rmlines

import (
	"github.com/akeil/rmlines/internal/logging"
)

// SetLogLevel sets the log level by name (debug, info, warning, error).
// Other names disable logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
