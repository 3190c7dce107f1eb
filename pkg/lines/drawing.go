package lines

// Header starting a .rm binary file. This can help recognizing a .rm file.
const (
	headerV3     = "reMarkable .lines file, version=3"
	headerV5     = "reMarkable .lines file, version=5"
	headerLegacy = "reMarkable lines with selections and layers"
	headerLen    = 33
	// reserved bytes following the header from V3 on
	headerPadding = 10
)

// Version defines the version number of a lines file.
type Version int

const (
	V3 Version = 3
	V5 Version = 5
)

const (
	// MaxWidth is the display width of the reMarkable tablet.
	MaxWidth = 1404
	// MaxHeight is the display height of the reMarkable tablet.
	MaxHeight = 1872
)

// Document is the decoded content of one or more lines files.
//
// A Document is created by Decode and is not modified afterwards.
type Document struct {
	Version Version
	Pages   []Page
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.Pages)
}

// Page is a single page with drawings.
type Page struct {
	// Layers in paint order, the last layer is drawn on top.
	Layers []Layer
}

// NumLayers returns the number of layers on the page.
func (p *Page) NumLayers() int {
	return len(p.Layers)
}

// Layer is one layer in a page.
type Layer struct {
	Lines []Line
}

// Line is a single continous brush stroke.
type Line struct {
	// BrushType is one of the predefined pencil types, e.g. "BallPoint" or "Brush"
	BrushType BrushType
	// Color is one of the three available colors.
	Color BrushColor
	// Attribute1 - we do not know what this means and it seems to be "0" all the time.
	Attribute1 int32
	// BaseSize is the base size of the brush (small, medium, large)
	BaseSize float32
	// Attribute2 is only present in V5 files and zero otherwise.
	Attribute2 int32
	// Points are the coordinate points that make up this stroke.
	Points []Point
}

// IsEmpty tells if the line has no points.
func (l *Line) IsEmpty() bool {
	return len(l.Points) == 0
}

// Point is a single sample from a stroke.
type Point struct {
	// X is the x-coordinate for this point.
	X float32
	// Y is the y-coordinate for this point.
	Y float32
	// Speed is the speed with which the stylus moved across the screen.
	Speed float32
	// Direction is the angle at which the stylus is positioned against
	// the screen. The angle is given in radians.
	Direction float32
	// Width is the effective width of the brush.
	Width float32
	// Pressure is the amount of pressure applied to the stylus.
	// Value range is 0.0 trough 1.0
	Pressure float32
}
