package geom

import (
	"math"

	"github.com/akeil/rmlines/pkg/lines"
)

// WidthFactor scales the recorded point width to the drawn stroke width.
const WidthFactor = 0.8

// Cap is the shape at the end of an open stroke.
type Cap int

const (
	RoundCap Cap = iota
	ButtCap
)

func (c Cap) String() string {
	if c == ButtCap {
		return "butt"
	}
	return "round"
}

// Brush decides how the points of a line are turned into strokes.
//
// Constant brushes draw one path through all points with the width of the
// first point. Other brushes draw one segment per pair of points,
// with width and opacity taken from the trailing point.
type Brush interface {
	Name() string
	Constant() bool
	Cap() Cap
	Width(p lines.Point) float32
	Opacity(p lines.Point) float32
}

// NewBrush returns the Brush for the given type.
// Brush types that are never drawn (erasers) return nil.
func NewBrush(t lines.BrushType) Brush {
	switch t {
	case lines.Eraser, lines.EraseArea:
		return nil
	case lines.Fineliner:
		return &fineliner{basePen{t}}
	case lines.Highlighter:
		return &highlighter{basePen{t}}
	case lines.BallPoint:
		return &ballpoint{basePen{t}}
	default:
		return &basePen{t}
	}
}

// Visible tells if the line produces any output.
func Visible(l *lines.Line) bool {
	return !l.IsEmpty() && !l.BrushType.IsEraser()
}

// LineWidth is the width for constant brushes.
func LineWidth(b Brush, l *lines.Line) float32 {
	if l.IsEmpty() {
		return 0
	}
	return b.Width(l.Points[0])
}

// Segment is the part of a line between two consecutive points.
type Segment struct {
	From lines.Point
	To   lines.Point
}

// Segments splits the line into one segment per pair of points.
func Segments(l *lines.Line) []Segment {
	if len(l.Points) < 2 {
		return nil
	}
	s := make([]Segment, len(l.Points)-1)
	for i := 1; i < len(l.Points); i++ {
		s[i-1] = Segment{From: l.Points[i-1], To: l.Points[i]}
	}
	return s
}

type basePen struct {
	t lines.BrushType
}

func (b *basePen) Name() string {
	return b.t.String()
}

func (b *basePen) Constant() bool {
	return false
}

func (b *basePen) Cap() Cap {
	return RoundCap
}

func (b *basePen) Width(p lines.Point) float32 {
	return p.Width * WidthFactor
}

func (b *basePen) Opacity(p lines.Point) float32 {
	return 1.0
}

// Ballpoint ------------------------------------------------------------------

// The Ballpoint pen has some sensitivity for pressure
type ballpoint struct {
	basePen
}

func (b *ballpoint) Opacity(p lines.Point) float32 {
	o := math.Pow(float64(p.Pressure), 5) + 0.7
	return float32(math.Min(o, 1.0))
}

// Fineliner ------------------------------------------------------------------

// Fineliner has no sensitivity to pressure or tilt.
type fineliner struct {
	basePen
}

func (f *fineliner) Constant() bool {
	return true
}

// Highlighter ----------------------------------------------------------------

type highlighter struct {
	basePen
}

func (h *highlighter) Constant() bool {
	return true
}

func (h *highlighter) Cap() Cap {
	return ButtCap
}

func (h *highlighter) Opacity(p lines.Point) float32 {
	return 0.25
}
