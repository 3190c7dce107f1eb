package lines

import (
	"github.com/akeil/rmlines/internal/errors"
)

// BrushType is one of the predefined brush types.
type BrushType int32

const (
	Eraser      BrushType = 6
	EraseArea   BrushType = 8
	Brush       BrushType = 12
	SharpPencil BrushType = 13
	TiltPencil  BrushType = 14
	BallPoint   BrushType = 15
	Marker      BrushType = 16
	Fineliner   BrushType = 17
	Highlighter BrushType = 18
	Calligraphy BrushType = 21
)

var brushTypes = map[int32]BrushType{
	6:  Eraser,
	8:  EraseArea,
	12: Brush,
	13: SharpPencil,
	14: TiltPencil,
	15: BallPoint,
	16: Marker,
	17: Fineliner,
	18: Highlighter,
	21: Calligraphy,
}

var brushNames = map[BrushType]string{
	Eraser:      "Eraser",
	EraseArea:   "EraseArea",
	Brush:       "Brush",
	SharpPencil: "SharpPencil",
	TiltPencil:  "TiltPencil",
	BallPoint:   "BallPoint",
	Marker:      "Marker",
	Fineliner:   "Fineliner",
	Highlighter: "Highlighter",
	Calligraphy: "Calligraphy",
}

// ParseBrushType looks up the brush type for the given code.
// Unknown codes result in a value error.
func ParseBrushType(code int32) (BrushType, error) {
	b, ok := brushTypes[code]
	if !ok {
		return 0, errors.NewValueError("brush type", code)
	}
	return b, nil
}

func (b BrushType) String() string {
	s, ok := brushNames[b]
	if !ok {
		return "UNKNOWN"
	}
	return s
}

// IsEraser tells if lines with this brush type remove content
// instead of adding ink.
//
// Eraser lines are recorded in the file, but they are never drawn.
func (b BrushType) IsEraser() bool {
	switch b {
	case Eraser, EraseArea:
		return true
	default:
		return false
	}
}

// BrushColor defines the color of the brush (black, grey, white).
type BrushColor int32

const (
	Black BrushColor = 0
	Grey  BrushColor = 1
	White BrushColor = 2
)

// ParseBrushColor looks up the color for the given code.
// Unknown codes result in a value error.
func ParseBrushColor(code int32) (BrushColor, error) {
	switch c := BrushColor(code); c {
	case Black, Grey, White:
		return c, nil
	default:
		return 0, errors.NewValueError("brush color", code)
	}
}

func (c BrushColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Grey:
		return "Grey"
	case White:
		return "White"
	default:
		return "UNKNOWN"
	}
}
