package chess

import "fmt"

type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Line is the geometric address of a line segment. A vertical line at
// (Row, Col) is the one left of cell (Row, Col); a horizontal line at
// (Row, Col) is the one above cell (Row, Col). The lines on the right and
// bottom edges use Col == cols and Row == rows.
type Line struct {
	Orientation
	Row int
	Col int
}

// Dots returns the two dots joined by the line as (row, col) pairs.
func (l Line) Dots() (r1, c1, r2, c2 int) {
	if l.Orientation == Vertical {
		return l.Row, l.Col, l.Row + 1, l.Col
	}
	return l.Row, l.Col, l.Row, l.Col + 1
}

func (l Line) String() string {
	r1, c1, r2, c2 := l.Dots()
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", r1, c1, r2, c2)
}
