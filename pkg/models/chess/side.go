package chess

// Side is the position of a line around a cell. The values are also the
// offsets of the side slots inside a cell's block of four.
type Side uint8

const (
	TopSide Side = iota
	RightSide
	BottomSide
	LeftSide

	sidesPerCell = 4
)

// NoSide marks an influence table entry that points to no cell side.
const NoSide = -1

func (s Side) Valid() bool {
	return s < sidesPerCell
}

func (s Side) String() string {
	switch s {
	case TopSide:
		return "Top"
	case RightSide:
		return "Right"
	case BottomSide:
		return "Bottom"
	case LeftSide:
		return "Left"
	}
	return "Invalid"
}

// Sides lists the four sides in slot order.
var Sides = [...]Side{TopSide, RightSide, BottomSide, LeftSide}
