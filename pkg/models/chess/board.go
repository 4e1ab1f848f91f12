package chess

import "fmt"

// MaxBoardSize bounds each dimension of a board.
const MaxBoardSize = 1 << 10

// Board is the state of a rows x cols grid of cells.
//
// Lines are addressed by one flat index: first the rows*(cols+1) vertical
// lines, then the (rows+1)*cols horizontal lines, both in row-major order.
// Every line state is also copied onto the cell sides it borders, four slots
// per cell in [top, right, bottom, left] order, so that a side query is a
// single read. The two influence tables map a line index to those slots.
//
// A Board is not safe for concurrent use.
type Board struct {
	rows int
	cols int

	lines []Player
	sides []Player

	// influences1 always names a side; influences2 is NoSide on the border.
	influences1 []int
	influences2 []int
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows > MaxBoardSize || cols > MaxBoardSize {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", BoardSizeOutOfRangeErr, rows, cols)
	}

	verticalLines := rows * (cols + 1)
	linesCount := verticalLines + cols*(rows+1)

	b := &Board{
		rows:        rows,
		cols:        cols,
		lines:       make([]Player, linesCount),
		sides:       make([]Player, rows*cols*sidesPerCell),
		influences1: make([]int, 0, linesCount),
		influences2: make([]int, 0, linesCount),
	}

	// Vertical
	for row := 0; row < rows; row++ {
		for col := 0; col < cols+1; col++ {
			if col < cols {
				b.influences1 = append(b.influences1, b.sideIndex(row, col, LeftSide))
			} else {
				b.influences1 = append(b.influences1, b.sideIndex(row, col-1, RightSide))
			}

			if col > 0 && col < cols {
				b.influences2 = append(b.influences2, b.sideIndex(row, col-1, RightSide))
			} else {
				b.influences2 = append(b.influences2, NoSide)
			}
		}
	}

	// Horizontal
	for row := 0; row < rows+1; row++ {
		for col := 0; col < cols; col++ {
			if row < rows {
				b.influences1 = append(b.influences1, b.sideIndex(row, col, TopSide))
			} else {
				b.influences1 = append(b.influences1, b.sideIndex(row-1, col, BottomSide))
			}

			if row > 0 && row < rows {
				b.influences2 = append(b.influences2, b.sideIndex(row-1, col, BottomSide))
			} else {
				b.influences2 = append(b.influences2, NoSide)
			}
		}
	}

	return b, nil
}

func MustNewBoard(rows, cols int) *Board {
	b, err := NewBoard(rows, cols)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) LinesCount() int { return len(b.lines) }

func (b *Board) VerticalLinesCount() int { return b.rows * (b.cols + 1) }

func (b *Board) CellsCount() int { return b.rows * b.cols }

func (b *Board) sideIndex(row, col int, side Side) int {
	return (row*b.cols+col)*sidesPerCell + int(side)
}

func (b *Board) checkLine(lineIndex int) error {
	if lineIndex < 0 || lineIndex >= len(b.lines) {
		return fmt.Errorf("%w: %d not in [0, %d)", LineIndexOutOfRangeErr, lineIndex, len(b.lines))
	}
	return nil
}

func (b *Board) checkCell(row, col int) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", CellOutOfRangeErr, row, col, b.rows, b.cols)
	}
	return nil
}

func (b *Board) GetLine(lineIndex int) (Player, error) {
	if err := b.checkLine(lineIndex); err != nil {
		return Unclaimed, err
	}
	return b.lines[lineIndex], nil
}

// SetLine writes player to the line and to the cell sides it borders.
// A claimed line may be overwritten, and Unclaimed clears it.
func (b *Board) SetLine(lineIndex int, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", InvalidPlayerErr, player)
	}
	if err := b.checkLine(lineIndex); err != nil {
		return err
	}

	b.lines[lineIndex] = player
	b.sides[b.influences1[lineIndex]] = player
	if influence2 := b.influences2[lineIndex]; influence2 != NoSide {
		b.sides[influence2] = player
	}
	return nil
}

// ClaimLine is SetLine for a move: the line must be free and player must be
// Player1 or Player2.
func (b *Board) ClaimLine(lineIndex int, player Player) error {
	if !player.Claimed() {
		return fmt.Errorf("%w: %s cannot claim a line", InvalidPlayerErr, player)
	}
	if err := b.checkLine(lineIndex); err != nil {
		return err
	}
	if owner := b.lines[lineIndex]; owner != Unclaimed {
		return fmt.Errorf("%w: line %d is owned by %s", LineAlreadyClaimedErr, lineIndex, owner)
	}
	return b.SetLine(lineIndex, player)
}

func (b *Board) GetSide(row, col int, side Side) (Player, error) {
	if !side.Valid() {
		return Unclaimed, fmt.Errorf("%w: %d", InvalidSideErr, side)
	}
	if err := b.checkCell(row, col); err != nil {
		return Unclaimed, err
	}
	return b.sides[b.sideIndex(row, col, side)], nil
}

func (b *Board) GetTop(row, col int) (Player, error) { return b.GetSide(row, col, TopSide) }

func (b *Board) GetRight(row, col int) (Player, error) { return b.GetSide(row, col, RightSide) }

func (b *Board) GetBottom(row, col int) (Player, error) { return b.GetSide(row, col, BottomSide) }

func (b *Board) GetLeft(row, col int) (Player, error) { return b.GetSide(row, col, LeftSide) }

// Influences returns the side slots written by SetLine for the line. The
// slot of a cell side is (row*cols+col)*4 + side. second is NoSide when the
// line lies on the border of the grid.
func (b *Board) Influences(lineIndex int) (first, second int, err error) {
	if err = b.checkLine(lineIndex); err != nil {
		return NoSide, NoSide, err
	}
	return b.influences1[lineIndex], b.influences2[lineIndex], nil
}

// VerticalLineIndex returns the index of the vertical line left of cell
// (row, col); col == cols addresses the right border.
func (b *Board) VerticalLineIndex(row, col int) (int, error) {
	if row < 0 || row >= b.rows || col < 0 || col > b.cols {
		return -1, fmt.Errorf("%w: vertical line (%d, %d) on a %dx%d board", LineIndexOutOfRangeErr, row, col, b.rows, b.cols)
	}
	return row*(b.cols+1) + col, nil
}

// HorizontalLineIndex returns the index of the horizontal line above cell
// (row, col); row == rows addresses the bottom border.
func (b *Board) HorizontalLineIndex(row, col int) (int, error) {
	if row < 0 || row > b.rows || col < 0 || col >= b.cols {
		return -1, fmt.Errorf("%w: horizontal line (%d, %d) on a %dx%d board", LineIndexOutOfRangeErr, row, col, b.rows, b.cols)
	}
	return b.VerticalLinesCount() + row*b.cols + col, nil
}

func (b *Board) LineAt(lineIndex int) (Line, error) {
	if err := b.checkLine(lineIndex); err != nil {
		return Line{}, err
	}

	if v := b.VerticalLinesCount(); lineIndex >= v {
		h := lineIndex - v
		return Line{Orientation: Horizontal, Row: h / b.cols, Col: h % b.cols}, nil
	}
	return Line{Orientation: Vertical, Row: lineIndex / (b.cols + 1), Col: lineIndex % (b.cols + 1)}, nil
}

// LineOf returns the index of the line lying on the given side of a cell.
func (b *Board) LineOf(row, col int, side Side) (int, error) {
	if err := b.checkCell(row, col); err != nil {
		return -1, err
	}

	switch side {
	case TopSide:
		return b.HorizontalLineIndex(row, col)
	case RightSide:
		return b.VerticalLineIndex(row, col+1)
	case BottomSide:
		return b.HorizontalLineIndex(row+1, col)
	case LeftSide:
		return b.VerticalLineIndex(row, col)
	}
	return -1, fmt.Errorf("%w: %d", InvalidSideErr, side)
}

func (b *Board) ClaimedSidesCount(row, col int) (count int, err error) {
	if err = b.checkCell(row, col); err != nil {
		return 0, err
	}

	base := b.sideIndex(row, col, TopSide)
	for _, p := range b.sides[base : base+sidesPerCell] {
		if p != Unclaimed {
			count++
		}
	}
	return
}

func (b *Board) FreeLines() (freeLines []int) {
	for i, p := range b.lines {
		if p == Unclaimed {
			freeLines = append(freeLines, i)
		}
	}
	return
}

func (b *Board) FreeLinesCount() (count int) {
	for _, p := range b.lines {
		if p == Unclaimed {
			count++
		}
	}
	return
}

// Clone returns a deep copy. The influence tables are read-only and shared.
func (b *Board) Clone() *Board {
	newBoard := *b
	newBoard.lines = append([]Player(nil), b.lines...)
	newBoard.sides = append([]Player(nil), b.sides...)
	return &newBoard
}

func (b *Board) Reset() {
	clear(b.lines)
	clear(b.sides)
}
