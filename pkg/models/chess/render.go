package chess

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	plus           = "+"
	horizontalLine = "-"
	verticalLine   = "|"
	blank          = " "
)

func horizontal(p Player) string {
	if p.Claimed() {
		return horizontalLine
	}
	return blank
}

func vertical(p Player) string {
	if p.Claimed() {
		return verticalLine
	}
	return blank
}

func plain(glyph string, _ Player) string { return glyph }

func colored(glyph string, p Player) string {
	switch p {
	case Player1:
		return aurora.Blue(glyph).String()
	case Player2:
		return aurora.Red(glyph).String()
	}
	return glyph
}

func (b *Board) side(row, col int, s Side) Player {
	return b.sides[b.sideIndex(row, col, s)]
}

// Render draws the board with '+' dots, '-' and '|' claimed lines and blank
// cell contents, one text row per line of the drawing, without a trailing
// newline.
func (b *Board) Render() string { return b.render(plain) }

// RenderColor is Render with each claimed line colored by its owner.
func (b *Board) RenderColor() string { return b.render(colored) }

func (b *Board) String() string { return b.Render() }

func (b *Board) render(paint func(string, Player) string) string {
	horizontalRow := func(row int, s Side) string {
		glyphs := make([]string, b.cols)
		for col := 0; col < b.cols; col++ {
			p := b.side(row, col, s)
			glyphs[col] = paint(horizontal(p), p)
		}
		return plus + strings.Join(glyphs, plus) + plus
	}

	rows := make([]string, 0, 2*b.rows+1)
	for row := 0; row < b.rows; row++ {
		left := b.side(row, 0, LeftSide)
		glyphs := []string{paint(vertical(left), left)}
		for col := 0; col < b.cols; col++ {
			p := b.side(row, col, RightSide)
			glyphs = append(glyphs, paint(vertical(p), p))
		}
		rows = append(rows, horizontalRow(row, TopSide), strings.Join(glyphs, blank))
	}
	rows = append(rows, horizontalRow(b.rows-1, BottomSide))

	return strings.Join(rows, "\n")
}
