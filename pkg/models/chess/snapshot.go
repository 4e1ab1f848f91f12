package chess

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Snapshot is the serializable form of a board. Lines holds one digit per
// line index, the digit being the Player value.
type Snapshot struct {
	Rows  int
	Cols  int
	Lines string
}

func (b *Board) Snapshot() Snapshot {
	var builder strings.Builder
	builder.Grow(len(b.lines))
	for _, p := range b.lines {
		builder.WriteByte('0' + byte(p))
	}

	return Snapshot{
		Rows:  b.rows,
		Cols:  b.cols,
		Lines: builder.String(),
	}
}

func NewSnapshot(str string) (newSnapshot Snapshot, err error) {
	err = sonic.UnmarshalString(str, &newSnapshot)
	return
}

func (s Snapshot) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}

// FromSnapshot rebuilds a board by replaying every line of the snapshot.
func FromSnapshot(s Snapshot) (*Board, error) {
	b, err := NewBoard(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}

	if len(s.Lines) != b.LinesCount() {
		return nil, fmt.Errorf("%w: %d lines for a %dx%d board, want %d", SnapshotMismatchErr, len(s.Lines), s.Rows, s.Cols, b.LinesCount())
	}

	for i := 0; i < len(s.Lines); i++ {
		c := s.Lines[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: line %d has state %q", InvalidPlayerErr, i, c)
		}
		if err = b.SetLine(i, Player(c-'0')); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}

	return b, nil
}
