package chess

import "errors"

var (
	BoardSizeOutOfRangeErr = errors.New("board size out of range")
	LineIndexOutOfRangeErr = errors.New("line index out of range")
	CellOutOfRangeErr      = errors.New("cell out of range")
	InvalidPlayerErr       = errors.New("invalid player")
	InvalidSideErr         = errors.New("invalid side")
	LineAlreadyClaimedErr  = errors.New("line already claimed")
	SnapshotMismatchErr    = errors.New("snapshot does not match board geometry")
)
