package message

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-lab/pkg/models/chess"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// MoveInformation records one SetLine call and the board right after it.
type MoveInformation struct {
	TimeStamp
	GameUid
	Step      int
	LineIndex int
	Line      string
	Player    chess.Player
	Snapshot  chess.Snapshot
}

func NewMoveInformation(gameUid GameUid, step int, b *chess.Board, lineIndex int) (MoveInformation, error) {
	line, err := b.LineAt(lineIndex)
	if err != nil {
		return MoveInformation{}, err
	}

	player, err := b.GetLine(lineIndex)
	if err != nil {
		return MoveInformation{}, err
	}

	return MoveInformation{
		TimeStamp: NewTimeStamp(time.Now()),
		GameUid:   gameUid,
		Step:      step,
		LineIndex: lineIndex,
		Line:      line.String(),
		Player:    player,
		Snapshot:  b.Snapshot(),
	}, nil
}

func ParseMoveInformation(str string) (m MoveInformation, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m MoveInformation) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
