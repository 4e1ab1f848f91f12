package chess

type Player uint8

const (
	Unclaimed Player = iota
	Player1
	Player2
)

func (p Player) Valid() bool {
	return p <= Player2
}

func (p Player) Claimed() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Unclaimed:
		return "Unclaimed"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "Invalid"
}
