package riddle

// Ballot is one box; its position is its index and HiddenNum is the slip inside.
type Ballot struct {
	HiddenNum int
}

// Prisoner searches for NoteNum, starting at the box with that index.
type Prisoner struct {
	NoteNum int
}

type TurnResult int

const (
	StillAlive TurnResult = iota
	Dead
)

func (r TurnResult) String() string {
	switch r {
	case StillAlive:
		return "StillAlive"
	case Dead:
		return "Dead"
	}
	return "TurnResult(?)"
}

type GameResult int

const (
	Win GameResult = iota
	Lose
)

func (r GameResult) String() string {
	switch r {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	}
	return "GameResult(?)"
}
