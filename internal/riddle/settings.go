package riddle

// GameSettings is a validated simulation configuration. The zero value is not
// usable; build one with NewGameSettings.
type GameSettings struct {
	numBallots int
	numGames   int
}

// NewGameSettings rejects a ballot count that is not positive and even, and a
// game count that is not positive.
func NewGameSettings(numBallots, numGames int) (GameSettings, error) {
	if numBallots <= 0 || numBallots%2 != 0 {
		return GameSettings{}, newError(CodeInvalidNumBallots,
			"num_ballots must be positive and even, got %d", numBallots)
	}
	if numGames <= 0 {
		return GameSettings{}, newError(CodeInvalidNumGames,
			"num_games must be positive, got %d", numGames)
	}
	return GameSettings{numBallots: numBallots, numGames: numGames}, nil
}

func (s GameSettings) NumBallots() int { return s.numBallots }
func (s GameSettings) NumGames() int   { return s.numGames }
