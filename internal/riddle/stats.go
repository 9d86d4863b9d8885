package riddle

import "math/rand/v2"

// GameStatistics is the aggregate outcome of a run.
type GameStatistics struct {
	numGames       int
	numWins        int
	proportionWins float64
}

// NewGameStatistics requires numGames > 0 and 0 <= numWins <= numGames.
func NewGameStatistics(numGames, numWins int) (GameStatistics, error) {
	if numGames <= 0 {
		return GameStatistics{}, newError(CodeInvalidNumGames,
			"num_games must be positive, got %d", numGames)
	}
	if numWins < 0 {
		return GameStatistics{}, newError(CodeInvalidNumWins,
			"num_wins must not be negative, got %d", numWins)
	}
	if numWins > numGames {
		return GameStatistics{}, newError(CodeNumWinsGreaterThanNumGames,
			"num_wins %d exceeds num_games %d", numWins, numGames)
	}
	return GameStatistics{
		numGames:       numGames,
		numWins:        numWins,
		proportionWins: float64(numWins) / float64(numGames),
	}, nil
}

func (s GameStatistics) NumGames() int           { return s.numGames }
func (s GameStatistics) NumWins() int            { return s.numWins }
func (s GameStatistics) ProportionWins() float64 { return s.proportionWins }
func (s GameStatistics) Percent() float64        { return s.proportionWins * 100 }

// Combine sums the counts of independent runs.
func Combine(runs ...GameStatistics) (GameStatistics, error) {
	var games, wins int
	for _, r := range runs {
		games += r.numGames
		wins += r.numWins
	}
	return NewGameStatistics(games, wins)
}

// Progress receives the completed fraction of a run, a value in [0,1].
// Calls are synchronous and come from the goroutine running the simulation.
type Progress interface {
	Report(progress float64)
}

// ProgressFunc adapts a plain function to Progress.
type ProgressFunc func(progress float64)

func (f ProgressFunc) Report(progress float64) { f(progress) }

// NopProgress discards every report.
var NopProgress Progress = ProgressFunc(func(float64) {})

// CollectGameStatistics plays settings.NumGames() games, all drawing from the
// same rng in sequence. progress is told game_index/(num_games-1) before each
// game and 1.0 once all games are done, so it sees num_games+1 calls. A
// single-game run reports 0 and then 1.
func CollectGameStatistics(rng *rand.Rand, settings GameSettings, progress Progress) (GameStatistics, error) {
	if progress == nil {
		progress = NopProgress
	}
	numGames := settings.NumGames()
	numWins := 0
	for i := 0; i < numGames; i++ {
		progress.Report(fraction(i, numGames))
		if PlayGame(rng, settings.NumBallots()) == Win {
			numWins++
		}
	}
	progress.Report(1.0)
	return NewGameStatistics(numGames, numWins)
}

func fraction(gameIndex, numGames int) float64 {
	if numGames <= 1 {
		return 0
	}
	return float64(gameIndex) / float64(numGames-1)
}
