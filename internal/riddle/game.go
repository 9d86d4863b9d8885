package riddle

import "math/rand/v2"

// PlayTurn runs one prisoner's cycle-following search. The prisoner opens the
// box indexed by their note, then keeps opening the box indexed by the last
// revealed slip, for at most len(ballots)/2 boxes in total.
func PlayTurn(ballots []Ballot, prisoner Prisoner) TurnResult {
	n := len(ballots)
	require(n > 1, "PlayTurn", "need more than one ballot, got %d", n)
	require(n%2 == 0, "PlayTurn", "ballot count must be even, got %d", n)
	require(prisoner.NoteNum >= 0 && prisoner.NoteNum < n, "PlayTurn",
		"note %d outside box range [0,%d)", prisoner.NoteNum, n)

	next := prisoner.NoteNum
	for opened := 0; opened < n/2; opened++ {
		hidden := ballots[next].HiddenNum
		if hidden == prisoner.NoteNum {
			return StillAlive
		}
		next = hidden
	}
	return Dead
}

// Evaluate plays every prisoner against the same boxes. There must be one
// prisoner per box. The first Dead turn ends the game.
func Evaluate(ballots []Ballot, prisoners []Prisoner) GameResult {
	require(len(prisoners) == len(ballots), "Evaluate",
		"%d prisoners for %d boxes", len(prisoners), len(ballots))
	for _, p := range prisoners {
		if PlayTurn(ballots, p) == Dead {
			return Lose
		}
	}
	return Win
}

// PlayGame draws boxes then prisoner notes from rng, in that order, and
// evaluates the round.
func PlayGame(rng *rand.Rand, numBallots int) GameResult {
	require(numBallots > 0, "PlayGame", "num_ballots must be positive, got %d", numBallots)
	ballots := GenBallots(rng, numBallots)
	prisoners := GenPrisoners(rng, numBallots)
	return Evaluate(ballots, prisoners)
}
