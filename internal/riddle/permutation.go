package riddle

import "math/rand/v2"

// GenRandomNums returns 0..numBallots-1 in uniformly random order.
func GenRandomNums(rng *rand.Rand, numBallots int) []int {
	require(numBallots > 0, "GenRandomNums", "num_ballots must be positive, got %d", numBallots)
	require(rng != nil, "GenRandomNums", "nil random source")
	nums := make([]int, numBallots)
	for i := range nums {
		nums[i] = i
	}
	rng.Shuffle(len(nums), func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	return nums
}

// GenBallots fills numBallots boxes with a fresh permutation of slips.
func GenBallots(rng *rand.Rand, numBallots int) []Ballot {
	hidden := GenRandomNums(rng, numBallots)
	ballots := make([]Ballot, len(hidden))
	for i, num := range hidden {
		ballots[i] = Ballot{HiddenNum: num}
	}
	return ballots
}

// GenPrisoners hands out a fresh permutation of note numbers.
func GenPrisoners(rng *rand.Rand, numBallots int) []Prisoner {
	notes := GenRandomNums(rng, numBallots)
	prisoners := make([]Prisoner, len(notes))
	for i, num := range notes {
		prisoners[i] = Prisoner{NoteNum: num}
	}
	return prisoners
}
