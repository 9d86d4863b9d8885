package riddle

import (
	"math/rand/v2"

	"prisoners/internal/util"
)

// Simulator owns the random source for one run.
type Simulator struct {
	settings GameSettings
	seed     uint64
	rng      *rand.Rand
}

func NewSimulator(settings GameSettings, seed uint64) *Simulator {
	return &Simulator{settings: settings, seed: seed, rng: util.New(seed)}
}

// NewStreamSimulator seeds from an independent substream of seed, for runs
// that are combined with Combine afterwards.
func NewStreamSimulator(settings GameSettings, seed, stream uint64) *Simulator {
	return &Simulator{settings: settings, seed: seed, rng: util.Derive(seed, stream)}
}

func (s *Simulator) Settings() GameSettings { return s.settings }
func (s *Simulator) Seed() uint64           { return s.seed }

// Run collects statistics and turns engine faults into ErrSimulationFailed.
// Calling Run again continues the same random stream.
func (s *Simulator) Run(progress Progress) (GameStatistics, error) {
	return RunSafe(func() (GameStatistics, error) {
		return CollectGameStatistics(s.rng, s.settings, progress)
	})
}
