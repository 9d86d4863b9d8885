package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"prisoners/internal/riddle"
)

// Summary is the JSON document written for a finished run.
type Summary struct {
	Seed           uint64  `json:"seed"`
	NumBallots     int     `json:"num_ballots"`
	NumGames       int     `json:"num_games"`
	Runs           int     `json:"runs"`
	NumWins        int     `json:"num_wins"`
	ProportionWins float64 `json:"proportion_wins"`
	DurationMS     int64   `json:"duration_ms"`
	Failed         bool    `json:"failed,omitempty"`
	Error          string  `json:"error,omitempty"`
}

func NewSummary(seed uint64, settings riddle.GameSettings, runs int, stats riddle.GameStatistics, elapsed time.Duration, runErr error) Summary {
	s := Summary{
		Seed:           seed,
		NumBallots:     settings.NumBallots(),
		NumGames:       stats.NumGames(),
		Runs:           runs,
		NumWins:        stats.NumWins(),
		ProportionWins: stats.ProportionWins(),
		DurationMS:     elapsed.Milliseconds(),
	}
	if runErr != nil {
		s.Failed = true
		s.Error = runErr.Error()
	}
	return s
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

func WriteSummary(path string, s Summary) error {
	if err := os.WriteFile(path, MarshalPretty(s), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
