package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"prisoners/internal/riddle"
	"prisoners/internal/util"
)

// Profile describes one simulation run and how to present it.
type Profile struct {
	Seed         uint64  `yaml:"seed"          env:"PRISONERS_SEED"`
	NumBallots   int     `yaml:"num_ballots"   env:"PRISONERS_NUM_BALLOTS"`
	NumGames     int     `yaml:"num_games"     env:"PRISONERS_NUM_GAMES"`
	Runs         int     `yaml:"runs"          env:"PRISONERS_RUNS"`
	ProgressStep float64 `yaml:"progress_step" env:"PRISONERS_PROGRESS_STEP"`
	Precision    int     `yaml:"precision"     env:"PRISONERS_PRECISION"`
	Locale       string  `yaml:"locale"        env:"PRISONERS_LOCALE"`
	Quiet        bool    `yaml:"quiet"         env:"PRISONERS_QUIET"`
	Out          string  `yaml:"out"           env:"PRISONERS_OUT"`
	DB           string  `yaml:"db"            env:"PRISONERS_DB"`
	LogLevel     string  `yaml:"log_level"     env:"PRISONERS_LOG_LEVEL"`
}

func Default() Profile {
	return Profile{
		Seed:         0,
		NumBallots:   100,
		NumGames:     1_000_000,
		Runs:         1,
		ProgressStep: 0.01,
		Precision:    5,
		Locale:       "en",
		LogLevel:     "info",
	}
}

// Validate checks the presentation fields. Ballot and game counts are left to
// Settings so they surface as riddle error codes.
func (p Profile) Validate() error {
	if p.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", p.Runs)
	}
	if p.ProgressStep <= 0 || p.ProgressStep > 1 {
		return fmt.Errorf("progress_step must be within (0,1], got %.3f", p.ProgressStep)
	}
	if p.Precision < 0 || p.Precision > 15 {
		return fmt.Errorf("precision must be within [0,15], got %d", p.Precision)
	}
	if _, err := language.Parse(p.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", p.Locale, err)
	}
	if _, err := util.ParseLogLevel(p.LogLevel); err != nil {
		return err
	}
	if strings.TrimSpace(p.Out) != p.Out || strings.TrimSpace(p.DB) != p.DB {
		return fmt.Errorf("out and db paths must not carry surrounding spaces")
	}
	return nil
}

func (p Profile) Settings() (riddle.GameSettings, error) {
	return riddle.NewGameSettings(p.NumBallots, p.NumGames)
}
