package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"prisoners/internal/config"
	"prisoners/internal/report"
	"prisoners/internal/riddle"
	"prisoners/internal/storage"
	"prisoners/internal/storage/sqlite"
	"prisoners/internal/util"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	configPath string
	envFile    string
	history    int
	profile    config.Profile
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, map[string]bool, error) {
	var f cliFlags
	fs := flag.NewFlagSet("prisonersim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "YAML run profile")
	fs.StringVar(&f.envFile, "env", "", "dotenv file (default ./.env if present)")
	fs.IntVar(&f.history, "history", 0, "list the last N recorded runs and exit")
	fs.Uint64Var(&f.profile.Seed, "seed", def.Seed, "seed")
	fs.IntVar(&f.profile.NumBallots, "ballots", def.NumBallots, "number of boxes and prisoners (positive, even)")
	fs.IntVar(&f.profile.NumGames, "games", def.NumGames, "number of games per run")
	fs.IntVar(&f.profile.Runs, "runs", def.Runs, "independent runs, combined into one statistic")
	fs.Float64Var(&f.profile.ProgressStep, "progress-step", def.ProgressStep, "minimum progress change between updates")
	fs.IntVar(&f.profile.Precision, "precision", def.Precision, "digits after the decimal point")
	fs.StringVar(&f.profile.Locale, "locale", def.Locale, "locale for number formatting")
	fs.BoolVar(&f.profile.Quiet, "quiet", def.Quiet, "suppress progress output")
	fs.StringVar(&f.profile.Out, "out", def.Out, "write a JSON summary to this file")
	fs.StringVar(&f.profile.DB, "db", def.DB, "record the run in this SQLite ledger")
	fs.StringVar(&f.profile.LogLevel, "log-level", def.LogLevel, "error, warn, info or debug")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// overlay copies explicitly set flags onto p; flags win over env and profile.
func overlay(p *config.Profile, f config.Profile, set map[string]bool) {
	if set["seed"] {
		p.Seed = f.Seed
	}
	if set["ballots"] {
		p.NumBallots = f.NumBallots
	}
	if set["games"] {
		p.NumGames = f.NumGames
	}
	if set["runs"] {
		p.Runs = f.Runs
	}
	if set["progress-step"] {
		p.ProgressStep = f.ProgressStep
	}
	if set["precision"] {
		p.Precision = f.Precision
	}
	if set["locale"] {
		p.Locale = f.Locale
	}
	if set["quiet"] {
		p.Quiet = f.Quiet
	}
	if set["out"] {
		p.Out = f.Out
	}
	if set["db"] {
		p.DB = f.DB
	}
	if set["log-level"] {
		p.LogLevel = f.LogLevel
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInvalid
	}
	if flags.envFile != "" {
		err = config.LoadDotEnv(flags.envFile)
	} else {
		err = config.LoadDotEnv()
	}
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitInvalid
	}
	profile, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitInvalid
	}
	overlay(&profile, flags.profile, set)
	if err := profile.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitInvalid
	}
	level, _ := util.ParseLogLevel(profile.LogLevel)
	logger := util.NewLogger(stderr, level)

	printer, err := report.NewPrinter(profile.Locale, profile.Precision)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitInvalid
	}

	if flags.history > 0 {
		return printHistory(ctx, profile, flags.history, printer, stdout, stderr)
	}

	settings, err := profile.Settings()
	if err != nil {
		fmt.Fprintf(stderr, "invalid settings: %v\n", err)
		return exitInvalid
	}
	logger.Info("simulating",
		"games", settings.NumGames(), "ballots", settings.NumBallots(), "runs", profile.Runs, "seed", profile.Seed)

	started := time.Now()
	stats, runErr := simulateRuns(settings, profile, printer, stderr, logger)
	elapsed := time.Since(started)

	code := exitOK
	if runErr != nil {
		logger.Error("run aborted", "err", runErr)
		printer.Failure(stdout, runErr)
		code = exitFailed
	} else {
		printer.Result(stdout, stats)
		logger.Debug("finished", "elapsed", elapsed)
	}

	if profile.Out != "" {
		summary := report.NewSummary(profile.Seed, settings, profile.Runs, stats, elapsed, runErr)
		if err := report.WriteSummary(profile.Out, summary); err != nil {
			logger.Error("write summary", "err", err)
			return exitFailed
		}
		logger.Info("summary written", "path", profile.Out)
	}

	if profile.DB != "" && runErr == nil {
		if err := record(ctx, profile, settings, stats, started, elapsed, logger); err != nil {
			logger.Error("record run", "err", err)
			return exitFailed
		}
	}
	return code
}

// simulateRuns is swapped out in tests to exercise the failure path.
var simulateRuns = simulate

func simulate(settings riddle.GameSettings, profile config.Profile, printer *report.Printer, stderr io.Writer, logger *log.Logger) (riddle.GameStatistics, error) {
	newProgress := func() riddle.Progress {
		if profile.Quiet {
			return riddle.NopProgress
		}
		return report.NewThrottle(profile.ProgressStep, func(p float64) {
			fmt.Fprintln(stderr, printer.ProgressLine(p))
		})
	}

	if profile.Runs == 1 {
		return riddle.NewSimulator(settings, profile.Seed).Run(newProgress())
	}
	results := make([]riddle.GameStatistics, 0, profile.Runs)
	for k := 0; k < profile.Runs; k++ {
		stats, err := riddle.NewStreamSimulator(settings, profile.Seed, uint64(k)).Run(newProgress())
		if err != nil {
			return riddle.GameStatistics{}, err
		}
		logger.Info("run finished", "run", k+1, "of", profile.Runs, "won", printer.Percent(stats.ProportionWins()))
		results = append(results, stats)
	}
	return riddle.Combine(results...)
}

func record(ctx context.Context, profile config.Profile, settings riddle.GameSettings, stats riddle.GameStatistics, started time.Time, elapsed time.Duration, logger *log.Logger) error {
	store, err := sqlite.Open(ctx, profile.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	id, err := store.RecordRun(ctx, storage.Run{
		Seed:       profile.Seed,
		NumBallots: settings.NumBallots(),
		Runs:       profile.Runs,
		Stats:      stats,
		StartedAt:  started,
		Duration:   elapsed,
	})
	if err != nil {
		return err
	}
	logger.Info("recorded run", "id", id, "db", profile.DB)
	return nil
}

func printHistory(ctx context.Context, profile config.Profile, limit int, printer *report.Printer, stdout, stderr io.Writer) int {
	if profile.DB == "" {
		fmt.Fprintln(stderr, "config: -history needs -db")
		return exitInvalid
	}
	store, err := sqlite.Open(ctx, profile.DB)
	if err != nil {
		fmt.Fprintf(stderr, "history: %v\n", err)
		return exitFailed
	}
	defer store.Close()
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		fmt.Fprintf(stderr, "history: %v\n", err)
		return exitFailed
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "#%d seed=%d ballots=%d runs=%d games=%d won=%s at=%s took=%s\n",
			r.ID, r.Seed, r.NumBallots, r.Runs, r.Stats.NumGames(), printer.Percent(r.Stats.ProportionWins()),
			r.StartedAt.Format(time.RFC3339), r.Duration)
	}
	return exitOK
}
