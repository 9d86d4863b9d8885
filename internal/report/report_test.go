package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prisoners/internal/riddle"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale     string
		precision  int
		proportion float64
		want       string
	}{
		{locale: "en", precision: 5, proportion: 0.31183, want: "31.18300%"},
		{locale: "en", precision: 0, proportion: 1, want: "100%"},
		{locale: "en", precision: 2, proportion: 0, want: "0.00%"},
		{locale: "de", precision: 2, proportion: 0.5, want: "50,00%"},
	}
	for _, tt := range tests {
		pr, err := NewPrinter(tt.locale, tt.precision)
		if err != nil {
			t.Fatalf("printer %s: %v", tt.locale, err)
		}
		if got := pr.Percent(tt.proportion); got != tt.want {
			t.Fatalf("%s Percent(%v) = %q, want %q", tt.locale, tt.proportion, got, tt.want)
		}
	}
}

func TestNewPrinterRejectsBadLocale(t *testing.T) {
	t.Parallel()

	if _, err := NewPrinter("!!", 2); err == nil {
		t.Fatal("expected locale error")
	}
}

func TestResultAndFailure(t *testing.T) {
	t.Parallel()

	pr, _ := NewPrinter("en", 5)
	stats, err := riddle.NewGameStatistics(1_000_000, 311_830)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var buf bytes.Buffer
	pr.Result(&buf, stats)
	if got, want := buf.String(), "Won 31.18300% of the time (311,830 of 1,000,000 games)\n"; got != want {
		t.Fatalf("result = %q, want %q", got, want)
	}

	buf.Reset()
	pr.Failure(&buf, riddle.ErrSimulationFailed)
	out := buf.String()
	if !strings.Contains(out, "simulation failed") || !strings.Contains(out, "Won 0.00000% of the time") {
		t.Fatalf("failure = %q", out)
	}
}

func TestFailureUsesLocale(t *testing.T) {
	t.Parallel()

	pr, _ := NewPrinter("de", 2)
	var buf bytes.Buffer
	pr.Failure(&buf, riddle.ErrSimulationFailed)
	if got, want := buf.String(), "simulation failed\nWon 0,00% of the time\n"; got != want {
		t.Fatalf("failure = %q, want %q", got, want)
	}
}

func TestThrottleForwardsCoarseSteps(t *testing.T) {
	t.Parallel()

	var got []float64
	th := NewThrottle(0.01, func(p float64) { got = append(got, p) })
	const numGames = 1000
	for i := 0; i < numGames; i++ {
		th.Report(float64(i) / float64(numGames-1))
	}
	th.Report(1.0)

	if len(got) < 50 || len(got) > 101 {
		t.Fatalf("forwarded %d values", len(got))
	}
	prev := 0.0
	for i, p := range got[:len(got)-1] {
		if p-prev <= 0.01 {
			t.Fatalf("value %d (%v) is within step of %v", i, p, prev)
		}
		prev = p
	}
	if got[len(got)-1] != 1.0 {
		t.Fatalf("last forwarded = %v, want 1", got[len(got)-1])
	}
	ones := 0
	for _, p := range got {
		if p == 1.0 {
			ones++
		}
	}
	if ones != 1 {
		t.Fatalf("completion forwarded %d times", ones)
	}
	if th.Last() != 1.0 {
		t.Fatalf("Last = %v", th.Last())
	}
}

func TestThrottleCompletesSingleGame(t *testing.T) {
	t.Parallel()

	var got []float64
	th := NewThrottle(0.01, func(p float64) { got = append(got, p) })
	th.Report(0)
	th.Report(1 - 1e-12)
	if len(got) != 1 || got[0] != 1-1e-12 {
		t.Fatalf("forwarded %v", got)
	}
}

func TestThrottleAsProgress(t *testing.T) {
	t.Parallel()

	var lines []string
	pr, _ := NewPrinter("en", 2)
	var progress riddle.Progress = NewThrottle(0.2, func(p float64) {
		lines = append(lines, pr.ProgressLine(p))
	})
	settings, _ := riddle.NewGameSettings(4, 5)
	if _, err := riddle.NewSimulator(settings, 2).Run(progress); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"Progress: 25%", "Progress: 50%", "Progress: 75%", "Progress: 100%"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	settings, _ := riddle.NewGameSettings(100, 10)
	stats, _ := riddle.NewGameStatistics(10, 3)
	path := filepath.Join(t.TempDir(), "out.json")
	s := NewSummary(0, settings, 1, stats, 1500*time.Millisecond, nil)
	if err := WriteSummary(path, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != s || got.DurationMS != 1500 || got.Failed {
		t.Fatalf("summary = %+v, want %+v", got, s)
	}

	failed := NewSummary(0, settings, 1, riddle.GameStatistics{}, 0, errors.New("boom"))
	if !failed.Failed || failed.Error != "boom" || failed.NumGames != 0 {
		t.Fatalf("failed summary = %+v", failed)
	}
}
