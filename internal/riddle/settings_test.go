package riddle

import (
	"errors"
	"testing"
)

func TestNewGameSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		numBallots int
		numGames   int
		wantErr    error
	}{
		{name: "hundred ballots", numBallots: 100, numGames: 1000},
		{name: "two ballots one game", numBallots: 2, numGames: 1},
		{name: "zero ballots", numBallots: 0, numGames: 10, wantErr: ErrInvalidNumBallots},
		{name: "negative ballots", numBallots: -4, numGames: 10, wantErr: ErrInvalidNumBallots},
		{name: "odd ballots", numBallots: 7, numGames: 10, wantErr: ErrInvalidNumBallots},
		{name: "one ballot", numBallots: 1, numGames: 10, wantErr: ErrInvalidNumBallots},
		{name: "zero games", numBallots: 10, numGames: 0, wantErr: ErrInvalidNumGames},
		{name: "negative games", numBallots: 10, numGames: -1, wantErr: ErrInvalidNumGames},
		{name: "ballots checked first", numBallots: 3, numGames: 0, wantErr: ErrInvalidNumBallots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewGameSettings(tt.numBallots, tt.numGames)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.NumBallots() != tt.numBallots || got.NumGames() != tt.numGames {
				t.Fatalf("settings = (%d, %d), want (%d, %d)",
					got.NumBallots(), got.NumGames(), tt.numBallots, tt.numGames)
			}
		})
	}
}

func TestErrorCodesDoNotCrossMatch(t *testing.T) {
	t.Parallel()

	_, err := NewGameSettings(3, 10)
	if errors.Is(err, ErrInvalidNumGames) {
		t.Fatal("ballot error matched games code")
	}
	var re *Error
	if !errors.As(err, &re) || re.Code != CodeInvalidNumBallots {
		t.Fatalf("err = %#v, want *Error with %s", err, CodeInvalidNumBallots)
	}
}
