package riddle

import (
	"fmt"
	"runtime"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidNumBallots          Code = "INVALID_NUM_BALLOTS"
	CodeInvalidNumGames            Code = "INVALID_NUM_GAMES"
	CodeInvalidNumWins             Code = "INVALID_NUM_WINS"
	CodeNumWinsGreaterThanNumGames Code = "NUM_WINS_GREATER_THAN_NUM_GAMES"
	CodeSimulationFailed           Code = "SIMULATION_FAILED"
)

// Error is a recoverable validation or run failure.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInvalidNumBallots          = &Error{Code: CodeInvalidNumBallots, Message: "invalid number of ballots"}
	ErrInvalidNumGames            = &Error{Code: CodeInvalidNumGames, Message: "invalid number of games"}
	ErrInvalidNumWins             = &Error{Code: CodeInvalidNumWins, Message: "invalid number of wins"}
	ErrNumWinsGreaterThanNumGames = &Error{Code: CodeNumWinsGreaterThanNumGames, Message: "number of wins exceeds number of games"}
	ErrSimulationFailed           = &Error{Code: CodeSimulationFailed, Message: "simulation failed"}
)

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// PreconditionError is the panic value raised when engine code is called
// with arguments that validated settings can never produce.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e PreconditionError) Error() string {
	return "precondition violated in " + e.Op + ": " + e.Msg
}

func require(ok bool, op, format string, args ...any) {
	if !ok {
		panic(PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
	}
}

// RunSafe calls run and converts an engine fault (precondition violation or
// runtime error such as an out-of-range box index) into ErrSimulationFailed.
// The returned statistics are zero in that case. Any other panic propagates.
func RunSafe(run func() (GameStatistics, error)) (stats GameStatistics, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var fault error
		switch v := r.(type) {
		case PreconditionError:
			fault = v
		case runtime.Error:
			fault = v
		default:
			panic(r)
		}
		stats = GameStatistics{}
		err = &Error{Code: CodeSimulationFailed, Message: "simulation failed", Cause: fault}
	}()
	return run()
}
