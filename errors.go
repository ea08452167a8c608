package fsmall

import "errors"

// Lookup failures. Tables are never validated up front, so a malformed
// table surfaces one of these from the first call that touches the bad
// entry. All three are plain sentinels, comparable with == or errors.Is.
var (
	// ErrNoTransition means the transition table has no entry for the
	// current (state, input) pair.
	ErrNoTransition = errors.New("fsmall: no transition for state and input")

	// ErrNoOutput means a Mealy output table has no entry for the
	// current (state, input) pair, even though a transition may exist.
	ErrNoOutput = errors.New("fsmall: no output for state and input")

	// ErrInvalidState means a Moore machine's current state lies past
	// the end of its output table.
	ErrInvalidState = errors.New("fsmall: state out of range of output table")
)
