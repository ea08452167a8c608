// Package fsmall implements small table-driven finite state machines
// with no allocations. Both classic models are supported: Moore
// machines, whose output is a function of the current state alone, and
// Mealy machines, whose output is a function of the current state and
// the input together.
//
// Transition and output tables are caller-owned slices that a machine
// borrows for its lifetime; constructing or stepping a machine never
// copies a table, never allocates and never panics. Every failure comes
// back as an error value the caller decides what to do with.
package fsmall

// State identifies a state in a machine. It is a plain table index with
// no meaning beyond identity, which caps a machine at 256 distinct
// states.
type State uint8

// Transition is a single transition table entry: consuming Input in
// state From moves the machine to state To.
type Transition[I comparable] struct {
	From  State // Source state
	Input I     // Consumed input
	To    State // Target state
}

// TransitionTable maps (state, input) pairs to successor states. Lookup
// is a linear scan in declaration order; if two entries share a
// (From, Input) key the earlier one wins.
type TransitionTable[I comparable] []Transition[I]

// Next returns the successor state for consuming input in state from,
// or ErrNoTransition if no entry matches.
func (t TransitionTable[I]) Next(from State, input I) (State, error) {
	for i := range t {
		if t[i].From == from && t[i].Input == input {
			return t[i].To, nil
		}
	}
	return 0, ErrNoTransition
}

// MealyOutput is a single Mealy output table entry: consuming Input in
// State produces Output.
type MealyOutput[I comparable, O any] struct {
	State  State
	Input  I
	Output O
}

// MealyOutputTable maps (state, input) pairs to outputs, scanned with
// the same first-match order as TransitionTable.
type MealyOutputTable[I comparable, O any] []MealyOutput[I, O]

// Output returns the output for consuming input in state, or
// ErrNoOutput if no entry matches.
func (t MealyOutputTable[I, O]) Output(state State, input I) (O, error) {
	for i := range t {
		if t[i].State == state && t[i].Input == input {
			return t[i].Output, nil
		}
	}
	var zero O
	return zero, ErrNoOutput
}
