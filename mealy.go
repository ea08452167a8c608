package fsmall

// Mealy is a Mealy machine: its output depends on the current state and
// the input together. Like Moore it is a state cursor over borrowed
// tables, with a (state, input, output) table in place of the per-state
// output array. A single instance is not safe for concurrent use; the
// read-only tables may be shared by any number of machines.
type Mealy[I comparable, O any] struct {
	state       State
	transitions TransitionTable[I]
	outputs     MealyOutputTable[I, O]
}

// NewMealy creates a Mealy machine starting in initial. Both tables are
// borrowed, not copied, and must outlive the machine unchanged. Nothing
// is validated here: the two tables may disagree about which
// (state, input) pairs exist, and a disagreement is reported by the
// first Step that hits it.
func NewMealy[I comparable, O any](initial State, transitions TransitionTable[I], outputs MealyOutputTable[I, O]) *Mealy[I, O] {
	return &Mealy[I, O]{
		state:       initial,
		transitions: transitions,
		outputs:     outputs,
	}
}

// Step consumes input, moves to the successor state and returns the
// output of the transition taken. It returns ErrNoTransition if the
// transition table has no matching entry, and ErrNoOutput if the
// output table has none. The state changes only when both lookups
// succeed; a failed Step leaves the machine exactly as it was.
func (m *Mealy[I, O]) Step(input I) (O, error) {
	next, err := m.transitions.Next(m.state, input)
	if err != nil {
		var zero O
		return zero, err
	}
	out, err := m.outputs.Output(m.state, input)
	if err != nil {
		var zero O
		return zero, err
	}
	m.state = next
	return out, nil
}

// CurrentState returns the current state.
func (m *Mealy[I, O]) CurrentState() State {
	return m.state
}

// Reset moves the machine to state without consulting the tables.
func (m *Mealy[I, O]) Reset(state State) {
	m.state = state
}
