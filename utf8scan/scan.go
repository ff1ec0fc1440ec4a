package utf8scan

// State is the scanner automaton state. Accept and Reject are the two
// distinguished values; every other reachable value means more
// continuation bytes are expected.
type State uint32

const (
	// Accept means a complete codepoint was just formed, or the
	// scanner is idle at a sequence boundary.
	Accept State = 0

	// Reject means the current byte cannot occur at its position.
	// Reject is sticky: once entered the automaton stays there until
	// the caller resets the state to Accept.
	Reject State = 12
)

// classes maps each byte value to a small structural category: ASCII,
// continuation bytes, the lead bytes of 2/3/4-byte sequences, and the
// leads that can only start overlong or out-of-range sequences.
var classes = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3,
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
}

// transitions maps state+class to the next state. Rows are states in
// steps of 12, columns are the 12 byte classes. Overlong encodings,
// surrogate halves and out-of-range leads all route to Reject.
var transitions = [108]uint8{
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// Step advances the automaton by one input byte and returns the new
// state together with the updated codepoint accumulator. The caller
// must start each sequence with state == Accept; the accumulator value
// is only meaningful at the step that returns Accept.
func Step(state State, cp uint32, b byte) (State, uint32) {
	class := classes[b]
	if state == Accept {
		cp = uint32(0xFF>>class) & uint32(b)
	} else {
		cp = uint32(b&0x3F) | cp<<6
	}
	return State(transitions[uint32(state)+uint32(class)]), cp
}

// Valid reports whether data is a structurally well-formed UTF-8
// sequence with no truncated tail.
func Valid(data []byte) bool {
	var cp uint32
	state := Accept
	for _, b := range data {
		state, cp = Step(state, cp, b)
		if state == Reject {
			return false
		}
	}
	return state == Accept
}
