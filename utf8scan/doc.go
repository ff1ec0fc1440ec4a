// Package utf8scan implements a streaming UTF-8 structural scanner.
//
// The scanner is a table-driven automaton that consumes one byte per
// step. Each input byte is first collapsed into a small structural
// class, then (state, class) indexes a transition table. This makes
// every well-formed and malformed byte pattern, including overlong
// encodings and surrogate halves, reach Accept or Reject in a fixed
// number of lookups with no branching on byte value ranges.
//
// Typical use:
//
//	var cp uint32
//	state := utf8scan.Accept
//	for _, b := range data {
//		state, cp = utf8scan.Step(state, cp, b)
//		switch state {
//		case utf8scan.Accept:
//			// cp holds a complete codepoint
//		case utf8scan.Reject:
//			// malformed; reset state to Accept to resume
//		}
//	}
//
// The automaton design follows Bjoern Hoehrmann's DFA decoder
// (http://bjoern.hoehrmann.de/utf-8/decoder/dfa/).
//
// Both lookup tables are immutable package-level data; Step is pure and
// safe for concurrent use.
package utf8scan
