package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // raw bytes to XTF8
	PhaseDecode   Phase = "decode"   // XTF8 back to raw bytes
	PhaseEscape   Phase = "escape"   // JSON string escaping
	PhaseUnescape Phase = "unescape" // JSON string unescaping
	PhaseRead     Phase = "read"     // source stream reading
	PhaseWrite    Phase = "write"    // destination stream writing
)

// Kind categorizes the error
type Kind string

const (
	KindCollision       Kind = "collision"        // input codepoint inside the reserved range
	KindInvalidUTF8     Kind = "invalid_utf8"     // structurally malformed UTF-8
	KindInvalidEscape   Kind = "invalid_escape"   // unknown or out-of-range JSON escape
	KindTruncatedEscape Kind = "truncated_escape" // escape sequence cut off at end of input
	KindIOFailure       Kind = "io_failure"       // underlying reader/writer failed
	KindShortWrite      Kind = "short_write"      // writer accepted fewer bytes than given
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // byte offset into the source buffer, -1 if not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when
// their Phase and Kind agree; a zero Phase or Kind in the target acts
// as a wildcard, so sentinels like &Error{Kind: KindCollision} work
// with errors.Is regardless of phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	if t.Kind != "" && e.Kind != t.Kind {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the byte offset into the source buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Collision creates a reserved-range collision error for encode
func Collision(offset int, codepoint rune) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindCollision,
		Offset: offset,
		Detail: fmt.Sprintf("input contains reserved codepoint U+%04X", codepoint),
	}
}

// InvalidUTF8 creates a malformed-input error for decode
func InvalidUTF8(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidEscape creates an unescape error for a bad escape sequence
func InvalidEscape(offset int, seq string) *Error {
	return &Error{
		Phase:  PhaseUnescape,
		Kind:   KindInvalidEscape,
		Offset: offset,
		Detail: fmt.Sprintf("invalid escape sequence %q", seq),
	}
}

// TruncatedEscape creates an unescape error for an escape cut off at end of input
func TruncatedEscape(offset int) *Error {
	return &Error{
		Phase:  PhaseUnescape,
		Kind:   KindTruncatedEscape,
		Offset: offset,
		Detail: "escape sequence truncated at end of input",
	}
}

// IOFailure wraps a reader or writer error
func IOFailure(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIOFailure,
		Offset: -1,
		Cause:  cause,
	}
}
