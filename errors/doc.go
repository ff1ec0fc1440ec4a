// Package errors provides structured error types for the xtf8 library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and carry the byte offset into the source buffer where known.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidUTF8).
//		Offset(42).
//		Detail("unexpected continuation byte").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Collision(17, 0xEF90)
//	err := errors.IOFailure(errors.PhaseRead, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// A partially filled *Error acts as a wildcard match target:
//
//	errors.Is(err, &errors.Error{Kind: errors.KindCollision})
package errors
