package transcoder

import (
	"github.com/wippyai/xtf8/errors"
	"github.com/wippyai/xtf8/utf8scan"
)

// DecodedLen runs the sizing pass of decode: it returns the exact
// number of bytes Decode will write for src under the given policy
// without producing any output. Under Abort it fails on the first
// malformed UTF-8 sequence; under Replace it always succeeds.
func DecodedLen(src []byte, policy Policy) (int, error) {
	return decode(nil, src, policy)
}

// Decode runs the writing pass of decode: it transcodes src into dst
// and returns the number of bytes written. dst must be exactly the
// length reported by a prior DecodedLen call with the same src and
// policy, and callers must check DecodedLen's error first.
func Decode(dst, src []byte, policy Policy) (int, error) {
	return decode(dst, src, policy)
}

// DecodeBytes is the one-shot form: sizing pass, a single exact
// allocation, then the writing pass.
func DecodeBytes(src []byte, policy Policy) ([]byte, error) {
	n, err := DecodedLen(src, policy)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := Decode(dst, src, policy); err != nil {
		return nil, err
	}
	return dst, nil
}

// decode is the shared core of both passes, the mirror image of
// encode. A nil dst selects the sizing pass.
func decode(dst, src []byte, policy Policy) (int, error) {
	var (
		cp  uint32
		sz  int
		pos int // start of the unresolved region
	)
	prev, cur := utf8scan.Accept, utf8scan.Accept

	for i := 0; i < len(src); i++ {
		cur, cp = utf8scan.Step(cur, cp, src[i])
		switch cur {
		case utf8scan.Accept:
			if cp >= ReservedMin && cp <= ReservedMax {
				// An encoded value; recover the raw byte.
				//
				// The 0x80 bit is forced on so a crafted reserved
				// codepoint can never decode to an ASCII byte.
				b := byte(cp&0x7F) | 0x80
				debugf("decoded U+%04X -> %#02x", cp, b)
				if dst != nil {
					dst[sz] = b
				}
				sz++
			} else {
				if dst != nil {
					copy(dst[sz:], src[pos:i+1])
				}
				sz += i - pos + 1
			}
			pos = i + 1

		case utf8scan.Reject:
			// The input itself is malformed UTF-8, not an XTF8
			// artifact.
			if policy == Abort {
				return 0, errors.InvalidUTF8(pos, src[pos:i+1])
			}

			cur = utf8scan.Accept
			if prev != utf8scan.Accept {
				// Retry the offending byte as the start of a new
				// sequence.
				i--
			}

			debugf("replaced malformed run at offset %d", pos)
			if dst != nil {
				putRune3(dst[sz:], replacementChar)
			}
			sz += 3
			pos = i + 1
		}
		prev = cur
	}

	// A truncated sequence at end of input is malformed UTF-8 like any
	// rejected run: fail under Abort, one replacement char under
	// Replace.
	if cur != utf8scan.Accept {
		if policy == Abort {
			return 0, errors.InvalidUTF8(pos, src[pos:])
		}
		debugf("replaced truncated tail at offset %d", pos)
		if dst != nil {
			putRune3(dst[sz:], replacementChar)
		}
		sz += 3
	}

	return sz, nil
}
