package transcoder

import (
	"github.com/wippyai/xtf8/errors"
	"github.com/wippyai/xtf8/utf8scan"
)

// EncodedLen runs the sizing pass of encode: it returns the exact
// number of bytes Encode will write for src under the given policy
// without producing any output. Under Abort it fails on the first
// reserved-range collision; under Replace it always succeeds.
func EncodedLen(src []byte, policy Policy) (int, error) {
	return encode(nil, src, policy)
}

// Encode runs the writing pass of encode: it transcodes src into dst
// and returns the number of bytes written. dst must be exactly the
// length reported by a prior EncodedLen call with the same src and
// policy; the pass assumes success and traverses the same control flow
// as the sizing pass, so callers must check EncodedLen's error first.
func Encode(dst, src []byte, policy Policy) (int, error) {
	return encode(dst, src, policy)
}

// EncodeBytes is the one-shot form: sizing pass, a single exact
// allocation, then the writing pass.
func EncodeBytes(src []byte, policy Policy) ([]byte, error) {
	n, err := EncodedLen(src, policy)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := Encode(dst, src, policy); err != nil {
		return nil, err
	}
	return dst, nil
}

// encode is the shared core of both passes. A nil dst selects the
// sizing pass; otherwise bytes are written and dst must be large
// enough. Keeping one core is what guarantees the two passes stay
// byte-for-byte synchronized.
func encode(dst, src []byte, policy Policy) (int, error) {
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
				// Valid UTF-8, but it collides with the range
				// reserved for carrying raw bytes.
				if policy == Abort {
					return 0, errors.Collision(pos, rune(cp))
				}
				debugf("replaced reserved U+%04X at offset %d", cp, pos)
				if dst != nil {
					putRune3(dst[sz:], replacementChar)
				}
				sz += 3
			} else {
				if dst != nil {
					copy(dst[sz:], src[pos:i+1])
				}
				sz += i - pos + 1
			}
			pos = i + 1

		case utf8scan.Reject:
			cur = utf8scan.Accept
			if prev != utf8scan.Accept {
				// The scanner had already consumed bytes of a
				// partial sequence; retry the offending byte as
				// the start of a new one.
				i--
			}

			// Every byte of the invalid run maps to one reserved
			// codepoint, 3 bytes in UTF-8.
			for ; pos <= i; pos++ {
				b := src[pos]
				if b < 0x80 {
					panic("transcoder: ASCII byte in invalid UTF-8 run")
				}
				debugf("mapped %#02x -> U+%04X", b, ReservedMin|uint32(b&0x7F))
				if dst != nil {
					putRune3(dst[sz:], ReservedMin|uint32(b&0x7F))
				}
				sz += 3
			}
			// pos already equals i+1 here.
		}
		prev = cur
	}

	// A truncated sequence at end of input never reaches Accept or
	// Reject. Its bytes are still binary data that must survive the
	// round trip, so map each one like a rejected run.
	for ; pos < len(src); pos++ {
		b := src[pos]
		if b < 0x80 {
			panic("transcoder: ASCII byte in truncated UTF-8 tail")
		}
		debugf("mapped trailing %#02x -> U+%04X", b, ReservedMin|uint32(b&0x7F))
		if dst != nil {
			putRune3(dst[sz:], ReservedMin|uint32(b&0x7F))
		}
		sz += 3
	}

	return sz, nil
}
