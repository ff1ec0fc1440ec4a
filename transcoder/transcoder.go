package transcoder

// Reserved private-use codepoint range used to carry raw bytes.
//
// This is the CSUR-registered sub-range of the Unicode Private Use Area
// reserved by MirBSD for the OPTU encoding:
// https://www.mirbsd.org/htman/i386/man3/optu8to16.htm
//
// Every codepoint in the range maps bijectively to one non-ASCII byte:
//
//	byte      = cp&0x7F | 0x80
//	codepoint = 0xEF80 | b&0x7F
//
// The mapping must never produce or consume a byte below 0x80; decoded
// binary data masquerading as ASCII control bytes would be a smuggling
// vulnerability downstream.
const (
	ReservedMin uint32 = 0xEF80
	ReservedMax uint32 = 0xEFFF
)

// replacementChar is U+FFFD, encoded as EF BF BD in UTF-8.
const replacementChar uint32 = 0xFFFD

// Policy selects how encode and decode react to a conflict: a
// reserved-range collision during encode, or malformed UTF-8 input
// during decode.
type Policy uint8

const (
	// Replace substitutes U+FFFD for the conflicting sequence and
	// always succeeds. This is the default.
	Replace Policy = iota

	// Abort fails the whole call on the first conflict.
	Abort
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// putRune3 writes the 3-byte UTF-8 encoding of cp, which must lie in
// U+0800..U+FFFF, at the start of dst.
func putRune3(dst []byte, cp uint32) {
	dst[0] = byte(cp>>12&0x0F) | 0xE0
	dst[1] = byte(cp>>6&0x3F) | 0x80
	dst[2] = byte(cp&0x3F) | 0x80
}
