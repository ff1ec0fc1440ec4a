package jsonesc

import (
	"github.com/wippyai/xtf8/errors"
)

// EscapedLen returns the exact number of bytes Escape will write for
// src. Escaping cannot fail.
func EscapedLen(src []byte) int {
	return escape(nil, src)
}

// Escape writes the escaped form of src into dst and returns the
// number of bytes written. dst must be at least EscapedLen(src) long.
func Escape(dst, src []byte) int {
	return escape(dst, src)
}

// EscapeBytes is the one-shot form: sizing pass, a single exact
// allocation, then the writing pass.
func EscapeBytes(src []byte) []byte {
	dst := make([]byte, EscapedLen(src))
	Escape(dst, src)
	return dst
}

// UnescapedLen returns the exact number of bytes Unescape will write
// for src, or an error if src contains a malformed escape sequence.
func UnescapedLen(src []byte) (int, error) {
	return unescape(nil, src)
}

// Unescape writes the unescaped form of src into dst and returns the
// number of bytes written. dst must be exactly UnescapedLen(src) long
// and callers must check UnescapedLen's error first.
func Unescape(dst, src []byte) (int, error) {
	return unescape(dst, src)
}

// UnescapeBytes is the one-shot form of Unescape.
func UnescapeBytes(src []byte) ([]byte, error) {
	n, err := UnescapedLen(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := Unescape(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// escape is the shared core of both escape passes; nil dst sizes only.
// Control bytes 0x00..0x1F become the named escapes \n \r \t \b \f or
// the generic \u00XX form; backslash and double quote are prefixed
// with a backslash; everything else passes through.
func escape(dst, src []byte) int {
	sz := 0
	put := func(b byte) {
		if dst != nil {
			dst[sz] = b
		}
		sz++
	}

	for _, ch := range src {
		if ch > 0x1F {
			if ch == '\\' || ch == '"' {
				put('\\')
			}
			put(ch)
			continue
		}

		put('\\')
		switch ch {
		case '\n':
			put('n')
		case '\r':
			put('r')
		case '\t':
			put('t')
		case '\b':
			put('b')
		case '\f':
			put('f')
		default:
			put('u')
			put('0')
			put('0')
			put(hexDigit(ch >> 4))
			put(hexDigit(ch & 0xF))
		}
	}

	return sz
}

// unescape is the shared core of both unescape passes; nil dst sizes
// only.
func unescape(dst, src []byte) (int, error) {
	sz := 0
	put := func(b byte) {
		if dst != nil {
			dst[sz] = b
		}
		sz++
	}

	for i := 0; i < len(src); i++ {
		if src[i] != '\\' {
			put(src[i])
			continue
		}

		if i+1 >= len(src) {
			return 0, errors.TruncatedEscape(i)
		}
		i++

		switch src[i] {
		case '\\':
			put('\\')
		case '"':
			put('"')
		case 'n':
			put('\n')
		case 'r':
			put('\r')
		case 't':
			put('\t')
		case 'b':
			put('\b')
		case 'f':
			put('\f')

		case 'u':
			// Only \u00XX forms are produced by Escape; anything
			// else is rejected, including codepoints above 0x1F.
			if i+4 >= len(src) {
				return 0, errors.TruncatedEscape(i - 1)
			}
			var cp uint32
			for _, ch := range src[i+1 : i+5] {
				x, ok := hexValue(ch)
				if !ok {
					return 0, errors.InvalidEscape(i-1, string(src[i-1:i+5]))
				}
				cp = cp<<4 | uint32(x)
			}
			if cp > 0x1F {
				return 0, errors.InvalidEscape(i-1, string(src[i-1:i+5]))
			}
			put(byte(cp))
			i += 4

		default:
			return 0, errors.InvalidEscape(i-1, string(src[i-1:i+1]))
		}
	}

	return sz, nil
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + v - 10
}

func hexValue(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}
