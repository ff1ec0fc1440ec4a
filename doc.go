// Package xtf8 losslessly transcodes arbitrary byte sequences into
// always-valid UTF-8 and back.
//
// Transports and stores that mandate valid UTF-8 (JSON strings,
// text-only protocols) cannot carry raw binary. XTF8 passes
// well-formed UTF-8 through untouched and carries every other byte as
// a codepoint in the reserved private-use range U+EF80..U+EFFF, so the
// result is always structurally valid UTF-8 and the original bytes are
// recoverable exactly.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	xtf8/            Root package with one-shot Encode/Decode helpers
//	├── utf8scan/    Streaming UTF-8 structural scanner (table-driven DFA)
//	├── transcoder/  XTF8 encode/decode core with the two-pass sizing protocol
//	├── jsonesc/     JSON string escape/unescape transform
//	├── hexdump/     Diagnostic byte-dump formatter
//	├── stream/      Read-all / write-all boundary helpers
//	├── errors/      Structured error types
//	└── cmd/xtf8/    Command-line codec utility
//
// # Quick Start
//
// One-shot transcoding with the default Replace policy:
//
//	encoded, _ := xtf8.Encode(rawBytes)
//	restored, _ := xtf8.Decode(encoded)
//
// For exact-allocation control or the Abort policy, use the transcoder
// package directly:
//
//	n, err := transcoder.EncodedLen(src, transcoder.Abort)
//	if err != nil {
//	    // src collides with the reserved range
//	}
//	dst := make([]byte, n)
//	transcoder.Encode(dst, src, transcoder.Abort)
package xtf8
