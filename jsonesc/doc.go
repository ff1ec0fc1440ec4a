// Package jsonesc escapes and unescapes JSON string content
// (RFC 8259, Section 7).
//
// The transform is stateless and independent of UTF-8 structure: it
// rewrites control bytes 0x00..0x1F as \n \r \t \b \f or \u00XX,
// prefixes backslash and double quote with a backslash, and passes
// every other byte through untouched. Unescape is the exact inverse
// and fails on truncated or malformed \u00XX sequences, escaped
// values above 0x1F, unknown escape letters, and a dangling trailing
// backslash.
//
// Like the transcoder, each direction offers a sizing pass, a writing
// pass into a caller-supplied buffer, and a one-shot convenience form.
package jsonesc
