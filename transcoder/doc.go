// Package transcoder implements the XTF8 encoding: a lossless,
// reversible transformation of arbitrary byte sequences into valid
// UTF-8.
//
// # Encoding Scheme
//
// Input bytes that already form valid UTF-8 pass through verbatim.
// Bytes that do not are carried, one by one, as codepoints in a
// reserved 128-value private-use range:
//
//	raw byte b (0x80..0xFF)  <->  codepoint 0xEF80 | b&0x7F
//
// Each carried byte becomes a 3-byte UTF-8 sequence, so the output is
// always structurally valid UTF-8 and the original bytes can be
// recovered exactly. The range U+EF80..U+EFFF is the CSUR-registered
// OPTU sub-range of the Private Use Area.
//
// The mapping is deliberately restricted to non-ASCII bytes: a
// reserved codepoint can never decode to a value below 0x80, so
// encoded binary data cannot smuggle ASCII control bytes past a
// downstream consumer.
//
// # Collisions and Policies
//
// Genuine text that happens to use a reserved codepoint collides with
// the scheme. The Policy parameter decides the outcome: Replace
// substitutes U+FFFD and keeps going, Abort fails the call. The same
// policies govern malformed UTF-8 during decode.
//
// # Two-Pass Protocol
//
// Every operation comes in a sizing and a writing form sharing one
// core loop:
//
//	n, err := transcoder.EncodedLen(src, transcoder.Replace)
//	if err != nil {
//		return err
//	}
//	dst := make([]byte, n)
//	transcoder.Encode(dst, src, transcoder.Replace)
//
// The sizing pass reports the exact output length so the caller
// allocates once, with no reallocation or slack. The writing pass
// assumes the sizing pass succeeded and writes exactly that many
// bytes. EncodeBytes and DecodeBytes bundle the two passes and the
// allocation.
//
// # Thread Safety
//
// The package holds no mutable state between calls; any number of
// transcoding operations may run concurrently on independent buffers.
package transcoder
