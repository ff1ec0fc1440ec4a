package xtf8

import "github.com/wippyai/xtf8/transcoder"

// Encode transcodes src into valid UTF-8 under the Replace policy:
// genuine codepoints in the reserved range become U+FFFD, everything
// else round-trips. The error is always nil under Replace and exists
// for signature symmetry with EncodeStrict.
func Encode(src []byte) ([]byte, error) {
	return transcoder.EncodeBytes(src, transcoder.Replace)
}

// EncodeStrict is Encode under the Abort policy: it fails on the first
// reserved-range collision instead of substituting.
func EncodeStrict(src []byte) ([]byte, error) {
	return transcoder.EncodeBytes(src, transcoder.Abort)
}

// Decode recovers the original bytes from XTF8-encoded src under the
// Replace policy: malformed UTF-8 in src becomes U+FFFD.
func Decode(src []byte) ([]byte, error) {
	return transcoder.DecodeBytes(src, transcoder.Replace)
}

// DecodeStrict is Decode under the Abort policy: it fails on the first
// malformed UTF-8 sequence in src.
func DecodeStrict(src []byte) ([]byte, error) {
	return transcoder.DecodeBytes(src, transcoder.Abort)
}
