package transcoder_test

import (
	"bytes"
	"errors"
	"testing"

	xtf8errors "github.com/wippyai/xtf8/errors"
	"github.com/wippyai/xtf8/transcoder"
	"github.com/wippyai/xtf8/utf8scan"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		policy transcoder.Policy
		want   []byte
	}{
		{
			name: "empty",
			src:  []byte{},
			want: []byte{},
		},
		{
			name: "plain ascii",
			src:  []byte("hello"),
			want: []byte("hello"),
		},
		{
			name:   "plain ascii abort",
			src:    []byte("hello"),
			policy: transcoder.Abort,
			want:   []byte("hello"),
		},
		{
			name: "valid multibyte passthrough",
			src:  []byte("päivää 日本語"),
			want: []byte("päivää 日本語"),
		},
		{
			name: "invalid lead bytes",
			src:  []byte{0xFF, 0xFE, 0x80},
			want: []byte{0xEE, 0xBF, 0xBF, 0xEE, 0xBF, 0xBE, 0xEE, 0xBE, 0x80},
		},
		{
			name: "binary between ascii",
			src:  []byte{'a', 0xFF, 'b'},
			want: []byte{'a', 0xEE, 0xBF, 0xBF, 'b'},
		},
		{
			name: "lone continuation",
			src:  []byte{0x80},
			want: []byte{0xEE, 0xBE, 0x80},
		},
		{
			name: "overlong two byte",
			src:  []byte{0xC0, 0x80},
			want: []byte{0xEE, 0xBF, 0x80, 0xEE, 0xBE, 0x80},
		},
		{
			name: "reserved codepoint replaced",
			src:  []byte{0xEE, 0xBE, 0x90}, // U+EF90
			want: []byte{0xEF, 0xBF, 0xBD}, // U+FFFD
		},
		{
			name: "reserved codepoint between text",
			src:  append([]byte("a"), 0xEE, 0xBE, 0x90, 'b'),
			want: append([]byte("a"), 0xEF, 0xBF, 0xBD, 'b'),
		},
		{
			name: "truncated tail mapped",
			src:  []byte{'a', 0xC2},
			want: []byte{'a', 0xEE, 0xBF, 0x82},
		},
		{
			name: "truncated three byte tail mapped",
			src:  []byte{0xE2, 0x82},
			want: []byte{0xEE, 0xBF, 0xA2, 0xEE, 0xBE, 0x82},
		},
		{
			name: "sequence interrupted by ascii",
			src:  []byte{0xE2, 0x82, 0xFF, 'A'},
			want: []byte{0xEE, 0xBF, 0xA2, 0xEE, 0xBE, 0x82, 0xEE, 0xBF, 0xBF, 'A'},
		},
		{
			name: "four byte sequence interrupted",
			src:  []byte{0xF0, 0x9F, 0x98, 'A'},
			want: []byte{0xEE, 0xBF, 0xB0, 0xEE, 0xBE, 0x9F, 0xEE, 0xBE, 0x98, 'A'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transcoder.EncodeBytes(tt.src, tt.policy)
			if err != nil {
				t.Fatalf("EncodeBytes: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeBytes(% x)\n got % x\nwant % x", tt.src, got, tt.want)
			}
			if !utf8scan.Valid(got) {
				t.Errorf("encoded output % x is not valid UTF-8", got)
			}
		})
	}
}

func TestEncode_SizingMatchesWriting(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("hello"),
		{0xFF, 0xFE, 0x80},
		{0xEE, 0xBE, 0x90},
		[]byte("mixed \xC0\xAF text \xFF"),
		{0xE2, 0x82},
		bytes.Repeat([]byte{0x00, 0x80, 0xFF, 'x'}, 100),
	}

	for _, src := range inputs {
		n, err := transcoder.EncodedLen(src, transcoder.Replace)
		if err != nil {
			t.Fatalf("EncodedLen(% x): %v", src, err)
		}
		dst := make([]byte, n)
		written, err := transcoder.Encode(dst, src, transcoder.Replace)
		if err != nil {
			t.Fatalf("Encode(% x): %v", src, err)
		}
		if written != n {
			t.Errorf("Encode(% x) wrote %d bytes, sizing pass said %d", src, written, n)
		}
	}
}

func TestEncode_AbortOnCollision(t *testing.T) {
	src := []byte{'x', 0xEE, 0xBE, 0x90, 'y'} // U+EF90 at offset 1

	n, err := transcoder.EncodedLen(src, transcoder.Abort)
	if err == nil {
		t.Fatal("EncodedLen under Abort should fail on a reserved codepoint")
	}
	if n != 0 {
		t.Errorf("EncodedLen returned %d alongside an error", n)
	}
	if !errors.Is(err, &xtf8errors.Error{Kind: xtf8errors.KindCollision}) {
		t.Errorf("error %v is not a collision", err)
	}

	var xerr *xtf8errors.Error
	if !errors.As(err, &xerr) {
		t.Fatal("error is not a structured *errors.Error")
	}
	if xerr.Offset != 1 {
		t.Errorf("collision offset = %d, want 1", xerr.Offset)
	}

	// The same input under Replace succeeds with a finite length.
	got, err := transcoder.EncodeBytes(src, transcoder.Replace)
	if err != nil {
		t.Fatalf("EncodeBytes under Replace: %v", err)
	}
	want := []byte{'x', 0xEF, 0xBF, 0xBD, 'y'}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncode_OutputAlwaysValidUTF8(t *testing.T) {
	// A deterministic walk over nasty inputs: every single byte, every
	// byte pair of interesting values, and a pseudo-random soup.
	for b := 0; b < 256; b++ {
		src := []byte{byte(b)}
		got, err := transcoder.EncodeBytes(src, transcoder.Replace)
		if err != nil {
			t.Fatalf("EncodeBytes(%#02x): %v", b, err)
		}
		if !utf8scan.Valid(got) {
			t.Fatalf("EncodeBytes(%#02x) = % x, not valid UTF-8", b, got)
		}
	}

	interesting := []byte{0x00, 0x41, 0x7F, 0x80, 0xBF, 0xC0, 0xC2, 0xE0, 0xED, 0xEE, 0xF0, 0xF4, 0xF5, 0xFF}
	for _, b1 := range interesting {
		for _, b2 := range interesting {
			src := []byte{b1, b2}
			got, err := transcoder.EncodeBytes(src, transcoder.Replace)
			if err != nil {
				t.Fatalf("EncodeBytes(% x): %v", src, err)
			}
			if !utf8scan.Valid(got) {
				t.Fatalf("EncodeBytes(% x) = % x, not valid UTF-8", src, got)
			}
		}
	}

	soup := make([]byte, 4096)
	state := uint32(0x2545F491)
	for i := range soup {
		// xorshift32, fixed seed for reproducibility
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		soup[i] = byte(state)
	}
	got, err := transcoder.EncodeBytes(soup, transcoder.Replace)
	if err != nil {
		t.Fatalf("EncodeBytes(soup): %v", err)
	}
	if !utf8scan.Valid(got) {
		t.Fatal("encoded byte soup is not valid UTF-8")
	}
}

func BenchmarkEncode(b *testing.B) {
	src := bytes.Repeat([]byte("text \xFF\xFE binary \x80 mixed 日本語 "), 64)
	n, _ := transcoder.EncodedLen(src, transcoder.Replace)
	dst := make([]byte, n)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		transcoder.Encode(dst, src, transcoder.Replace)
	}
}
