package hexdump_test

import (
	"errors"
	"testing"

	"github.com/wippyai/xtf8/hexdump"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "empty",
			data: []byte{},
			want: "00000000\n",
		},
		{
			name: "short line",
			data: []byte("hi\n"),
			want: "00000000  68 69 0a                                          |hi.|\n" +
				"00000003\n",
		},
		{
			name: "exactly sixteen",
			data: []byte("0123456789abcdef"),
			want: "00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
				"00000010\n",
		},
		{
			name: "two lines with binary",
			data: append([]byte("xtf8 codec utili"), 't', 'y', 0x00, 0xFF),
			want: "00000000  78 74 66 38 20 63 6f 64  65 63 20 75 74 69 6c 69  |xtf8 codec utili|\n" +
				"00000010  74 79 00 ff                                       |ty..|\n" +
				"00000014\n",
		},
		{
			name: "nine bytes crosses the mid gap",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			want: "00000000  00 01 02 03 04 05 06 07  08                       |.........|\n" +
				"00000009\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hexdump.String(tt.data)
			if got != tt.want {
				t.Errorf("String(% x)\n got:\n%s\nwant:\n%s", tt.data, got, tt.want)
			}
		})
	}
}

func TestDump_WriterError(t *testing.T) {
	w := &failWriter{}
	if err := hexdump.Dump(w, []byte("data")); err == nil {
		t.Error("Dump should propagate writer errors")
	}
}

var errMock = errors.New("mock write failure")

type failWriter struct{}

func (*failWriter) Write(p []byte) (int, error) {
	return 0, errMock
}
