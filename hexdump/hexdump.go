// Package hexdump renders byte buffers in the classic `hexdump -C`
// layout, 16 bytes per line with an offset column and printable-ASCII
// gutter. It exists for CLI diagnostics and debug logging; it is not
// part of the transcoding contract.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const bytesPerLine = 16

// Dump writes data to w, one line per 16 bytes:
//
//	00000000  78 74 66 38 20 63 6f 64  65 63 20 75 74 69 6c 69  |xtf8 codec utili|
//	00000010  74 79 0a                                          |ty.|
//	00000013
//
// The final line is the total length.
func Dump(w io.Writer, data []byte) error {
	for base := 0; base < len(data); base += bytesPerLine {
		end := base + bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		var hex, text strings.Builder
		for i := base; i < end; i++ {
			fmt.Fprintf(&hex, "%02x ", data[i])
			if i%bytesPerLine == 7 {
				hex.WriteByte(' ')
			}
			if data[i] >= 0x20 && data[i] < 0x7F {
				text.WriteByte(data[i])
			} else {
				text.WriteByte('.')
			}
		}

		if _, err := fmt.Fprintf(w, "%08x  %-49.49s |%s|\n", base, hex.String(), text.String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%08x\n", len(data))
	return err
}

// String returns the dump of data as a string.
func String(data []byte) string {
	var b strings.Builder
	Dump(&b, data)
	return b.String()
}
