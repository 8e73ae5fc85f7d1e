package render

import (
	"io"
	"strconv"
)

// A minimal SGR (ANSI "select graphic rendition") table.
// We need a handful of attribute strings and a way to compose them into one
// escape sequence; the heavier terminal-styling libraries are overkill here.

type sgrCode int

const (
	sgrReset sgrCode = 0
	sgrBold  sgrCode = 1
)

const (
	sgrFgHiBlack sgrCode = iota + 90
	sgrFgHiRed
	sgrFgHiGreen
	sgrFgHiYellow
	sgrFgHiBlue
	sgrFgHiMagenta
	sgrFgHiCyan
	sgrFgHiWhite
)

// writeSGR emits one CSI ... m sequence containing all the given codes.
func writeSGR(wr io.Writer, codes ...sgrCode) {
	buf := make([]byte, 0, 8)
	buf = append(buf, 0x1b, '[')
	for i, code := range codes {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(code), 10)
	}
	buf = append(buf, 'm')
	wr.Write(buf)
}
