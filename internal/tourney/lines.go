package tourney

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"rps_tourney/internal/game"
)

// headBytes is enough bytes to hold a record of multi-byte runes.
const headBytes = len(game.Record{}) * utf8.UTFMax

// lineReader yields the head of each line. Bytes past headBytes are read
// and dropped, so line length is unbounded.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// next returns the head of the next line without its line ending.
// ok is false once the input is exhausted.
func (l *lineReader) next() (head string, ok bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, err := l.br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if room := headBytes + 2 - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				return "", false, nil
			}
			return trimEOL(buf), true, nil
		case err != nil:
			return "", false, err
		}
		return trimEOL(buf), true, nil
	}
}

func trimEOL(b []byte) string {
	b = bytes.TrimSuffix(b, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	return string(b)
}
