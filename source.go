package cc

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// source is the input cursor: a read-only byte buffer plus the position
// of the next unread byte. Characters are read with Latin-1 semantics;
// bytes above 0x7F pass through unchanged, since anything wider reaches
// the lexer as escape sequences after preprocessing.
type source struct {
	buf []byte
	pos Pos
}

func newSource(buf []byte, file string) source {
	return source{buf: buf, pos: StartPos(file)}
}

func (s *source) empty() bool { return s.pos.Off >= len(s.buf) }

// peek returns the next byte without consuming it, or 0 at end of input.
func (s *source) peek() byte {
	if s.empty() {
		return 0
	}
	return s.buf[s.pos.Off]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 past the
// end of input.
func (s *source) peekAt(n int) byte {
	i := s.pos.Off + n
	if i >= len(s.buf) {
		return 0
	}
	return s.buf[i]
}

// advance consumes n bytes, updating row/column bookkeeping per byte.
func (s *source) advance(n int) {
	for i := 0; i < n && !s.empty(); i++ {
		s.pos = s.pos.advance(s.buf[s.pos.Off])
	}
}

// skipRaw consumes n bytes advancing the offset only. The line directive
// processor uses it: row and column are about to be overwritten, so
// per-byte bookkeeping would be wasted work.
func (s *source) skipRaw(n int) {
	s.pos.Off += n
	if s.pos.Off > len(s.buf) {
		s.pos.Off = len(s.buf)
	}
}

// text returns the n bytes starting at the cursor as a string.
func (s *source) text(n int) string {
	end := s.pos.Off + n
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return string(s.buf[s.pos.Off:end])
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// LoadSource normalizes a raw buffer for lexing: a leading UTF-8 BOM is
// dropped and a terminating newline is guaranteed.
func LoadSource(src []byte) []byte {
	src = bytes.TrimPrefix(src, utf8BOM)
	if len(src) == 0 || src[len(src)-1] != '\n' {
		out := make([]byte, len(src), len(src)+1)
		copy(out, src)
		return append(out, '\n')
	}
	return src
}

// ReadSource reads and normalizes an input file. By convention a path of
// "-" reads standard input.
func ReadSource(path string) ([]byte, error) {
	var src []byte
	var err error
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
	} else {
		src, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return LoadSource(src), nil
}
