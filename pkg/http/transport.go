package http

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Transport is the blocking byte source a Reader pulls from. Deadlines and
// cancellation belong to the implementation: closing the underlying
// connection must make the pending call return an error.
type Transport interface {
	// ReadLine returns the next line including its "\n" terminator. At end
	// of stream a final unterminated fragment is returned without error; an
	// empty stream returns io.EOF. Parsed tokens alias the returned slice, so
	// it must not be reused afterwards.
	ReadLine() ([]byte, error)
	// ReadExact returns exactly n bytes or an error.
	ReadExact(n int) ([]byte, error)
}

// ErrLineTooLong is returned by LineReader when a line exceeds its limit.
var ErrLineTooLong = errors.New("http: line too long")

// LineReader is a Transport over a buffered io.Reader.
type LineReader struct {
	r       *bufio.Reader
	maxLine int
}

// NewLineReader wraps r. If r already is a *bufio.Reader it is used as is,
// so bytes it has buffered are not lost. maxLine <= 0 means no limit.
func NewLineReader(r io.Reader, maxLine int) *LineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &LineReader{r: br, maxLine: maxLine}
}

// ReadLine implements Transport. Every call returns a freshly allocated slice.
func (l *LineReader) ReadLine() ([]byte, error) {
	var line []byte
	for {
		frag, err := l.r.ReadSlice('\n')
		line = append(line, frag...)
		if l.maxLine > 0 && len(line) > l.maxLine {
			return nil, ErrLineTooLong
		}
		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && len(line) > 0:
			return line, nil
		default:
			return nil, err
		}
	}
}

// bodyChunk caps the up-front allocation in ReadExact. The buffer grows
// only as bytes arrive, so a declared length never allocates by itself.
const bodyChunk = 64 << 10

// ReadExact implements Transport. A stream that ends early yields
// io.ErrUnexpectedEOF.
func (l *LineReader) ReadExact(n int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(n, bodyChunk))
	if _, err := io.CopyN(&buf, l.r, int64(n)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
