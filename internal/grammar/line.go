// Package grammar recognizes HTTP/1.x start lines and header lines.
//
// Each parser consumes one complete raw line, including its CRLF, and either
// returns the fields it found or a *SyntaxError naming the position that
// failed. String fields other than the method alias the input line, so the
// caller must not reuse the line buffer while the result is alive.
package grammar

import (
	"fmt"

	"github.com/indigo-web/utils/uf"

	"github.com/shapestone/shape-frame/internal/lexer"
)

// Failure reasons, one per grammar position.
const (
	ReasonMethod          = "missing HTTP method"
	ReasonMethodSeparator = "missing separator after method"
	ReasonTarget          = "bad request target"
	ReasonTargetSeparator = "missing separator after target"
	ReasonVersion         = "bad HTTP version"
	ReasonVersionSep      = "missing separator after version"
	ReasonStatus          = "bad status code"
	ReasonStatusSeparator = "missing separator after status code"
	ReasonCRLF            = "no terminating CRLF"
	ReasonHeaderName      = "missing header name"
	ReasonColon           = "missing colon after header name"
	ReasonColonSpace      = "missing space after colon"
	ReasonHeaderValue     = "invalid character in header value"
)

// SyntaxError is a grammar violation at Offset bytes into the line.
type SyntaxError struct {
	Reason string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// RequestLine is "<method> <target> HTTP/<version>".
type RequestLine struct {
	Method  string
	Target  string
	Version string // the three bytes after "HTTP/", unresolved
}

// ResponseLine is "HTTP/<version> <status> <reason>". The reason is dropped.
type ResponseLine struct {
	Version    string
	StatusCode string
}

// Header is one "<name>: <value>" line.
type Header struct {
	Key   string
	Value string
}

func fail(line, rest []byte, reason string) *SyntaxError {
	return &SyntaxError{Reason: reason, Offset: len(line) - len(rest)}
}

// ParseRequestLine parses a request line. Runs of SP/HTAB between fields are
// accepted.
func ParseRequestLine(line []byte) (RequestLine, error) {
	var rl RequestLine

	method, rest, err := Method(line)
	if err != nil {
		return rl, fail(line, rest, ReasonMethod)
	}
	if _, rest, err = lexer.Spaces(rest); err != nil {
		return rl, fail(line, rest, ReasonMethodSeparator)
	}

	target, rest := lexer.ToSpace(rest)
	if len(target) == 0 {
		return rl, fail(line, rest, ReasonTarget)
	}
	if _, rest, err = lexer.Spaces(rest); err != nil {
		return rl, fail(line, rest, ReasonTargetSeparator)
	}

	version, rest, err := lexer.Version(rest)
	if err != nil {
		return rl, fail(line, rest, ReasonVersion)
	}
	if _, rest, err = lexer.CRLF(rest); err != nil {
		return rl, fail(line, rest, ReasonCRLF)
	}

	rl.Method = method
	rl.Target = uf.B2S(target)
	rl.Version = uf.B2S(version)
	return rl, nil
}

// ParseResponseLine parses a status line.
func ParseResponseLine(line []byte) (ResponseLine, error) {
	var rl ResponseLine

	version, rest, err := lexer.Version(line)
	if err != nil {
		return rl, fail(line, rest, ReasonVersion)
	}
	if _, rest, err = lexer.Spaces(rest); err != nil {
		return rl, fail(line, rest, ReasonVersionSep)
	}

	code, rest, err := lexer.Digits(rest)
	if err != nil {
		return rl, fail(line, rest, ReasonStatus)
	}
	if _, rest, err = lexer.Spaces(rest); err != nil {
		if len(rest) == 0 || rest[0] == '\r' || rest[0] == '\n' {
			return rl, fail(line, rest, ReasonStatusSeparator)
		}
		return rl, fail(line, rest, ReasonStatus)
	}

	_, rest = lexer.ToCRLF(rest)
	if _, rest, err = lexer.CRLF(rest); err != nil {
		return rl, fail(line, rest, ReasonCRLF)
	}

	rl.Version = uf.B2S(version)
	rl.StatusCode = uf.B2S(code)
	return rl, nil
}

// ParseHeaderLine parses one header line. A line that is exactly CRLF ends
// the header block and is reported with end set to true.
func ParseHeaderLine(line []byte, cs lexer.Charset) (h Header, end bool, err error) {
	if _, rest, err := lexer.CRLF(line); err == nil && len(rest) == 0 {
		return h, true, nil
	}

	key, rest, err := lexer.Token(line)
	if err != nil {
		return h, false, fail(line, rest, ReasonHeaderName)
	}
	if _, rest, err = lexer.Colon(rest); err != nil {
		return h, false, fail(line, rest, ReasonColon)
	}
	if _, rest, err = lexer.Space(rest); err != nil {
		return h, false, fail(line, rest, ReasonColonSpace)
	}

	value, rest := lexer.HeaderValue(rest, cs)
	if _, tail, err := lexer.CRLF(rest); err != nil || len(tail) != 0 {
		if len(rest) == 0 || rest[0] == '\r' || rest[0] == '\n' {
			return h, false, fail(line, rest, ReasonCRLF)
		}
		return h, false, fail(line, rest, ReasonHeaderValue)
	}

	h.Key = uf.B2S(key)
	h.Value = uf.B2S(value)
	return h, false, nil
}
