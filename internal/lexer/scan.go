package lexer

import "errors"

// Scanner failures. Each names the class that failed to match at least once.
var (
	ErrTag        = errors.New("lexer: tag mismatch")
	ErrSpace      = errors.New("lexer: expected whitespace")
	ErrDigit      = errors.New("lexer: expected digit")
	ErrToken      = errors.New("lexer: expected token character")
	ErrIncomplete = errors.New("lexer: incomplete input")
)

const httpPrefix = "HTTP/"

// versionLen is the width of the "d.d" part following "HTTP/".
const versionLen = 3

// Tag matches tag exactly at the start of in.
func Tag(in []byte, tag string) (match, rest []byte, err error) {
	if len(in) < len(tag) || string(in[:len(tag)]) != tag {
		return nil, in, ErrTag
	}
	return in[:len(tag)], in[len(tag):], nil
}

// TagNoCase matches tag at the start of in, ignoring ASCII case.
func TagNoCase(in []byte, tag string) (match, rest []byte, err error) {
	if len(in) < len(tag) {
		return nil, in, ErrTag
	}
	for i := 0; i < len(tag); i++ {
		if lower(in[i]) != lower(tag[i]) {
			return nil, in, ErrTag
		}
	}
	return in[:len(tag)], in[len(tag):], nil
}

// CRLF matches "\r\n".
func CRLF(in []byte) (match, rest []byte, err error) {
	return Tag(in, "\r\n")
}

// Colon matches ":".
func Colon(in []byte) (match, rest []byte, err error) {
	return Tag(in, ":")
}

// Space matches exactly one SP.
func Space(in []byte) (match, rest []byte, err error) {
	return Tag(in, " ")
}

// Spaces matches a greedy run of SP/HTAB of length one or more.
func Spaces(in []byte) (match, rest []byte, err error) {
	n := run(in, IsSpace)
	if n == 0 {
		return nil, in, ErrSpace
	}
	return in[:n], in[n:], nil
}

// Digits matches a greedy run of decimal digits of length one or more.
func Digits(in []byte) (match, rest []byte, err error) {
	n := run(in, IsDigit)
	if n == 0 {
		return nil, in, ErrDigit
	}
	return in[:n], in[n:], nil
}

// Token matches a greedy run of tchar bytes of length one or more.
func Token(in []byte) (match, rest []byte, err error) {
	n := run(in, IsTokenChar)
	if n == 0 {
		return nil, in, ErrToken
	}
	return in[:n], in[n:], nil
}

// HeaderValue matches a possibly empty run of header value bytes.
func HeaderValue(in []byte, cs Charset) (match, rest []byte) {
	n := 0
	for n < len(in) && IsHeaderValueChar(in[n], cs) {
		n++
	}
	return in[:n], in[n:]
}

// ToSpace matches everything up to the next SP, HTAB, CR or LF.
func ToSpace(in []byte) (match, rest []byte) {
	n := run(in, func(c byte) bool { return !IsSpace(c) && !isLineBreak(c) })
	return in[:n], in[n:]
}

// ToCRLF matches everything up to the next CR or LF.
func ToCRLF(in []byte) (match, rest []byte) {
	n := run(in, func(c byte) bool { return !isLineBreak(c) })
	return in[:n], in[n:]
}

// Version matches a case-insensitive "HTTP/" and returns the three bytes
// that follow it, e.g. "1.1". The bytes are not validated here.
func Version(in []byte) (match, rest []byte, err error) {
	_, after, err := TagNoCase(in, httpPrefix)
	if err != nil {
		return nil, in, err
	}
	if len(after) < versionLen {
		return nil, in, ErrIncomplete
	}
	return after[:versionLen], after[versionLen:], nil
}

func run(in []byte, pred func(byte) bool) int {
	n := 0
	for n < len(in) && pred(in[n]) {
		n++
	}
	return n
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
