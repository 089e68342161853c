// Package lexer implements the byte-level scanners the HTTP/1.x line grammar
// is built from. Every scanner returns the matched prefix and the remaining
// input as sub-slices of its argument; nothing is copied.
package lexer

// Charset selects which bytes are legal inside a header value.
type Charset uint8

const (
	// ASCII allows HTAB and visible ASCII plus SP (RFC 9110 field-vchar).
	ASCII Charset = iota
	// Latin1 additionally allows ISO-8859-1 bytes 0xA0..0xFF (RFC 2616 TEXT).
	Latin1
)

// String returns the configuration name of the charset.
func (c Charset) String() string {
	switch c {
	case Latin1:
		return "latin1"
	default:
		return "ascii"
	}
}

// tokenChars lists the non-alphanumeric tchar bytes.
const tokenChars = "!#$%&'*+-.^_`|~"

var tchar [256]bool

func init() {
	for c := '0'; c <= '9'; c++ {
		tchar[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		tchar[c] = true
		tchar[c-'a'+'A'] = true
	}
	for i := 0; i < len(tokenChars); i++ {
		tchar[tokenChars[i]] = true
	}
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSpace reports whether c is SP or HTAB.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsTokenChar reports whether c may appear in a method or header name.
func IsTokenChar(c byte) bool {
	return tchar[c]
}

// IsHeaderValueChar reports whether c may appear in a header value under cs.
func IsHeaderValueChar(c byte, cs Charset) bool {
	if c == '\t' || (c >= 0x20 && c <= 0x7e) {
		return true
	}
	return cs == Latin1 && c >= 0xa0
}

func isLineBreak(c byte) bool {
	return c == '\r' || c == '\n'
}
