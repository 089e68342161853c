package tokenizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-frame/internal/grammar"
	"github.com/shapestone/shape-frame/internal/lexer"
)

// NewTokenizer creates a tokenizer for one HTTP/1.x line. Matchers are tried
// in order:
// 1. CRLF
// 2. SP/HTAB run
// 3. Colon
// 4. HTTP version
// 5. Method or header-name token
// 6. Text (request target, reason phrase, header value pieces)
// 7. Invalid (single rune fallback)
//
// Whitespace is significant in HTTP, so no whitespace skipper is installed.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		WordMatcher(),
		TextMatcher(),
		InvalidMatcher(),
	)
}

// CRLFMatcher matches \r\n. A bare CR or LF is left for InvalidMatcher.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\r' {
			return nil
		}
		stream.NextChar()
		r, ok = stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
	}
}

// SPMatcher matches a run of SP and HTAB.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		return takeWhile(stream, TokenSP, func(r rune) bool {
			return r < 0x80 && lexer.IsSpace(byte(r))
		})
	}
}

// VersionMatcher matches "HTTP/" in any case followed by three characters.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for _, expected := range "HTTP/" {
			r, ok := stream.PeekChar()
			if !ok || unicode.ToUpper(r) != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}
		for i := 0; i < 3; i++ {
			r, ok := stream.PeekChar()
			if !ok || r == '\r' || r == '\n' {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(TokenVersion, value)
	}
}

// WordMatcher matches a tchar run, classified as Method when it is one of
// the fixed request methods.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		tok := takeWhile(stream, TokenToken, isTokenRune)
		if tok == nil {
			return nil
		}
		if grammar.IsMethod(tok.ValueString()) {
			return tokenizer.NewToken(TokenMethod, []rune(tok.ValueString()))
		}
		return tok
	}
}

// TextMatcher matches printable characters up to SP, HTAB, colon, CR or LF.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		return takeWhile(stream, TokenText, func(r rune) bool {
			if r >= 0x80 {
				return r >= 0xa0
			}
			return r > 0x20 && r < 0x7f && r != ':'
		})
	}
}

// InvalidMatcher consumes exactly one character.
func InvalidMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenInvalid, []rune{r})
	}
}

// Describe renders the token stream of line, e.g.
// Method("GET") SP(" ") Text("/x") SP(" ") Version("HTTP/1.1") CRLF("\r\n").
func Describe(line string) string {
	tok := NewTokenizer()
	tok.Initialize(line)

	tokens, eos := tok.Tokenize()
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Kind())
		sb.WriteByte('(')
		sb.WriteString(strconv.Quote(t.ValueString()))
		sb.WriteByte(')')
	}
	if !eos {
		sb.WriteString(" …")
	}
	return sb.String()
}

func isTokenRune(r rune) bool {
	return r < 0x80 && lexer.IsTokenChar(byte(r))
}

func takeWhile(stream tokenizer.Stream, kind string, pred func(rune) bool) *tokenizer.Token {
	var value []rune
	for {
		r, ok := stream.PeekChar()
		if !ok || !pred(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}
	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(kind, value)
}
