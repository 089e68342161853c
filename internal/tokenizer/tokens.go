// Package tokenizer splits a single raw HTTP/1.x line into classified tokens
// using Shape's tokenizer framework. It never fails: bytes no class accepts
// become Invalid tokens. The message reader uses it to describe rejected lines.
package tokenizer

// Token kinds.
const (
	TokenMethod  = "Method"  // one of the fixed request methods
	TokenVersion = "Version" // HTTP/x.y, any case
	TokenToken   = "Token"   // tchar run, e.g. a header name
	TokenText    = "Text"    // anything else up to whitespace, colon or a line break
	TokenSP      = "SP"      // run of SP/HTAB
	TokenColon   = "Colon"   // :
	TokenCRLF    = "CRLF"    // \r\n only
	TokenInvalid = "Invalid" // a single byte no other class accepts
)
