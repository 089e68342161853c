package grammar

import "github.com/shapestone/shape-frame/internal/lexer"

// Request methods. No extension methods are accepted.
const (
	MethodConnect = "CONNECT"
	MethodDelete  = "DELETE"
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodPatch   = "PATCH"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodTrace   = "TRACE"
)

var methods = [...]string{
	MethodConnect,
	MethodDelete,
	MethodGet,
	MethodHead,
	MethodOptions,
	MethodPatch,
	MethodPost,
	MethodPut,
	MethodTrace,
}

// Method matches one of the fixed request methods at the start of in and
// returns its canonical string, which never aliases in.
func Method(in []byte) (method string, rest []byte, err error) {
	for _, m := range methods {
		if _, rest, err := lexer.Tag(in, m); err == nil {
			return m, rest, nil
		}
	}
	return "", in, lexer.ErrTag
}

// IsMethod reports whether s is exactly one of the fixed request methods.
func IsMethod(s string) bool {
	for _, m := range methods {
		if m == s {
			return true
		}
	}
	return false
}
