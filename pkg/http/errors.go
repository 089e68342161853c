package http

import (
	"errors"
	"fmt"
	nethttp "net/http"
)

// Kind classifies why a message could not be read.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindMalformed is a grammar violation at a specific position.
	KindMalformed
	// KindUnsupportedVersion is a well-formed version other than HTTP/1.1.
	KindUnsupportedVersion
	// KindInvalidContentLength is a Content-Length that is not a usable
	// non-negative integer.
	KindInvalidContentLength
	// KindHeaderTransport is an I/O failure before the header block completed.
	KindHeaderTransport
	// KindBodyTransport is an I/O failure or short read while reading the body.
	KindBodyTransport
	// KindBuilderRejection is a set of valid tokens the target type refused.
	KindBuilderRejection
)

var kindNames = [...]string{
	KindUnknown:              "unknown",
	KindMalformed:            "malformed input",
	KindUnsupportedVersion:   "unsupported version",
	KindInvalidContentLength: "invalid content length",
	KindHeaderTransport:      "header transport failure",
	KindBodyTransport:        "body transport failure",
	KindBuilderRejection:     "builder rejection",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Direction says which side of the relay a message came from.
type Direction uint8

const (
	// DirectionRequest is a request read from a client.
	DirectionRequest Direction = iota
	// DirectionResponse is a response read from an upstream.
	DirectionResponse
)

func (d Direction) String() string {
	if d == DirectionResponse {
		return "response"
	}
	return "request"
}

// StatusClientClosedRequest is the non-standard status used when the client
// went away before sending a complete header block.
const StatusClientClosedRequest = 499

// ParseError represents an error that occurred while reading an HTTP message.
type ParseError struct {
	Kind      Kind
	Direction Direction
	Message   string // human-readable error message
	Line      int    // 1-indexed line number where error occurred (0 if unknown)
	Position  int    // byte offset within that line (0 if unknown)
	Err       error  // underlying cause, if any
}

// Sentinels for errors.Is. They match any *ParseError of the same Kind.
var (
	ErrMalformed            = &ParseError{Kind: KindMalformed}
	ErrUnsupportedVersion   = &ParseError{Kind: KindUnsupportedVersion}
	ErrInvalidContentLength = &ParseError{Kind: KindInvalidContentLength}
	ErrHeaderTransport      = &ParseError{Kind: KindHeaderTransport}
	ErrBodyTransport        = &ParseError{Kind: KindBodyTransport}
	ErrBuilderRejection     = &ParseError{Kind: KindBuilderRejection}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %s", e.Line, msg)
	}
	if e.Position > 0 {
		return fmt.Sprintf("http: parse error at position %d: %s", e.Position, msg)
	}
	return fmt.Sprintf("http: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// StatusCode returns the status a relay should answer with for this error.
// Anything that goes wrong reading an upstream response is a bad gateway.
func (e *ParseError) StatusCode() int {
	if e.Direction == DirectionResponse {
		return nethttp.StatusBadGateway
	}
	switch e.Kind {
	case KindMalformed, KindInvalidContentLength, KindBodyTransport:
		return nethttp.StatusBadRequest
	case KindUnsupportedVersion:
		return nethttp.StatusNotImplemented
	case KindHeaderTransport:
		return StatusClientClosedRequest
	default:
		return nethttp.StatusInternalServerError
	}
}

// KindOf returns the Kind of the first *ParseError in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

func newParseError(kind Kind, msg string, line int) *ParseError {
	return &ParseError{Kind: kind, Message: msg, Line: line}
}
