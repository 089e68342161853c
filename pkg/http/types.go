// Package http reads HTTP/1.x messages off a blocking byte stream for a
// relay. It parses exactly one request or response per call, framing the body
// by Content-Length, and reports every failure as a *ParseError whose Kind
// tells the caller how to answer on the wire.
//
// # Thread Safety
//
// A Reader holds no process-wide state. Separate Readers over separate
// transports may be used from separate goroutines; a single Reader must not.
//
// # Parsing APIs
//
//   - NewReader + ReadRequest/ReadResponse - the message reader over a Transport
//   - ReadRequestWith/ReadResponseWith - the same, populating any builder
//   - Unmarshal/UnmarshalRequest/UnmarshalResponse - parse a byte slice
//   - NewDecoder - io.Reader convenience
//   - Parse/ParseReader - AST output via shape-core
package http

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-frame/internal/grammar"
)

// Version is an HTTP protocol version from the closed set the grammar knows.
// Only HTTP11 is accepted by the reader.
type Version = grammar.Version

// Recognized versions.
const (
	VersionUnknown = grammar.VersionUnknown
	HTTP09         = grammar.HTTP09
	HTTP10         = grammar.HTTP10
	HTTP11         = grammar.HTTP11
	HTTP20         = grammar.HTTP20
	HTTP30         = grammar.HTTP30
)

// Request methods accepted on the request line.
const (
	MethodConnect = grammar.MethodConnect
	MethodDelete  = grammar.MethodDelete
	MethodGet     = grammar.MethodGet
	MethodHead    = grammar.MethodHead
	MethodOptions = grammar.MethodOptions
	MethodPatch   = grammar.MethodPatch
	MethodPost    = grammar.MethodPost
	MethodPut     = grammar.MethodPut
	MethodTrace   = grammar.MethodTrace
)

// Request represents an HTTP/1.1 request message.
type Request struct {
	Method  string  // "GET", "POST", etc.
	Target  string  // request-target "/api/users?q=foo"
	Version Version // HTTP11 after parsing
	Headers Headers // ordered, repeatable headers
	Body    []byte  // exactly Content-Length bytes (nil if none)
}

// Response represents an HTTP/1.1 response message.
type Response struct {
	Version    Version
	StatusCode int
	Reason     string  // never set by the reader; used when marshaling
	Headers    Headers // ordered, repeatable headers
	Body       []byte  // exactly Content-Length bytes (nil if none)
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of HTTP headers.
// Lookups are case-insensitive; keys keep their original case.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Has reports whether at least one header has the given key.
func (h Headers) Has(key string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return true
		}
	}
	return false
}

// Values returns all header values for the given key (case-insensitive).
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header with the given key and drops later ones, or
// appends if not found.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with the given key (case-insensitive).
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length header value, or -1 if absent or
// not a non-negative decimal integer.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// Message is the interface shared by Request and Response.
type Message interface {
	GetVersion() Version
	GetHeaders() Headers
	GetBody() []byte
}

// GetVersion returns the HTTP version.
func (r *Request) GetVersion() Version { return r.Version }

// GetHeaders returns the headers.
func (r *Request) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Request) GetBody() []byte { return r.Body }

// GetVersion returns the HTTP version.
func (r *Response) GetVersion() Version { return r.Version }

// GetHeaders returns the headers.
func (r *Response) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Response) GetBody() []byte { return r.Body }

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}
