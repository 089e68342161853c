package http

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// MessageBuilder accumulates the parts shared by requests and responses.
// The reader calls the setters in wire order and finishes with SetBody, which
// either yields the final message or rejects the accumulated parts.
type MessageBuilder[M any] interface {
	SetVersion(v Version)
	// AddHeader appends one header; order and duplicates must be kept.
	AddHeader(key, value string)
	SetBody(body []byte) (M, error)
}

// RequestBuilder builds a request message of type M.
type RequestBuilder[M any] interface {
	MessageBuilder[M]
	SetMethod(method string)
	SetTarget(target string)
}

// ResponseBuilder builds a response message of type M.
type ResponseBuilder[M any] interface {
	MessageBuilder[M]
	SetStatus(code int)
}

type requestBuilder struct {
	req Request
}

// NewRequestBuilder returns a builder producing *Request. SetBody rejects
// request targets that fit none of the origin, absolute, authority (CONNECT)
// or asterisk (OPTIONS) forms.
func NewRequestBuilder() RequestBuilder[*Request] {
	return &requestBuilder{}
}

func (b *requestBuilder) SetMethod(method string)     { b.req.Method = method }
func (b *requestBuilder) SetTarget(target string)     { b.req.Target = target }
func (b *requestBuilder) SetVersion(v Version)        { b.req.Version = v }
func (b *requestBuilder) AddHeader(key, value string) { b.req.Headers.Add(key, value) }

func (b *requestBuilder) SetBody(body []byte) (*Request, error) {
	if b.req.Method == "" {
		return nil, fmt.Errorf("request method is empty")
	}
	if err := validateTarget(b.req.Method, b.req.Target); err != nil {
		return nil, err
	}
	req := b.req
	req.Body = body
	return &req, nil
}

type responseBuilder struct {
	resp Response
}

// NewResponseBuilder returns a builder producing *Response. SetBody rejects
// status codes outside 100..999.
func NewResponseBuilder() ResponseBuilder[*Response] {
	return &responseBuilder{}
}

func (b *responseBuilder) SetStatus(code int)          { b.resp.StatusCode = code }
func (b *responseBuilder) SetVersion(v Version)        { b.resp.Version = v }
func (b *responseBuilder) AddHeader(key, value string) { b.resp.Headers.Add(key, value) }

func (b *responseBuilder) SetBody(body []byte) (*Response, error) {
	if err := validateStatus(b.resp.StatusCode); err != nil {
		return nil, err
	}
	resp := b.resp
	resp.Body = body
	return &resp, nil
}

func validateStatus(code int) error {
	if code < 100 || code > 999 {
		return fmt.Errorf("invalid status code %d", code)
	}
	return nil
}

func validateTarget(method, target string) error {
	switch {
	case target == "":
		return fmt.Errorf("request target is empty")
	case target == "*":
		if method != MethodOptions {
			return fmt.Errorf("asterisk-form target is only valid for OPTIONS, got %s", method)
		}
	case method == MethodConnect:
		if _, err := authority(target); err != nil {
			return err
		}
	case strings.HasPrefix(target, "/"):
		if _, err := url.ParseRequestURI(target); err != nil {
			return fmt.Errorf("invalid request target %q: %w", target, err)
		}
	default:
		u, err := url.Parse(target)
		if err != nil {
			return fmt.Errorf("invalid request target %q: %w", target, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("invalid request target %q: not origin-form or absolute-form", target)
		}
	}
	return nil
}

// authority validates an authority-form target ("host:port").
func authority(target string) (*url.URL, error) {
	host, port, err := net.SplitHostPort(target)
	if err != nil || host == "" || port == "" {
		return nil, fmt.Errorf("CONNECT target %q is not host:port", target)
	}
	return &url.URL{Host: target}, nil
}
