package http

import (
	"bytes"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// NetRequestBuilder populates a *net/http.Request. net/http keeps headers in a
// map, so relative order across different keys is lost; values of one key
// keep their order.
type NetRequestBuilder struct {
	method  string
	target  string
	version Version
	header  nethttp.Header
	err     error
}

// NewNetRequestBuilder returns an empty NetRequestBuilder.
func NewNetRequestBuilder() *NetRequestBuilder {
	return &NetRequestBuilder{header: make(nethttp.Header)}
}

func (b *NetRequestBuilder) SetMethod(method string) { b.method = method }
func (b *NetRequestBuilder) SetTarget(target string) { b.target = target }
func (b *NetRequestBuilder) SetVersion(v Version)    { b.version = v }

// AddHeader records the first invalid header and keeps going; SetBody
// reports it.
func (b *NetRequestBuilder) AddHeader(key, value string) {
	if err := validHeader(key, value); err != nil && b.err == nil {
		b.err = err
	}
	b.header.Add(key, value)
}

func (b *NetRequestBuilder) SetBody(body []byte) (*nethttp.Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := validateTarget(b.method, b.target); err != nil {
		return nil, err
	}

	var u *url.URL
	var err error
	switch {
	case b.target == "*":
		u = &url.URL{Path: "*"}
	case b.method == MethodConnect:
		u, err = authority(b.target)
	default:
		u, err = url.ParseRequestURI(b.target)
	}
	if err != nil {
		return nil, err
	}

	host := u.Host
	if h := b.header.Get("Host"); h != "" {
		host = h
	}
	if !httpguts.ValidHostHeader(host) {
		return nil, fmt.Errorf("invalid Host %q", host)
	}

	major, minor := protoVersion(b.version)
	return &nethttp.Request{
		Method:        b.method,
		URL:           u,
		Proto:         b.version.String(),
		ProtoMajor:    major,
		ProtoMinor:    minor,
		Header:        b.header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Host:          host,
		RequestURI:    b.target,
	}, nil
}

// NetResponseBuilder populates a *net/http.Response.
type NetResponseBuilder struct {
	status  int
	version Version
	header  nethttp.Header
	err     error
}

// NewNetResponseBuilder returns an empty NetResponseBuilder.
func NewNetResponseBuilder() *NetResponseBuilder {
	return &NetResponseBuilder{header: make(nethttp.Header)}
}

func (b *NetResponseBuilder) SetStatus(code int)   { b.status = code }
func (b *NetResponseBuilder) SetVersion(v Version) { b.version = v }

func (b *NetResponseBuilder) AddHeader(key, value string) {
	if err := validHeader(key, value); err != nil && b.err == nil {
		b.err = err
	}
	b.header.Add(key, value)
}

func (b *NetResponseBuilder) SetBody(body []byte) (*nethttp.Response, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := validateStatus(b.status); err != nil {
		return nil, err
	}
	major, minor := protoVersion(b.version)
	return &nethttp.Response{
		Status:        fmt.Sprintf("%d %s", b.status, nethttp.StatusText(b.status)),
		StatusCode:    b.status,
		Proto:         b.version.String(),
		ProtoMajor:    major,
		ProtoMinor:    minor,
		Header:        b.header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}, nil
}

func validHeader(key, value string) error {
	if !httpguts.ValidHeaderFieldName(key) {
		return fmt.Errorf("invalid header name %q", key)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid value for header %q", key)
	}
	return nil
}

func protoVersion(v Version) (major, minor int) {
	switch v {
	case HTTP09:
		return 0, 9
	case HTTP10:
		return 1, 0
	case HTTP11:
		return 1, 1
	case HTTP20:
		return 2, 0
	case HTTP30:
		return 3, 0
	}
	return 0, 0
}
