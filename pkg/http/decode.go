package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decoder reads HTTP messages from an input stream in HTTP/1.1 wire format.
// A single Decoder is not safe for concurrent use; create one per goroutine
// or serialize access externally.
type Decoder struct {
	br *bufio.Reader
	r  *Reader
}

// NewDecoder returns a new decoder that reads from r with DefaultConfig.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderConfig(r, DefaultConfig())
}

// NewDecoderConfig returns a new decoder that reads from r with cfg.
func NewDecoderConfig(r io.Reader, cfg Config) *Decoder {
	br := bufio.NewReader(r)
	return &Decoder{
		br: br,
		r:  NewReader(NewLineReader(br, cfg.MaxLineBytes), cfg),
	}
}

// Decode reads the next HTTP message and stores it in v.
// v must be a *Request or *Response.
func (dec *Decoder) Decode(v interface{}) error {
	// Peek to determine message type. An empty stream is left for the
	// reader to report as a header transport failure.
	prefix, _ := dec.br.Peek(5)
	known := len(prefix) > 0
	isResponse := DetectMessageType(prefix) == TypeResponse

	switch target := v.(type) {
	case *Request:
		if known && isResponse {
			return fmt.Errorf("http: data appears to be a response but target is *Request")
		}
		req, err := dec.r.ReadRequest()
		if err != nil {
			return err
		}
		*target = *req
		return nil
	case *Response:
		if known && !isResponse {
			return fmt.Errorf("http: data appears to be a request but target is *Response")
		}
		resp, err := dec.r.ReadResponse()
		if err != nil {
			return err
		}
		*target = *resp
		return nil
	default:
		return fmt.Errorf("http: Decode unsupported type %T", v)
	}
}

// DecodeRequest reads the next HTTP request from the stream.
func (dec *Decoder) DecodeRequest() (*Request, error) {
	return dec.r.ReadRequest()
}

// DecodeResponse reads the next HTTP response from the stream.
func (dec *Decoder) DecodeResponse() (*Response, error) {
	return dec.r.ReadResponse()
}

// Message types returned by DetectMessageType.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
)

// DetectMessageType returns "request" or "response" based on the data prefix.
// Data starting with "HTTP/" in any case is a response; everything else is a
// request.
func DetectMessageType(data []byte) string {
	if len(data) >= 5 && bytes.EqualFold(data[:5], []byte("HTTP/")) {
		return TypeResponse
	}
	return TypeRequest
}
