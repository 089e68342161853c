package http

import (
	"bytes"
	"fmt"
)

// Unmarshal parses the HTTP wire-format data and stores the result in v.
//
// v must be a *Request or *Response. The function auto-detects the message type
// based on whether data starts with "HTTP/" (response) or not (request).
// Exactly one message is read; bytes after its body are ignored.
//
// # Authentication
//
// Authentication headers are parsed as ordinary HTTP headers and are available
// via req.Headers.Get:
//
//	req.Headers.Get("Authorization")       // "Basic dXNlcm5hbWU6cGFzc3dvcmQ="
//	req.Headers.Get("Proxy-Authorization") // "Bearer eyJhbGci..."
//
// Query-string credentials are preserved as part of req.Target:
//
//	// GET /api/users?api_key=abc123 HTTP/1.1  →  req.Target = "/api/users?api_key=abc123"
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}

	// Check for Unmarshaler interface
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	isResp := DetectMessageType(data) == TypeResponse

	switch target := v.(type) {
	case *Request:
		if isResp {
			return fmt.Errorf("http: data appears to be a response but target is *Request")
		}
		req, err := UnmarshalRequest(data)
		if err != nil {
			return err
		}
		*target = *req
		return nil

	case *Response:
		if !isResp {
			return fmt.Errorf("http: data appears to be a request but target is *Response")
		}
		resp, err := UnmarshalResponse(data)
		if err != nil {
			return err
		}
		*target = *resp
		return nil

	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}

// UnmarshalRequest parses HTTP wire-format data as a request.
func UnmarshalRequest(data []byte) (*Request, error) {
	return bytesReader(data).ReadRequest()
}

// UnmarshalResponse parses HTTP wire-format data as a response.
func UnmarshalResponse(data []byte) (*Response, error) {
	return bytesReader(data).ReadResponse()
}

func bytesReader(data []byte) *Reader {
	cfg := DefaultConfig()
	return NewReader(NewLineReader(bytes.NewReader(data), cfg.MaxLineBytes), cfg)
}
