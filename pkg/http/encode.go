package http

import (
	"fmt"
	"strconv"
)

// appendRequest serializes a Request to HTTP/1.1 wire format.
// It appends "METHOD TARGET VERSION\r\n" followed by headers and body.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if req.Method == "" {
		return nil, fmt.Errorf("http: Marshal: request method is empty")
	}
	if req.Target == "" {
		return nil, fmt.Errorf("http: Marshal: request target is empty")
	}

	buf = appendRequestLine(buf, req.Method, req.Target, wireVersion(req.Version))
	buf = appendHeaders(buf, req.Headers, req.Body)
	return append(buf, req.Body...), nil
}

// appendResponse serializes a Response to HTTP/1.1 wire format.
// It appends "VERSION STATUS REASON\r\n" followed by headers and body.
func appendResponse(buf []byte, resp *Response) ([]byte, error) {
	if err := validateStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("http: Marshal: %w", err)
	}
	reason := resp.Reason
	if reason == "" {
		reason = StatusText(resp.StatusCode)
	}

	buf = appendStatusLine(buf, wireVersion(resp.Version), resp.StatusCode, reason)
	buf = appendHeaders(buf, resp.Headers, resp.Body)
	return append(buf, resp.Body...), nil
}

// appendHeaders appends all headers in "Key: Value\r\n" format, a
// Content-Length for a non-empty body if none is present, and the blank line.
func appendHeaders(buf []byte, headers Headers, body []byte) []byte {
	for _, h := range headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	if len(body) > 0 && !headers.Has("Content-Length") {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(body)), 10)
		buf = appendCRLF(buf)
	}
	return appendCRLF(buf)
}

func wireVersion(v Version) Version {
	if v == VersionUnknown {
		return HTTP11
	}
	return v
}
