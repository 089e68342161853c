package http

import (
	"testing"
)

// TestRoundTrip_Request tests that Marshal(Unmarshal(data)) == data for requests.
func TestRoundTrip_Request(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "simple GET",
			data: "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n",
		},
		{
			name: "POST with body",
			data: "POST /api/users HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/json\r\nContent-Length: 19\r\n\r\n{\"name\":\"John Doe\"}",
		},
		{
			name: "multiple headers",
			data: "GET /search?q=test HTTP/1.1\r\nHost: example.com\r\nAccept: text/html\r\nAccept-Language: en-US\r\nUser-Agent: shape-frame/1.0\r\n\r\n",
		},
		{
			name: "duplicate headers keep order and case",
			data: "GET / HTTP/1.1\r\nX-Trace: a\r\nhost: example.com\r\nx-trace: b\r\nX-TRACE: c\r\n\r\n",
		},
		{
			name: "absolute-form target",
			data: "GET http://example.com/a?b=c HTTP/1.1\r\nHost: example.com\r\n\r\n",
		},
		{
			name: "CONNECT authority-form",
			data: "CONNECT example.com:443 HTTP/1.1\r\nHost: example.com:443\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := UnmarshalRequest([]byte(tt.data))
			if err != nil {
				t.Fatalf("UnmarshalRequest() error = %v", err)
			}

			out, err := Marshal(req)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			if string(out) != tt.data {
				t.Errorf("round-trip mismatch:\ngot:  %q\nwant: %q", string(out), tt.data)
			}
		})
	}
}

// TestRoundTrip_Response tests that Marshal(Unmarshal(data)) == data for responses.
func TestRoundTrip_Response(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "simple 200",
			data: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\n",
		},
		{
			name: "200 with body",
			data: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 13\r\n\r\nHello, World!",
		},
		{
			name: "404",
			data: "HTTP/1.1 404 Not Found\r\nContent-Type: text/html\r\nContent-Length: 18\r\n\r\n<h1>Not Found</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := UnmarshalResponse([]byte(tt.data))
			if err != nil {
				t.Fatalf("UnmarshalResponse() error = %v", err)
			}

			out, err := Marshal(resp)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			if string(out) != tt.data {
				t.Errorf("round-trip mismatch:\ngot:  %q\nwant: %q", string(out), tt.data)
			}
		})
	}
}

// TestRoundTrip_ResponseReasonReplaced checks that the reason phrase is not
// carried through; Marshal writes the standard one.
func TestRoundTrip_ResponseReasonReplaced(t *testing.T) {
	resp, err := UnmarshalResponse([]byte("HTTP/1.1 200 All Good Here\r\nContent-Length: 0\r\n\r\n"))
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if resp.Reason != "" {
		t.Errorf("Reason = %q, want empty", resp.Reason)
	}

	out, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", string(out), want)
	}
}
