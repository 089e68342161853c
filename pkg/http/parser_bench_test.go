package http

import (
	"bytes"
	"testing"
)

var simpleRequest = []byte("GET /api/users HTTP/1.1\r\nHost: example.com\r\nAccept: application/json\r\nUser-Agent: shape-frame/1.0\r\n\r\n")

var requestWithBody = []byte("POST /api/users HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/json\r\nContent-Length: 55\r\n\r\n{\"name\":\"John Doe\",\"email\":\"john@example.com\",\"age\":30}")

var simpleResponse = []byte("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: 26\r\nServer: shape-frame/1.0\r\n\r\n{\"status\":\"ok\",\"count\":42}")

var pipelined = bytes.Repeat(requestWithBody, 16)

func BenchmarkUnmarshal_SimpleRequest(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := UnmarshalRequest(simpleRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal_RequestWithBody(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := UnmarshalRequest(requestWithBody)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal_SimpleResponse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := UnmarshalResponse(simpleResponse)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_Pipelined(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(pipelined)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(NewLineReader(bytes.NewReader(pipelined), cfg.MaxLineBytes), cfg)
		for j := 0; j < 16; j++ {
			if _, err := r.ReadRequest(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkValidate_Request(b *testing.B) {
	input := string(requestWithBody)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Validate(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_SimpleRequest(b *testing.B) {
	input := string(simpleRequest)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Parse(input)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTrip_Request(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req, err := UnmarshalRequest(requestWithBody)
		if err != nil {
			b.Fatal(err)
		}
		_, err = Marshal(req)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDetectMessageType(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DetectMessageType(simpleRequest)
		DetectMessageType(simpleResponse)
	}
}
