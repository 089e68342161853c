package http

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-frame/internal/parser"
)

// Parse parses HTTP wire format into an AST from a string.
//
// The input is a complete HTTP/1.1 message (request or response), read with
// the same grammar and framing as ReadRequest and ReadResponse.
// Returns an ast.ObjectNode with properties matching the message type.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// For responses:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
func Parse(input string) (ast.SchemaNode, error) {
	return parseNode([]byte(input), DefaultConfig())
}

// ParseReader reads all data from r and parses it as an HTTP message into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parseNode(data, DefaultConfig())
}

func parseNode(data []byte, cfg Config) (ast.SchemaNode, error) {
	r := NewReader(NewLineReader(bytes.NewReader(data), cfg.MaxLineBytes), cfg)
	if DetectMessageType(data) == TypeResponse {
		return ReadResponseWith[ast.SchemaNode](r, parser.NewResponseNodeBuilder())
	}
	return ReadRequestWith[ast.SchemaNode](r, parser.NewRequestNodeBuilder())
}
