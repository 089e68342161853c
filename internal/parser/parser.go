// Package parser maps HTTP/1.x messages onto shape-core AST nodes
// (ObjectNode, LiteralNode, ArrayDataNode) and back.
//
// RequestNodeBuilder and ResponseNodeBuilder receive the parts of a message
// from the message reader in wire order and produce an ObjectNode:
//
// Request:
//
//	{ "type": "request", "method": "POST", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-frame/internal/grammar"
)

// Message types stored under the "type" property.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
)

var zeroPos = ast.Position{}

// RequestNodeBuilder accumulates a request and yields its ObjectNode.
type RequestNodeBuilder struct {
	method  string
	target  string
	version grammar.Version
	headers []grammar.Header
}

// NewRequestNodeBuilder returns an empty RequestNodeBuilder.
func NewRequestNodeBuilder() *RequestNodeBuilder {
	return &RequestNodeBuilder{}
}

func (b *RequestNodeBuilder) SetMethod(method string)      { b.method = method }
func (b *RequestNodeBuilder) SetTarget(target string)      { b.target = target }
func (b *RequestNodeBuilder) SetVersion(v grammar.Version) { b.version = v }

func (b *RequestNodeBuilder) AddHeader(key, value string) {
	b.headers = append(b.headers, grammar.Header{Key: key, Value: value})
}

// SetBody finishes the node. The AST has no notion of an invalid request, so
// it only rejects an empty method or target.
func (b *RequestNodeBuilder) SetBody(body []byte) (ast.SchemaNode, error) {
	if b.method == "" || b.target == "" {
		return nil, fmt.Errorf("request line incomplete")
	}
	return RequestNode(Message{
		Type:    TypeRequest,
		Method:  b.method,
		Target:  b.target,
		Version: b.version,
		Headers: b.headers,
		Body:    body,
	}), nil
}

// ResponseNodeBuilder accumulates a response and yields its ObjectNode.
type ResponseNodeBuilder struct {
	status  int
	version grammar.Version
	headers []grammar.Header
}

// NewResponseNodeBuilder returns an empty ResponseNodeBuilder.
func NewResponseNodeBuilder() *ResponseNodeBuilder {
	return &ResponseNodeBuilder{}
}

func (b *ResponseNodeBuilder) SetStatus(code int)           { b.status = code }
func (b *ResponseNodeBuilder) SetVersion(v grammar.Version) { b.version = v }

func (b *ResponseNodeBuilder) AddHeader(key, value string) {
	b.headers = append(b.headers, grammar.Header{Key: key, Value: value})
}

func (b *ResponseNodeBuilder) SetBody(body []byte) (ast.SchemaNode, error) {
	return ResponseNode(Message{
		Type:       TypeResponse,
		Version:    b.version,
		StatusCode: b.status,
		Headers:    b.headers,
		Body:       body,
	}), nil
}

// Message is the flat form of either node shape.
type Message struct {
	Type       string
	Method     string
	Target     string
	Version    grammar.Version
	StatusCode int
	Reason     string
	Headers    []grammar.Header
	Body       []byte
}

// RequestNode converts m to a request ObjectNode.
func RequestNode(m Message) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode(TypeRequest, zeroPos),
		"method":  ast.NewLiteralNode(m.Method, zeroPos),
		"target":  ast.NewLiteralNode(m.Target, zeroPos),
		"version": ast.NewLiteralNode(m.Version.String(), zeroPos),
		"headers": headersToNode(m.Headers),
	}
	if m.Body != nil {
		props["body"] = ast.NewLiteralNode(string(m.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseNode converts m to a response ObjectNode.
func ResponseNode(m Message) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode(TypeResponse, zeroPos),
		"version":    ast.NewLiteralNode(m.Version.String(), zeroPos),
		"statusCode": ast.NewLiteralNode(int64(m.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(m.Reason, zeroPos),
		"headers":    headersToNode(m.Headers),
	}
	if m.Body != nil {
		props["body"] = ast.NewLiteralNode(string(m.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []grammar.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToMessage flattens an ObjectNode produced by RequestNode or
// ResponseNode. Missing properties are left zero; a version outside the
// closed set is an error.
func NodeToMessage(node ast.SchemaNode) (Message, error) {
	var m Message
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return m, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	m.Type = literalString(props["type"])
	m.Method = literalString(props["method"])
	m.Target = literalString(props["target"])
	m.Reason = literalString(props["reason"])

	if raw := literalString(props["version"]); raw != "" {
		v, ok := grammar.LookupVersion(raw)
		if !ok {
			return m, fmt.Errorf("unknown version %q", raw)
		}
		m.Version = v
	}
	if v, ok := props["statusCode"]; ok {
		m.StatusCode = literalInt(v)
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return m, err
		}
		m.Headers = hdrs
	}
	if v, ok := props["body"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				m.Body = []byte(s)
			}
		}
	}
	return m, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]grammar.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]grammar.Header, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		headers = append(headers, grammar.Header{
			Key:   literalString(props["key"]),
			Value: literalString(props["value"]),
		})
	}
	return headers, nil
}

func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func literalInt(node ast.SchemaNode) int {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return 0
	}
	switch code := lit.Value().(type) {
	case int64:
		return int(code)
	case int:
		return code
	case float64:
		return int(code)
	case string:
		n, _ := strconv.Atoi(code)
		return n
	}
	return 0
}
