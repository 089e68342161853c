package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-frame/internal/grammar"
	"github.com/shapestone/shape-frame/internal/parser"
)

// NodeToRequest converts an AST ObjectNode to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	m, err := parser.NodeToMessage(node)
	if err != nil {
		return nil, err
	}
	if m.Type != "" && m.Type != TypeRequest {
		return nil, fmt.Errorf("node is a %s, not a request", m.Type)
	}
	return &Request{
		Method:  m.Method,
		Target:  m.Target,
		Version: m.Version,
		Headers: fromGrammarHeaders(m.Headers),
		Body:    m.Body,
	}, nil
}

// NodeToResponse converts an AST ObjectNode to a Response.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	m, err := parser.NodeToMessage(node)
	if err != nil {
		return nil, err
	}
	if m.Type != "" && m.Type != TypeResponse {
		return nil, fmt.Errorf("node is a %s, not a response", m.Type)
	}
	return &Response{
		Version:    m.Version,
		StatusCode: m.StatusCode,
		Reason:     m.Reason,
		Headers:    fromGrammarHeaders(m.Headers),
		Body:       m.Body,
	}, nil
}

// RequestToNode converts a Request to an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return parser.RequestNode(parser.Message{
		Method:  req.Method,
		Target:  req.Target,
		Version: req.Version,
		Headers: toGrammarHeaders(req.Headers),
		Body:    req.Body,
	})
}

// ResponseToNode converts a Response to an AST ObjectNode.
func ResponseToNode(resp *Response) ast.SchemaNode {
	return parser.ResponseNode(parser.Message{
		Version:    resp.Version,
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
		Headers:    toGrammarHeaders(resp.Headers),
		Body:       resp.Body,
	})
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func toGrammarHeaders(headers Headers) []grammar.Header {
	out := make([]grammar.Header, len(headers))
	for i, h := range headers {
		out[i] = grammar.Header{Key: h.Key, Value: h.Value}
	}
	return out
}

func fromGrammarHeaders(headers []grammar.Header) Headers {
	if len(headers) == 0 {
		return nil
	}
	out := make(Headers, len(headers))
	for i, h := range headers {
		out[i] = Header{Key: h.Key, Value: h.Value}
	}
	return out
}
