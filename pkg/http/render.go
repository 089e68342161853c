package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-frame/internal/parser"
)

// Render writes a message node (from Parse or RequestToNode/ResponseToNode)
// back to wire format with the same rules as Marshal. Response reason
// phrases are not kept in the node, so they come from StatusText.
func Render(node ast.SchemaNode) ([]byte, error) {
	m, err := parser.NodeToMessage(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}

	headers := fromGrammarHeaders(m.Headers)
	switch m.Type {
	case TypeRequest:
		return Marshal(&Request{Method: m.Method, Target: m.Target, Version: m.Version, Headers: headers, Body: m.Body})
	case TypeResponse:
		return Marshal(&Response{Version: m.Version, StatusCode: m.StatusCode, Reason: m.Reason, Headers: headers, Body: m.Body})
	default:
		return nil, fmt.Errorf("http: Render: unknown message type %q", m.Type)
	}
}
