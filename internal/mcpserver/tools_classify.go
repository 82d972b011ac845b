package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type classifyInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to classify"`
}

type classifyOutput struct {
	Identifier string   `json:"identifier"`
	Classified bool     `json:"classified"`
	Style      string   `json:"style,omitempty"`
	Parts      []string `json:"parts,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	id, err := registry().Parse(input.Identifier)
	if err != nil {
		return nil, classifyOutput{Identifier: input.Identifier, Reason: err.Error()}, nil
	}
	return nil, classifyOutput{
		Identifier: input.Identifier,
		Classified: true,
		Style:      styleName(id.Style),
		Parts:      id.Parts,
	}, nil
}
