package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type replaceInput struct {
	From        string `json:"from"        jsonschema:"Identifier whose case style the result should take"`
	Replacement string `json:"replacement" jsonschema:"Replacement text: an identifier in any style or a plain lowercase phrase"`
}

type replaceOutput struct {
	Result           string `json:"result"`
	Changed          bool   `json:"changed"`
	FromStyle        string `json:"from_style,omitempty"`
	ReplacementStyle string `json:"replacement_style,omitempty"`
}

func handleReplace(_ context.Context, _ *mcp.CallToolRequest, input replaceInput) (*mcp.CallToolResult, replaceOutput, error) {
	r := registry()
	output := replaceOutput{
		Result: r.Replace(input.From, input.Replacement),
	}
	output.Changed = output.Result != input.Replacement

	if style, err := r.Classify(input.From); err == nil {
		output.FromStyle = styleName(style)
	}
	if style, err := r.Classify(input.Replacement); err == nil {
		output.ReplacementStyle = styleName(style)
	}
	return nil, output, nil
}
