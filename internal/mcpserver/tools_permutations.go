package mcpserver

import (
	"context"

	"github.com/erraggy/caseswap/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type permutationsInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to render in every style"`
}

type permutation struct {
	Style string `json:"style"`
	Text  string `json:"text"`
}

type permutationsOutput struct {
	Style        string        `json:"style"`
	Parts        []string      `json:"parts"`
	Permutations []permutation `json:"permutations"`
}

func handlePermutations(_ context.Context, _ *mcp.CallToolRequest, input permutationsInput) (*mcp.CallToolResult, permutationsOutput, error) {
	r := registry()
	id, err := r.Parse(input.Identifier)
	if err != nil {
		return errResult(err), permutationsOutput{}, nil
	}

	output := permutationsOutput{
		Style: styleName(id.Style),
		Parts: id.Parts,
	}
	// Same order and exclusions as casing.Registry.Permutations, with each
	// rendering labelled by its style.
	for _, rule := range r.Rules() {
		if rule.Style == casing.Space {
			continue
		}
		output.Permutations = append(output.Permutations, permutation{
			Style: styleName(rule.Style),
			Text:  rule.Produce(id.Parts),
		})
	}
	return nil, output, nil
}
