package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/caseswap/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type findRegexInput struct {
	Identifier string `json:"identifier"        jsonschema:"The identifier to build a pattern for, in any supported case style"`
	Dialect    string `json:"dialect,omitempty" jsonschema:"Pattern dialect: vim (default, \\v\\C(...)) or re2 (Go regexp)"`
}

type findRegexOutput struct {
	Pattern    string   `json:"pattern"`
	Classified bool     `json:"classified"`
	Style      string   `json:"style,omitempty"`
	Parts      []string `json:"parts,omitempty"`
}

func handleFindRegex(_ context.Context, _ *mcp.CallToolRequest, input findRegexInput) (*mcp.CallToolResult, findRegexOutput, error) {
	dialectName := input.Dialect
	if dialectName == "" {
		dialectName = cfg.PatternDialect
	}
	dialect, err := casing.ParseDialect(dialectName)
	if err != nil {
		return errResult(err), findRegexOutput{}, nil
	}

	id, err := registry().Parse(input.Identifier)
	if err != nil {
		// Unclassifiable input is its own pattern.
		slog.Debug("find_regex: identifier did not classify", "identifier", input.Identifier)
		return nil, findRegexOutput{Pattern: input.Identifier}, nil
	}

	return nil, findRegexOutput{
		Pattern:    registry().Pattern(id.Parts, dialect),
		Classified: true,
		Style:      styleName(id.Style),
		Parts:      id.Parts,
	}, nil
}
