package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/caseswap/finder"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type rewriteInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a text file on disk (read only, never modified)"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
	From    string `json:"from"              jsonschema:"The identifier to rename, in any supported case style"`
	To      string `json:"to"                jsonschema:"The new name: an identifier in any style or a plain lowercase phrase"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Skip the first N listed occurrences"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum occurrences to list (default 100)"`
}

type rewriteMatch struct {
	Text        string `json:"text"`
	Style       string `json:"style,omitempty"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Replacement string `json:"replacement"`
}

type rewriteOutput struct {
	Text         string         `json:"text"`
	Replacements int            `json:"replacements"`
	Style        string         `json:"style"`
	Returned     int            `json:"returned"`
	Matches      []rewriteMatch `json:"matches,omitempty"`
}

func handleRewriteText(_ context.Context, _ *mcp.CallToolRequest, input rewriteInput) (*mcp.CallToolResult, rewriteOutput, error) {
	text, err := textInput{File: input.File, Content: input.Content}.resolve(cfg.MaxInputSize)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	r := registry()
	f, err := finder.New(input.From,
		finder.WithRegistry(r),
		finder.WithLogger(slog.Default()),
		finder.WithMatchTimeout(cfg.MatchTimeout),
	)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	matches, err := f.FindAll(text)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}
	rewritten, n, err := f.ReplaceAll(text, input.To)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	page := paginate(matches, input.Offset, input.Limit)
	output := rewriteOutput{
		Text:         rewritten,
		Replacements: n,
		Style:        styleName(f.Identifier().Style),
		Returned:     len(page),
		Matches:      makeSlice[rewriteMatch](len(page)),
	}
	for _, m := range page {
		output.Matches = append(output.Matches, rewriteMatch{
			Text:        m.Text,
			Style:       styleName(m.Style),
			Line:        m.Line,
			Column:      m.Column,
			Replacement: r.Replace(m.Text, input.To),
		})
	}
	return nil, output, nil
}
