// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes caseswap operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/erraggy/caseswap"
	"github.com/erraggy/caseswap/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `caseswap MCP server: recognizes identifier case styles (snake_case, camelCase, PascalCase, SCREAMING_SNAKE, kebab-case, dot.case, path/case, Ada_Case, Title-Dash, space case) and converts between them.

Use find_regex to get one pattern matching an identifier in every style, replace to rewrite a replacement in the style of an identifier, classify to inspect an identifier, permutations to list every rendering, and rewrite_text to rename every spelling of an identifier in a document.

Configuration: defaults are configurable via CASESWAP_* environment variables set in your MCP client config.
- CASESWAP_PATTERN_DIALECT (default: vim): default find_regex dialect, vim or re2
- CASESWAP_STRICT_SCREAMING_SNAKE (default: false): require two or more groups for SCREAMING_SNAKE, so "SOME" no longer classifies
- CASESWAP_MAX_INPUT_SIZE (default: 1048576): maximum rewrite_text input in bytes
- CASESWAP_MATCH_TIMEOUT (default: 5s): time limit for one rewrite_text scan
- CASESWAP_MATCH_LIMIT (default: 100): occurrences listed by rewrite_text when no limit is given
- CASESWAP_MAX_LIMIT (default: 1000): maximum occurrences listed by rewrite_text`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	// Reload so an env file applied by the caller takes effect.
	cfg = loadConfig()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "caseswap", Version: caseswap.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	slog.Debug("starting MCP server", "version", caseswap.Version(),
		"dialect", cfg.PatternDialect, "strict_screaming_snake", cfg.StrictScreamingSnake)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_regex",
		Description: "Build one case-sensitive regex that matches an identifier spelled in every supported case style except space-separated (Ada_Case, camelCase, dot.case, kebab-case, PascalCase, path/case, SCREAMING_SNAKE, snake_case, Title-Dash). The default vim dialect renders \\v\\C(...) for Vim/Neovim; re2 renders an escaped group for Go regexp. If the identifier is not in a recognized style the identifier itself is returned as the pattern and classified is false.",
	}, handleFindRegex)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace",
		Description: "Rewrite a replacement so it matches the case style of another identifier. For example from=SomePascalCaseWord, replacement=\"this will still be pascal case\" returns ThisWillStillBePascalCase. Plain lowercase phrases are treated as space-separated words. If either input cannot be used the replacement is returned unchanged.",
	}, handleReplace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Detect the case style of an identifier and split it into lowercase word parts. Returns classified=false for strings in no recognized style.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "permutations",
		Description: "List an identifier rendered in every supported case style except space-separated, in fixed style order. Fails if the identifier is not in a recognized style.",
	}, handlePermutations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite_text",
		Description: "Rename every spelling of an identifier in a document, rendering the new name in the style of each occurrence (max_size -> buffer_limit, maxSize -> bufferLimit, MAX_SIZE -> BUFFER_LIMIT). Only whole identifiers are replaced. Provide the document via exactly one of content or file. Returns the rewritten text and the occurrences found; files are never modified. Input size is limited by CASESWAP_MAX_INPUT_SIZE.",
	}, handleRewriteText)
}

var strictRegistry = sync.OnceValue(func() *casing.Registry {
	return casing.NewRegistry(casing.WithStrictScreamingSnake(true))
})

// registry returns the rule registry selected by the active configuration.
func registry() *casing.Registry {
	if cfg.StrictScreamingSnake {
		return strictRegistry()
	}
	return casing.Default()
}

// paginate applies offset/limit to a slice. Default limit is cfg.MatchLimit,
// capped at cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.MatchLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns a nil slice when n is zero (so omitempty omits it),
// or a pre-allocated slice with capacity n otherwise.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// styleName renders a style for tool output; unclassified inputs get "".
func styleName(s casing.Style) string {
	if !s.IsValid() {
		return ""
	}
	return s.String()
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
