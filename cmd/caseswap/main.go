package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agnivade/levenshtein"
	"github.com/erraggy/caseswap"
	"github.com/erraggy/caseswap/cmd/caseswap/commands"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{
	"detect", "permutations", "find-regex", "replace", "rewrite", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		if len(args) > 0 && (args[0] == "-verbose" || args[0] == "--verbose") {
			fmt.Println(caseswap.BuildInfo())
			return
		}
		fmt.Printf("caseswap %s\n", caseswap.Version())
	case "help", "-h", "--help":
		printUsage()
	case "detect":
		exitOnError(commands.HandleDetect(args))
	case "permutations", "perms":
		exitOnError(commands.HandlePermutations(args))
	case "find-regex", "regex":
		exitOnError(commands.HandleFindRegex(args))
	case "replace":
		exitOnError(commands.HandleReplace(args))
	case "rewrite":
		exitOnError(commands.HandleRewrite(args))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := commands.HandleMCP(ctx, args)
		stop()
		exitOnError(err)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command name within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDistance := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`caseswap - identifier case style tools

Usage:
  caseswap <command> [options]

Commands:
  detect        Detect the case style of identifiers
  permutations  Render an identifier in every case style
  find-regex    Print a pattern matching an identifier in every style
  replace       Render a replacement in the style of an identifier
  rewrite       Rename every spelling of an identifier in a file
  mcp           Start the MCP server over stdio
  version       Show version information (-verbose for build details)
  help          Show this help message

Styles:
  Some_Ada_Case  someCamelCase  some.dot.case  some-kebab-case  SomePascalCase
  some/path/case  SOME_SCREAMING_SNAKE  some_snake_case  "some space case"  Some-Title-Dash

Examples:
  caseswap detect someCamelCase
  caseswap permutations some_word
  caseswap find-regex -dialect re2 SomeWord
  caseswap replace SomePascalCaseWord "this will still be pascal case"
  caseswap rewrite -from maxSize -to "buffer limit" config.go

Run 'caseswap <command> --help' for more information on a command.`)
}
