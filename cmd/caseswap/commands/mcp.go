package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/caseswap/internal/mcpserver"
	"github.com/joho/godotenv"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	EnvFiles stringList
	Verbose  bool
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// runServer is replaced in tests so HandleMCP can be exercised without stdio.
var runServer = mcpserver.Run

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.Var(&flags.EnvFiles, "env-file", "load CASESWAP_* settings from a dotenv file (repeatable)")
	fs.BoolVar(&flags.Verbose, "v", false, "debug logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap mcp [flags]\n\n")
		Writef(output, "Start an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nEnvironment:\n")
		Writef(output, "  CASESWAP_PATTERN_DIALECT          default find_regex dialect (vim)\n")
		Writef(output, "  CASESWAP_STRICT_SCREAMING_SNAKE   strict SCREAMING_SNAKE classification (false)\n")
		Writef(output, "  CASESWAP_MAX_INPUT_SIZE           rewrite_text input limit in bytes (1048576)\n")
		Writef(output, "  CASESWAP_MATCH_TIMEOUT            rewrite_text scan time limit (5s)\n")
		Writef(output, "  CASESWAP_MATCH_LIMIT              default listed occurrences (100)\n")
		Writef(output, "  CASESWAP_MAX_LIMIT                maximum listed occurrences (1000)\n")
		Writef(output, "\nVariables already set in the environment take precedence over env files.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap mcp\n")
		Writef(output, "  caseswap mcp -env-file .caseswap.env\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command
func HandleMCP(ctx context.Context, args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	if len(flags.EnvFiles) > 0 {
		if err := godotenv.Load(flags.EnvFiles...); err != nil {
			return fmt.Errorf("commands: loading env file: %w", err)
		}
	}

	// stdout carries the protocol, so logs always go to stderr.
	level := slog.LevelWarn
	if flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return runServer(ctx)
}
