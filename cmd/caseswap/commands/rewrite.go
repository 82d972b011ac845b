package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/caseswap/casing"
	"github.com/erraggy/caseswap/finder"
)

// RewriteFlags contains flags for the rewrite command
type RewriteFlags struct {
	From            string
	To              string
	Output          string
	Format          string
	StrictScreaming bool
	List            bool
	Quiet           bool
	Verbose         bool
	Timeout         time.Duration
}

// RewriteResult is the structured output of the rewrite command.
type RewriteResult struct {
	Input        string         `json:"input"          yaml:"input"`
	From         string         `json:"from"           yaml:"from"`
	To           string         `json:"to"             yaml:"to"`
	Replacements int            `json:"replacements"   yaml:"replacements"`
	Matches      []finder.Match `json:"matches"        yaml:"matches"`
	Text         string         `json:"text,omitempty" yaml:"text,omitempty"`
}

// SetupRewriteFlags creates and configures a FlagSet for the rewrite command.
// Returns the FlagSet and a RewriteFlags struct with bound flag variables.
func SetupRewriteFlags() (*flag.FlagSet, *RewriteFlags) {
	fs := flag.NewFlagSet("rewrite", flag.ContinueOnError)
	flags := &RewriteFlags{}

	fs.StringVar(&flags.From, "from", "", "identifier to rename, in any supported style (required)")
	fs.StringVar(&flags.To, "to", "", "new name: an identifier in any style or a lowercase phrase (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.StrictScreaming, "strict-screaming", false, "require two or more groups for SCREAMING_SNAKE")
	fs.BoolVar(&flags.List, "l", false, "list occurrences instead of printing the rewritten text")
	fs.BoolVar(&flags.List, "list", false, "list occurrences instead of printing the rewritten text")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no summary on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no summary on stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "log each replacement to stderr")
	fs.DurationVar(&flags.Timeout, "timeout", finder.DefaultMatchTimeout, "time limit for scanning the input")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap rewrite -from <identifier> -to <name> [flags] <file|->\n\n")
		Writef(output, "Rename every spelling of an identifier, rendering the new name in the style\n")
		Writef(output, "of each occurrence. Only whole identifiers are replaced.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap rewrite -from maxSize -to \"buffer limit\" config.go\n")
		Writef(output, "  caseswap rewrite -from max_size -to bufferLimit -o new.go old.go\n")
		Writef(output, "  caseswap rewrite -from MaxSize -to limit -l main.go\n")
		Writef(output, "  cat README.md | caseswap rewrite -q -from max-size -to limit -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - The rewritten text goes to stdout unless -o is given; inputs are never modified\n")
		Writef(output, "  - max_size -> buffer_limit, MAX_SIZE -> BUFFER_LIMIT, maxSize -> bufferLimit\n")
	}

	return fs, flags
}

// HandleRewrite executes the rewrite command
func HandleRewrite(args []string) error {
	fs, flags := SetupRewriteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rewrite command requires exactly one file path or '-' for stdin")
	}
	if flags.From == "" || flags.To == "" {
		fs.Usage()
		return fmt.Errorf("rewrite command requires both -from and -to")
	}

	inputPath := fs.Arg(0)
	if flags.Output != "" {
		cleaned := filepath.Clean(flags.Output)
		if err := RejectSymlinkOutput(cleaned); err != nil {
			return err
		}
		if err := ValidateOutputPath(cleaned, []string{inputPath}); err != nil {
			return err
		}
	}

	logger := slog.New(slog.DiscardHandler)
	if flags.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	f, err := finder.New(flags.From,
		finder.WithRegistry(NewRegistry(flags.StrictScreaming)),
		finder.WithLogger(logger),
		finder.WithMatchTimeout(flags.Timeout),
	)
	if err != nil {
		var uerr *casing.UnclassifiableError
		if errors.As(err, &uerr) {
			return fmt.Errorf("-from %q is not in a recognized case style", flags.From)
		}
		return err
	}

	data, err := ReadInput(inputPath)
	if err != nil {
		return err
	}
	text := string(data)

	matches, err := f.FindAll(text)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", FormatInputPath(inputPath), err)
	}
	rewritten, n, err := f.ReplaceAll(text, flags.To)
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", FormatInputPath(inputPath), err)
	}

	result := RewriteResult{
		Input:        FormatInputPath(inputPath),
		From:         flags.From,
		To:           flags.To,
		Replacements: n,
		Matches:      matches,
	}
	if !flags.List {
		result.Text = rewritten
	}

	if flags.Output != "" && !flags.List {
		if err := os.WriteFile(filepath.Clean(flags.Output), []byte(rewritten), OutputFileMode); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	}

	switch {
	case flags.Format != FormatText:
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
	case flags.List:
		writeMatches(stdout, result.Input, matches)
	case flags.Output == "":
		Writef(stdout, "%s", rewritten)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "caseswap: %d occurrence(s) of %s (%s) in %s\n",
			n, flags.From, f.Identifier().Style, result.Input)
		if flags.Output != "" && !flags.List {
			Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	}
	return nil
}

// writeMatches prints occurrences in file:line:column form, grep style.
func writeMatches(w io.Writer, input string, matches []finder.Match) {
	for _, m := range matches {
		style := "-"
		if m.Style.IsValid() {
			style = m.Style.String()
		}
		Writef(w, "%s:%d:%d: %s (%s)\n", input, m.Line, m.Column, m.Text, style)
	}
}
