package commands

import (
	"errors"
	"flag"
	"fmt"
)

// ReplaceFlags contains flags for the replace command
type ReplaceFlags struct {
	Format          string
	StrictScreaming bool
}

// ReplaceResult is the structured output of the replace command.
type ReplaceResult struct {
	From        string `json:"from"                 yaml:"from"`
	Replacement string `json:"replacement"          yaml:"replacement"`
	Result      string `json:"result"               yaml:"result"`
	FromStyle   string `json:"from_style,omitempty" yaml:"from_style,omitempty"`
}

// SetupReplaceFlags creates and configures a FlagSet for the replace command.
// Returns the FlagSet and a ReplaceFlags struct with bound flag variables.
func SetupReplaceFlags() (*flag.FlagSet, *ReplaceFlags) {
	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	flags := &ReplaceFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.StrictScreaming, "strict-screaming", false, "require two or more groups for SCREAMING_SNAKE")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap replace [flags] <from> <replacement>\n\n")
		Writef(output, "Render replacement in the case style of from. Plain lowercase phrases are\n")
		Writef(output, "read as space separated words. If either argument cannot be used the\n")
		Writef(output, "replacement is printed unchanged.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap replace SomePascalCaseWord \"this will still be pascal case\"\n")
		Writef(output, "  caseswap replace MAX_SIZE bufferLimit\n")
	}

	return fs, flags
}

// HandleReplace executes the replace command
func HandleReplace(args []string) error {
	fs, flags := SetupReplaceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("replace command requires exactly two arguments: <from> <replacement>")
	}

	registry := NewRegistry(flags.StrictScreaming)
	result := ReplaceResult{
		From:        fs.Arg(0),
		Replacement: fs.Arg(1),
		Result:      registry.Replace(fs.Arg(0), fs.Arg(1)),
	}
	if style, err := registry.Classify(result.From); err == nil {
		result.FromStyle = style.String()
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	Writef(stdout, "%s\n", result.Result)
	return nil
}
