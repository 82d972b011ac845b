package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Format          string
	StrictScreaming bool
}

// DetectResult is the structured output for one identifier.
type DetectResult struct {
	Identifier string   `json:"identifier"      yaml:"identifier"`
	Classified bool     `json:"classified"      yaml:"classified"`
	Style      string   `json:"style,omitempty" yaml:"style,omitempty"`
	Parts      []string `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.StrictScreaming, "strict-screaming", false, "require two or more groups for SCREAMING_SNAKE")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap detect [flags] <identifier>...\n\n")
		Writef(output, "Detect the case style of each identifier and split it into word parts.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap detect someCamelCase\n")
		Writef(output, "  caseswap detect -format json MAX_SIZE max-size \"max size\"\n")
		Writef(output, "  caseswap detect -strict-screaming WORD\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Every identifier classified\n")
		Writef(output, "  1    At least one identifier is in no recognized style\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("detect command requires at least one identifier")
	}

	registry := NewRegistry(flags.StrictScreaming)
	results := make([]DetectResult, 0, fs.NArg())
	unclassified := 0
	for _, identifier := range fs.Args() {
		result := DetectResult{Identifier: identifier}
		if id, err := registry.Parse(identifier); err == nil {
			result.Classified = true
			result.Style = id.Style.String()
			result.Parts = id.Parts
		} else {
			unclassified++
		}
		results = append(results, result)
	}

	if flags.Format == FormatText {
		for _, r := range results {
			if !r.Classified {
				Writef(stdout, "%s\tunclassified\n", r.Identifier)
				continue
			}
			Writef(stdout, "%s\t%s\t%s\n", r.Identifier, r.Style, strings.Join(r.Parts, " "))
		}
	} else if err := OutputStructured(results, flags.Format); err != nil {
		return err
	}

	if unclassified > 0 {
		return fmt.Errorf("%d of %d identifier(s) did not classify", unclassified, len(results))
	}
	return nil
}
