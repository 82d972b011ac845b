package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/caseswap/casing"
)

// FindRegexFlags contains flags for the find-regex command
type FindRegexFlags struct {
	Dialect         string
	Format          string
	StrictScreaming bool
}

// FindRegexResult is the structured output of the find-regex command.
type FindRegexResult struct {
	Identifier string   `json:"identifier"      yaml:"identifier"`
	Pattern    string   `json:"pattern"         yaml:"pattern"`
	Dialect    string   `json:"dialect"         yaml:"dialect"`
	Classified bool     `json:"classified"      yaml:"classified"`
	Style      string   `json:"style,omitempty" yaml:"style,omitempty"`
	Parts      []string `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// SetupFindRegexFlags creates and configures a FlagSet for the find-regex command.
// Returns the FlagSet and a FindRegexFlags struct with bound flag variables.
func SetupFindRegexFlags() (*flag.FlagSet, *FindRegexFlags) {
	fs := flag.NewFlagSet("find-regex", flag.ContinueOnError)
	flags := &FindRegexFlags{}

	fs.StringVar(&flags.Dialect, "dialect", casing.DialectVim.String(), "pattern dialect: vim or re2")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.StrictScreaming, "strict-screaming", false, "require two or more groups for SCREAMING_SNAKE")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap find-regex [flags] <identifier>\n\n")
		Writef(output, "Print one case-sensitive pattern matching the identifier in every style\n")
		Writef(output, "except space separated. Unrecognized identifiers are printed unchanged.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nDialects:\n")
		Writef(output, "  vim    \\v\\C(...) for Vim and Neovim searches\n")
		Writef(output, "  re2    escaped non-capturing group for Go regexp, ripgrep and friends\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap find-regex SomeWord\n")
		Writef(output, "  rg \"$(caseswap find-regex -dialect re2 max_size)\"\n")
	}

	return fs, flags
}

// HandleFindRegex executes the find-regex command
func HandleFindRegex(args []string) error {
	fs, flags := SetupFindRegexFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dialect, err := casing.ParseDialect(flags.Dialect)
	if err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("find-regex command requires exactly one identifier")
	}

	identifier := fs.Arg(0)
	registry := NewRegistry(flags.StrictScreaming)
	result := FindRegexResult{
		Identifier: identifier,
		Pattern:    identifier,
		Dialect:    dialect.String(),
	}
	if id, err := registry.Parse(identifier); err == nil {
		result.Pattern = registry.Pattern(id.Parts, dialect)
		result.Classified = true
		result.Style = id.Style.String()
		result.Parts = id.Parts
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	Writef(stdout, "%s\n", result.Pattern)
	return nil
}
