package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/caseswap/casing"
)

// PermutationsFlags contains flags for the permutations command
type PermutationsFlags struct {
	Format          string
	StrictScreaming bool
	IncludeSpace    bool
}

// PermutationsResult is the structured output of the permutations command.
type PermutationsResult struct {
	Identifier   string            `json:"identifier"   yaml:"identifier"`
	Style        string            `json:"style"        yaml:"style"`
	Parts        []string          `json:"parts"        yaml:"parts"`
	Permutations []PermutationItem `json:"permutations" yaml:"permutations"`
}

// PermutationItem is one rendering of the identifier.
type PermutationItem struct {
	Style string `json:"style" yaml:"style"`
	Text  string `json:"text"  yaml:"text"`
}

// SetupPermutationsFlags creates and configures a FlagSet for the permutations command.
// Returns the FlagSet and a PermutationsFlags struct with bound flag variables.
func SetupPermutationsFlags() (*flag.FlagSet, *PermutationsFlags) {
	fs := flag.NewFlagSet("permutations", flag.ContinueOnError)
	flags := &PermutationsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.StrictScreaming, "strict-screaming", false, "require two or more groups for SCREAMING_SNAKE")
	fs.BoolVar(&flags.IncludeSpace, "include-space", false, "also render the space separated style")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: caseswap permutations [flags] <identifier>\n\n")
		Writef(output, "Render an identifier in every supported case style, one per line.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  caseswap permutations some_word\n")
		Writef(output, "  caseswap permutations -include-space -format yaml SomeWord\n")
	}

	return fs, flags
}

// HandlePermutations executes the permutations command
func HandlePermutations(args []string) error {
	fs, flags := SetupPermutationsFlags()

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
		return fmt.Errorf("permutations command requires exactly one identifier")
	}

	registry := NewRegistry(flags.StrictScreaming)
	id, err := registry.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	result := PermutationsResult{
		Identifier: id.Text,
		Style:      id.Style.String(),
		Parts:      id.Parts,
	}
	for _, rule := range registry.Rules() {
		if rule.Style == casing.Space && !flags.IncludeSpace {
			continue
		}
		result.Permutations = append(result.Permutations, PermutationItem{
			Style: rule.Style.String(),
			Text:  rule.Produce(id.Parts),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	for _, p := range result.Permutations {
		Writef(stdout, "%s\n", p.Text)
	}
	return nil
}
