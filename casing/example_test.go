package casing_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/caseswap/casing"
)

func ExampleFindRegex() {
	fmt.Println(casing.FindRegex("some_word"))
	fmt.Println(casing.FindRegex("not an identifier!"))
	// Output:
	// \v\C(Some_Word|someWord|some.word|some-word|SomeWord|some/word|SOME_WORD|some_word|Some-Word)
	// not an identifier!
}

func ExampleReplace() {
	fmt.Println(casing.Replace("SomePascalCaseWord", "this will still be pascal case"))
	fmt.Println(casing.Replace("WORD", "another"))
	fmt.Println(casing.Replace("user_id", "accountNumber"))
	// Output:
	// ThisWillStillBePascalCase
	// ANOTHER
	// account_number
}

func ExampleParse() {
	id, err := casing.Parse("someCamelCase")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(id.Style, id.Parts)
	fmt.Println(casing.Produce(id.Parts, casing.TitleDash))
	// Output:
	// camel [some camel case]
	// Some-Camel-Case
}

func ExampleClassify() {
	_, err := casing.Classify("HTTPServer")
	fmt.Println(errors.Is(err, casing.ErrUnclassifiable))
	// Output:
	// true
}

func ExampleNewRegistry() {
	strict := casing.NewRegistry(casing.WithStrictScreamingSnake(true))
	_, err := strict.Classify("SOME")
	fmt.Println(err)
	style, _ := strict.Classify("SOME_WORD")
	fmt.Println(style)
	// Output:
	// unclassifiable identifier "SOME"
	// screaming_snake
}

func ExamplePattern() {
	fmt.Println(casing.Pattern([]string{"max", "size"}, casing.DialectRE2))
	// Output:
	// (?:Max_Size|maxSize|max\.size|max-size|MaxSize|max/size|MAX_SIZE|max_size|Max-Size)
}
