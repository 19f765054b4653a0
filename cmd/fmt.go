package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `qfm fmt

  Validates and formats the book file. This command reads all records,
  validates them, and writes them back in a canonical JSONL format: each
  account record followed by its position records, in book order.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBookFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q.\n", bookPath())
	return subcommands.ExitSuccess
}
