package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tbillard/quantfolio"
)

type importCmd struct{}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import a broker statement into the book"
}
func (*importCmd) Usage() string {
	return `qfm import <statement.json>

  Reads a broker statement (single JSON document) and appends the account it
  describes, with its positions, to the book file. Position classes the
  importer does not understand are skipped with a warning.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import expects exactly one statement file")
		return subcommands.ExitUsageError
	}

	statement, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening statement %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer statement.Close()

	account, skipped, err := quantfolio.ImportStatement(statement)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing statement %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	for _, class := range skipped {
		log.Warn().Str("class", class).Str("account", account.IBAN()).Msg("skipped unsupported position class")
	}
	if p := account.Portfolio(); p != nil {
		today := quantfolio.Today()
		for pos := range p.Positions() {
			c, ok := pos.(interface{ Expiration() quantfolio.Date })
			if ok && c.Expiration().Before(today) {
				log.Warn().Str("ticker", pos.Ticker()).Stringer("expiration", c.Expiration()).Msg("imported contract is already expired")
			}
		}
	}

	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.Add(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBookFile(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported account %s into %s\n", account.IBAN(), bookPath())
	return subcommands.ExitSuccess
}
