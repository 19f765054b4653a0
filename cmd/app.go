// Package cmd implements the CLI application to report on a book of client
// accounts.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/tbillard/quantfolio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&priceCmd{}, "pricing")

	c.Register(&importCmd{}, "book")
	c.Register(&fmtCmd{}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "", "Path to the book file (JSONL format); defaults to $QFM_BOOK or book.jsonl")

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// bookPath resolves the book file path from the flag, the environment, or
// the default, in that order. The environment is read here rather than in
// the flag default so that a .env file loaded by main is taken into account.
func bookPath() string {
	if *bookFile != "" {
		return *bookFile
	}
	return envOr("QFM_BOOK", "book.jsonl")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("var", key).Str("value", v).Msg("ignoring non-numeric environment value")
		return def
	}
	return f
}

// DecodeBookFile loads the book from the app book file.
func DecodeBookFile() (*quantfolio.Book, error) {
	f, err := os.Open(bookPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", bookPath()).Msg("book file does not exist, using an empty book instead")
		return quantfolio.NewBook(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return quantfolio.DecodeBook(f)
}

// EncodeBookFile writes the book back to the app book file in canonical form.
func EncodeBookFile(b *quantfolio.Book) error {
	f, err := os.Create(bookPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return quantfolio.EncodeBook(f, b)
}
