package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type importCmd struct {
	legacy string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy flat-format export into a new book" }
func (*importCmd) Usage() string {
	return `import -legacy <file>

  Rebuilds a book from a legacy flat-format export: a JSON array of dated
  entries each carrying the full asset list. Items are de-duplicated by
  name, categories are resolved or created, and negative or debt-category
  balances become liabilities. The import writes a brand new book file and
  refuses to overwrite an existing one.

Usage Examples:
$ nwt import -legacy export.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.legacy, "legacy", "", "Path to the legacy export file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.legacy == "" {
		fmt.Fprintln(os.Stderr, "Error: -legacy flag is required.")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*bookFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: book file %q already exists, refusing to overwrite it.\n", *bookFile)
		return subcommands.ExitFailure
	}

	in, err := os.Open(c.legacy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening legacy export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	book, err := networth.ImportLegacy(in, *bookCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing legacy export: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %s into %s\n", c.legacy, *bookFile)
	return subcommands.ExitSuccess
}
