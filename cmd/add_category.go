package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type addCategoryCmd struct {
	name     string
	keywords string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a new category" }
func (*addCategoryCmd) Usage() string {
	return `add-category -name <name> [-keywords <kw1,kw2>]

  Creates a category for grouping financial items. Keywords drive the
  category suggestions when adding an item.

Usage Examples:
$ nwt add-category -name "Pension" -keywords "pension,sipp"

`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the category (e.g., 'Pension')")
	f.StringVar(&c.keywords, "keywords", "", "Comma-separated keywords used for suggestions")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := book.CreateCategory(c.name, splitKeywords(c.keywords))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating category: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created category %s (%s)\n", c.name, id)
	return subcommands.ExitSuccess
}

func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
