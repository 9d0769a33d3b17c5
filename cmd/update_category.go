package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCategoryCmd struct {
	id          string
	name        string
	keywords    string
	hasKeywords bool
}

func (*updateCategoryCmd) Name() string     { return "update-category" }
func (*updateCategoryCmd) Synopsis() string { return "rename a category or replace its keywords" }
func (*updateCategoryCmd) Usage() string {
	return `update-category -id <category-id> [-name <name>] [-keywords <kw1,kw2>]

  Renames a category and/or replaces its keyword list. Items referencing
  the category follow the rename, their history is untouched.

Usage Examples:
$ nwt update-category -id cat_3 -name "Workplace Pension"
$ nwt update-category -id cat_3 -keywords "pension,sipp,avc"

`
}

func (c *updateCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the category to update (e.g., 'cat_3')")
	f.StringVar(&c.name, "name", "", "New display name")
	f.Func("keywords", "Comma-separated keywords replacing the current list", func(s string) error {
		c.keywords = s
		c.hasKeywords = true
		return nil
	})
}

func (c *updateCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	if c.name == "" && !c.hasKeywords {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, pass -name and/or -keywords.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		if err := book.RenameCategory(c.id, c.name); err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming category: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.hasKeywords {
		if err := book.SetCategoryKeywords(c.id, splitKeywords(c.keywords)); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting keywords: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated category %s\n", c.id)
	return subcommands.ExitSuccess
}
