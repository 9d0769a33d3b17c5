package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	find string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories, or search them by keyword" }
func (*categoriesCmd) Usage() string {
	return `categories [-find <text>]

  Lists the category registry with its keywords. With -find, lists only
  the categories whose name or keywords contain the text.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.find, "find", "", "Text to search for in category names and keywords")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.find != "" {
		ids := book.FindByKeyword(c.find)
		if len(ids) == 0 {
			fmt.Printf("No category matches %q\n", c.find)
			return subcommands.ExitSuccess
		}
		for _, id := range ids {
			cat := book.Category(id)
			fmt.Printf("%s\t%s\n", cat.ID, cat.Name)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.CategoriesMarkdown(book))
	return subcommands.ExitSuccess
}
