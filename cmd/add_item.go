package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type addItemCmd struct {
	name     string
	category string
	typ      string
	liquid   bool
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "create a new financial item" }
func (*addItemCmd) Usage() string {
	return `add-item -name <name> -category <category-id> [-type asset|liability] [-liquid]

  Creates a financial item in a category. Without -category, the item is
  not created: the command suggests a category by matching the item name
  against the category keywords, and you rerun with -category to confirm.

Usage Examples:
$ nwt add-item -name "Barclays Cash ISA" -category cat_3 -liquid
$ nwt add-item -name "Mortgage" -category cat_7 -type liability

`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the item (e.g., 'Barclays Cash ISA')")
	f.StringVar(&c.category, "category", "", "Id of the category the item belongs to")
	f.StringVar(&c.typ, "type", "asset", "Item type: 'asset' or 'liability'")
	f.BoolVar(&c.liquid, "liquid", false, "Mark the item as liquid (cash or quickly cashable)")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	typ, err := networth.ParseItemType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// A suggestion only. The item is created when the user confirms the
	// category by passing it explicitly.
	if c.category == "" {
		if id, ok := book.GuessCategory(c.name); ok {
			cat := book.Category(id)
			fmt.Printf("Suggested category for %q: %s (%s)\nRerun with -category %s to confirm.\n", c.name, cat.Name, cat.ID, cat.ID)
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, "Error: -category flag is required, and no keyword matches the item name.")
		return subcommands.ExitUsageError
	}

	id, err := book.CreateItem(c.name, c.category, c.liquid, typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating item: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created item %s (%s)\n", c.name, id)
	return subcommands.ExitSuccess
}
