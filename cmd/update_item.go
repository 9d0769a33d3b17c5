package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type updateItemCmd struct {
	id     string
	update networth.ItemUpdate
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "update an item's name, category, type or liquidity" }
func (*updateItemCmd) Usage() string {
	return `update-item -id <item-id> [-name <name>] [-category <category-id>] [-type asset|liability] [-liquid true|false]

  Updates an item. Omitted flags are left untouched. The type can only be
  changed while the item has no recorded balance; past that point, delete
  the item and create a new one.

Usage Examples:
$ nwt update-item -id item_4 -name "Vanguard S&S ISA"
$ nwt update-item -id item_4 -category cat_3 -liquid false

`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item to update (e.g., 'item_4')")
	f.Func("name", "New display name", func(s string) error {
		c.update.Name = &s
		return nil
	})
	f.Func("category", "Id of the new category", func(s string) error {
		c.update.CategoryID = &s
		return nil
	})
	f.Func("type", "New item type: 'asset' or 'liability'", func(s string) error {
		typ, err := networth.ParseItemType(s)
		if err != nil {
			return err
		}
		c.update.Type = &typ
		return nil
	})
	f.Func("liquid", "New liquidity flag: 'true' or 'false'", func(s string) error {
		liquid, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		c.update.Liquid = &liquid
		return nil
	})
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	if c.update == (networth.ItemUpdate{}) {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, pass at least one of -name, -category, -type, -liquid.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.UpdateItem(c.id, c.update); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating item: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated item %s\n", c.id)
	return subcommands.ExitSuccess
}
