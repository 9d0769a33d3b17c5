package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteItemCmd struct {
	id string
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "delete a financial item" }
func (*deleteItemCmd) Usage() string {
	return `delete-item -id <item-id>

  Deletes an item. An item with recorded balances is deactivated instead,
  so its history stays resolvable; use restore-item to bring it back.
  An item with no balances is removed outright, and its id is never reused.
`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item to delete (e.g., 'item_4')")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item := book.Item(c.id)
	if err := book.DeleteItem(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if remaining := book.Item(c.id); remaining != nil && remaining.Inactive {
		fmt.Printf("Deactivated item %s (%s), its balance history is kept\n", item.Name, c.id)
	} else {
		fmt.Printf("Deleted item %s (%s)\n", item.Name, c.id)
	}
	return subcommands.ExitSuccess
}
