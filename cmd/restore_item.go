package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restoreItemCmd struct {
	id string
}

func (*restoreItemCmd) Name() string     { return "restore-item" }
func (*restoreItemCmd) Synopsis() string { return "restore a deactivated item" }
func (*restoreItemCmd) Usage() string {
	return `restore-item -id <item-id>

  Restores an item that delete-item deactivated, making it active again.
`
}

func (c *restoreItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item to restore (e.g., 'item_4')")
}

func (c *restoreItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.RestoreItem(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring item: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Restored item %s\n", c.id)
	return subcommands.ExitSuccess
}
