package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type mergeItemsCmd struct {
	keep string
	drop string
}

func (*mergeItemsCmd) Name() string     { return "merge-items" }
func (*mergeItemsCmd) Synopsis() string { return "merge one item's balance history into another" }
func (*mergeItemsCmd) Usage() string {
	return `merge-items -keep <item-id> -drop <item-id>

  Moves every balance of the dropped item onto the kept item, then removes
  the dropped item. Both items must have the same type, and no snapshot may
  record a balance for both; conflicting dates are reported and nothing
  moves.

Usage Examples:
$ nwt merge-items -keep item_2 -drop item_5

`
}

func (c *mergeItemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.keep, "keep", "", "Id of the item to keep")
	f.StringVar(&c.drop, "drop", "", "Id of the item to merge into the kept one and remove")
}

func (c *mergeItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.keep == "" || c.drop == "" {
		fmt.Fprintln(os.Stderr, "Error: -keep and -drop flags are both required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.MergeItems(c.keep, c.drop); err != nil {
		var conflict networth.ConflictError
		if errors.As(err, &conflict) && len(conflict.Dates) > 0 {
			fmt.Fprintf(os.Stderr, "Error: both items have a balance on: %v\n", conflict.Dates)
			fmt.Fprintln(os.Stderr, "Resolve those dates with remove-balance first.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error merging items: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Merged item %s into %s\n", c.drop, c.keep)
	return subcommands.ExitSuccess
}
