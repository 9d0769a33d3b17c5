package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type targetCmd struct {
	id     string
	amount string
	clear  bool
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set or clear an item's target balance" }
func (*targetCmd) Usage() string {
	return `target -id <item-id> -amount <amount>
target -id <item-id> -clear

  Sets a target balance on an item, shown next to the item in listings.
  A zero target is a real target; use -clear to remove it.

Usage Examples:
$ nwt target -id item_4 -amount 20000
$ nwt target -id item_4 -clear

`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item (e.g., 'item_4')")
	f.StringVar(&c.amount, "amount", "", "Target balance in the book currency")
	f.BoolVar(&c.clear, "clear", false, "Remove the item's target")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	if c.clear == (c.amount != "") {
		fmt.Fprintln(os.Stderr, "Error: pass exactly one of -amount or -clear.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clear {
		if err := book.ClearItemTarget(c.id); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing target: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := book.SetItemTarget(c.id, amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting target: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clear {
		fmt.Printf("Cleared target on item %s\n", c.id)
	} else {
		fmt.Printf("Set target on item %s\n", c.id)
	}
	return subcommands.ExitSuccess
}
