package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type removeBalanceCmd struct {
	date string
	item string
}

func (*removeBalanceCmd) Name() string     { return "remove-balance" }
func (*removeBalanceCmd) Synopsis() string { return "remove a single balance from a snapshot" }
func (*removeBalanceCmd) Usage() string {
	return `remove-balance -d <date> -item <item-id>

  Removes one item's balance from the snapshot on that date. The item then
  has no record on that date, which history treats differently from a zero
  balance.
`
}

func (c *removeBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot (YYYY-MM-DD)")
	f.StringVar(&c.item, "item", "", "Id of the item whose balance to remove")
}

func (c *removeBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || c.item == "" {
		fmt.Fprintln(os.Stderr, "Error: -d and -item flags are both required.")
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveBalance(on, c.item); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing balance: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed balance of %s on %s\n", c.item, on)
	return subcommands.ExitSuccess
}
