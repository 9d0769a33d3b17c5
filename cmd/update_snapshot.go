package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type updateSnapshotCmd struct {
	date     string
	balances balanceFlags
}

func (*updateSnapshotCmd) Name() string     { return "update-snapshot" }
func (*updateSnapshotCmd) Synopsis() string { return "merge new balances into an existing snapshot" }
func (*updateSnapshotCmd) Usage() string {
	return `update-snapshot -d <date> -b <item-id>=<amount> [...]

  Merges balances into the snapshot on that date: each -b pair overrides
  or adds a balance, other balances are untouched.

Usage Examples:
$ nwt update-snapshot -d 2025-01-31 -b item_2=12500

`
}

func (c *updateSnapshotCmd) SetFlags(f *flag.FlagSet) {
	c.balances = balanceFlags{}
	f.StringVar(&c.date, "d", "", "Date of the snapshot to update (YYYY-MM-DD)")
	f.Var(c.balances, "b", "Balance pair <item-id>=<amount>, repeatable")
}

func (c *updateSnapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || len(c.balances) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -d and at least one -b flag are required.")
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

	if err := book.UpdateSnapshot(on, c.balances); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	achieved := book.CheckMilestones(on)

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated snapshot on %s\n", on)
	for _, m := range achieved {
		fmt.Printf("🎉 Milestone reached: %s\n", m)
	}
	return subcommands.ExitSuccess
}
