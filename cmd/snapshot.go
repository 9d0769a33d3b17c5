package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// snapshotCmd holds the flags for the 'snapshot' subcommand.
type snapshotCmd struct {
	date     string
	from     string
	empty    bool
	balances balanceFlags
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record a new balance snapshot on a date" }
func (*snapshotCmd) Usage() string {
	return `snapshot [-d <date>] [-b <item-id>=<amount> ...] [-empty | -from <date>]

  Records a snapshot of item balances on a date. By default the balances of
  the most recent earlier snapshot are carried forward as a starting point,
  and each -b pair overrides or adds to them. -empty starts from nothing,
  -from carries forward from a specific earlier snapshot instead. A date
  can hold only one snapshot.

  Liability balances are positive magnitudes: -b item_7=250000 on a
  mortgage means 250,000 is owed.

Usage Examples:
$ nwt snapshot -d 2025-01-31 -b item_1=300000 -b item_2=12000
$ nwt snapshot -d 2025-02-28 -b item_2=12500

`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	c.balances = balanceFlags{}
	f.StringVar(&c.date, "d", networth.Today().String(), "Snapshot date (YYYY-MM-DD)")
	f.StringVar(&c.from, "from", "", "Earlier snapshot date to carry balances forward from")
	f.BoolVar(&c.empty, "empty", false, "Start from no balances instead of carrying forward")
	f.Var(c.balances, "b", "Balance pair <item-id>=<amount>, repeatable")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	balances := map[string]decimal.Decimal{}
	if !c.empty {
		var base networth.Date
		if c.from != "" {
			if base, err = networth.ParseDate(c.from); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing -from date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		balances, err = book.CarryForward(on, base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error carrying balances forward: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for id, v := range c.balances {
		balances[id] = v
	}

	if err := book.AddSnapshot(on, balances); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	achieved := book.CheckMilestones(on)

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded snapshot on %s with %d balance(s)\n", on, len(balances))
	for _, m := range achieved {
		fmt.Printf("🎉 Milestone reached: %s\n", m)
	}
	return subcommands.ExitSuccess
}
