package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a net worth summary" }
func (*summaryCmd) Usage() string {
	return `summary [-d <date>]

  Displays the net worth summary of a snapshot date: totals, liquidity
  split, top categories and change since the previous snapshot. Defaults
  to the latest snapshot.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date to summarise (defaults to the latest snapshot)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	on := book.NewestSnapshotDate()
	if c.date != "" {
		if on, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if on.IsZero() {
		fmt.Fprintln(os.Stderr, "No snapshot recorded yet. Record one with 'nwt snapshot'.")
		return subcommands.ExitFailure
	}

	s := book.Summary(on)
	printMarkdown(renderer.SummaryMarkdown(&s))

	return subcommands.ExitSuccess
}
