package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type deleteSnapshotCmd struct {
	date string
}

func (*deleteSnapshotCmd) Name() string     { return "delete-snapshot" }
func (*deleteSnapshotCmd) Synopsis() string { return "delete a whole snapshot" }
func (*deleteSnapshotCmd) Usage() string {
	return `delete-snapshot -d <date>

  Deletes the snapshot on that date with all its balances.
`
}

func (c *deleteSnapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to delete (YYYY-MM-DD)")
}

func (c *deleteSnapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d flag is required.")
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

	if err := book.DeleteSnapshot(on); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted snapshot on %s\n", on)
	return subcommands.ExitSuccess
}
