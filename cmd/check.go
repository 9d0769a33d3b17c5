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

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the book file without modifying it" }
func (*checkCmd) Usage() string {
	return `check

  Loads the book file and reports every integrity violation at once:
  duplicate identifiers, balances referencing unknown items, items
  referencing unknown categories, duplicate or malformed dates.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := os.Open(*bookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	_, err = networth.DecodeBook(in)
	if err != nil {
		var load networth.LoadError
		if errors.As(err, &load) {
			fmt.Fprintf(os.Stderr, "%s failed %d integrity check(s):\n", *bookFile, len(load.Violations))
			for _, v := range load.Violations {
				fmt.Fprintf(os.Stderr, "  - %v\n", v)
			}
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error decoding book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ %s is valid\n", *bookFile)
	return subcommands.ExitSuccess
}
