package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type goalCmd struct {
	set   string
	clear bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show, set or clear the financial goal" }
func (*goalCmd) Usage() string {
	return `goal [-set <amount> | -clear]

  Shows the progress of the latest snapshot's net worth against the goal,
  and the milestones achieved so far. -set records a new goal amount,
  -clear removes it; achieved milestones are kept either way.

Usage Examples:
$ nwt goal -set 500000
$ nwt goal

`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Net worth target in the book currency")
	f.BoolVar(&c.clear, "clear", false, "Remove the goal")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set != "" && c.clear {
		fmt.Fprintln(os.Stderr, "Error: pass at most one of -set or -clear.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.set != "":
		target, err := decimal.NewFromString(c.set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		book.SetGoal(target)
		if err := EncodeBook(book); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Goal set to %s\n", c.set)
		return subcommands.ExitSuccess

	case c.clear:
		book.ClearGoal()
		if err := EncodeBook(book); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Goal cleared")
		return subcommands.ExitSuccess
	}

	goal, ok := book.Goal()
	if !ok {
		fmt.Fprintln(os.Stderr, "No goal set. Set one with 'nwt goal -set <amount>'.")
		return subcommands.ExitFailure
	}
	percent, _ := book.GoalProgress(book.NewestSnapshotDate())

	printMarkdown(renderer.GoalMarkdown(goal, percent, book.AchievedMilestones()))

	return subcommands.ExitSuccess
}
