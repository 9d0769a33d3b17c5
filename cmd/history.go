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

type historyCmd struct {
	item     string
	category string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a value history over the snapshots" }
func (*historyCmd) Usage() string {
	return `history [-item <item-id> | -category <category-id>]

  Displays a value series over the snapshot dates: one item's balance, one
  category's subtotal, or the net worth when neither is given. Item series
  skip dates with no recorded balance.

Usage Examples:
$ nwt history
$ nwt history -item item_4
$ nwt history -category cat_3

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Id of an item to report on")
	f.StringVar(&c.category, "category", "", "Id of a category to report on")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item != "" && c.category != "" {
		fmt.Fprintln(os.Stderr, "Error: pass at most one of -item or -category.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	key, title := networth.SeriesNetWorth, "net worth"
	switch {
	case c.item != "":
		key = "item:" + c.item
		title = c.item
		if it := book.Item(c.item); it != nil {
			title = it.Name
		}
	case c.category != "":
		key = "category:" + c.category
		title = c.category
		if cat := book.Category(c.category); cat != nil {
			title = cat.Name
		}
	}

	series, err := book.Series(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var points []renderer.Point
	for on, v := range series {
		points = append(points, renderer.Point{Date: on, Value: v})
	}

	printMarkdown(renderer.SeriesMarkdown(title, points))

	return subcommands.ExitSuccess
}
