package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// itemsCmd holds the flags for the 'items' subcommand.
type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list financial items" }
func (*itemsCmd) Usage() string {
	return `items

  Lists the financial items: id, name, category, type, liquidity and
  target. Deactivated items are listed apart.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ItemsMarkdown(book))
	return subcommands.ExitSuccess
}
