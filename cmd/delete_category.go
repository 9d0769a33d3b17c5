package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type deleteCategoryCmd struct {
	id string
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete an unreferenced category" }
func (*deleteCategoryCmd) Usage() string {
	return `delete-category -id <category-id>

  Deletes a category. The deletion is rejected while any item, active or
  inactive, still references it; reassign those items first.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the category to delete (e.g., 'cat_3')")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.DeleteCategory(c.id); err != nil {
		var inUse networth.InUseError
		if errors.As(err, &inUse) {
			fmt.Fprintf(os.Stderr, "Error: category %s is still referenced by %s\n", c.id, strings.Join(inUse.Refs, ", "))
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error deleting category: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted category %s\n", c.id)
	return subcommands.ExitSuccess
}
