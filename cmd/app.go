// Package cmd implements the CLI application to manage a net worth book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCategoryCmd{},
	&updateCategoryCmd{},
	&deleteCategoryCmd{},
	&categoriesCmd{},

	&addItemCmd{},
	&updateItemCmd{},
	&deleteItemCmd{},
	&restoreItemCmd{},
	&mergeItemsCmd{},
	&targetCmd{},
	&itemsCmd{},

	&snapshotCmd{},
	&updateSnapshotCmd{},
	&removeBalanceCmd{},
	&deleteSnapshotCmd{},

	&summaryCmd{},
	&historyCmd{},
	&goalCmd{},

	&importCmd{},
	&checkCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("file", "networth.json", "Path to the net worth book file")
var bookCurrency = flag.String("currency", "", "Currency of a newly created book (defaults to GBP)")

// DecodeBook decodes the book from the app book file.
func DecodeBook() (b *networth.Book, err error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book does not exist, creating an empty book instead")
		b = networth.NewBook(*bookCurrency)
		b.SeedDefaultCategories()
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", *bookFile, err)
	}
	defer f.Close()

	b, err = networth.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", *bookFile, err)
	}
	return b, nil
}

// EncodeBook encodes the book back into the app book file.
func EncodeBook(b *networth.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("could not write book file %q: %w", *bookFile, err)
	}
	defer f.Close()

	if err := networth.EncodeBook(f, b); err != nil {
		return fmt.Errorf("could not encode book file %q: %w", *bookFile, err)
	}
	return nil
}

// balanceFlags accumulates repeated -b item_1=300000 pairs.
type balanceFlags map[string]decimal.Decimal

func (b balanceFlags) String() string { return fmt.Sprintf("%v", map[string]decimal.Decimal(b)) }

func (b balanceFlags) Set(s string) error {
	id, amount, found := strings.Cut(s, "=")
	if !found {
		return fmt.Errorf("invalid balance %q, want <item-id>=<amount>", s)
	}
	v, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount in %q: %w", s, err)
	}
	b[id] = v
	return nil
}
