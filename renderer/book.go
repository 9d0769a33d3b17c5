package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// ItemsMarkdown renders the active item registry, with category names
// resolved. Inactive items are listed apart so historical entries remain
// discoverable without cluttering the entry list.
func ItemsMarkdown(b *networth.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Items")
	table := md.TableSet{
		Header: []string{"Id", "Name", "Category", "Type", "Liquid", "Target"},
		Rows:   [][]string{},
	}
	var inactive [][]string
	for it := range b.Items() {
		category := it.CategoryID
		if c := b.Category(it.CategoryID); c != nil {
			category = c.Name
		}
		target := "-"
		if it.HasTarget {
			target = networth.M(it.Target, b.Currency()).String()
		}
		row := []string{it.ID, it.Name, category, it.Type.String(), fmt.Sprintf("%v", it.Liquid), target}
		if it.Inactive {
			inactive = append(inactive, row)
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if len(inactive) > 0 {
		doc.H2("Inactive")
		doc.Table(md.TableSet{
			Header: []string{"Id", "Name", "Category", "Type", "Liquid", "Target"},
			Rows:   inactive,
		})
	}

	return doc.String()
}

// CategoriesMarkdown renders the category registry with its keywords.
func CategoriesMarkdown(b *networth.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	table := md.TableSet{
		Header: []string{"Id", "Name", "Keywords"},
		Rows:   [][]string{},
	}
	for c := range b.Categories() {
		table.Rows = append(table.Rows, []string{c.ID, c.Name, strings.Join(c.Keywords, ", ")})
	}
	doc.Table(table)

	return doc.String()
}
