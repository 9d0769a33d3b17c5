package networth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the book as a single human-readable JSON document with
// three top-level arrays (categories, financial_items, snapshots) plus the
// optional goal fields. Field order is fixed by jsonObjectWriter so a saved
// file diffs cleanly under version control.
//
// The overall strategy is:
//   Decode: unmarshal into loosely-typed document structs, then run every
//           integrity check, accumulating all violations into one LoadError
//           before building the Book.
//   Encode: walk the registries in their own order and emit ordered objects.

// Document structs. Dates and types are read as strings so a malformed value
// is reported as a violation instead of aborting the whole unmarshal.

type jcategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type jitem struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	CategoryID string           `json:"category_id"`
	Liquid     bool             `json:"liquid"`
	Type       string           `json:"type"`
	Inactive   bool             `json:"inactive,omitempty"`
	Target     *decimal.Decimal `json:"target_balance,omitempty"`
}

type jbalance struct {
	ItemID  string          `json:"item_id"`
	Balance decimal.Decimal `json:"balance"`
}

type jsnapshot struct {
	Date     string     `json:"date"`
	Balances []jbalance `json:"balances"`
}

type jdocument struct {
	Currency   string            `json:"currency"`
	Categories []jcategory       `json:"categories"`
	Items      []jitem           `json:"financial_items"`
	Snapshots  []jsnapshot       `json:"snapshots"`
	Goal       *decimal.Decimal  `json:"financial_goal"`
	Milestones []decimal.Decimal `json:"achieved_milestones"`
}

// DecodeBook reads a JSON document and returns the book it describes.
// Integrity violations (duplicate ids, dangling references, bad or duplicate
// dates) are all collected and returned together in a single LoadError.
func DecodeBook(r io.Reader) (*Book, error) {
	var doc jdocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}

	var violations []error
	b := NewBook(doc.Currency)

	// Categories: ids must be unique.
	for _, jc := range doc.Categories {
		if jc.ID == "" {
			violations = append(violations, fmt.Errorf("category %q has no id", jc.Name))
			continue
		}
		if _, dup := b.catIndex[jc.ID]; dup {
			violations = append(violations, fmt.Errorf("duplicate category id %q", jc.ID))
			continue
		}
		b.catIndex[jc.ID] = len(b.categories)
		b.categories = append(b.categories, Category{ID: jc.ID, Name: jc.Name, Keywords: normalizeKeywords(jc.Keywords)})
		b.observeID(jc.ID)
	}

	// Items: ids unique, category references resolve, type parses.
	for _, ji := range doc.Items {
		if ji.ID == "" {
			violations = append(violations, fmt.Errorf("item %q has no id", ji.Name))
			continue
		}
		if _, dup := b.itemIndex[ji.ID]; dup {
			violations = append(violations, fmt.Errorf("duplicate item id %q", ji.ID))
			continue
		}
		typ, err := ParseItemType(ji.Type)
		if err != nil {
			violations = append(violations, fmt.Errorf("item %q: %w", ji.ID, err))
		}
		if _, ok := b.catIndex[ji.CategoryID]; !ok {
			violations = append(violations, fmt.Errorf("item %q references unknown category %q", ji.ID, ji.CategoryID))
		}
		it := Item{ID: ji.ID, Name: ji.Name, CategoryID: ji.CategoryID, Liquid: ji.Liquid, Type: typ, Inactive: ji.Inactive}
		if ji.Target != nil {
			it.Target, it.HasTarget = *ji.Target, true
		}
		b.itemIndex[ji.ID] = len(b.items)
		b.items = append(b.items, it)
		b.observeID(ji.ID)
	}

	// Snapshots: dates parse and are unique, every balance resolves.
	seenDates := make(map[Date]bool)
	for _, js := range doc.Snapshots {
		on, err := ParseDate(js.Date)
		if err != nil {
			violations = append(violations, fmt.Errorf("snapshot %q: %w", js.Date, err))
			continue
		}
		if seenDates[on] {
			violations = append(violations, fmt.Errorf("duplicate snapshot date %s", on))
			continue
		}
		seenDates[on] = true
		balances := make(map[string]decimal.Decimal, len(js.Balances))
		for _, jb := range js.Balances {
			if _, ok := b.itemIndex[jb.ItemID]; !ok {
				violations = append(violations, fmt.Errorf("snapshot %s references unknown item %q", on, jb.ItemID))
				continue
			}
			if _, dup := balances[jb.ItemID]; dup {
				violations = append(violations, fmt.Errorf("snapshot %s has two balances for item %q", on, jb.ItemID))
				continue
			}
			balances[jb.ItemID] = jb.Balance
		}
		b.snapshots = append(b.snapshots, Snapshot{Date: on, Balances: balances})
	}
	// Older files were saved most-recent-first: accept any order, keep the
	// store ascending.
	b.stableSort()

	if doc.Goal != nil {
		b.goal, b.hasGoal = *doc.Goal, true
	}
	b.milestones = append(b.milestones, doc.Milestones...)

	if err := loadError(violations); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeBook writes the book as a JSON document, indented, with a stable
// field and entry order: categories and items in registry order, snapshots
// ascending by date, balances in item registry order.
func EncodeBook(w io.Writer, b *Book) error {
	var doc jsonObjectWriter
	doc.Append("currency", b.currency)

	categories := make([]json.Marshaler, 0, len(b.categories))
	for _, c := range b.categories {
		var jc jsonObjectWriter
		jc.Append("id", c.ID).Append("name", c.Name).Append("keywords", notNil(c.Keywords))
		categories = append(categories, &jc)
	}
	doc.Append("categories", categories)

	items := make([]json.Marshaler, 0, len(b.items))
	for _, it := range b.items {
		var ji jsonObjectWriter
		ji.Append("id", it.ID).
			Append("name", it.Name).
			Append("category_id", it.CategoryID).
			Append("liquid", it.Liquid).
			Append("type", it.Type.String()).
			Optional("inactive", it.Inactive)
		if it.HasTarget {
			ji.Append("target_balance", it.Target)
		}
		items = append(items, &ji)
	}
	doc.Append("financial_items", items)

	snapshots := make([]json.Marshaler, 0, len(b.snapshots))
	for _, s := range b.snapshots {
		var js jsonObjectWriter
		js.Append("date", s.Date)
		balances := make([]json.Marshaler, 0, len(s.Balances))
		for _, it := range b.items {
			if v, ok := s.Balances[it.ID]; ok {
				var jb jsonObjectWriter
				jb.Append("item_id", it.ID).Append("balance", v)
				balances = append(balances, &jb)
			}
		}
		js.Append("balances", balances)
		snapshots = append(snapshots, &js)
	}
	doc.Append("snapshots", snapshots)

	if b.hasGoal {
		doc.Append("financial_goal", b.goal)
	}
	if len(b.milestones) > 0 {
		doc.Append("achieved_milestones", b.milestones)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode document: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "    "); err != nil {
		return fmt.Errorf("cannot encode document: %w", err)
	}
	pretty.WriteString("\n")
	_, err = pretty.WriteTo(w)
	return err
}

// notNil keeps empty keyword lists as [] rather than null in the document.
func notNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
