package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file imports the legacy flat format: a JSON array of snapshots, each
// embedding full copies of its assets:
//
//	[
//	    {
//	        "date": "YYYY-MM-DD",
//	        "assets": [
//	            {"name": "...", "liquid": true, "balance": 1000.0, "category": "..."},
//	            ...
//	        ]
//	    },
//	    ...
//	]
//
// The import re-architects that into the normalized registries: items are
// de-duplicated on name, categories are created on first use, and each
// snapshot entry is rewritten as item_id -> balance. Debts are negative in
// the legacy format; they become liability items with positive magnitudes.

// ImportLegacy reads a legacy document and returns a normalized book
// reporting in currency ("" selects DefaultCurrency).
func ImportLegacy(r io.Reader, currency string) (*Book, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read legacy document: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("legacy document is not valid JSON: %w", err)
	}

	jsnaps, err := pathList(jobj, "$[*]")
	if err != nil {
		return nil, fmt.Errorf("legacy document is not a list of snapshots: %w", err)
	}

	b := NewBook(currency)
	b.SeedDefaultCategories()

	itemByName := make(map[string]string) // legacy asset name -> item id

	for _, jsnap := range jsnaps {
		jdate, err := pathString(jsnap, "$.date")
		if err != nil {
			return nil, fmt.Errorf("legacy snapshot has no date: %w", err)
		}
		on, err := ParseDate(jdate)
		if err != nil {
			return nil, fmt.Errorf("legacy snapshot: %w", err)
		}

		jassets, err := pathList(jsnap, "$.assets[*]")
		if err != nil {
			// A dated record with no assets is an empty snapshot.
			jassets = nil
		}

		balances := make(map[string]decimal.Decimal, len(jassets))
		for _, jasset := range jassets {
			name, err := pathString(jasset, "$.name")
			if err != nil || strings.TrimSpace(name) == "" {
				log.Printf("%s: skipping legacy entry with no name", on)
				continue
			}
			balance, err := pathFloat(jasset, "$.balance")
			if err != nil {
				log.Printf("%s: skipping legacy entry %q with no balance", on, name)
				continue
			}

			id, ok := itemByName[name]
			if !ok {
				id, err = b.createLegacyItem(name, jasset, balance)
				if err != nil {
					return nil, err
				}
				itemByName[name] = id
			}

			amount := decimal.NewFromFloat(balance)
			if b.Item(id).Type == Liability {
				// Debts are negative in the legacy format; the book stores
				// liability magnitudes.
				amount = amount.Abs()
			}
			balances[id] = amount
		}

		if err := b.AddSnapshot(on, balances); err != nil {
			return nil, fmt.Errorf("legacy snapshot %s: %w", on, err)
		}
	}
	return b, nil
}

// createLegacyItem registers the item for a first-seen legacy asset name,
// resolving its category by name (created when unknown) and its type from
// the category or the balance sign.
func (b *Book) createLegacyItem(name string, jasset any, balance float64) (string, error) {
	liquid := false
	if v, err := pathBool(jasset, "$.liquid"); err == nil {
		liquid = v
	}
	categoryName, err := pathString(jasset, "$.category")
	if err != nil || strings.TrimSpace(categoryName) == "" {
		categoryName = "Other"
	}

	categoryID := ""
	for c := range b.Categories() {
		if strings.EqualFold(c.Name, categoryName) {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		categoryID, err = b.CreateCategory(categoryName, []string{strings.ToLower(categoryName)})
		if err != nil {
			return "", fmt.Errorf("legacy entry %q: %w", name, err)
		}
	}

	typ := Asset
	if liabilityCategoryNames[b.Category(categoryID).Name] || balance < 0 {
		typ = Liability
	}
	return b.CreateItem(name, categoryID, liquid, typ)
}

// jsonpath is never clear about whether it returns a list of answers or a
// single answer; these helpers normalize both shapes.

func pathList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

func pathValue(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("no value at %q", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func pathString(jobj any, path string) (string, error) {
	jval, err := pathValue(jobj, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}

func pathFloat(jobj any, path string) (float64, error) {
	jval, err := pathValue(jobj, path)
	if err != nil {
		return 0, err
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
	return f, nil
}

func pathBool(jobj any, path string) (bool, error) {
	jval, err := pathValue(jobj, path)
	if err != nil {
		return false, err
	}
	v, ok := jval.(bool)
	if !ok {
		return false, fmt.Errorf("value at %q is not a boolean: %v", path, jval)
	}
	return v, nil
}
