package networth

import "strings"

// defaultCategories is the seed set offered to a fresh book, with the
// keywords used for auto-categorisation of item names.
var defaultCategories = []Category{
	{Name: "Property", Keywords: []string{"house", "property", "flat", "apartment", "land"}},
	{Name: "Pension", Keywords: []string{"pension", "sipp", "retirement"}},
	{Name: "ISA", Keywords: []string{"isa", "stocks and shares isa", "cash isa"}},
	{Name: "Savings", Keywords: []string{"savings", "premium bonds", "saver"}},
	{Name: "Current Account", Keywords: []string{"current", "checking", "bank balance"}},
	{Name: "Investment", Keywords: []string{"shares", "stocks", "investment", "fund", "gia", "brokerage"}},
	{Name: "Mortgage", Keywords: []string{"mortgage", "property loan"}},
	{Name: "Loan", Keywords: []string{"loan", "car finance", "personal loan"}},
	{Name: "Credit Card", Keywords: []string{"credit", "amex", "credit card balance"}},
	{Name: "Business", Keywords: []string{"business", "company assets"}},
	{Name: "Other", Keywords: []string{"miscellaneous", "other assets"}},
}

// liabilityCategoryNames are the seed categories whose items are liabilities.
var liabilityCategoryNames = map[string]bool{
	"Mortgage":    true,
	"Loan":        true,
	"Credit Card": true,
}

// SeedDefaultCategories registers the default category set into an empty
// registry. It is a no-op when any category already exists.
func (b *Book) SeedDefaultCategories() {
	if len(b.categories) > 0 {
		return
	}
	for _, c := range defaultCategories {
		// Names are distinct by construction, the error path is unreachable.
		b.CreateCategory(c.Name, c.Keywords)
	}
}

// GuessCategory suggests a category for an item name by keyword match,
// returning its id. It never reassigns anything: the suggestion must be
// confirmed by the calling collaborator before use. The boolean is false
// when no category keyword matches the name.
func (b *Book) GuessCategory(itemName string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "", false
	}
	for _, c := range b.categories {
		for _, k := range c.Keywords {
			if strings.Contains(name, strings.ToLower(k)) {
				return c.ID, true
			}
		}
	}
	return "", false
}
