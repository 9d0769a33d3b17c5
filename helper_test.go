package networth

import "github.com/shopspring/decimal"

// GBP is a helper for tests to create pounds money from const.
func GBP(v float64) Money { return M(v, "GBP") }

// D is a helper for tests to create decimal amounts from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testBook returns a book with one Property category and one House item,
// the fixture most scenarios start from.
func testBook() (b *Book, catID, itemID string) {
	b = NewBook("GBP")
	catID, err := b.CreateCategory("Property", []string{"house", "flat"})
	if err != nil {
		panic(err)
	}
	itemID, err = b.CreateItem("House", catID, false, Asset)
	if err != nil {
		panic(err)
	}
	return b, catID, itemID
}

// balances is a shorthand for a snapshot's balance map.
func balances(pairs ...any) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i].(string)] = D(pairs[i+1].(float64))
	}
	return m
}
