package networth

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency of a new book.
const DefaultCurrency = "GBP"

const (
	categoryIDPrefix = "cat_"
	itemIDPrefix     = "item_"
)

// Book holds the whole net-worth document: the category and item registries
// and the snapshot store.
//
// In a Book snapshots are always in ascending date order. Categories and
// items keep their insertion order. All mutating methods validate their
// arguments completely before touching any state, so a failed call leaves
// the book exactly as it was.
type Book struct {
	currency   string
	categories []Category
	items      []Item
	snapshots  []Snapshot

	catIndex  map[string]int // category id -> index in categories
	itemIndex map[string]int // item id -> index in items

	// id counters only ever grow, even across deletions, so ids are never reused.
	lastCategorySeq int
	lastItemSeq     int

	goal       decimal.Decimal // zero means unset
	hasGoal    bool
	milestones []decimal.Decimal // achieved milestones, ascending
}

// NewBook creates an empty book reporting in currency. An empty currency
// selects DefaultCurrency.
func NewBook(currency string) *Book {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Book{
		currency:  currency,
		catIndex:  make(map[string]int),
		itemIndex: make(map[string]int),
	}
}

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.currency }

// money wraps an amount into the book's reporting currency.
func (b *Book) money(v decimal.Decimal) Money { return M(v, b.currency) }

// nextID mints a fresh id for the given prefix, bumping the matching counter.
func (b *Book) nextID(prefix string) string {
	switch prefix {
	case categoryIDPrefix:
		b.lastCategorySeq++
		return prefix + strconv.Itoa(b.lastCategorySeq)
	case itemIDPrefix:
		b.lastItemSeq++
		return prefix + strconv.Itoa(b.lastItemSeq)
	}
	panic("unknown id prefix " + prefix)
}

// observeID bumps an id counter past an existing id, so that ids seen in a
// loaded document are never minted again.
func (b *Book) observeID(id string) {
	for _, prefix := range []string{categoryIDPrefix, itemIDPrefix} {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue // foreign id shape, the counter is not concerned
		}
		switch prefix {
		case categoryIDPrefix:
			if n > b.lastCategorySeq {
				b.lastCategorySeq = n
			}
		case itemIDPrefix:
			if n > b.lastItemSeq {
				b.lastItemSeq = n
			}
		}
	}
}

// Category returns the category with this id, or nil if unknown.
func (b *Book) Category(id string) *Category {
	i, ok := b.catIndex[id]
	if !ok {
		return nil
	}
	c := b.categories[i]
	return &c
}

// Categories iterates over categories in insertion order.
func (b *Book) Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, c := range b.categories {
			if !yield(c) {
				return
			}
		}
	}
}

// CreateCategory registers a new category and returns its fresh id.
// A name collision is reported as DuplicateNameError; the collision check is
// advisory and case-insensitive.
func (b *Book) CreateCategory(name string, keywords []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("category name cannot be empty")
	}
	for _, c := range b.categories {
		if strings.EqualFold(c.Name, name) {
			return "", DuplicateNameError{Name: c.Name}
		}
	}
	id := b.nextID(categoryIDPrefix)
	b.catIndex[id] = len(b.categories)
	b.categories = append(b.categories, Category{ID: id, Name: name, Keywords: normalizeKeywords(keywords)})
	return id, nil
}

// RenameCategory changes the display name of an existing category.
func (b *Book) RenameCategory(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	i, ok := b.catIndex[id]
	if !ok {
		return NotFoundError{Kind: "category", ID: id}
	}
	b.categories[i].Name = newName
	return nil
}

// SetCategoryKeywords replaces the search keywords of an existing category.
func (b *Book) SetCategoryKeywords(id string, keywords []string) error {
	i, ok := b.catIndex[id]
	if !ok {
		return NotFoundError{Kind: "category", ID: id}
	}
	b.categories[i].Keywords = normalizeKeywords(keywords)
	return nil
}

// DeleteCategory removes an unreferenced category. When any item, active or
// not, still references it the deletion is rejected with InUseError: the
// caller must reassign those items first.
func (b *Book) DeleteCategory(id string) error {
	i, ok := b.catIndex[id]
	if !ok {
		return NotFoundError{Kind: "category", ID: id}
	}
	var refs []string
	for _, it := range b.items {
		if it.CategoryID == id {
			refs = append(refs, it.ID)
		}
	}
	if len(refs) > 0 {
		return InUseError{Kind: "category", ID: id, Refs: refs}
	}
	b.categories = append(b.categories[:i], b.categories[i+1:]...)
	b.reindexCategories()
	return nil
}

// FindByKeyword returns the ids of categories whose name or keywords contain
// text, case-insensitively. It is a suggestion mechanism for entry screens,
// not an authoritative categorisation.
func (b *Book) FindByKeyword(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	var ids []string
	for _, c := range b.categories {
		if c.matches(text) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (b *Book) reindexCategories() {
	clear(b.catIndex)
	for i, c := range b.categories {
		b.catIndex[c.ID] = i
	}
}

func (b *Book) reindexItems() {
	clear(b.itemIndex)
	for i, it := range b.items {
		b.itemIndex[it.ID] = i
	}
}
