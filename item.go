package networth

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType tells whether an item counts toward assets or liabilities.
type ItemType int

const (
	// Asset contributes positively to net worth.
	Asset ItemType = iota
	// Liability is recorded as a positive magnitude and subtracted from net worth.
	Liability
)

func (t ItemType) String() string {
	switch t {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	default:
		return "unknown"
	}
}

// ParseItemType parses a string into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	default:
		return 0, fmt.Errorf("unknown item type: %q", s)
	}
}

// Item is a named financial item: a bank account, a property, a loan...
// Its id is stable and never reused after deletion. An item that still has
// historical balances is soft-deleted: it keeps its id and metadata but is
// excluded from active listings.
type Item struct {
	ID         string
	Name       string
	CategoryID string
	Liquid     bool
	Type       ItemType
	Inactive   bool

	// Target is an optional target balance for the item. hasTarget
	// distinguishes "no target" from a zero target.
	Target    decimal.Decimal
	HasTarget bool
}

// ItemUpdate describes a partial item update: nil fields are left untouched.
type ItemUpdate struct {
	Name       *string
	CategoryID *string
	Liquid     *bool
	Type       *ItemType
}

// Item returns the item with this id, or nil if unknown. Soft-deleted items
// are still returned so that history stays resolvable.
func (b *Book) Item(id string) *Item {
	i, ok := b.itemIndex[id]
	if !ok {
		return nil
	}
	it := b.items[i]
	return &it
}

// Items iterates over all items, active and inactive, in insertion order.
func (b *Book) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range b.items {
			if !yield(it) {
				return
			}
		}
	}
}

// ActiveItems iterates over items that are not soft-deleted, in insertion order.
func (b *Book) ActiveItems() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range b.items {
			if it.Inactive {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// CreateItem registers a new financial item and returns its fresh id.
func (b *Book) CreateItem(name, categoryID string, liquid bool, typ ItemType) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("item name cannot be empty")
	}
	if _, ok := b.catIndex[categoryID]; !ok {
		return "", NotFoundError{Kind: "category", ID: categoryID}
	}
	id := b.nextID(itemIDPrefix)
	b.itemIndex[id] = len(b.items)
	b.items = append(b.items, Item{ID: id, Name: name, CategoryID: categoryID, Liquid: liquid, Type: typ})
	return id, nil
}

// UpdateItem applies a partial update to an item. Changing the type is
// rejected with ImmutableFieldError once the item has at least one recorded
// balance, since it would retroactively alter historical totals.
func (b *Book) UpdateItem(id string, u ItemUpdate) error {
	i, ok := b.itemIndex[id]
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	// Validate everything before applying anything.
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	if u.CategoryID != nil {
		if _, ok := b.catIndex[*u.CategoryID]; !ok {
			return NotFoundError{Kind: "category", ID: *u.CategoryID}
		}
	}
	if u.Type != nil && *u.Type != b.items[i].Type && b.itemHasBalances(id) {
		return ImmutableFieldError{ItemID: id, Field: "type"}
	}

	if u.Name != nil {
		b.items[i].Name = strings.TrimSpace(*u.Name)
	}
	if u.CategoryID != nil {
		b.items[i].CategoryID = *u.CategoryID
	}
	if u.Liquid != nil {
		b.items[i].Liquid = *u.Liquid
	}
	if u.Type != nil {
		b.items[i].Type = *u.Type
	}
	return nil
}

// SetItemTarget sets the target balance for an item.
func (b *Book) SetItemTarget(id string, target decimal.Decimal) error {
	i, ok := b.itemIndex[id]
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	b.items[i].Target = target
	b.items[i].HasTarget = true
	return nil
}

// ClearItemTarget removes the target balance from an item.
func (b *Book) ClearItemTarget(id string) error {
	i, ok := b.itemIndex[id]
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	b.items[i].Target = decimal.Zero
	b.items[i].HasTarget = false
	return nil
}

// DeleteItem removes an item. When any snapshot still references it, the
// item is only marked inactive so its historical balances remain queryable;
// it is physically removed only when zero references exist. Either way its
// id is never minted again.
func (b *Book) DeleteItem(id string) error {
	i, ok := b.itemIndex[id]
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	if b.itemHasBalances(id) {
		b.items[i].Inactive = true
		return nil
	}
	delete(b.itemIndex, id)
	b.items = append(b.items[:i], b.items[i+1:]...)
	b.reindexItems()
	return nil
}

// RestoreItem clears the inactive mark from a soft-deleted item.
func (b *Book) RestoreItem(id string) error {
	i, ok := b.itemIndex[id]
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	b.items[i].Inactive = false
	return nil
}

// itemHasBalances reports whether any snapshot records a balance for this item.
func (b *Book) itemHasBalances(id string) bool {
	for _, s := range b.snapshots {
		if _, ok := s.Balances[id]; ok {
			return true
		}
	}
	return false
}

// MergeItems rewrites every balance recorded against dropID onto keepID and
// removes dropID from the registry. It is intended for de-duplicating legacy
// entries that name the same real-world item.
//
// The merge is rejected with ConflictError when both items record a balance
// on the same date (the merge would silently lose one of the two values) or
// when the two items disagree on type (the merge would retroactively flip
// historical totals). The caller must resolve those manually first.
func (b *Book) MergeItems(keepID, dropID string) error {
	if keepID == dropID {
		return ConflictError{KeepID: keepID, DropID: dropID, Reason: "cannot merge an item into itself"}
	}
	keep, ok := b.itemIndex[keepID]
	if !ok {
		return NotFoundError{Kind: "item", ID: keepID}
	}
	drop, ok := b.itemIndex[dropID]
	if !ok {
		return NotFoundError{Kind: "item", ID: dropID}
	}
	if b.items[keep].Type != b.items[drop].Type {
		return ConflictError{KeepID: keepID, DropID: dropID, Reason: "items have different types"}
	}

	var collisions []Date
	for _, s := range b.snapshots {
		_, hasKeep := s.Balances[keepID]
		_, hasDrop := s.Balances[dropID]
		if hasKeep && hasDrop {
			collisions = append(collisions, s.Date)
		}
	}
	if len(collisions) > 0 {
		return ConflictError{KeepID: keepID, DropID: dropID, Dates: collisions}
	}

	for i := range b.snapshots {
		if v, ok := b.snapshots[i].Balances[dropID]; ok {
			b.snapshots[i].Balances[keepID] = v
			delete(b.snapshots[i].Balances, dropID)
		}
	}
	delete(b.itemIndex, dropID)
	b.items = append(b.items[:drop], b.items[drop+1:]...)
	b.reindexItems()
	return nil
}
