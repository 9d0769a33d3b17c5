package networth

import (
	"iter"
	"maps"
	"sort"

	"github.com/shopspring/decimal"
)

// Snapshot is a dated record of balances for a subset of financial items.
// An item absent from Balances has no recording on that date, which is
// distinct from a zero balance.
type Snapshot struct {
	Date     Date
	Balances map[string]decimal.Decimal // item id -> signed amount
}

// Snapshot returns the snapshot on this date, or nil if none exists.
func (b *Book) Snapshot(on Date) *Snapshot {
	for _, s := range b.snapshots {
		if s.Date == on {
			c := Snapshot{Date: s.Date, Balances: maps.Clone(s.Balances)}
			return &c
		}
	}
	return nil
}

// Snapshots iterates over snapshots in ascending date order. The balance
// maps are the store's own: callers must not mutate them.
func (b *Book) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range b.snapshots {
			if !yield(s) {
				return
			}
		}
	}
}

// OldestSnapshotDate returns the date of the earliest snapshot, or the zero
// date when the store is empty.
func (b *Book) OldestSnapshotDate() Date {
	if len(b.snapshots) == 0 {
		return Date{}
	}
	return b.snapshots[0].Date
}

// NewestSnapshotDate returns the date of the latest snapshot, or the zero
// date when the store is empty.
func (b *Book) NewestSnapshotDate() Date {
	if len(b.snapshots) == 0 {
		return Date{}
	}
	return b.snapshots[len(b.snapshots)-1].Date
}

// AddSnapshot records a new dated reading. The date must be free
// (DuplicateDateError otherwise; use UpdateSnapshot to correct an existing
// one) and every item id must be known (NotFoundError). The store stays
// sorted by date after insertion.
func (b *Book) AddSnapshot(on Date, balances map[string]decimal.Decimal) error {
	if on.IsZero() {
		return NotFoundError{Kind: "snapshot", ID: on.String()}
	}
	for _, s := range b.snapshots {
		if s.Date == on {
			return DuplicateDateError{Date: on}
		}
	}
	if err := b.checkItemIDs(balances); err != nil {
		return err
	}
	b.snapshots = append(b.snapshots, Snapshot{Date: on, Balances: maps.Clone(balances)})
	b.stableSort()
	return nil
}

// UpdateSnapshot merges the given balances into the snapshot on that date.
// Items absent from balances keep their prior value in that snapshot: a
// missing entry means "unchanged for this edit", it is never carried from
// earlier dates nor treated as zero.
func (b *Book) UpdateSnapshot(on Date, balances map[string]decimal.Decimal) error {
	i := b.snapshotIndex(on)
	if i < 0 {
		return NotFoundError{Kind: "snapshot", ID: on.String()}
	}
	if err := b.checkItemIDs(balances); err != nil {
		return err
	}
	for id, v := range balances {
		b.snapshots[i].Balances[id] = v
	}
	return nil
}

// RemoveBalance deletes a single item's balance entry from the snapshot on
// that date, turning it back into "no recording".
func (b *Book) RemoveBalance(on Date, itemID string) error {
	i := b.snapshotIndex(on)
	if i < 0 {
		return NotFoundError{Kind: "snapshot", ID: on.String()}
	}
	if _, ok := b.snapshots[i].Balances[itemID]; !ok {
		return NotFoundError{Kind: "item", ID: itemID}
	}
	delete(b.snapshots[i].Balances, itemID)
	return nil
}

// DeleteSnapshot removes the snapshot on that date.
func (b *Book) DeleteSnapshot(on Date) error {
	i := b.snapshotIndex(on)
	if i < 0 {
		return NotFoundError{Kind: "snapshot", ID: on.String()}
	}
	b.snapshots = append(b.snapshots[:i], b.snapshots[i+1:]...)
	return nil
}

// CarryForward returns a copy of a prior snapshot's balances as the starting
// point for a new entry on newDate. With a zero base it picks the most
// recent snapshot strictly before newDate; an explicit base must name an
// existing snapshot. It is a pure read: nothing is recorded until the caller
// passes the (possibly edited) balances to AddSnapshot.
func (b *Book) CarryForward(newDate, base Date) (map[string]decimal.Decimal, error) {
	if !base.IsZero() {
		i := b.snapshotIndex(base)
		if i < 0 {
			return nil, NotFoundError{Kind: "snapshot", ID: base.String()}
		}
		return maps.Clone(b.snapshots[i].Balances), nil
	}
	var latest *Snapshot
	for i := range b.snapshots {
		if b.snapshots[i].Date.Before(newDate) {
			latest = &b.snapshots[i]
		}
	}
	if latest == nil {
		return map[string]decimal.Decimal{}, nil
	}
	return maps.Clone(latest.Balances), nil
}

// History returns a restartable iterator over the (date, amount) pairs
// recorded for this item, ascending by date. Dates where the item has no
// recorded balance are skipped, never synthesized as zeros. Soft-deleted
// items remain queryable; an unknown id is a NotFoundError.
func (b *Book) History(itemID string) (iter.Seq2[Date, decimal.Decimal], error) {
	if _, ok := b.itemIndex[itemID]; !ok {
		return nil, NotFoundError{Kind: "item", ID: itemID}
	}
	return func(yield func(Date, decimal.Decimal) bool) {
		for _, s := range b.snapshots {
			if v, ok := s.Balances[itemID]; ok {
				if !yield(s.Date, v) {
					return
				}
			}
		}
	}, nil
}

// checkItemIDs verifies every id in balances resolves to a known item.
func (b *Book) checkItemIDs(balances map[string]decimal.Decimal) error {
	// Deterministic order so the reported offender does not depend on map order.
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := b.itemIndex[id]; !ok {
			return NotFoundError{Kind: "item", ID: id}
		}
	}
	return nil
}

// snapshotIndex returns the index of the snapshot on that date, or -1.
func (b *Book) snapshotIndex(on Date) int {
	for i, s := range b.snapshots {
		if s.Date == on {
			return i
		}
	}
	return -1
}

// stableSort sorts the store by snapshot date. The sort is stable, though
// dates are unique by construction.
func (b *Book) stableSort() {
	sort.SliceStable(b.snapshots, func(i, j int) bool {
		return b.snapshots[i].Date.Before(b.snapshots[j].Date)
	})
}
