package networth

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddSnapshot(t *testing.T) {
	b, _, itemID := testBook()

	if err := b.AddSnapshot(MustParseDate("2024-06-01"), balances(itemID, 310000.0)); err != nil {
		t.Fatalf("AddSnapshot: %v", err)
	}
	if err := b.AddSnapshot(MustParseDate("2024-01-01"), balances(itemID, 300000.0)); err != nil {
		t.Fatalf("AddSnapshot: %v", err)
	}

	// The store stays sorted ascending even when dates arrive out of order.
	var dates []string
	for s := range b.Snapshots() {
		dates = append(dates, s.Date.String())
	}
	if len(dates) != 2 || dates[0] != "2024-01-01" || dates[1] != "2024-06-01" {
		t.Errorf("snapshot order = %v", dates)
	}

	// Second snapshot on the same date is rejected, the store is unchanged.
	err := b.AddSnapshot(MustParseDate("2024-06-01"), balances(itemID, 999.0))
	var dup DuplicateDateError
	if !errors.As(err, &dup) {
		t.Fatalf("duplicate date = %v, want DuplicateDateError", err)
	}
	n := 0
	for s := range b.Snapshots() {
		if s.Date == MustParseDate("2024-06-01") {
			n++
			if !s.Balances[itemID].Equal(D(310000)) {
				t.Errorf("rejected add mutated the snapshot: %v", s.Balances[itemID])
			}
		}
	}
	if n != 1 {
		t.Errorf("store has %d snapshots for 2024-06-01, want exactly 1", n)
	}

	// Unknown item id is rejected before any write.
	err = b.AddSnapshot(MustParseDate("2024-07-01"), balances("item_99", 1.0))
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.ID != "item_99" {
		t.Fatalf("unknown item = %v, want NotFoundError for item_99", err)
	}
	if b.Snapshot(MustParseDate("2024-07-01")) != nil {
		t.Error("rejected snapshot was partially recorded")
	}
}

func TestAddSnapshotCopiesBalances(t *testing.T) {
	b, _, itemID := testBook()
	entry := balances(itemID, 100.0)
	if err := b.AddSnapshot(MustParseDate("2024-01-01"), entry); err != nil {
		t.Fatal(err)
	}
	entry[itemID] = D(999) // caller keeps ownership of its map
	if got := b.Snapshot(MustParseDate("2024-01-01")).Balances[itemID]; !got.Equal(D(100)) {
		t.Errorf("store shares the caller's map: balance = %v", got)
	}
}

func TestUpdateSnapshot(t *testing.T) {
	b, catID, house := testBook()
	cash, _ := b.CreateItem("Cash", catID, true, Asset)
	on := MustParseDate("2024-06-01")
	if err := b.AddSnapshot(on, balances(house, 310000.0, cash, 500.0)); err != nil {
		t.Fatal(err)
	}

	// Only the given item changes; absent entries keep their prior value.
	if err := b.UpdateSnapshot(on, balances(house, 320000.0)); err != nil {
		t.Fatalf("UpdateSnapshot: %v", err)
	}
	s := b.Snapshot(on)
	if !s.Balances[house].Equal(D(320000)) {
		t.Errorf("updated balance = %v, want 320000", s.Balances[house])
	}
	if !s.Balances[cash].Equal(D(500)) {
		t.Errorf("untouched balance = %v, want 500", s.Balances[cash])
	}

	var nf NotFoundError
	if err := b.UpdateSnapshot(MustParseDate("2024-07-01"), balances(house, 1.0)); !errors.As(err, &nf) {
		t.Errorf("update of absent date = %v, want NotFoundError", err)
	}
}

func TestRemoveBalance(t *testing.T) {
	b, _, house := testBook()
	on := MustParseDate("2024-06-01")
	if err := b.AddSnapshot(on, balances(house, 310000.0)); err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveBalance(on, house); err != nil {
		t.Fatalf("RemoveBalance: %v", err)
	}
	if _, ok := b.Snapshot(on).Balances[house]; ok {
		t.Error("balance entry still present after removal")
	}
	// Removing again: the item has no recording on that date.
	var nf NotFoundError
	if err := b.RemoveBalance(on, house); !errors.As(err, &nf) {
		t.Errorf("second removal = %v, want NotFoundError", err)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	b, _, itemID := testBook()
	on := MustParseDate("2024-06-01")
	if err := b.AddSnapshot(on, balances(itemID, 1.0)); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteSnapshot(on); err != nil {
		t.Fatalf("DeleteSnapshot: %v", err)
	}
	var nf NotFoundError
	if err := b.DeleteSnapshot(on); !errors.As(err, &nf) {
		t.Errorf("delete of absent date = %v, want NotFoundError", err)
	}
}

func TestCarryForward(t *testing.T) {
	b, catID, house := testBook()
	cash, _ := b.CreateItem("Cash", catID, true, Asset)
	b.AddSnapshot(MustParseDate("2024-01-01"), balances(house, 300000.0))
	b.AddSnapshot(MustParseDate("2024-06-01"), balances(house, 310000.0, cash, 500.0))

	// Latest prior snapshot by default.
	got, err := b.CarryForward(MustParseDate("2024-07-01"), Date{})
	if err != nil {
		t.Fatalf("CarryForward: %v", err)
	}
	if len(got) != 2 || !got[house].Equal(D(310000)) || !got[cash].Equal(D(500)) {
		t.Errorf("CarryForward = %v", got)
	}

	// Explicit base date.
	got, err = b.CarryForward(MustParseDate("2024-07-01"), MustParseDate("2024-01-01"))
	if err != nil {
		t.Fatalf("CarryForward with base: %v", err)
	}
	if len(got) != 1 || !got[house].Equal(D(300000)) {
		t.Errorf("CarryForward from base = %v", got)
	}

	// Unknown base date.
	if _, err := b.CarryForward(MustParseDate("2024-07-01"), MustParseDate("2020-01-01")); err == nil {
		t.Error("CarryForward from unknown base should fail")
	}

	// No prior snapshot: empty starting point, not an error.
	got, err = b.CarryForward(MustParseDate("2023-01-01"), Date{})
	if err != nil || len(got) != 0 {
		t.Errorf("CarryForward before history = %v, %v", got, err)
	}

	// Pure read: mutating the result leaves the store untouched.
	got, _ = b.CarryForward(MustParseDate("2024-07-01"), Date{})
	got[house] = D(1)
	if v := b.Snapshot(MustParseDate("2024-06-01")).Balances[house]; !v.Equal(D(310000)) {
		t.Errorf("CarryForward leaked store state: %v", v)
	}
}

func TestHistory(t *testing.T) {
	b, catID, house := testBook()
	cash, _ := b.CreateItem("Cash", catID, true, Asset)
	b.AddSnapshot(MustParseDate("2024-01-01"), balances(house, 300000.0))
	b.AddSnapshot(MustParseDate("2024-03-01"), balances(cash, 500.0)) // no house entry
	b.AddSnapshot(MustParseDate("2024-06-01"), balances(house, 310000.0, cash, 0.0))

	history, err := b.History(house)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	type entry struct {
		date   string
		amount decimal.Decimal
	}
	collect := func() []entry {
		var out []entry
		for on, v := range history {
			out = append(out, entry{on.String(), v})
		}
		return out
	}

	got := collect()
	// 2024-03-01 is skipped: no recording is not a zero balance.
	if len(got) != 2 || got[0].date != "2024-01-01" || got[1].date != "2024-06-01" {
		t.Fatalf("history dates = %+v", got)
	}
	if !got[0].amount.Equal(D(300000)) || !got[1].amount.Equal(D(310000)) {
		t.Errorf("history amounts = %+v", got)
	}

	// Restartable: a second pass yields the same entries.
	if again := collect(); len(again) != len(got) {
		t.Errorf("second iteration yields %d entries, want %d", len(again), len(got))
	}

	// A recorded zero is a real entry.
	cashHistory, _ := b.History(cash)
	var zeros int
	for _, v := range cashHistory {
		if v.IsZero() {
			zeros++
		}
	}
	if zeros != 1 {
		t.Errorf("recorded zero balance missing from history")
	}

	var nf NotFoundError
	if _, err := b.History("item_99"); !errors.As(err, &nf) {
		t.Errorf("History of unknown item = %v, want NotFoundError", err)
	}
}

func TestMergeItems(t *testing.T) {
	b, catID, house := testBook()
	dup, _ := b.CreateItem("House (old)", catID, false, Asset)
	b.AddSnapshot(MustParseDate("2024-01-01"), balances(dup, 295000.0))
	b.AddSnapshot(MustParseDate("2024-06-01"), balances(house, 310000.0))

	if err := b.MergeItems(house, dup); err != nil {
		t.Fatalf("MergeItems: %v", err)
	}

	// history(keep) is the union of both histories prior to merge.
	history, err := b.History(house)
	if err != nil {
		t.Fatal(err)
	}
	var dates []string
	for on := range history {
		dates = append(dates, on.String())
	}
	if len(dates) != 2 || dates[0] != "2024-01-01" || dates[1] != "2024-06-01" {
		t.Errorf("merged history = %v", dates)
	}

	// history(drop) now fails.
	var nf NotFoundError
	if _, err := b.History(dup); !errors.As(err, &nf) {
		t.Errorf("History of dropped item = %v, want NotFoundError", err)
	}
}

func TestMergeItemsConflicts(t *testing.T) {
	b, catID, house := testBook()
	dup, _ := b.CreateItem("House (old)", catID, false, Asset)
	on := MustParseDate("2024-01-01")
	b.AddSnapshot(on, balances(house, 300000.0, dup, 295000.0))

	// Both have a balance on the same date: the merge would lose data.
	err := b.MergeItems(house, dup)
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("MergeItems with collision = %v, want ConflictError", err)
	}
	if len(conflict.Dates) != 1 || conflict.Dates[0] != on {
		t.Errorf("ConflictError.Dates = %v, want [%s]", conflict.Dates, on)
	}
	// Nothing moved.
	if b.Item(dup) == nil {
		t.Error("failed merge removed the drop item")
	}
	if !b.Snapshot(on).Balances[dup].Equal(D(295000)) {
		t.Error("failed merge rewrote balances")
	}

	// Different types cannot be merged either.
	loanCat, _ := b.CreateCategory("Loan", nil)
	loan, _ := b.CreateItem("Car loan", loanCat, false, Liability)
	if err := b.MergeItems(house, loan); !errors.As(err, &conflict) {
		t.Errorf("merge across types = %v, want ConflictError", err)
	}

	// Merging an item into itself is meaningless.
	if err := b.MergeItems(house, house); !errors.As(err, &conflict) {
		t.Errorf("self merge = %v, want ConflictError", err)
	}

	var nf NotFoundError
	if err := b.MergeItems(house, "item_99"); !errors.As(err, &nf) {
		t.Errorf("merge with unknown drop id = %v, want NotFoundError", err)
	}
}
