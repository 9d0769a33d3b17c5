package networth

import (
	"errors"
	"slices"
	"testing"
)

func TestCreateCategory(t *testing.T) {
	b := NewBook("GBP")

	id, err := b.CreateCategory("Property", []string{"House", "  flat ", "house"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if id != "cat_1" {
		t.Errorf("first category id = %q, want cat_1", id)
	}
	c := b.Category(id)
	if c == nil {
		t.Fatal("created category not found")
	}
	if want := []string{"house", "flat"}; !slices.Equal(c.Keywords, want) {
		t.Errorf("keywords = %v, want %v (lowercased, trimmed, deduplicated)", c.Keywords, want)
	}

	// Name collision is advisory but reported.
	_, err = b.CreateCategory("property", nil)
	var dup DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("duplicate name error = %v, want DuplicateNameError", err)
	}
	if dup.Name != "Property" {
		t.Errorf("DuplicateNameError.Name = %q, want the existing name", dup.Name)
	}
}

func TestRenameCategory(t *testing.T) {
	b, catID, _ := testBook()

	if err := b.RenameCategory(catID, "Real Estate"); err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}
	if got := b.Category(catID).Name; got != "Real Estate" {
		t.Errorf("renamed category name = %q", got)
	}

	err := b.RenameCategory("cat_99", "x")
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "category" {
		t.Errorf("rename unknown id = %v, want category NotFoundError", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	b, catID, itemID := testBook()

	// Referenced by an item: blocked.
	err := b.DeleteCategory(catID)
	var inUse InUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("delete referenced category = %v, want InUseError", err)
	}
	if !slices.Contains(inUse.Refs, itemID) {
		t.Errorf("InUseError.Refs = %v, want to contain %q", inUse.Refs, itemID)
	}

	// Still referenced by a soft-deleted item: still blocked.
	if err := b.AddSnapshot(MustParseDate("2024-01-01"), balances(itemID, 100.0)); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteItem(itemID); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteCategory(catID); !errors.As(err, &inUse) {
		t.Fatalf("category referenced by inactive item: %v, want InUseError", err)
	}

	// Unreferenced: removed.
	empty, err := b.CreateCategory("Empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteCategory(empty); err != nil {
		t.Fatalf("delete unreferenced category: %v", err)
	}
	if b.Category(empty) != nil {
		t.Error("deleted category still resolvable")
	}
}

func TestFindByKeyword(t *testing.T) {
	b := NewBook("GBP")
	b.SeedDefaultCategories()

	testCases := []struct {
		text string
		want int // number of matching categories
	}{
		{text: "isa", want: 1},
		{text: "ISA", want: 1},   // case-insensitive
		{text: "loan", want: 2},  // Mortgage ("property loan") and Loan
		{text: "zzz", want: 0},
		{text: "  ", want: 0},
	}
	for _, tc := range testCases {
		if got := b.FindByKeyword(tc.text); len(got) != tc.want {
			t.Errorf("FindByKeyword(%q) = %v, want %d matches", tc.text, got, tc.want)
		}
	}
}

func TestCreateItem(t *testing.T) {
	b, catID, _ := testBook()

	_, err := b.CreateItem("Boat", "cat_99", true, Asset)
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "category" {
		t.Fatalf("create with unknown category = %v, want category NotFoundError", err)
	}

	id, err := b.CreateItem("Boat", catID, true, Asset)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if id != "item_2" {
		t.Errorf("second item id = %q, want item_2", id)
	}
}

func TestUpdateItem(t *testing.T) {
	b, catID, itemID := testBook()
	savings, err := b.CreateCategory("Savings", nil)
	if err != nil {
		t.Fatal(err)
	}

	// Type change is allowed while no balance exists.
	liability := Liability
	if err := b.UpdateItem(itemID, ItemUpdate{Type: &liability}); err != nil {
		t.Fatalf("type change before balances: %v", err)
	}
	asset := Asset
	if err := b.UpdateItem(itemID, ItemUpdate{Type: &asset}); err != nil {
		t.Fatal(err)
	}

	if err := b.AddSnapshot(MustParseDate("2024-01-01"), balances(itemID, 300000.0)); err != nil {
		t.Fatal(err)
	}

	// Now the type is frozen.
	err = b.UpdateItem(itemID, ItemUpdate{Type: &liability})
	var imm ImmutableFieldError
	if !errors.As(err, &imm) {
		t.Fatalf("type change after balances = %v, want ImmutableFieldError", err)
	}
	if imm.Field != "type" || imm.ItemID != itemID {
		t.Errorf("ImmutableFieldError = %+v", imm)
	}

	// Re-stating the current type is not a change.
	if err := b.UpdateItem(itemID, ItemUpdate{Type: &asset}); err != nil {
		t.Errorf("no-op type update rejected: %v", err)
	}

	// Partial update touches only the given fields.
	name := "Main House"
	liquid := true
	if err := b.UpdateItem(itemID, ItemUpdate{Name: &name, CategoryID: &savings, Liquid: &liquid}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	it := b.Item(itemID)
	if it.Name != "Main House" || it.CategoryID != savings || !it.Liquid || it.Type != Asset {
		t.Errorf("after partial update: %+v", it)
	}

	// A failed update leaves everything untouched.
	bad := "cat_99"
	if err := b.UpdateItem(itemID, ItemUpdate{Name: new(string), CategoryID: &bad}); err == nil {
		t.Fatal("update with unknown category accepted")
	}
	if got := b.Item(itemID).Name; got != "Main House" {
		t.Errorf("failed update mutated the item: name = %q", got)
	}
	_ = catID
}

func TestDeleteItem(t *testing.T) {
	b, catID, itemID := testBook()

	// Zero references: hard removal, id not reused.
	if err := b.DeleteItem(itemID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if b.Item(itemID) != nil {
		t.Error("hard-deleted item still resolvable")
	}
	next, err := b.CreateItem("Flat", catID, false, Asset)
	if err != nil {
		t.Fatal(err)
	}
	if next == itemID {
		t.Errorf("item id %q was reused after deletion", next)
	}

	// Referenced by a snapshot: soft delete.
	if err := b.AddSnapshot(MustParseDate("2024-01-01"), balances(next, 100.0)); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteItem(next); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	it := b.Item(next)
	if it == nil || !it.Inactive {
		t.Fatalf("referenced item should be soft-deleted, got %+v", it)
	}
	var active []Item
	for i := range b.ActiveItems() {
		active = append(active, i)
	}
	if len(active) != 0 {
		t.Errorf("ActiveItems still lists the soft-deleted item: %v", active)
	}
	// History stays queryable.
	history, err := b.History(next)
	if err != nil {
		t.Fatalf("History on soft-deleted item: %v", err)
	}
	n := 0
	for range history {
		n++
	}
	if n != 1 {
		t.Errorf("history of soft-deleted item has %d entries, want 1", n)
	}

	if err := b.RestoreItem(next); err != nil {
		t.Fatal(err)
	}
	if b.Item(next).Inactive {
		t.Error("RestoreItem left the item inactive")
	}
}

func TestActiveItemsInsertionOrder(t *testing.T) {
	b, catID, first := testBook()
	second, _ := b.CreateItem("Flat", catID, false, Asset)
	third, _ := b.CreateItem("Car", catID, false, Asset)

	var got []string
	for it := range b.ActiveItems() {
		got = append(got, it.ID)
	}
	if want := []string{first, second, third}; !slices.Equal(got, want) {
		t.Errorf("ActiveItems order = %v, want %v", got, want)
	}
}
