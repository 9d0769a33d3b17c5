package networth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const validDocument = `{
    "currency": "GBP",
    "categories": [
        {"id": "cat_1", "name": "Property", "keywords": ["house", "flat"]},
        {"id": "cat_2", "name": "Mortgage", "keywords": ["mortgage"]}
    ],
    "financial_items": [
        {"id": "item_1", "name": "House", "category_id": "cat_1", "liquid": false, "type": "asset", "target_balance": 400000},
        {"id": "item_2", "name": "Mortgage", "category_id": "cat_2", "liquid": false, "type": "liability", "inactive": true}
    ],
    "snapshots": [
        {"date": "2024-01-01", "balances": [{"item_id": "item_1", "balance": 300000}, {"item_id": "item_2", "balance": 250000}]},
        {"date": "2024-06-01", "balances": [{"item_id": "item_1", "balance": 310000.50}]}
    ],
    "financial_goal": 500000,
    "achieved_milestones": [10000, 25000]
}`

func TestDecodeBook(t *testing.T) {
	b, err := DecodeBook(strings.NewReader(validDocument))
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}
	if b.Currency() != "GBP" {
		t.Errorf("currency = %q", b.Currency())
	}
	house := b.Item("item_1")
	if house == nil || house.Type != Asset || !house.HasTarget || !house.Target.Equal(D(400000)) {
		t.Errorf("item_1 = %+v", house)
	}
	if m := b.Item("item_2"); m == nil || !m.Inactive || m.Type != Liability {
		t.Errorf("item_2 = %+v", m)
	}
	if got := b.Totals(MustParseDate("2024-06-01")).NetWorth; !got.Equal(GBP(310000.50)) {
		t.Errorf("net worth = %v", got)
	}
	if goal, ok := b.Goal(); !ok || !goal.Equal(GBP(500000)) {
		t.Errorf("goal = %v, %v", goal, ok)
	}
	if got := b.AchievedMilestones(); len(got) != 2 {
		t.Errorf("milestones = %v", got)
	}
	// Fresh ids never collide with loaded ones.
	id, err := b.CreateItem("New", "cat_1", true, Asset)
	if err != nil {
		t.Fatal(err)
	}
	if id != "item_3" {
		t.Errorf("next item id = %q, want item_3", id)
	}
}

func TestDecodeBookSortsSnapshots(t *testing.T) {
	// Older files were saved most-recent-first.
	doc := `{
        "categories": [{"id": "cat_1", "name": "Other", "keywords": []}],
        "financial_items": [{"id": "item_1", "name": "Cash", "category_id": "cat_1", "liquid": true, "type": "asset"}],
        "snapshots": [
            {"date": "2024-06-01", "balances": []},
            {"date": "2024-01-01", "balances": []}
        ]
    }`
	b, err := DecodeBook(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.OldestSnapshotDate(); got != MustParseDate("2024-01-01") {
		t.Errorf("oldest = %s, store not re-sorted ascending", got)
	}
}

func TestDecodeBookEnumeratesViolations(t *testing.T) {
	doc := `{
        "categories": [
            {"id": "cat_1", "name": "A", "keywords": []},
            {"id": "cat_1", "name": "B", "keywords": []}
        ],
        "financial_items": [
            {"id": "item_1", "name": "X", "category_id": "cat_9", "liquid": false, "type": "asset"},
            {"id": "item_1", "name": "Y", "category_id": "cat_1", "liquid": false, "type": "frobnicate"}
        ],
        "snapshots": [
            {"date": "2024-01-01", "balances": [{"item_id": "item_9", "balance": 1}]},
            {"date": "2024-01-01", "balances": []},
            {"date": "bogus", "balances": []}
        ]
    }`
	_, err := DecodeBook(strings.NewReader(doc))
	var load LoadError
	if !errors.As(err, &load) {
		t.Fatalf("DecodeBook = %v, want LoadError", err)
	}
	// One pass reports them all: duplicate category id, dangling category
	// reference, duplicate item id, dangling item in snapshot, duplicate
	// date, unparseable date.
	if len(load.Violations) != 6 {
		t.Errorf("found %d violations, want 6:\n%v", len(load.Violations), err)
	}
	for _, fragment := range []string{"cat_1", "cat_9", "item_1", "item_9", "2024-01-01", "bogus"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("LoadError does not name offender %q:\n%v", fragment, err)
		}
	}
}

func TestDecodeBookRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader("{")); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

// Round-trip law: save(load(document)) is semantically equivalent to the
// document, and a second round trip is byte-identical.
func TestEncodeBookRoundTrip(t *testing.T) {
	b, err := DecodeBook(strings.NewReader(validDocument))
	if err != nil {
		t.Fatal(err)
	}
	var first bytes.Buffer
	if err := EncodeBook(&first, b); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}

	again, err := DecodeBook(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("decode of encoded document: %v", err)
	}

	// Semantic equivalence.
	if again.Currency() != b.Currency() {
		t.Errorf("currency changed: %q", again.Currency())
	}
	for c := range b.Categories() {
		got := again.Category(c.ID)
		if got == nil || got.Name != c.Name {
			t.Errorf("category %s changed: %+v", c.ID, got)
		}
	}
	for it := range b.Items() {
		got := again.Item(it.ID)
		if got == nil || got.Name != it.Name || got.Type != it.Type || got.Inactive != it.Inactive {
			t.Errorf("item %s changed: %+v", it.ID, got)
		}
	}
	for s := range b.Snapshots() {
		got := again.Snapshot(s.Date)
		if got == nil || len(got.Balances) != len(s.Balances) {
			t.Fatalf("snapshot %s changed: %+v", s.Date, got)
		}
		for id, v := range s.Balances {
			if !got.Balances[id].Equal(v) {
				t.Errorf("snapshot %s balance %s = %v, want %v", s.Date, id, got.Balances[id], v)
			}
		}
	}

	// Stability: encoding the reloaded book reproduces the same bytes.
	var second bytes.Buffer
	if err := EncodeBook(&second, again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("second round trip is not byte-identical")
	}
}

func TestEncodeBookFieldOrder(t *testing.T) {
	b, _, itemID := testBook()
	b.AddSnapshot(MustParseDate("2024-01-01"), balances(itemID, 1.0))

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// Top-level arrays appear in the documented order.
	for i, key := range []string{`"currency"`, `"categories"`, `"financial_items"`, `"snapshots"`} {
		pos := strings.Index(out, key)
		if pos < 0 {
			t.Fatalf("document is missing %s:\n%s", key, out)
		}
		if i > 0 && pos < strings.Index(out, `"currency"`) {
			t.Errorf("%s appears before currency", key)
		}
	}
	if strings.Contains(out, `"financial_goal"`) {
		t.Error("unset goal was persisted")
	}
}
