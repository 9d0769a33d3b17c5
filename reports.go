package networth

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// This file is the read-only aggregation layer over the registries and the
// snapshot store. Nothing here mutates the book; the charting collaborator
// consumes these series directly.

// Totals holds the aggregate position on a single snapshot date.
// Liabilities are positive magnitudes; NetWorth = Assets - Liabilities.
type Totals struct {
	Date        Date
	Assets      Money
	Liabilities Money
	NetWorth    Money
}

// CategoryValue is a per-category subtotal on a date.
type CategoryValue struct {
	CategoryID string
	Name       string
	Value      Money
}

// Summary is an at-a-glance overview of the book's state on a snapshot date.
type Summary struct {
	Date              Date
	Totals            Totals
	LiquidAssets      Money
	NonLiquidAssets   Money
	LiquidPercent     float64 // of total assets, 0 when there are no assets
	ItemCount         int     // items with a balance on that date
	CategoryCount     int     // categories represented on that date
	TopCategories     []CategoryValue // up to three, by positive subtotal
	Change            Money   // net worth change versus the previous snapshot
	ChangePercent     float64
	HasPreviousData   bool
}

// Totals sums the balances recorded on that date by item type. A date with
// no snapshot, or an empty snapshot, yields zero totals rather than an
// error: "no data entered yet" is only distinguished at the history level.
func (b *Book) Totals(on Date) Totals {
	t := Totals{
		Date:        on,
		Assets:      b.money(decimal.Zero),
		Liabilities: b.money(decimal.Zero),
	}
	assets, liabilities := decimal.Zero, decimal.Zero
	if i := b.snapshotIndex(on); i >= 0 {
		for id, v := range b.snapshots[i].Balances {
			item := b.Item(id)
			if item == nil {
				continue // unreachable on a loaded book, references are checked
			}
			switch item.Type {
			case Asset:
				assets = assets.Add(v)
			case Liability:
				liabilities = liabilities.Add(v)
			}
		}
	}
	t.Assets = b.money(assets)
	t.Liabilities = b.money(liabilities)
	t.NetWorth = t.Assets.Sub(t.Liabilities)
	return t
}

// ByCategory groups the balances recorded on that date through each item's
// category. Items with no balance on that date are excluded, not zeroed.
// Liability balances contribute negatively to their category subtotal.
func (b *Book) ByCategory(on Date) []CategoryValue {
	sums := make(map[string]decimal.Decimal)
	if i := b.snapshotIndex(on); i >= 0 {
		for id, v := range b.snapshots[i].Balances {
			item := b.Item(id)
			if item == nil {
				continue
			}
			if item.Type == Liability {
				v = v.Neg()
			}
			sums[item.CategoryID] = sums[item.CategoryID].Add(v)
		}
	}
	// Registry order keeps the output deterministic.
	var out []CategoryValue
	for _, c := range b.categories {
		if v, ok := sums[c.ID]; ok {
			out = append(out, CategoryValue{CategoryID: c.ID, Name: c.Name, Value: b.money(v)})
		}
	}
	return out
}

// SeriesNetWorth is the series key selecting the net-worth series.
const SeriesNetWorth = "networth"

// Series returns a restartable ascending (date, value) series for a key:
// "item:<id>", "category:<id>", or "networth". Item series skip dates with
// no recorded balance; category and net-worth series cover every snapshot
// date (an empty snapshot is worth zero, not an error).
func (b *Book) Series(key string) (iter.Seq2[Date, Money], error) {
	switch {
	case key == SeriesNetWorth:
		return func(yield func(Date, Money) bool) {
			for _, s := range b.snapshots {
				if !yield(s.Date, b.Totals(s.Date).NetWorth) {
					return
				}
			}
		}, nil

	case strings.HasPrefix(key, "item:"):
		id := strings.TrimPrefix(key, "item:")
		history, err := b.History(id)
		if err != nil {
			return nil, err
		}
		return func(yield func(Date, Money) bool) {
			for on, v := range history {
				if !yield(on, b.money(v)) {
					return
				}
			}
		}, nil

	case strings.HasPrefix(key, "category:"):
		id := strings.TrimPrefix(key, "category:")
		if b.Category(id) == nil {
			return nil, NotFoundError{Kind: "category", ID: id}
		}
		return func(yield func(Date, Money) bool) {
			for _, s := range b.snapshots {
				total := decimal.Zero
				for _, cv := range b.ByCategory(s.Date) {
					if cv.CategoryID == id {
						total = cv.Value.Amount()
					}
				}
				if !yield(s.Date, b.money(total)) {
					return
				}
			}
		}, nil

	default:
		return nil, fmt.Errorf("unknown series key %q: want %q, \"item:<id>\" or \"category:<id>\"", key, SeriesNetWorth)
	}
}

// Summary computes the overview statistics for the snapshot on that date.
func (b *Book) Summary(on Date) Summary {
	s := Summary{
		Date:            on,
		Totals:          b.Totals(on),
		LiquidAssets:    b.money(decimal.Zero),
		NonLiquidAssets: b.money(decimal.Zero),
		Change:          b.money(decimal.Zero),
	}

	liquid, nonLiquid := decimal.Zero, decimal.Zero
	categories := make(map[string]struct{})
	if i := b.snapshotIndex(on); i >= 0 {
		s.ItemCount = len(b.snapshots[i].Balances)
		for id, v := range b.snapshots[i].Balances {
			item := b.Item(id)
			if item == nil {
				continue
			}
			categories[item.CategoryID] = struct{}{}
			if item.Type == Asset {
				if item.Liquid {
					liquid = liquid.Add(v)
				} else {
					nonLiquid = nonLiquid.Add(v)
				}
			}
		}
	}
	s.LiquidAssets = b.money(liquid)
	s.NonLiquidAssets = b.money(nonLiquid)
	s.CategoryCount = len(categories)
	if assets := s.Totals.Assets.Amount(); assets.IsPositive() {
		s.LiquidPercent, _ = liquid.Div(assets).Mul(decimal.NewFromInt(100)).Float64()
	}

	// Top three categories by positive subtotal.
	top := b.ByCategory(on)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Value.GreaterThan(top[j].Value) })
	for _, cv := range top {
		if !cv.Value.IsPositive() {
			break
		}
		s.TopCategories = append(s.TopCategories, cv)
		if len(s.TopCategories) == 3 {
			break
		}
	}

	// Change versus the previous snapshot, when one exists.
	var previous Date
	for _, snap := range b.snapshots {
		if snap.Date.Before(on) {
			previous = snap.Date
		}
	}
	if !previous.IsZero() {
		s.HasPreviousData = true
		prev := b.Totals(previous).NetWorth
		s.Change = s.Totals.NetWorth.Sub(prev)
		if !prev.IsZero() {
			ratio := s.Change.Amount().Div(prev.Amount().Abs())
			s.ChangePercent, _ = ratio.Mul(decimal.NewFromInt(100)).Float64()
		}
	}
	return s
}
