package networth

import "github.com/shopspring/decimal"

// The book can carry a single net-worth goal and remembers the round-number
// milestones already crossed, so crossing one is announced exactly once.

// milestoneLadder returns the milestone that follows the given one:
// 10k, 25k, 50k, then every 50k.
func milestoneLadder(after decimal.Decimal) decimal.Decimal {
	for _, step := range []int64{10_000, 25_000, 50_000} {
		if m := decimal.NewFromInt(step); m.GreaterThan(after) {
			return m
		}
	}
	fifty := decimal.NewFromInt(50_000)
	next := after.Div(fifty).Floor().Mul(fifty).Add(fifty)
	return next
}

// SetGoal records the target net worth.
func (b *Book) SetGoal(target decimal.Decimal) {
	b.goal = target
	b.hasGoal = true
}

// ClearGoal removes the target net worth.
func (b *Book) ClearGoal() {
	b.goal = decimal.Zero
	b.hasGoal = false
}

// Goal returns the target net worth. The boolean is false when unset.
func (b *Book) Goal() (Money, bool) {
	return b.money(b.goal), b.hasGoal
}

// GoalProgress returns the percentage of the goal reached by the net worth
// on that date. The boolean is false when no goal is set.
func (b *Book) GoalProgress(on Date) (float64, bool) {
	if !b.hasGoal || !b.goal.IsPositive() {
		return 0, false
	}
	net := b.Totals(on).NetWorth.Amount()
	pct, _ := net.Div(b.goal).Mul(decimal.NewFromInt(100)).Float64()
	return pct, true
}

// AchievedMilestones returns the milestones crossed so far, ascending.
func (b *Book) AchievedMilestones() []Money {
	out := make([]Money, len(b.milestones))
	for i, m := range b.milestones {
		out[i] = b.money(m)
	}
	return out
}

// CheckMilestones compares the net worth on that date against the milestone
// ladder, records any newly crossed milestones, and returns them. The UI
// collaborator calls this after recording or correcting a snapshot.
func (b *Book) CheckMilestones(on Date) []Money {
	net := b.Totals(on).NetWorth.Amount()

	last := decimal.Zero
	if n := len(b.milestones); n > 0 {
		last = b.milestones[n-1]
	}

	var crossed []Money
	for next := milestoneLadder(last); !next.GreaterThan(net); next = milestoneLadder(next) {
		b.milestones = append(b.milestones, next)
		crossed = append(crossed, b.money(next))
	}
	return crossed
}
