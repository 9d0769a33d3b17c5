package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the at-a-glance overview for a snapshot date.
func SummaryMarkdown(s *networth.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Net worth: %s", s.Totals.NetWorth))

	doc.H2("Position")
	doc.Table(md.TableSet{
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Total assets", s.Totals.Assets.String()},
			{"Total liabilities", s.Totals.Liabilities.String()},
			{"Liquid assets", fmt.Sprintf("%s (%.1f%%)", s.LiquidAssets, s.LiquidPercent)},
			{"Non-liquid assets", s.NonLiquidAssets.String()},
			{"Items recorded", fmt.Sprintf("%d", s.ItemCount)},
			{"Categories", fmt.Sprintf("%d", s.CategoryCount)},
		},
	})

	if len(s.TopCategories) > 0 {
		doc.H2("Top Categories")
		table := md.TableSet{
			Header: []string{"Category", "Value"},
			Rows:   [][]string{},
		}
		for _, cv := range s.TopCategories {
			table.Rows = append(table.Rows, []string{cv.Name, cv.Value.String()})
		}
		doc.Table(table)
	}

	if s.HasPreviousData {
		doc.H2("Change")
		doc.PlainText(fmt.Sprintf("%s (%+.1f%%) since the previous snapshot", s.Change.SignedString(), s.ChangePercent))
	}

	return doc.String()
}

// GoalMarkdown renders the goal progress and the achieved milestones.
func GoalMarkdown(goal networth.Money, percent float64, milestones []networth.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Goal")
	doc.PlainText(fmt.Sprintf("Target: %s, %.1f%% reached", goal, percent))

	if len(milestones) > 0 {
		doc.H2("Milestones achieved")
		items := make([]string, len(milestones))
		for i, m := range milestones {
			items[i] = m.String()
		}
		doc.BulletList(items...)
	}

	return doc.String()
}
