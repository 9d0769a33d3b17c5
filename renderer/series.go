package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders an ascending (date, value) series as a table.
// This is the textual form of what the charting collaborator plots.
func SeriesMarkdown(title string, points []Point) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", title))

	if len(points) == 0 {
		doc.PlainText("No recorded values.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Date.String(), p.Value.String()})
	}
	doc.Table(table)

	return doc.String()
}
