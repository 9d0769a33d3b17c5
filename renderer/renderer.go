// Package renderer turns the book's reports into markdown strings, ready to
// be printed raw or rendered to the terminal by the CLI.
package renderer

import "github.com/etnz/networth"

// Point is a single (date, value) sample of a series.
type Point struct {
	Date  networth.Date
	Value networth.Money
}
