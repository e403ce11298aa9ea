package reference

import (
	"fmt"
	"time"

	"github.com/iw2rmb/apacite/citation"
)

// Date is a calendar day. Month is 1-12.
type Date struct {
	Month int
	Day   int
	Year  int
}

// DateProvider supplies today's date for the retrieval phrase.
type DateProvider interface {
	Today() Date
}

// Today lets a fixed Date act as its own provider.
func (d Date) Today() Date { return d }

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return Date{Month: int(t.Month()), Day: t.Day(), Year: t.Year()}
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() Date { return DateOf(time.Now()) }

// RetrievedPhrase returns the "retrieved on" phrase for d in lang.
func RetrievedPhrase(lang citation.Lang, d Date) string {
	month := lang.MonthName(d.Month)
	if lang == citation.Spanish {
		return fmt.Sprintf("Consultado el %d de %s, %d, de", d.Day, month, d.Year)
	}
	return fmt.Sprintf("Retrieved %s %d, %d, from", month, d.Day, d.Year)
}
