package transform

import "time"

// DateParts is the surrogate key and calendar components derived from one
// order date. Key is Year*10000 + Month*100 + Day.
type DateParts struct {
	Key   int
	Year  int
	Month int
	Day   int
}

// DeriveDateKey maps a calendar date onto its integer surrogate key and
// components. Pure; input is assumed to be a successfully parsed date.
func DeriveDateKey(t time.Time) DateParts {
	y, m, d := t.Date()
	return DateParts{
		Key:   y*10000 + int(m)*100 + d,
		Year:  y,
		Month: int(m),
		Day:   d,
	}
}
