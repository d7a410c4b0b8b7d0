package submission

import (
	"fmt"
	"time"
)

// NextQuoteNumber derives the quote number that follows last, in the
// form Q{YY}{Q}{NNNN}. The 4-digit sequence restarts at 0001 when the
// stored (year, quarter) bucket is strictly older than now's bucket,
// and increments otherwise. Callers must hold the row lock on the
// latest customer for the read-then-write to be safe.
func NextQuoteNumber(last string, now time.Time) string {
	yy := now.Year() % 100
	q := int(now.Month()-1)/3 + 1

	seq := 1
	if lyy, lq, lseq, ok := parseQuoteNumber(last); ok {
		if lyy*10+lq >= yy*10+q {
			seq = lseq + 1
		}
	}
	return fmt.Sprintf("Q%02d%d%04d", yy, q, seq)
}

// parseQuoteNumber splits Q{YY}{Q}{NNNN}; ok is false for anything
// that does not match, which restarts the sequence.
func parseQuoteNumber(s string) (yy, q, seq int, ok bool) {
	if len(s) != 8 || s[0] != 'Q' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(s[1:], "%2d%1d%4d", &yy, &q, &seq); err != nil {
		return 0, 0, 0, false
	}
	if q < 1 || q > 4 || seq < 1 {
		return 0, 0, 0, false
	}
	return yy, q, seq, true
}
