// Package money holds the currency and due-date arithmetic shared by the
// billing services.
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Split divides total into n parts rounded to 2 decimal places. Any rounding
// remainder is folded into the last part, so the parts always sum exactly to
// total. n must be >= 1.
func Split(total decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		return nil
	}
	base := total.Div(decimal.NewFromInt(int64(n))).Round(2)
	parts := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		parts[i] = base
		running = running.Add(base)
	}
	parts[n-1] = total.Sub(running)
	return parts
}

// AddMonths returns t shifted forward by n calendar months, keeping the
// day-of-month when the target month is long enough and clamping to the
// target month's last day otherwise. time.AddDate alone normalizes overflow
// (Jan 31 + 1 month = Mar 3), which is not what installment schedules want.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, n, 0)
	if last := daysIn(shifted.Year(), shifted.Month()); day > last {
		day = last
	}
	return time.Date(shifted.Year(), shifted.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
