package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEvenDivision(t *testing.T) {
	parts := Split(decimal.NewFromFloat(300.00), 3)
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.True(t, p.Equal(decimal.NewFromFloat(100.00)), "got %s", p)
	}
}

func TestSplitRemainderGoesToLastPart(t *testing.T) {
	parts := Split(decimal.NewFromFloat(100.00), 3)
	require.Len(t, parts, 3)
	assert.True(t, parts[0].Equal(decimal.NewFromFloat(33.33)))
	assert.True(t, parts[1].Equal(decimal.NewFromFloat(33.33)))
	assert.True(t, parts[2].Equal(decimal.NewFromFloat(33.34)))
}

func TestSplitAlwaysSumsToTotal(t *testing.T) {
	totals := []string{"0.01", "1.00", "99.99", "123.45", "1000.00", "2499.97"}
	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for n := 1; n <= 12; n++ {
			parts := Split(total, n)
			require.Len(t, parts, n)
			sum := decimal.Zero
			for _, p := range parts {
				sum = sum.Add(p)
			}
			assert.True(t, sum.Equal(total), "total=%s n=%d sum=%s", total, n, sum)
		}
	}
}

func TestSplitInvalidCount(t *testing.T) {
	assert.Nil(t, Split(decimal.NewFromInt(10), 0))
	assert.Nil(t, Split(decimal.NewFromInt(10), -1))
}

func TestAddMonthsKeepsDayOfMonth(t *testing.T) {
	base := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := AddMonths(base, 2)
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 1))
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 2))
	assert.Equal(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 3))

	jan31NonLeap := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), AddMonths(jan31NonLeap, 1))
}

func TestAddMonthsStrictlyIncreasing(t *testing.T) {
	base := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	prev := AddMonths(base, 0)
	for i := 1; i < 12; i++ {
		next := AddMonths(base, i)
		assert.True(t, next.After(prev), "month %d: %s not after %s", i, next, prev)
		prev = next
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "R$ 0,50", FormatBRL(decimal.NewFromFloat(0.5)))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-R$ 12,30", FormatBRL(decimal.NewFromFloat(-12.3)))
}
