package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	t.Run("Whole Days", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(day(1), day(4)))
		assert.Equal(t, int64(1), RentalDays(day(1), day(2)))
	})

	t.Run("Same Day Is Zero", func(t *testing.T) {
		assert.Equal(t, int64(0), RentalDays(day(1), day(1)))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		from := day(1)
		end := from.Add(25 * time.Hour)
		assert.Equal(t, int64(2), RentalDays(from, end))

		end = from.Add(time.Minute)
		assert.Equal(t, int64(1), RentalDays(from, end))
	})

	t.Run("Inverted Range Is Zero", func(t *testing.T) {
		assert.Equal(t, int64(0), RentalDays(day(4), day(1)))
	})
}

func TestOrderTotal(t *testing.T) {
	price := decimal.NewFromInt(50)

	total := OrderTotal(price, day(1), day(4))
	assert.True(t, decimal.NewFromInt(150).Equal(total), "got %s", total)

	total = OrderTotal(price, day(1), day(1))
	assert.True(t, total.IsZero(), "got %s", total)
}

func TestPlatformFee(t *testing.T) {
	fee := PlatformFee(decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(10).Equal(fee), "got %s", fee)

	fee = PlatformFee(decimal.RequireFromString("99.90"))
	assert.True(t, decimal.RequireFromString("9.99").Equal(fee), "got %s", fee)
}

func TestFractionalDays(t *testing.T) {
	from := day(1)
	end := from.Add(36 * time.Hour)
	assert.True(t, decimal.RequireFromString("1.5").Equal(FractionalDays(from, end)))
}

func TestSaleValue_UsesExactDays(t *testing.T) {
	price := decimal.NewFromInt(100)
	from := day(1)
	end := from.Add(36 * time.Hour)

	// 1.5 days * 100, not the rounded-up 2 * 100.
	assert.True(t, decimal.NewFromInt(150).Equal(SaleValue(price, from, end)))
	assert.True(t, decimal.NewFromInt(200).Equal(OrderTotal(price, from, end)))
}
