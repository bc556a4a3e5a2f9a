package services_test

import (
	"testing"
	"time"

	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/model/order"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// today is fixed to Friday 2026-09-11 for every validator test.
var today = time.Date(2026, 9, 11, 14, 30, 0, 0, time.UTC)

func validator() services.OrderValidator {
	return services.NewOrderValidator(clock.NewFixed(today))
}

func date(t *testing.T, s string) kernel.DeliveryDate {
	t.Helper()
	d, err := kernel.ParseDeliveryDate(s)
	require.NoError(t, err)
	return d
}

func linesWithQuantity(t *testing.T, qty string) []*catalog.Profile {
	t.Helper()
	p, err := catalog.NewProfile(7, "Tomatoes 5lb", "case", 2, 10.00, false)
	require.NoError(t, err)
	p.SetQuantity(qty)
	return []*catalog.Profile{p}
}

func TestOrderValidator_Rules(t *testing.T) {
	okTotal := kernel.NewMoneyFromDollars(60)

	tests := []struct {
		name     string
		date     kernel.DeliveryDate
		profiles []*catalog.Profile
		total    kernel.Money
		want     *order.Violation
	}{
		{
			name:     "valid order",
			date:     date(t, "2026-09-16"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     nil,
		},
		{
			name:     "missing date",
			date:     kernel.DeliveryDate{},
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     violationPtr(order.DeliveryDateMissing),
		},
		{
			name:     "date in the past",
			date:     date(t, "2026-09-10"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     violationPtr(order.DeliveryDateInPast),
		},
		{
			name:     "same-day order",
			date:     date(t, "2026-09-11"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     violationPtr(order.DeliveryDateIsToday),
		},
		{
			name:     "beyond three months",
			date:     date(t, "2026-12-12"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     violationPtr(order.DeliveryDateTooFar),
		},
		{
			name:     "exactly three months out is accepted",
			date:     date(t, "2026-12-11"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     nil,
		},
		{
			name:     "sunday delivery",
			date:     date(t, "2026-09-13"),
			profiles: linesWithQuantity(t, "3"),
			total:    okTotal,
			want:     violationPtr(order.ClosedOnSunday),
		},
		{
			name:     "no quantity selected",
			date:     date(t, "2026-09-16"),
			profiles: linesWithQuantity(t, "0"),
			total:    kernel.Money{},
			want:     violationPtr(order.NoQuantitySelected),
		},
		{
			name:     "total over ceiling",
			date:     date(t, "2026-09-16"),
			profiles: linesWithQuantity(t, "3"),
			total:    kernel.NewMoneyFromCents(1000001),
			want:     violationPtr(order.TotalOverCeiling),
		},
		{
			name:     "total exactly at ceiling is accepted",
			date:     date(t, "2026-09-16"),
			profiles: linesWithQuantity(t, "3"),
			total:    kernel.NewMoneyFromDollars(10000),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator().Validate(tt.date, tt.profiles, tt.total)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestOrderValidator_FirstMatchWins(t *testing.T) {
	// Same-day date AND zero quantity: the date rule is checked first,
	// so the advance-order message must be the one reported.
	got := validator().Validate(date(t, "2026-09-11"), linesWithQuantity(t, "0"), kernel.Money{})

	require.NotNil(t, got)
	assert.Equal(t, order.DeliveryDateIsToday, *got)
	assert.Equal(t, "Please order at least one day in advance.", got.Message())
}

func TestOrderValidator_EndToEndScenario(t *testing.T) {
	// Customer 42, delivery today+5 (a Wednesday), one line with quantity 3
	// at $10.00 unit price and pack size 2.
	deliveryDate := kernel.DateOf(today.AddDate(0, 0, 5))
	require.Equal(t, time.Wednesday, deliveryDate.Weekday())

	c := services.NewComposer()
	cust := testCustomer(t)
	profiles := linesWithQuantity(t, "0")
	c.ApplyCustomer(cust, profiles)

	_, err := c.SetQuantity(7, false, "3")
	require.NoError(t, err)
	assert.Equal(t, "60.00", c.Total().Fixed2())

	got := validator().Validate(deliveryDate, c.Profiles(), c.Total())
	assert.Nil(t, got)

	o, err := c.BuildOrder(deliveryDate)
	require.NoError(t, err)
	assert.Equal(t, "60.00", o.Payload().TotalPrice)
}

func violationPtr(v order.Violation) *order.Violation {
	return &v
}
