package services_test

import (
	"testing"
	"time"

	"driverroutes/internal/core/domain/model/catalog"
	"driverroutes/internal/core/domain/model/customer"
	"driverroutes/internal/core/domain/model/kernel"
	"driverroutes/internal/core/domain/services"
	"driverroutes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("42", "Blue Plate Diner", "Pat Reyes", "555-0104", "orders@blueplate.test",
		[]customer.ShipTo{{ID: "10", Name: "Main Warehouse"}})
	require.NoError(t, err)
	return c
}

func mustProfile(t *testing.T, id int64, packSize, price float64, promotional bool) *catalog.Profile {
	t.Helper()
	p, err := catalog.NewProfile(id, "profile", "case", packSize, price, promotional)
	require.NoError(t, err)
	return p
}

func TestComposer_CatalogLoadsAreOrderIndependent(t *testing.T) {
	t.Run("standard first", func(t *testing.T) {
		c := services.NewComposer()

		c.ApplyCustomer(testCustomer(t), []*catalog.Profile{mustProfile(t, 7, 2, 10.00, false)})
		_, err := c.SetQuantity(7, false, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), c.Total().Cents())

		c.ApplySpecials([]*catalog.Profile{mustProfile(t, 9, 1, 2.25, true)})
		_, err = c.SetQuantity(9, true, "4")
		require.NoError(t, err)
		assert.Equal(t, int64(2900), c.Total().Cents())
	})

	t.Run("specials first", func(t *testing.T) {
		c := services.NewComposer()

		specials := []*catalog.Profile{mustProfile(t, 9, 1, 2.25, true)}
		specials[0].SetQuantity("4")
		c.ApplySpecials(specials)
		assert.Equal(t, int64(900), c.Total().Cents())

		standard := []*catalog.Profile{mustProfile(t, 7, 2, 10.00, false)}
		standard[0].SetQuantity("1")
		c.ApplyCustomer(testCustomer(t), standard)
		assert.Equal(t, int64(2900), c.Total().Cents())
	})
}

func TestComposer_SetQuantity(t *testing.T) {
	c := services.NewComposer()
	c.ApplyCustomer(testCustomer(t), []*catalog.Profile{mustProfile(t, 7, 2, 10.00, false)})

	t.Run("sanitizes raw input", func(t *testing.T) {
		qty, err := c.SetQuantity(7, false, " 3x ")
		require.NoError(t, err)
		assert.Equal(t, 3, qty)
		assert.Equal(t, int64(6000), c.Total().Cents())
		assert.True(t, c.HasAnyQuantity())
	})

	t.Run("empty input clears the line", func(t *testing.T) {
		qty, err := c.SetQuantity(7, false, "")
		require.NoError(t, err)
		assert.Equal(t, 0, qty)
		assert.True(t, c.Total().IsZero())
		assert.False(t, c.HasAnyQuantity())
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := c.SetQuantity(999, false, "1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("standard and promotional ids are disjoint collections", func(t *testing.T) {
		// Profile 7 exists only in the standard list.
		_, err := c.SetQuantity(7, true, "1")
		require.Error(t, err)
	})

	t.Run("same id in both collections addresses only the flagged one", func(t *testing.T) {
		c := services.NewComposer()
		c.ApplyCustomer(testCustomer(t), []*catalog.Profile{mustProfile(t, 7, 2, 10.00, false)})
		c.ApplySpecials([]*catalog.Profile{mustProfile(t, 7, 1, 2.25, true)})

		_, err := c.SetQuantity(7, true, "4")
		require.NoError(t, err)

		assert.Equal(t, 0, c.StandardProfiles()[0].Quantity())
		assert.Equal(t, 4, c.SpecialProfiles()[0].Quantity())
		assert.Equal(t, int64(900), c.Total().Cents())
	})
}

func TestComposer_ApplySpecialsFlagsProfilesPromotional(t *testing.T) {
	c := services.NewComposer()
	c.ApplyCustomer(testCustomer(t), nil)

	// The catalog payload may omit the flag; the batch decides.
	c.ApplySpecials([]*catalog.Profile{mustProfile(t, 9, 1, 2.25, false)})
	_, err := c.SetQuantity(9, true, "2")
	require.NoError(t, err)

	assert.True(t, c.SpecialProfiles()[0].IsPromotional())
	require.Len(t, c.Lines(), 1)
	assert.True(t, c.Lines()[0].Promotional)
}

func TestComposer_ObserversNotifiedSynchronously(t *testing.T) {
	c := services.NewComposer()
	c.ApplyCustomer(testCustomer(t), []*catalog.Profile{mustProfile(t, 7, 2, 10.00, false)})

	var seen []int64
	c.Subscribe(func(total kernel.Money) {
		seen = append(seen, total.Cents())
	})

	_, err := c.SetQuantity(7, false, "1")
	require.NoError(t, err)
	_, err = c.SetQuantity(7, false, "2")
	require.NoError(t, err)

	// Each keystroke's recompute completes before the next is processed.
	assert.Equal(t, []int64{2000, 4000}, seen)
}

func TestComposer_FormattedTotal(t *testing.T) {
	c := services.NewComposer()
	c.ApplyCustomer(testCustomer(t), []*catalog.Profile{mustProfile(t, 7, 1, 1234.56, false)})

	_, err := c.SetQuantity(7, false, "1")
	require.NoError(t, err)

	assert.Equal(t, "$1,234.56", c.FormattedTotal())
}

func TestComposer_SelectShipTo(t *testing.T) {
	c := services.NewComposer()
	c.ApplyCustomer(testCustomer(t), nil)

	assert.Equal(t, "10", c.ShipToID(), "default preselected")
	require.NoError(t, c.SelectShipTo("10"))
	require.Error(t, c.SelectShipTo("99"))
}

func TestComposer_BuildOrder(t *testing.T) {
	deliveryDate := kernel.DateOf(time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC))

	t.Run("builds from non-zero lines only", func(t *testing.T) {
		c := services.NewComposer()
		c.ApplyCustomer(testCustomer(t), []*catalog.Profile{
			mustProfile(t, 7, 2, 10.00, false),
			mustProfile(t, 8, 1, 99.00, false),
		})
		_, err := c.SetQuantity(7, false, "3")
		require.NoError(t, err)

		o, err := c.BuildOrder(deliveryDate)
		require.NoError(t, err)

		require.Len(t, o.Lines(), 1)
		assert.Equal(t, int64(7), o.Lines()[0].ProfileID)
		assert.Equal(t, "60.00", o.Total().Fixed2())
		require.NotNil(t, o.ShipToID())
		assert.Equal(t, "10", *o.ShipToID())
	})

	t.Run("customer not loaded", func(t *testing.T) {
		c := services.NewComposer()
		_, err := c.BuildOrder(deliveryDate)
		require.Error(t, err)
	})
}
