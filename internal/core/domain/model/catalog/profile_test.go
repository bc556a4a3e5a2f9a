package catalog_test

import (
	"testing"

	"driverroutes/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain digits", "3", 3},
		{"strips letters", "1a2b", 12},
		{"strips symbols", "-5", 5},
		{"strips whitespace", " 4 2 ", 42},
		{"caps at four digits", "123456", 1234},
		{"cap applies after stripping", "9x9x9x9x9", 9999},
		{"empty input", "", 0},
		{"no digits at all", "abc", 0},
		{"leading zeros", "0042", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.SanitizeQuantity(tt.raw))
		})
	}
}

func TestNewProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := catalog.NewProfile(7, "Tomatoes 5lb", "case", 2, 10.00, false)
		require.NoError(t, err)

		assert.Equal(t, int64(7), p.ID())
		assert.Equal(t, "Tomatoes 5lb", p.Description())
		assert.Equal(t, "case", p.UnitType())
		assert.Equal(t, 2.0, p.PackSize())
		assert.Equal(t, 10.00, p.Price())
		assert.False(t, p.IsPromotional())
		assert.Equal(t, 0, p.Quantity())
		assert.False(t, p.HasQuantity())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := catalog.NewProfile(0, "x", "case", 1, 1, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrProfileIDIsInvalid)
	})

	t.Run("missing pack size falls back to one", func(t *testing.T) {
		p, err := catalog.NewProfile(7, "x", "case", 0, 4.00, false)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.PackSize())
	})
}

func TestProfile_SetQuantity(t *testing.T) {
	p, err := catalog.NewProfile(7, "Tomatoes 5lb", "case", 2, 10.00, false)
	require.NoError(t, err)

	assert.Equal(t, 3, p.SetQuantity("3"))
	assert.True(t, p.HasQuantity())
	assert.Equal(t, 3, p.Quantity())

	// Empty input clears the line.
	assert.Equal(t, 0, p.SetQuantity(""))
	assert.False(t, p.HasQuantity())
}

func TestProfile_LineAmount(t *testing.T) {
	p, err := catalog.NewProfile(7, "Tomatoes 5lb", "case", 2, 10.00, false)
	require.NoError(t, err)

	p.SetQuantity("3")
	assert.Equal(t, 60.00, p.LineAmount())
}
