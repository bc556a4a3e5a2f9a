package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a value object representing a US dollar amount with cent precision.
// Amounts are stored as an integer number of cents so that comparisons and
// additions are exact. The zero value is a valid $0.00 amount.
//
// Example usage:
//
//	lineTotal := kernel.NewMoneyFromDollars(3 * 10.00 * 2) // $60.00
//	fmt.Println(lineTotal.Fixed2())    // "60.00"
//	fmt.Println(lineTotal.Formatted()) // "$60.00"
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money amount from an exact number of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromDollars creates a Money amount from a fractional dollar value,
// rounding to the nearest cent (half away from zero).
func NewMoneyFromDollars(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

// Cents returns the amount as an exact number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Dollars returns the amount as a fractional dollar value.
func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsZero reports whether the amount is exactly $0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Fixed2 returns the plain two-fraction-digit representation used on the order
// wire payload, e.g. "60.00" or "-3.50". No currency symbol, no grouping.
func (m Money) Fixed2() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Formatted returns the en-US locale currency representation with thousands
// grouping, e.g. "$1,234.56".
func (m Money) Formatted() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		grouped.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(whole[i : i+3])
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents%100)
}

// String returns the formatted currency representation.
func (m Money) String() string {
	return m.Formatted()
}
