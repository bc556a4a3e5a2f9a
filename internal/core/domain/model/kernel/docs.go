// Package kernel contains the shared value objects of the domain model:
// identifiers, money amounts, and calendar delivery dates.
//
// All types in this package are immutable value objects. They are created
// through constructor functions that enforce their invariants, compared by
// value, and safe to copy and share between goroutines.
package kernel
