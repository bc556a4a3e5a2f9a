// Package order contains the order aggregate and its validation vocabulary.
//
// An Order is created at submission time from the composition session's
// non-zero-quantity lines and is immutable once built. Violation enumerates
// the business rules an order can break, in the exact sequence they are
// checked. ExistingOrder models orders already on file for a customer and
// delivery date, shown on the read-only order-exists surface.
package order
