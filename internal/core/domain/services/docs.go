// Package services contains the domain services of the ordering core.
//
// Composer holds the working state of one order composition session: the
// customer, the standard and promotional catalog profiles, their quantities,
// and the running total. OrderValidator applies the submission business rules
// to a composed session in a fixed, short-circuiting order.
package services
