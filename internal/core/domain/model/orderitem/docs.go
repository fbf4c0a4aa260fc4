// Package orderitem contains the OrderItem aggregate: one assignable,
// schedulable unit of work within a booking, its explicit status state machine
// with OTP and role preconditions, and its hold history.
package orderitem
