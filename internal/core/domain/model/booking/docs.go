// Package booking contains the Booking aggregate, its derived aggregate
// status, the human-readable booking number and the append-only audit log.
package booking
