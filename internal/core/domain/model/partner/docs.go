// Package partner contains the ServicePartner aggregate: a field worker with
// service capabilities, servable regions, a weekly availability schedule and
// the round-robin bookkeeping used by assignment.
package partner
