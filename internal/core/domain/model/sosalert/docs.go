// Package sosalert contains the SOSAlert aggregate: the emergency-alert
// mirror of an SOS booking with its own status vocabulary and a dedup-guarded
// activity log.
package sosalert
