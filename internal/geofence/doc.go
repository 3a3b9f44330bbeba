// Package geofence decides whether an attendance event may be recorded.
//
// It combines a great-circle distance check against the office coordinate, an
// inclusive wall-clock window and the presence of earlier events for the same
// day. Everything here is pure: callers supply the office configuration, the
// window and the prior-event flags, and persist the resulting Decision.
package geofence
