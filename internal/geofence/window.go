package geofence

// InWindow reports whether t falls inside w, both ends inclusive.
func InWindow(t TimeOfDay, w TimeWindowSpec) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
