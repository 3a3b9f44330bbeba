package geofence

import geofenceerrors "go-magang/internal/geofence/errors"

type Request struct {
	Event      EventKind
	ObservedAt TimeOfDay
	Position   GeoPoint
	Office     OfficeConfig
	Window     TimeWindowSpec

	// Precomputed by the caller from the attendance store.
	PriorEventExists bool
	HasPriorClockIn  bool
}

func (r Request) validate() error {
	if _, err := ParseEventKind(string(r.Event)); err != nil {
		return err
	}
	if !r.ObservedAt.Valid() {
		return geofenceerrors.ErrInvalidTimeOfDay
	}
	if err := r.Position.Validate(); err != nil {
		return err
	}
	if err := r.Office.Validate(); err != nil {
		return err
	}
	return r.Window.Validate()
}

// Evaluate runs the admission checks in order; the first failing check decides.
//
//  1. an event of this kind already exists today
//  2. clock out without a clock in
//  3. observed time outside the window
//  4. position farther than the office radius
//
// The radius comparison uses the unrounded distance; the reported distance is rounded.
// Invalid input returns an error instead of a Decision.
func Evaluate(req Request) (Decision, error) {
	if err := req.validate(); err != nil {
		return Decision{}, err
	}

	d := Decision{EvaluatedAt: req.ObservedAt}

	if req.PriorEventExists {
		d.Reason = ReasonAlreadyRecordedToday
		return d, nil
	}

	if req.Event == ClockOut && !req.HasPriorClockIn {
		d.Reason = ReasonMissingClockIn
		return d, nil
	}

	if !InWindow(req.ObservedAt, req.Window) {
		d.Reason = ReasonOutsideTimeWindow
		return d, nil
	}

	dist := DistanceMeters(req.Position, req.Office.Location)
	d.DistanceMeters = RoundMeters(dist)
	if dist > req.Office.MaxDistanceMeters {
		d.Reason = ReasonTooFarFromOffice
		return d, nil
	}

	d.Admissible = true
	d.Reason = ReasonNone
	return d, nil
}

// EvaluateManual is the administrator path: no time or distance checks, only the
// one-per-day rule.
func EvaluateManual(event EventKind, priorEventExists bool) Decision {
	if priorEventExists {
		return Decision{Reason: ReasonAlreadyRecordedToday}
	}
	return Decision{Admissible: true, Reason: ReasonNone}
}
