package geofence

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	geofenceerrors "go-magang/internal/geofence/errors"
)

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// Validate checks the coordinate ranges. Out-of-range and NaN values are rejected, never clamped.
func (p GeoPoint) Validate() error {
	if !inRange(p.Latitude, -90, 90) {
		return geofenceerrors.ErrInvalidLatitude
	}
	if !inRange(p.Longitude, -180, 180) {
		return geofenceerrors.ErrInvalidLongitude
	}
	return nil
}

// OfficeConfig is the reference coordinate and radius in force at evaluation time.
type OfficeConfig struct {
	Location          GeoPoint  `json:"location"`
	MaxDistanceMeters float64   `json:"max_distance_meters"`
	Name              string    `json:"name,omitempty"`
	EffectiveFrom     time.Time `json:"effective_from"`
}

func (c OfficeConfig) Validate() error {
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if !(c.MaxDistanceMeters > 0) || math.IsInf(c.MaxDistanceMeters, 1) {
		return geofenceerrors.ErrInvalidMaxDistance
	}
	return nil
}

type EventKind string

const (
	ClockIn  EventKind = "clock_in"
	ClockOut EventKind = "clock_out"
)

func ParseEventKind(s string) (EventKind, error) {
	switch EventKind(strings.ToLower(strings.TrimSpace(s))) {
	case ClockIn:
		return ClockIn, nil
	case ClockOut:
		return ClockOut, nil
	}
	return "", geofenceerrors.ErrInvalidEventKind
}

func (k EventKind) Valid() bool {
	return k == ClockIn || k == ClockOut
}

// Label is the human form used in messages ("clock in" / "clock out").
func (k EventKind) Label() string {
	return strings.ReplaceAll(string(k), "_", " ")
}

// TimeOfDay is a wall-clock time without date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, geofenceerrors.ErrInvalidTimeOfDay
	}

	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return TimeOfDay{}, geofenceerrors.ErrInvalidTimeOfDay
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return TimeOfDay{}, geofenceerrors.ErrInvalidTimeOfDay
		}
		values[i] = n
	}

	return TimeOfDay{Hour: values[0], Minute: values[1], Second: values[2]}, nil
}

// MustParseTimeOfDay is for package-level defaults only.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(fmt.Sprintf("geofence: invalid time of day %q", s))
	}
	return t
}

// FromTime takes the wall clock of t in its own location, truncated to the minute.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.seconds() < o.seconds() }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.seconds() > o.seconds() }

// String renders HH:MM, which is how times are stored and shown.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

type TimeWindowSpec struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewWindow(start, end string) (TimeWindowSpec, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeWindowSpec{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeWindowSpec{}, err
	}
	w := TimeWindowSpec{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return TimeWindowSpec{}, err
	}
	return w, nil
}

func (w TimeWindowSpec) Validate() error {
	if !w.Start.Valid() || !w.End.Valid() {
		return geofenceerrors.ErrInvalidTimeOfDay
	}
	if w.Start.After(w.End) {
		return geofenceerrors.ErrInvalidWindow
	}
	return nil
}

func (w TimeWindowSpec) String() string {
	return w.Start.String() + " - " + w.End.String()
}

var (
	DefaultClockInWindow = TimeWindowSpec{
		Start: MustParseTimeOfDay("07:30"),
		End:   MustParseTimeOfDay("08:00"),
	}
	DefaultClockOutWindow = TimeWindowSpec{
		Start: MustParseTimeOfDay("17:00"),
		End:   MustParseTimeOfDay("17:30"),
	}
	DefaultLogbookWindow = TimeWindowSpec{
		Start: MustParseTimeOfDay("07:30"),
		End:   MustParseTimeOfDay("17:30"),
	}
)

// DefaultWindow returns the built-in window for an event kind.
func DefaultWindow(kind EventKind) TimeWindowSpec {
	if kind == ClockOut {
		return DefaultClockOutWindow
	}
	return DefaultClockInWindow
}

type ReasonCode string

const (
	ReasonNone                 ReasonCode = ""
	ReasonAlreadyRecordedToday ReasonCode = "ALREADY_RECORDED_TODAY"
	ReasonMissingClockIn       ReasonCode = "MISSING_CLOCK_IN"
	ReasonOutsideTimeWindow    ReasonCode = "OUTSIDE_TIME_WINDOW"
	ReasonTooFarFromOffice     ReasonCode = "TOO_FAR_FROM_OFFICE"
)

type Decision struct {
	Admissible     bool       `json:"admissible"`
	DistanceMeters int        `json:"distance_meters"`
	Reason         ReasonCode `json:"reason,omitempty"`
	EvaluatedAt    TimeOfDay  `json:"-"`
}
