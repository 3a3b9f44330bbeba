package events

import "time"

const (
	AttendanceRecordedTopic     = "magang.attendance.recorded.v1"
	AttendanceRecordedEventType = "attendance_recorded"
)

// AttendanceRecordedEvent is emitted once per stored clock-in or clock-out.
type AttendanceRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	AttendanceID   string    `json:"attendance_id"`
	UserID         string    `json:"user_id"`
	Kind           string    `json:"kind"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	DistanceMeters int       `json:"distance_meters"`
	Manual         bool      `json:"manual"`
	OccurredAt     time.Time `json:"occurred_at"`
}
