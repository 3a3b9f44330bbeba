package attendance

import "time"

type ClockRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Note      string   `json:"note"`
}

type ClockResponse struct {
	Message      string `json:"message"`
	AttendanceID string `json:"attendance_id"`
	Time         string `json:"time"`
	Distance     int    `json:"distance"`
}

type HistoryFilter struct {
	Kind  string
	Month int
	Year  int
}

type ManualRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Type   string `json:"type" binding:"required,oneof=clock_in clock_out"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Time   string `json:"time" binding:"required"`
	Note   string `json:"note"`
	Status string `json:"status"`
}

type ApproveRequest struct {
	AttendanceID string `json:"attendance_id" binding:"required,uuid"`
	Approved     *bool  `json:"approved" binding:"required"`
}

type AttendanceResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	StudentName    string     `json:"student_name,omitempty"`
	Type           string     `json:"type"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	DistanceMeters int        `json:"distance"`
	Note           string     `json:"note"`
	Status         string     `json:"status"`
	Approved       *bool      `json:"approved"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
}
