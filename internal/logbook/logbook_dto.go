package logbook

import "time"

type Filter struct {
	Month int
	Year  int
}

type CreateLogbookRequest struct {
	Activity string `json:"activity" binding:"required"`
	Duration string `json:"duration" binding:"required,max=50"`
	// Date defaults to today.
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateLogbookRequest struct {
	Activity string `json:"activity" binding:"required"`
	Duration string `json:"duration" binding:"required,max=50"`
}

type LogbookResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Activity  string    `json:"activity"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
