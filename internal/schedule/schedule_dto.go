package schedule

type Filter struct {
	Month int
	Year  int
}

type CreateScheduleRequest struct {
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	ClockInStart  string `json:"clock_in_start" binding:"required"`
	ClockInEnd    string `json:"clock_in_end" binding:"required"`
	ClockOutStart string `json:"clock_out_start" binding:"required"`
	ClockOutEnd   string `json:"clock_out_end" binding:"required"`
	Note          string `json:"note"`
}

type UpdateScheduleRequest struct {
	Date          *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ClockInStart  *string `json:"clock_in_start"`
	ClockInEnd    *string `json:"clock_in_end"`
	ClockOutStart *string `json:"clock_out_start"`
	ClockOutEnd   *string `json:"clock_out_end"`
	Note          *string `json:"note"`
	IsActive      *bool   `json:"is_active"`
}

type ScheduleResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	ClockInStart  string `json:"clock_in_start"`
	ClockInEnd    string `json:"clock_in_end"`
	ClockOutStart string `json:"clock_out_start"`
	ClockOutEnd   string `json:"clock_out_end"`
	Note          string `json:"note"`
	IsActive      bool   `json:"is_active"`
	CreatedBy     string `json:"created_by"`
}
