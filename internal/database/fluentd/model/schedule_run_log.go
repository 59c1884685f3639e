package model

// ScheduleRunLog 每次週排班產程結束後送往 Fluentd 的稽核紀錄
type ScheduleRunLog struct {
	RunID             string  `bson:"run_id" json:"run_id"`
	VenueID           string  `bson:"venue_id" json:"venue_id"`
	WeekStartDate     string  `bson:"week_start_date" json:"week_start_date"`
	Save              bool    `bson:"save" json:"save"`
	CalibrationMode   string  `bson:"calibration_mode" json:"calibration_mode"`
	OpenDays          int     `bson:"open_days" json:"open_days"`
	ShiftCount        int     `bson:"shift_count" json:"shift_count"`
	TotalLaborHours   float64 `bson:"total_labor_hours" json:"total_labor_hours"`
	TotalLaborCost    float64 `bson:"total_labor_cost" json:"total_labor_cost"`
	UnderstaffedSlots int     `bson:"understaffed_slots" json:"understaffed_slots"`
	DurationMS        int64   `bson:"duration_ms" json:"duration_ms"`
	Error             string  `bson:"error,omitempty" json:"error,omitempty"`
	Version           string  `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt          string  `bson:"logged_at" json:"logged_at"`
}
