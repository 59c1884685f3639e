package dto

import (
	"time"

	"shiftwave/internal/pkg/request"
)

// 產生週排班
type GenerateScheduleDto struct {
	WeekStartDate string `json:"weekStartDate" binding:"required"` // 週起始日 YYYY-MM-DD
	Save          *bool  `json:"save,omitempty"`                   // false 時只計算不落地；預設 true
}

func (GenerateScheduleDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"WeekStartDate.required": "weekStartDate is required (YYYY-MM-DD)",
	}
}

// 產程結果
type ScheduleRunResponseDto struct {
	ScheduleID                string  `json:"scheduleId"`
	VenueID                   string  `json:"venueId"`
	WeekStartDate             string  `json:"weekStartDate"`
	WeekEndDate               string  `json:"weekEndDate"`
	ShiftCount                int     `json:"shiftCount"`
	TotalHours                float64 `json:"totalHours"`
	TotalCost                 float64 `json:"totalCost"`
	OverallCoversPerLaborHour float64 `json:"overallCoversPerLaborHour"`
	ProjectedRevenue          float64 `json:"projectedRevenue"`
	UnderstaffedSlots         int     `json:"understaffedSlots"`
	CalibrationMode           string  `json:"calibrationMode"`
	OpenDays                  int     `json:"openDays"`
	Saved                     bool    `json:"saved"`
}

// 單一班次
type ShiftDto struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	PositionID     string    `json:"positionId"`
	PositionName   string    `json:"positionName"`
	BusinessDate   string    `json:"businessDate"`
	ShiftType      string    `json:"shiftType"`
	WaveLabel      string    `json:"waveLabel"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
	ScheduledHours float64   `json:"scheduledHours"`
	HourlyRate     float64   `json:"hourlyRate"`
	ScheduledCost  float64   `json:"scheduledCost"`
	Status         string    `json:"status"`
}

// 讀回一週排班
type ScheduleResponseDto struct {
	ID                        string     `json:"id"`
	VenueID                   string     `json:"venueId"`
	WeekStartDate             string     `json:"weekStartDate"`
	WeekEndDate               string     `json:"weekEndDate"`
	Status                    string     `json:"status"`
	TotalLaborHours           float64    `json:"totalLaborHours"`
	TotalLaborCost            float64    `json:"totalLaborCost"`
	OverallCoversPerLaborHour float64    `json:"overallCoversPerLaborHour"`
	ProjectedRevenue          float64    `json:"projectedRevenue"`
	CalibrationMode           string     `json:"calibrationMode,omitempty"`
	UnderstaffedSlots         int        `json:"understaffedSlots"`
	AutoGenerated             bool       `json:"autoGenerated"`
	GeneratedAt               time.Time  `json:"generatedAt"`
	Shifts                    []ShiftDto `json:"shifts"`
}
