package handler

import (
	"shiftwave/internal/dto"
	"shiftwave/internal/pkg/response"
	"shiftwave/internal/service/scheduler"
	"shiftwave/internal/telemetry"
	"shiftwave/utils/validate"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	trace           *telemetry.Trace
	scheduleService *scheduler.Service
}

func NewScheduleHandler(trace *telemetry.Trace, scheduleService *scheduler.Service) *ScheduleHandler {
	return &ScheduleHandler{trace: trace, scheduleService: scheduleService}
}

// Generate 產生週排班
// @Summary 依需求預測產生一週波次排班
// @Tags Admin-Schedule
// @Accept json
// @Produce json
// @Param venueID path string true "Venue ID"
// @Param body body dto.GenerateScheduleDto true "排班參數"
// @Success 201 {object} dto.ScheduleRunResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/venues/{venueID}/schedules [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	venueID, cause, err := validate.ParseObjectID(c, "venueID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	var req dto.GenerateScheduleDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	save := true
	if req.Save != nil {
		save = *req.Save
	}

	result, err := h.scheduleService.GenerateWeek(ctx, venueID, req.WeekStartDate, save, false)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, toRunResponse(result))
}

// Get 讀回週排班
// @Summary 取得一週排班與全部班次
// @Tags Admin-Schedule
// @Produce json
// @Param venueID path string true "Venue ID"
// @Param weekStartDate path string true "週起始日 YYYY-MM-DD"
// @Success 200 {object} dto.ScheduleResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/venues/{venueID}/schedules/{weekStartDate} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	venueID, cause, err := validate.ParseObjectID(c, "venueID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	weekStartDate, cause, err := validate.ParseBusinessDate(c, "weekStartDate")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	schedule, shifts, err := h.scheduleService.GetWeek(ctx, venueID, weekStartDate)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	resp := dto.ScheduleResponseDto{
		ID:                        schedule.ID.Hex(),
		VenueID:                   schedule.VenueID.Hex(),
		WeekStartDate:             schedule.WeekStartDate,
		WeekEndDate:               schedule.WeekEndDate,
		Status:                    schedule.Status,
		TotalLaborHours:           schedule.TotalLaborHours,
		TotalLaborCost:            schedule.TotalLaborCost,
		OverallCoversPerLaborHour: schedule.OverallCoversPerLaborHour,
		ProjectedRevenue:          schedule.ProjectedRevenue,
		CalibrationMode:           schedule.CalibrationMode,
		UnderstaffedSlots:         schedule.UnderstaffedSlots,
		AutoGenerated:             schedule.AutoGenerated,
		GeneratedAt:               schedule.GeneratedAt,
		Shifts:                    make([]dto.ShiftDto, 0, len(shifts)),
	}
	for _, shift := range shifts {
		resp.Shifts = append(resp.Shifts, dto.ShiftDto{
			ID:             shift.ID.Hex(),
			EmployeeID:     shift.EmployeeID.Hex(),
			PositionID:     shift.PositionID.Hex(),
			PositionName:   shift.PositionName,
			BusinessDate:   shift.BusinessDate,
			ShiftType:      shift.ShiftType,
			WaveLabel:      shift.WaveLabel,
			ScheduledStart: shift.ScheduledStart,
			ScheduledEnd:   shift.ScheduledEnd,
			ScheduledHours: shift.ScheduledHours,
			HourlyRate:     shift.HourlyRate,
			ScheduledCost:  shift.ScheduledCost,
			Status:         shift.Status,
		})
	}
	response.Success(c, resp)
}

func toRunResponse(result *scheduler.RunResult) dto.ScheduleRunResponseDto {
	return dto.ScheduleRunResponseDto{
		ScheduleID:                result.ScheduleID,
		VenueID:                   result.VenueID,
		WeekStartDate:             result.WeekStartDate,
		WeekEndDate:               result.WeekEndDate,
		ShiftCount:                result.ShiftCount,
		TotalHours:                result.TotalHours,
		TotalCost:                 result.TotalCost,
		OverallCoversPerLaborHour: result.OverallCoversPerLaborHour,
		ProjectedRevenue:          result.ProjectedRevenue,
		UnderstaffedSlots:         result.UnderstaffedSlots,
		CalibrationMode:           result.CalibrationMode,
		OpenDays:                  result.OpenDays,
		Saved:                     result.Saved,
	}
}
