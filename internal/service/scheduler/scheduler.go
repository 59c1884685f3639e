package scheduler

import (
	"context"
	"errors"
	"time"

	"shiftwave/config"
	"shiftwave/internal/core"
	fluentdmodel "shiftwave/internal/database/fluentd/model"
	"shiftwave/internal/database/mongodb/model"
	redisrepo "shiftwave/internal/database/redis/repository"
	pkgErr "shiftwave/internal/pkg/error"
	"shiftwave/internal/telemetry"
	"shiftwave/utils/validate"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RunResult 一次產程的彙總結果；save=false 時 Saved 為 false 且不落地
type RunResult struct {
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

// Service 需求驅動的波次排班引擎
type Service struct {
	logger     *zap.Logger
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	policy     config.Scheduler
	venues     VenueSource
	positions  PositionSource
	employees  EmployeeSource
	forecasts  ForecastSource
	store      ScheduleStore
	locker     RunLocker
	auditor    RunAuditor
	calibrator *Calibrator
}

func NewService(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	venues VenueSource,
	positions PositionSource,
	employees EmployeeSource,
	forecasts ForecastSource,
	labor LaborHistorySource,
	sales SalesHistorySource,
	store ScheduleStore,
	locker RunLocker,
	auditor RunAuditor,
) *Service {
	policy := conf.Scheduler.Normalized()
	return &Service{
		logger:     logger,
		trace:      trace,
		metric:     metric,
		policy:     policy,
		venues:     venues,
		positions:  positions,
		employees:  employees,
		forecasts:  forecasts,
		store:      store,
		locker:     locker,
		auditor:    auditor,
		calibrator: NewCalibrator(logger, labor, sales, policy),
	}
}

// GenerateWeek 為 (venue, week) 產生一整週排班。
// 同一組合同時只允許一次產程；save=false 只計算不落地，仍取鎖避免與落地產程交錯。
func (service *Service) GenerateWeek(
	contextValue context.Context,
	venueIdentifier primitive.ObjectID,
	weekStartDate string,
	save bool,
	autoGenerated bool,
) (_ *RunResult, returnedError error) {

	startedAt := time.Now()
	runIdentifier := uuid.NewString()

	contextValue, span, endSpan := service.trace.WithSpan(contextValue, string(core.SpanScheduleRun))
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceScheduleRunMeta{
		RunID:     runIdentifier,
		VenueID:   venueIdentifier.Hex(),
		WeekStart: weekStartDate,
		Save:      save,
	}
	service.trace.ApplyTraceAttributes(span, traceMetadata)

	weekStart, parseError := time.Parse("2006-01-02", weekStartDate)
	if parseError != nil {
		returnedError = pkgErr.InvalidWeekStart("weekStartDate must be formatted as YYYY-MM-DD")
		return nil, returnedError
	}
	if weekStart.Weekday() != time.Monday {
		returnedError = pkgErr.InvalidWeekStart("weekStartDate must be a Monday")
		return nil, returnedError
	}

	venue, venueError := service.venues.GetByID(contextValue, venueIdentifier)
	if venueError != nil {
		if errors.Is(venueError, mongo.ErrNoDocuments) {
			returnedError = pkgErr.NotFound("venue not found")
		} else {
			returnedError = pkgErr.DatabaseError(venueError.Error())
		}
		return nil, returnedError
	}

	if lockError := service.locker.Acquire(contextValue, venueIdentifier.Hex(), weekStartDate, service.policy.RunLockTTLSeconds); lockError != nil {
		if errors.Is(lockError, redisrepo.ErrRunInProgress) {
			returnedError = pkgErr.ScheduleRunInProgress("a schedule run for this venue and week is already in progress")
		} else {
			returnedError = pkgErr.ServiceUnavailable(lockError.Error())
		}
		return nil, returnedError
	}
	defer func() {
		if releaseError := service.locker.Release(contextValue, venueIdentifier.Hex(), weekStartDate); releaseError != nil {
			service.logger.Warn("schedule run lock release failed", zap.Error(releaseError))
		}
	}()

	result, runError := service.run(contextValue, venue, weekStart, weekStartDate, save, autoGenerated)

	outcome := "success"
	if runError != nil {
		outcome = "error"
		returnedError = runError
	}
	if service.metric.ScheduleRunsTotal != nil {
		service.metric.ScheduleRunsTotal.WithLabelValues(venueIdentifier.Hex(), outcome).Inc()
	}
	if service.metric.ScheduleRunDuration != nil {
		service.metric.ScheduleRunDuration.WithLabelValues(venueIdentifier.Hex()).Observe(time.Since(startedAt).Seconds())
	}

	service.audit(contextValue, runIdentifier, venueIdentifier, weekStartDate, save, result, runError, time.Since(startedAt))

	if runError != nil {
		return nil, returnedError
	}

	traceMetadata.Mode = result.CalibrationMode
	traceMetadata.OpenDays = result.OpenDays
	traceMetadata.ShiftCount = result.ShiftCount
	traceMetadata.TotalHours = result.TotalHours
	traceMetadata.TotalCost = result.TotalCost
	traceMetadata.Understaffed = result.UnderstaffedSlots
	service.trace.ApplyTraceAttributes(span, traceMetadata)

	service.logger.Info("weekly schedule generated",
		zap.String("runId", runIdentifier),
		zap.String("venueId", venueIdentifier.Hex()),
		zap.String("weekStart", weekStartDate),
		zap.Bool("saved", result.Saved),
		zap.Int("shiftCount", result.ShiftCount),
		zap.Float64("totalHours", result.TotalHours),
		zap.Float64("totalCost", result.TotalCost),
		zap.Int("understaffedSlots", result.UnderstaffedSlots),
		zap.String("calibrationMode", result.CalibrationMode),
	)
	return result, nil
}

// run 實際產程：校准 → 需求 → 尖峰人力 → 波次分配 → 貪婪指派 → 落地
func (service *Service) run(
	contextValue context.Context,
	venue *model.Venue,
	weekStart time.Time,
	weekStartDate string,
	save bool,
	autoGenerated bool,
) (*RunResult, error) {

	// 自動產程不得覆蓋主管已發布的排班
	if save && autoGenerated {
		if existing, existingError := service.store.GetWeek(contextValue, venue.ID, weekStartDate); existingError == nil &&
			existing.Status == string(core.ScheduleStatusPublished) {
			return nil, pkgErr.ScheduleAlreadyPublished("a published schedule already exists for this week")
		}
	}

	positions, positionsError := service.positions.ListActive(contextValue, venue.ID)
	if positionsError != nil {
		return nil, pkgErr.DatabaseError(positionsError.Error())
	}
	if len(positions) == 0 {
		return nil, pkgErr.NoActivePositions("venue has no active positions configured")
	}

	employees, employeesError := service.employees.ListActive(contextValue, venue.ID)
	if employeesError != nil {
		return nil, pkgErr.DatabaseError(employeesError.Error())
	}
	if len(employees) == 0 {
		return nil, pkgErr.NoActiveEmployees("venue has no active employees")
	}

	calibration := service.calibrator.Calibrate(contextValue, venue.ID, positions, employees)

	dates := weekDates(weekStart)
	demand, demandError := fetchDemand(contextValue, service.forecasts, venue.ID, dates)
	if demandError != nil {
		return nil, pkgErr.DatabaseError(demandError.Error())
	}

	poolByPosition := make(map[primitive.ObjectID][]*model.Employee)
	for _, employee := range employees {
		poolByPosition[employee.PrimaryPositionID] = append(poolByPosition[employee.PrimaryPositionID], employee)
	}

	venueClass := core.VenueClass(venue.Class)
	if venue.Class != "" && !validate.IsValidVenueClass(venue.Class) {
		// 未知場館分類退回預設 DPLH 與酒水占比，不中斷產程
		service.logger.Warn("unknown venue class, using default staffing tables",
			zap.String("venueId", venue.ID.Hex()),
			zap.String("venueClass", venue.Class),
		)
	}
	state := newRunState()

	var shifts []*model.ShiftAssignment
	understaffedSlots := 0
	totalCovers := 0.0
	projectedRevenue := 0.0
	openDays := 0

	for _, businessDate := range dates {
		dayDemand, open := demand[businessDate]
		if !open || dayDemand.Covers <= 0 {
			continue
		}
		openDays++
		totalCovers += dayDemand.Covers
		projectedRevenue += dayDemand.Revenue

		weekday, _ := time.Parse("2006-01-02", businessDate)

		for _, position := range positions {
			spec := SpecFor(position.Name)
			_, isFixed := spec.Model.(FixedModel)

			day := staffingDay{
				covers:        dayDemand.Covers,
				cplhOverride:  calibration.PeakCPLH[position.Name],
				beverageShare: calibration.BevShareByDOW[weekday.Weekday()],
				venueClass:    venueClass,
			}

			headcount := peakHeadcount(spec, day, service.policy)
			for _, allocation := range distributeWaves(spec, headcount, service.policy) {
				waveShifts, shortfall := assignWave(
					state,
					poolByPosition[position.ID],
					position,
					businessDate,
					allocation.Template,
					allocation.Count,
					isFixed,
					service.policy.DefaultMaxHoursPerWeek,
				)
				shifts = append(shifts, waveShifts...)
				understaffedSlots += shortfall
				if shortfall > 0 && service.metric.UnderstaffedWavesTotal != nil {
					service.metric.UnderstaffedWavesTotal.WithLabelValues(venue.ID.Hex(), position.Name).Inc()
				}
			}
		}
	}

	totalHours := 0.0
	totalCost := 0.0
	shiftsPerPosition := make(map[string]int)
	for _, shift := range shifts {
		totalHours += shift.ScheduledHours
		totalCost += shift.ScheduledCost
		shiftsPerPosition[shift.PositionName]++
	}
	overallCPLH := 0.0
	if totalHours > 0 {
		overallCPLH = totalCovers / totalHours
	}

	now := time.Now().UTC()
	schedule := &model.WeeklySchedule{
		ID:                        primitive.NewObjectID(),
		VenueID:                   venue.ID,
		WeekStartDate:             weekStartDate,
		WeekEndDate:               dates[len(dates)-1],
		Status:                    string(core.ScheduleStatusDraft),
		TotalLaborHours:           totalHours,
		TotalLaborCost:            totalCost,
		OverallCoversPerLaborHour: overallCPLH,
		ProjectedRevenue:          projectedRevenue,
		CalibrationMode:           calibration.Mode,
		UnderstaffedSlots:         understaffedSlots,
		AutoGenerated:             autoGenerated,
		GeneratedAt:               now,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	for _, shift := range shifts {
		shift.ScheduleID = schedule.ID
		shift.CreatedAt = now
	}

	if save {
		if writeError := service.store.ReplaceWeek(contextValue, schedule, shifts); writeError != nil {
			return nil, pkgErr.DatabaseError(writeError.Error())
		}
		if service.metric.ShiftsWrittenTotal != nil {
			for positionName, count := range shiftsPerPosition {
				service.metric.ShiftsWrittenTotal.WithLabelValues(venue.ID.Hex(), positionName).Add(float64(count))
			}
		}
	}

	return &RunResult{
		ScheduleID:                schedule.ID.Hex(),
		VenueID:                   venue.ID.Hex(),
		WeekStartDate:             weekStartDate,
		WeekEndDate:               schedule.WeekEndDate,
		ShiftCount:                len(shifts),
		TotalHours:                totalHours,
		TotalCost:                 totalCost,
		OverallCoversPerLaborHour: overallCPLH,
		ProjectedRevenue:          projectedRevenue,
		UnderstaffedSlots:         understaffedSlots,
		CalibrationMode:           calibration.Mode,
		OpenDays:                  openDays,
		Saved:                     save,
	}, nil
}

// GetWeek 讀回一週排班表頭與全部班次
func (service *Service) GetWeek(
	contextValue context.Context,
	venueIdentifier primitive.ObjectID,
	weekStartDate string,
) (_ *model.WeeklySchedule, _ []*model.ShiftAssignment, returnedError error) {

	contextValue, _, endSpan := service.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	if _, parseError := time.Parse("2006-01-02", weekStartDate); parseError != nil {
		returnedError = pkgErr.InvalidWeekStart("weekStartDate must be formatted as YYYY-MM-DD")
		return nil, nil, returnedError
	}

	schedule, scheduleError := service.store.GetWeek(contextValue, venueIdentifier, weekStartDate)
	if scheduleError != nil {
		if errors.Is(scheduleError, mongo.ErrNoDocuments) {
			returnedError = pkgErr.NotFound("no schedule for this venue and week")
		} else {
			returnedError = pkgErr.DatabaseError(scheduleError.Error())
		}
		return nil, nil, returnedError
	}

	shifts, shiftsError := service.store.ListShifts(contextValue, schedule.ID)
	if shiftsError != nil {
		returnedError = pkgErr.DatabaseError(shiftsError.Error())
		return nil, nil, returnedError
	}
	return schedule, shifts, nil
}

// audit 送出產程稽核紀錄；稽核失敗只記 warning，不影響產程結果
func (service *Service) audit(
	contextValue context.Context,
	runIdentifier string,
	venueIdentifier primitive.ObjectID,
	weekStartDate string,
	save bool,
	result *RunResult,
	runError error,
	elapsed time.Duration,
) {
	if service.auditor == nil {
		return
	}
	entry := fluentdmodel.ScheduleRunLog{
		RunID:         runIdentifier,
		VenueID:       venueIdentifier.Hex(),
		WeekStartDate: weekStartDate,
		Save:          save,
		DurationMS:    elapsed.Milliseconds(),
	}
	if result != nil {
		entry.CalibrationMode = result.CalibrationMode
		entry.OpenDays = result.OpenDays
		entry.ShiftCount = result.ShiftCount
		entry.TotalLaborHours = result.TotalHours
		entry.TotalLaborCost = result.TotalCost
		entry.UnderstaffedSlots = result.UnderstaffedSlots
	}
	if runError != nil {
		entry.Error = runError.Error()
	}
	if auditError := service.auditor.LogScheduleRun(contextValue, entry); auditError != nil {
		service.logger.Warn("schedule run audit log failed", zap.Error(auditError))
	}
}
