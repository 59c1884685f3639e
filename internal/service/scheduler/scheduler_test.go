package scheduler

import (
	"context"
	"testing"
	"time"

	"shiftwave/config"
	"shiftwave/internal/core"
	fluentdmodel "shiftwave/internal/database/fluentd/model"
	"shiftwave/internal/database/mongodb/model"
	redisrepo "shiftwave/internal/database/redis/repository"
	pkgErr "shiftwave/internal/pkg/error"
	"shiftwave/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ---- 記憶體替身 ----

type stubVenues struct{ venue *model.Venue }

func (s *stubVenues) GetByID(_ context.Context, venueIdentifier primitive.ObjectID) (*model.Venue, error) {
	if s.venue != nil && s.venue.ID == venueIdentifier {
		return s.venue, nil
	}
	return nil, mongo.ErrNoDocuments
}

type stubPositions struct{ positions []*model.Position }

func (s *stubPositions) ListActive(_ context.Context, _ primitive.ObjectID) ([]*model.Position, error) {
	return s.positions, nil
}

type stubEmployees struct{ employees []*model.Employee }

func (s *stubEmployees) ListActive(_ context.Context, _ primitive.ObjectID) ([]*model.Employee, error) {
	return s.employees, nil
}

type stubForecasts struct{ forecasts []*model.DemandForecast }

func (s *stubForecasts) ListLatestInRange(_ context.Context, _ primitive.ObjectID, startDate string, endDate string) ([]*model.DemandForecast, error) {
	var matched []*model.DemandForecast
	for _, forecast := range s.forecasts {
		if forecast.BusinessDate >= startDate && forecast.BusinessDate <= endDate && forecast.CoversPredicted > 0 {
			matched = append(matched, forecast)
		}
	}
	return matched, nil
}

type stubLabor struct {
	facts []*model.LaborDayFact
	err   error
}

func (s *stubLabor) ListSince(_ context.Context, _ primitive.ObjectID, _ string, _ int64) ([]*model.LaborDayFact, error) {
	return s.facts, s.err
}

type stubSales struct {
	facts []*model.SalesDayFact
	err   error
}

func (s *stubSales) ListSince(_ context.Context, _ primitive.ObjectID, _ string) ([]*model.SalesDayFact, error) {
	return s.facts, s.err
}

type memoryStore struct {
	schedules    map[string]*model.WeeklySchedule
	shifts       map[primitive.ObjectID][]*model.ShiftAssignment
	replaceCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		schedules: make(map[string]*model.WeeklySchedule),
		shifts:    make(map[primitive.ObjectID][]*model.ShiftAssignment),
	}
}

func storeKey(venueIdentifier primitive.ObjectID, weekStartDate string) string {
	return venueIdentifier.Hex() + "|" + weekStartDate
}

func (s *memoryStore) ReplaceWeek(_ context.Context, schedule *model.WeeklySchedule, shifts []*model.ShiftAssignment) error {
	s.replaceCalls++
	key := storeKey(schedule.VenueID, schedule.WeekStartDate)
	if previous, ok := s.schedules[key]; ok {
		delete(s.shifts, previous.ID)
	}
	s.schedules[key] = schedule
	s.shifts[schedule.ID] = shifts
	return nil
}

func (s *memoryStore) GetWeek(_ context.Context, venueIdentifier primitive.ObjectID, weekStartDate string) (*model.WeeklySchedule, error) {
	if schedule, ok := s.schedules[storeKey(venueIdentifier, weekStartDate)]; ok {
		return schedule, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *memoryStore) ListShifts(_ context.Context, scheduleIdentifier primitive.ObjectID) ([]*model.ShiftAssignment, error) {
	return s.shifts[scheduleIdentifier], nil
}

type stubLocker struct {
	held     map[string]bool
	acquired int
	released int
}

func newStubLocker() *stubLocker {
	return &stubLocker{held: make(map[string]bool)}
}

func (s *stubLocker) Acquire(_ context.Context, venueIdentifier string, weekStartDate string, _ int64) error {
	key := venueIdentifier + "|" + weekStartDate
	if s.held[key] {
		return redisrepo.ErrRunInProgress
	}
	s.held[key] = true
	s.acquired++
	return nil
}

func (s *stubLocker) Release(_ context.Context, venueIdentifier string, weekStartDate string) error {
	delete(s.held, venueIdentifier+"|"+weekStartDate)
	s.released++
	return nil
}

type stubAuditor struct{ entries []fluentdmodel.ScheduleRunLog }

func (s *stubAuditor) LogScheduleRun(_ context.Context, run fluentdmodel.ScheduleRunLog) error {
	s.entries = append(s.entries, run)
	return nil
}

// ---- 建測試引擎 ----

type testDeps struct {
	venues    *stubVenues
	positions *stubPositions
	employees *stubEmployees
	forecasts *stubForecasts
	labor     *stubLabor
	sales     *stubSales
	store     *memoryStore
	locker    *stubLocker
	auditor   *stubAuditor
}

func newTestService(t *testing.T, deps *testDeps) *Service {
	t.Helper()
	conf := &config.Configuration{}
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	return NewService(
		conf,
		zap.NewNop(),
		trace,
		telemetry.NewMetric(conf),
		deps.venues,
		deps.positions,
		deps.employees,
		deps.forecasts,
		deps.labor,
		deps.sales,
		deps.store,
		deps.locker,
		deps.auditor,
	)
}

func supperClubDeps() (*testDeps, *model.Venue) {
	venue := &model.Venue{
		ID:     primitive.NewObjectID(),
		Name:   "Test Supper Club",
		Class:  string(core.VenueClassSupperClub),
		Status: core.VenueStatusActive,
	}

	serverPosition := &model.Position{ID: primitive.NewObjectID(), VenueID: venue.ID, Name: "Server", Category: string(core.CategoryFrontOfHouse), HourlyRate: 18}
	hostPosition := &model.Position{ID: primitive.NewObjectID(), VenueID: venue.ID, Name: "Host", Category: string(core.CategoryFrontOfHouse), HourlyRate: 16}
	expeditorPosition := &model.Position{ID: primitive.NewObjectID(), VenueID: venue.ID, Name: "Expeditor", Category: string(core.CategoryBackOfHouse), HourlyRate: 17}

	var employees []*model.Employee
	addPool := func(position *model.Position, size int) {
		for index := 0; index < size; index++ {
			employees = append(employees, &model.Employee{
				ID:                primitive.NewObjectID(),
				VenueID:           venue.ID,
				PrimaryPositionID: position.ID,
				EmploymentStatus:  core.EmploymentStatusActive,
			})
		}
	}
	addPool(serverPosition, 12)
	addPool(hostPosition, 10)
	addPool(expeditorPosition, 1)

	// 週一 2026-01-05 休市，週二至週日營業
	coversByDate := map[string]float64{
		"2026-01-06": 120,
		"2026-01-07": 196,
		"2026-01-08": 223,
		"2026-01-09": 541,
		"2026-01-10": 675,
		"2026-01-11": 627,
	}
	var forecasts []*model.DemandForecast
	for businessDate, covers := range coversByDate {
		forecasts = append(forecasts, &model.DemandForecast{
			ID:               primitive.NewObjectID(),
			VenueID:          venue.ID,
			BusinessDate:     businessDate,
			CoversPredicted:  covers,
			RevenuePredicted: covers * 50,
			GeneratedAt:      time.Now().UTC(),
		})
	}

	return &testDeps{
		venues:    &stubVenues{venue: venue},
		positions: &stubPositions{positions: []*model.Position{serverPosition, hostPosition, expeditorPosition}},
		employees: &stubEmployees{employees: employees},
		forecasts: &stubForecasts{forecasts: forecasts},
		labor:     &stubLabor{},
		sales:     &stubSales{},
		store:     newMemoryStore(),
		locker:    newStubLocker(),
		auditor:   &stubAuditor{},
	}, venue
}

// ---- 產程測試 ----

func TestGenerateWeekFullScenario(t *testing.T) {
	deps, venue := supperClubDeps()
	service := newTestService(t, deps)

	result, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.NoError(t, err)

	assert.Equal(t, 6, result.OpenDays)
	assert.Equal(t, "2026-01-11", result.WeekEndDate)
	assert.Equal(t, CalibrationModeDefault, result.CalibrationMode)
	assert.Equal(t, 0, result.UnderstaffedSlots)
	assert.True(t, result.Saved)

	// Server 尖峰人數：ceil(covers*0.22/18) = 2,3,3,7,9,8；Host：ceil(covers/80) = 2,3,3,7,9,8；Expeditor 固定單波 6 天
	assert.Equal(t, 32+32+6, result.ShiftCount)
	assert.InDelta(t, 168.0+160.0+36.0, result.TotalHours, 1e-9)
	assert.InDelta(t, 168*18.0+160*16.0+36*17.0, result.TotalCost, 1e-9)
	assert.InDelta(t, 2382*50.0, result.ProjectedRevenue, 1e-9)
	assert.InDelta(t, 2382.0/364.0, result.OverallCoversPerLaborHour, 1e-9)

	schedule, shifts, err := service.GetWeek(context.Background(), venue.ID, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, string(core.ScheduleStatusDraft), schedule.Status)
	require.Len(t, shifts, result.ShiftCount)

	// 休市日不得有任何班次；每人每日至多一班
	seen := make(map[string]bool)
	for _, shift := range shifts {
		assert.NotEqual(t, "2026-01-05", shift.BusinessDate)
		key := shift.EmployeeID.Hex() + "|" + shift.BusinessDate
		assert.False(t, seen[key], "employee double booked on %s", shift.BusinessDate)
		seen[key] = true
	}

	// 波次人數總和等於該日尖峰人數（Server 為例）
	serverPerDay := make(map[string]int)
	for _, shift := range shifts {
		if shift.PositionName == "Server" {
			serverPerDay[shift.BusinessDate]++
		}
	}
	assert.Equal(t, map[string]int{
		"2026-01-06": 2,
		"2026-01-07": 3,
		"2026-01-08": 3,
		"2026-01-09": 7,
		"2026-01-10": 9,
		"2026-01-11": 8,
	}, serverPerDay)

	// 鎖在產程結束後釋放；稽核紀錄送出一筆
	assert.Equal(t, 1, deps.locker.acquired)
	assert.Equal(t, 1, deps.locker.released)
	require.Len(t, deps.auditor.entries, 1)
	assert.Empty(t, deps.auditor.entries[0].Error)
	assert.Equal(t, result.ShiftCount, deps.auditor.entries[0].ShiftCount)
}

func TestGenerateWeekIdempotentReplace(t *testing.T) {
	deps, venue := supperClubDeps()
	service := newTestService(t, deps)

	first, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.NoError(t, err)
	second, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.NoError(t, err)

	assert.Equal(t, first.ShiftCount, second.ShiftCount)
	assert.Equal(t, 2, deps.store.replaceCalls)

	// 重跑後只剩最新一份班表，沒有殘留舊班次
	require.Len(t, deps.store.schedules, 1)
	require.Len(t, deps.store.shifts, 1)
	_, shifts, err := service.GetWeek(context.Background(), venue.ID, "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, shifts, second.ShiftCount)
}

func TestGenerateWeekDryRunDoesNotPersist(t *testing.T) {
	deps, venue := supperClubDeps()
	service := newTestService(t, deps)

	result, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", false, false)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Equal(t, 70, result.ShiftCount)
	assert.Equal(t, 0, deps.store.replaceCalls)
	assert.Equal(t, 1, deps.locker.acquired)
	assert.Equal(t, 1, deps.locker.released)

	_, _, err = service.GetWeek(context.Background(), venue.ID, "2026-01-05")
	require.Error(t, err)
	assert.Equal(t, 404, pkgErr.From(err).HttpCode())
}

func TestGenerateWeekFixedUnderstaffedSecondWave(t *testing.T) {
	deps, venue := supperClubDeps()

	// 兩個固定波次但只有一位經理，同一天只能排一班，第二波缺編
	managerPosition := &model.Position{ID: primitive.NewObjectID(), VenueID: venue.ID, Name: "General Manager", Category: string(core.CategoryManagement), HourlyRate: 0}
	manager := &model.Employee{ID: primitive.NewObjectID(), VenueID: venue.ID, PrimaryPositionID: managerPosition.ID, EmploymentStatus: core.EmploymentStatusActive}
	deps.positions = &stubPositions{positions: []*model.Position{managerPosition}}
	deps.employees = &stubEmployees{employees: []*model.Employee{manager}}
	deps.forecasts = &stubForecasts{forecasts: []*model.DemandForecast{{
		ID:              primitive.NewObjectID(),
		VenueID:         venue.ID,
		BusinessDate:    "2026-01-06",
		CoversPredicted: 100,
	}}}
	service := newTestService(t, deps)

	result, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ShiftCount)
	assert.Equal(t, 1, result.UnderstaffedSlots)
}

func TestGenerateWeekRejectsBadWeekStart(t *testing.T) {
	deps, venue := supperClubDeps()
	service := newTestService(t, deps)

	_, err := service.GenerateWeek(context.Background(), venue.ID, "01/05/2026", true, false)
	require.Error(t, err)
	assert.Equal(t, 400, pkgErr.From(err).HttpCode())

	// 週起始日必須是星期一
	_, err = service.GenerateWeek(context.Background(), venue.ID, "2026-01-06", true, false)
	require.Error(t, err)
	assert.Equal(t, 400, pkgErr.From(err).HttpCode())
}

func TestGenerateWeekVenueNotFound(t *testing.T) {
	deps, _ := supperClubDeps()
	service := newTestService(t, deps)

	_, err := service.GenerateWeek(context.Background(), primitive.NewObjectID(), "2026-01-05", true, false)
	require.Error(t, err)
	assert.Equal(t, 404, pkgErr.From(err).HttpCode())
}

func TestGenerateWeekLockConflict(t *testing.T) {
	deps, venue := supperClubDeps()
	deps.locker.held[venue.ID.Hex()+"|2026-01-05"] = true
	service := newTestService(t, deps)

	_, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.Error(t, err)
	assert.Equal(t, 409, pkgErr.From(err).HttpCode())
	assert.Equal(t, 0, deps.locker.released)
}

func TestGenerateWeekAutoRunDoesNotOverwritePublished(t *testing.T) {
	deps, venue := supperClubDeps()
	published := &model.WeeklySchedule{
		ID:            primitive.NewObjectID(),
		VenueID:       venue.ID,
		WeekStartDate: "2026-01-05",
		Status:        string(core.ScheduleStatusPublished),
	}
	deps.store.schedules[storeKey(venue.ID, "2026-01-05")] = published
	service := newTestService(t, deps)

	_, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, true)
	require.Error(t, err)
	assert.Equal(t, 409, pkgErr.From(err).HttpCode())
	assert.Equal(t, 0, deps.store.replaceCalls)

	// 手動觸發仍可覆蓋已發布的排班
	result, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, 1, deps.store.replaceCalls)
}

func TestGenerateWeekNoActivePositions(t *testing.T) {
	deps, venue := supperClubDeps()
	deps.positions = &stubPositions{}
	service := newTestService(t, deps)

	_, err := service.GenerateWeek(context.Background(), venue.ID, "2026-01-05", true, false)
	require.Error(t, err)
	assert.Equal(t, 400, pkgErr.From(err).HttpCode())

	// 失敗的產程也要留下稽核紀錄
	require.Len(t, deps.auditor.entries, 1)
	assert.NotEmpty(t, deps.auditor.entries[0].Error)
}
