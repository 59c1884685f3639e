package scheduler

import (
	"testing"
	"time"

	"shiftwave/internal/core"
	"shiftwave/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testEmployee(maxHoursPerWeek float64) *model.Employee {
	return &model.Employee{
		ID:               primitive.NewObjectID(),
		EmploymentStatus: core.EmploymentStatusActive,
		MaxHoursPerWeek:  maxHoursPerWeek,
	}
}

func testPosition(name string, hourlyRate float64) *model.Position {
	return &model.Position{
		ID:         primitive.NewObjectID(),
		VenueID:    primitive.NewObjectID(),
		Name:       name,
		HourlyRate: hourlyRate,
	}
}

var dinnerWave = WaveTemplate{
	Label:         "main",
	ShiftType:     core.ShiftTypeDinner,
	StartTime:     "17:00",
	EndTime:       "23:00",
	DurationHours: 6,
}

func TestAssignWaveBuildsShift(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18.5)
	employee := testEmployee(0)

	shifts, understaffed := assignWave(state, []*model.Employee{employee}, position, "2026-01-06", dinnerWave, 1, false, 40)

	require.Len(t, shifts, 1)
	assert.Equal(t, 0, understaffed)

	shift := shifts[0]
	assert.Equal(t, employee.ID, shift.EmployeeID)
	assert.Equal(t, position.ID, shift.PositionID)
	assert.Equal(t, "Server", shift.PositionName)
	assert.Equal(t, "2026-01-06", shift.BusinessDate)
	assert.Equal(t, string(core.ShiftTypeDinner), shift.ShiftType)
	assert.Equal(t, 6.0, shift.ScheduledHours)
	assert.Equal(t, 6.0*18.5, shift.ScheduledCost)
	assert.Equal(t, string(core.ShiftStatusScheduled), shift.Status)
	assert.Equal(t, time.Date(2026, 1, 6, 17, 0, 0, 0, time.UTC), shift.ScheduledStart)
	assert.Equal(t, time.Date(2026, 1, 6, 23, 0, 0, 0, time.UTC), shift.ScheduledEnd)
}

func TestAssignWaveUnderstaffedIsSilent(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18)

	shifts, understaffed := assignWave(state, nil, position, "2026-01-06", dinnerWave, 3, false, 40)

	assert.Nil(t, shifts)
	assert.Equal(t, 3, understaffed)
}

func TestAssignWaveOneShiftPerEmployeePerDay(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18)
	employee := testEmployee(0)
	pool := []*model.Employee{employee}

	shifts, understaffed := assignWave(state, pool, position, "2026-01-06", dinnerWave, 1, false, 40)
	require.Len(t, shifts, 1)
	assert.Equal(t, 0, understaffed)

	// 同一天第二個波次不得再用同一人
	lateWave := WaveTemplate{Label: "close", ShiftType: core.ShiftTypeLateNight, StartTime: "22:00", EndTime: "02:00", DurationHours: 4}
	shifts, understaffed = assignWave(state, pool, position, "2026-01-06", lateWave, 1, false, 40)
	assert.Empty(t, shifts)
	assert.Equal(t, 1, understaffed)

	// 隔天可以再排
	shifts, understaffed = assignWave(state, pool, position, "2026-01-07", dinnerWave, 1, false, 40)
	assert.Len(t, shifts, 1)
	assert.Equal(t, 0, understaffed)
}

func TestAssignWaveFairnessByAccumulatedHours(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18)
	first := testEmployee(0)
	second := testEmployee(0)
	pool := []*model.Employee{first, second}

	dayOne, _ := assignWave(state, pool, position, "2026-01-06", dinnerWave, 1, false, 40)
	require.Len(t, dayOne, 1)

	// 第二天輪到累計工時較低的另一人
	dayTwo, _ := assignWave(state, pool, position, "2026-01-07", dinnerWave, 1, false, 40)
	require.Len(t, dayTwo, 1)
	assert.NotEqual(t, dayOne[0].EmployeeID, dayTwo[0].EmployeeID)
}

func TestAssignWaveRespectsWeeklyHourCap(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18)
	employee := testEmployee(10)
	pool := []*model.Employee{employee}

	shifts, understaffed := assignWave(state, pool, position, "2026-01-06", dinnerWave, 1, false, 40)
	require.Len(t, shifts, 1)
	assert.Equal(t, 0, understaffed)

	// 10 小時上限擋掉第二班（6 + 6 > 10）
	shifts, understaffed = assignWave(state, pool, position, "2026-01-07", dinnerWave, 1, false, 40)
	assert.Empty(t, shifts)
	assert.Equal(t, 1, understaffed)
}

func TestAssignWaveDefaultHourCap(t *testing.T) {
	state := newRunState()
	position := testPosition("Server", 18)
	employee := testEmployee(0) // 未設定者用引擎預設
	pool := []*model.Employee{employee}

	dates := []string{"2026-01-05", "2026-01-06"}
	for _, businessDate := range dates {
		shifts, _ := assignWave(state, pool, position, businessDate, dinnerWave, 1, false, 10)
		if businessDate == dates[0] {
			assert.Len(t, shifts, 1)
		} else {
			assert.Empty(t, shifts)
		}
	}
}

func TestAssignWaveFixedModelExemptFromCap(t *testing.T) {
	state := newRunState()
	position := testPosition("General Manager", 0)
	employee := testEmployee(8)
	pool := []*model.Employee{employee}

	wave := WaveTemplate{Label: "opening", ShiftType: core.ShiftTypeOpening, StartTime: "10:00", EndTime: "18:00", DurationHours: 8}
	for day := 5; day <= 11; day++ {
		businessDate := time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		shifts, understaffed := assignWave(state, pool, position, businessDate, wave, 1, true, 40)
		assert.Len(t, shifts, 1, "fixed headcount works every open day, date %s", businessDate)
		assert.Equal(t, 0, understaffed)
	}
	assert.Equal(t, 56.0, state.hoursAssigned[employee.ID])
}

func TestShiftWindowCrossesMidnight(t *testing.T) {
	wave := WaveTemplate{Label: "close", StartTime: "22:00", EndTime: "02:00", DurationHours: 4}
	start, end := shiftWindow("2026-01-10", wave)

	assert.Equal(t, time.Date(2026, 1, 10, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 11, 2, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 4*time.Hour, end.Sub(start))
}
