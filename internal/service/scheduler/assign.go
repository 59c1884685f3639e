package scheduler

import (
	"sort"
	"time"

	"shiftwave/internal/core"
	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// runState 是一次產程內的員工累計狀態，僅存在於記憶體，不落地
type runState struct {
	hoursAssigned map[primitive.ObjectID]float64
	daysWorked    map[primitive.ObjectID]map[string]bool
}

func newRunState() *runState {
	return &runState{
		hoursAssigned: make(map[primitive.ObjectID]float64),
		daysWorked:    make(map[primitive.ObjectID]map[string]bool),
	}
}

func (state *runState) workedOn(employeeIdentifier primitive.ObjectID, businessDate string) bool {
	return state.daysWorked[employeeIdentifier][businessDate]
}

func (state *runState) record(employeeIdentifier primitive.ObjectID, businessDate string, hours float64) {
	state.hoursAssigned[employeeIdentifier] += hours
	if state.daysWorked[employeeIdentifier] == nil {
		state.daysWorked[employeeIdentifier] = make(map[string]bool)
	}
	state.daysWorked[employeeIdentifier][businessDate] = true
}

// assignWave 從職位員工池以貪婪法填滿一個波次。
// 規則：每人每日至多一班；非固定編制職位不得超過週工時上限；
// 人不夠時接受缺編，回傳缺額數而非錯誤。
func assignWave(
	state *runState,
	pool []*model.Employee,
	position *model.Position,
	businessDate string,
	wave WaveTemplate,
	count int,
	fixedModel bool,
	defaultMaxHours float64,
) (shifts []*model.ShiftAssignment, understaffed int) {

	if count <= 0 {
		return nil, 0
	}

	// 以已排工時升冪排序做公平輪替，stable 排序保住輸入順序的平手裁決
	candidates := make([]*model.Employee, len(pool))
	copy(candidates, pool)
	sort.SliceStable(candidates, func(i, j int) bool {
		return state.hoursAssigned[candidates[i].ID] < state.hoursAssigned[candidates[j].ID]
	})

	assigned := 0
	for _, candidate := range candidates {
		if assigned >= count {
			break
		}
		if state.workedOn(candidate.ID, businessDate) {
			continue
		}
		if !fixedModel {
			maxHours := candidate.MaxHoursPerWeek
			if maxHours <= 0 {
				maxHours = defaultMaxHours
			}
			if state.hoursAssigned[candidate.ID]+wave.DurationHours > maxHours {
				continue
			}
		}

		start, end := shiftWindow(businessDate, wave)
		shifts = append(shifts, &model.ShiftAssignment{
			ID:             primitive.NewObjectID(),
			VenueID:        position.VenueID,
			EmployeeID:     candidate.ID,
			PositionID:     position.ID,
			PositionName:   position.Name,
			BusinessDate:   businessDate,
			ShiftType:      string(wave.ShiftType),
			WaveLabel:      wave.Label,
			ScheduledStart: start,
			ScheduledEnd:   end,
			ScheduledHours: wave.DurationHours,
			HourlyRate:     position.HourlyRate,
			ScheduledCost:  wave.DurationHours * position.HourlyRate,
			Status:         string(core.ShiftStatusScheduled),
		})
		state.record(candidate.ID, businessDate, wave.DurationHours)
		assigned++
	}

	return shifts, count - assigned
}

// shiftWindow 把營業日與模板時刻組成實際起訖時間，跨午夜班別的結束時間落在次日
func shiftWindow(businessDate string, wave WaveTemplate) (start time.Time, end time.Time) {
	day, _ := time.Parse("2006-01-02", businessDate)
	startClock, _ := time.Parse("15:04", wave.StartTime)
	endClock, _ := time.Parse("15:04", wave.EndTime)

	start = time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	end = time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
