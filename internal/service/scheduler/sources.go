package scheduler

import (
	"context"

	"shiftwave/internal/database/fluentd/model"
	mongomodel "shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 排班引擎只讀這些協作者，介面化讓測試能以記憶體實作替換

type VenueSource interface {
	GetByID(contextValue context.Context, venueIdentifier primitive.ObjectID) (*mongomodel.Venue, error)
}

type PositionSource interface {
	ListActive(contextValue context.Context, venueIdentifier primitive.ObjectID) ([]*mongomodel.Position, error)
}

type EmployeeSource interface {
	ListActive(contextValue context.Context, venueIdentifier primitive.ObjectID) ([]*mongomodel.Employee, error)
}

type ForecastSource interface {
	ListLatestInRange(contextValue context.Context, venueIdentifier primitive.ObjectID, startDate string, endDate string) ([]*mongomodel.DemandForecast, error)
}

type LaborHistorySource interface {
	ListSince(contextValue context.Context, venueIdentifier primitive.ObjectID, sinceDate string, minCovers int64) ([]*mongomodel.LaborDayFact, error)
}

type SalesHistorySource interface {
	ListSince(contextValue context.Context, venueIdentifier primitive.ObjectID, sinceDate string) ([]*mongomodel.SalesDayFact, error)
}

type ScheduleStore interface {
	ReplaceWeek(contextValue context.Context, schedule *mongomodel.WeeklySchedule, shifts []*mongomodel.ShiftAssignment) error
	GetWeek(contextValue context.Context, venueIdentifier primitive.ObjectID, weekStartDate string) (*mongomodel.WeeklySchedule, error)
	ListShifts(contextValue context.Context, scheduleIdentifier primitive.ObjectID) ([]*mongomodel.ShiftAssignment, error)
}

type RunLocker interface {
	Acquire(contextValue context.Context, venueIdentifier string, weekStartDate string, timeToLiveSeconds int64) error
	Release(contextValue context.Context, venueIdentifier string, weekStartDate string) error
}

type RunAuditor interface {
	LogScheduleRun(contextValue context.Context, run model.ScheduleRunLog) error
}
