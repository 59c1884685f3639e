package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	venueRepository          *VenueRepository
	positionRepository       *PositionRepository
	employeeRepository       *EmployeeRepository
	demandForecastRepository *DemandForecastRepository
	laborDayFactRepository   *LaborDayFactRepository
	salesDayFactRepository   *SalesDayFactRepository
	scheduleRepository       *ScheduleRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	venueRepository *VenueRepository,
	positionRepository *PositionRepository,
	employeeRepository *EmployeeRepository,
	demandForecastRepository *DemandForecastRepository,
	laborDayFactRepository *LaborDayFactRepository,
	salesDayFactRepository *SalesDayFactRepository,
	scheduleRepository *ScheduleRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		venueRepository:          venueRepository,
		positionRepository:       positionRepository,
		employeeRepository:       employeeRepository,
		demandForecastRepository: demandForecastRepository,
		laborDayFactRepository:   laborDayFactRepository,
		salesDayFactRepository:   salesDayFactRepository,
		scheduleRepository:       scheduleRepository,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewVenueRepository,
	NewPositionRepository,
	NewEmployeeRepository,
	NewDemandForecastRepository,
	NewLaborDayFactRepository,
	NewSalesDayFactRepository,
	NewScheduleRepository,
	NewMongoDBRepository)
