package service

import (
	fluentdrepo "shiftwave/internal/database/fluentd/repository"
	mongorepo "shiftwave/internal/database/mongodb/repository"
	redisrepo "shiftwave/internal/database/redis/repository"
	"shiftwave/internal/service/scheduler"

	"github.com/google/wire"
)

// Wire 依賴提供；repository 具體型別在這裡綁到排班引擎的讀寫介面
var ProviderSet = wire.NewSet(
	NewHealthService,
	scheduler.NewService,
	wire.Bind(new(scheduler.VenueSource), new(*mongorepo.VenueRepository)),
	wire.Bind(new(scheduler.PositionSource), new(*mongorepo.PositionRepository)),
	wire.Bind(new(scheduler.EmployeeSource), new(*mongorepo.EmployeeRepository)),
	wire.Bind(new(scheduler.ForecastSource), new(*mongorepo.DemandForecastRepository)),
	wire.Bind(new(scheduler.LaborHistorySource), new(*mongorepo.LaborDayFactRepository)),
	wire.Bind(new(scheduler.SalesHistorySource), new(*mongorepo.SalesDayFactRepository)),
	wire.Bind(new(scheduler.ScheduleStore), new(*mongorepo.ScheduleRepository)),
	wire.Bind(new(scheduler.RunLocker), new(*redisrepo.RunLockRepository)),
	wire.Bind(new(scheduler.RunAuditor), new(*fluentdrepo.LogRepository)),
)
