package cron

import (
	"context"
	"time"

	"shiftwave/config"
	mongoRepo "shiftwave/internal/database/mongodb/repository"
	"shiftwave/internal/service/scheduler"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	conf             *config.Configuration
	server           *cron.Cron
	venueRepository  *mongoRepo.VenueRepository
	schedulerService *scheduler.Service
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	conf *config.Configuration,
	venueRepository *mongoRepo.VenueRepository,
	schedulerService *scheduler.Service,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		conf:             conf,
		server:           server,
		venueRepository:  venueRepository,
		schedulerService: schedulerService,
	}
}

func (c *Cron) Run() error {
	spec := c.conf.Scheduler.AutoGenerateSpec
	if spec != "" {
		if _, err := c.server.AddFunc(spec, c.generateWeeklySchedules); err != nil {
			return err
		}
		c.logger.Info("weekly schedule generation registered", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

// generateWeeklySchedules 為所有啟用自動排班的場館產出下一個完整週（週一起算）的班表
func (c *Cron) generateWeeklySchedules() {
	contextValue, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	weekStartDate := nextWeekStart(time.Now().UTC())

	venues, err := c.venueRepository.ListAutoSchedule(contextValue)
	if err != nil {
		c.logger.Error("list auto-schedule venues failed", zap.Error(err))
		return
	}

	for _, venue := range venues {
		result, generateError := c.schedulerService.GenerateWeek(contextValue, venue.ID, weekStartDate, true, true)
		if generateError != nil {
			c.logger.Error("auto generate schedule failed",
				zap.String("venue_id", venue.ID.Hex()),
				zap.String("week_start_date", weekStartDate),
				zap.Error(generateError),
			)
			continue
		}
		c.logger.Info("auto generated schedule",
			zap.String("venue_id", venue.ID.Hex()),
			zap.String("week_start_date", weekStartDate),
			zap.Int("shift_count", result.ShiftCount),
			zap.Int("understaffed_slots", result.UnderstaffedSlots),
		)
	}
}

// nextWeekStart 回傳下一個週一（不含當天）
func nextWeekStart(now time.Time) string {
	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	return now.AddDate(0, 0, daysUntilMonday).Format("2006-01-02")
}
