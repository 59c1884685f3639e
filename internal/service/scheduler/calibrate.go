package scheduler

import (
	"context"
	"math"
	"sync"
	"time"

	"shiftwave/config"
	"shiftwave/internal/core"
	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	CalibrationModeDerived = "derived"
	CalibrationModeDefault = "default"
)

// Calibration 校准輸出：僅包含要覆寫的值，缺項代表沿用型錄預設
type Calibration struct {
	Mode          string
	PeakCPLH      map[string]float64
	BevShareByDOW map[time.Weekday]float64
}

// Calibrator 從歷史勞動與銷售資料推導場館專屬的生產力係數
type Calibrator struct {
	logger *zap.Logger
	labor  LaborHistorySource
	sales  SalesHistorySource
	policy config.Scheduler
}

func NewCalibrator(logger *zap.Logger, labor LaborHistorySource, sales SalesHistorySource, policy config.Scheduler) *Calibrator {
	return &Calibrator{logger: logger, labor: labor, sales: sales, policy: policy}
}

// Calibrate 推導各職位尖峰 CPLH 與各星期幾的飲務占比。
// 任何資料存取失敗都降級為「資料不足」，產程必須永遠能靠型錄預設跑完。
func (calibrator *Calibrator) Calibrate(
	contextValue context.Context,
	venueIdentifier primitive.ObjectID,
	positions []*model.Position,
	employees []*model.Employee,
) Calibration {

	sinceDate := time.Now().UTC().AddDate(0, 0, -calibrator.policy.CalibrationWindowDays).Format("2006-01-02")

	// 兩份歷史資料互不相依，併發抓取
	var (
		waitGroup  sync.WaitGroup
		laborFacts []*model.LaborDayFact
		salesFacts []*model.SalesDayFact
		laborError error
		salesError error
	)
	waitGroup.Add(2)
	go func() {
		defer waitGroup.Done()
		laborFacts, laborError = calibrator.labor.ListSince(contextValue, venueIdentifier, sinceDate, int64(calibrator.policy.CalibrationMinCovers))
	}()
	go func() {
		defer waitGroup.Done()
		salesFacts, salesError = calibrator.sales.ListSince(contextValue, venueIdentifier, sinceDate)
	}()
	waitGroup.Wait()

	if laborError != nil {
		calibrator.logger.Warn("calibration labor fetch failed, using catalog defaults", zap.Error(laborError))
		laborFacts = nil
	}
	if salesError != nil {
		calibrator.logger.Warn("calibration sales fetch failed, using class defaults", zap.Error(salesError))
		salesFacts = nil
	}

	result := Calibration{
		Mode:          CalibrationModeDefault,
		PeakCPLH:      calibrator.derivePeakCPLH(positions, employees, laborFacts),
		BevShareByDOW: calibrator.deriveBeverageShare(salesFacts),
	}
	if len(result.PeakCPLH) > 0 {
		result.Mode = CalibrationModeDerived
	}
	return result
}

// derivePeakCPLH 把類別彙總工時依人數比例攤回各職位，估出職位別全日 CPLH，
// 再乘平均班長與尖峰占比換算成尖峰值，最後與型錄預設混合。
func (calibrator *Calibrator) derivePeakCPLH(
	positions []*model.Position,
	employees []*model.Employee,
	laborFacts []*model.LaborDayFact,
) map[string]float64 {

	positionByID := make(map[primitive.ObjectID]*model.Position, len(positions))
	for _, position := range positions {
		positionByID[position.ID] = position
	}

	poolCounts := make(map[string]int)
	fohTotal, bohTotal := 0, 0
	for _, employee := range employees {
		position, ok := positionByID[employee.PrimaryPositionID]
		if !ok {
			continue
		}
		poolCounts[position.Name]++
		switch position.Category {
		case string(core.CategoryFrontOfHouse):
			fohTotal++
		case string(core.CategoryBackOfHouse):
			bohTotal++
		}
	}

	type accumulator struct {
		coversWeight  float64
		cplhWeighted  float64
		shiftWeighted float64
	}
	stats := make(map[string]*accumulator)

	validDays := 0
	for _, day := range laborFacts {
		if day.FOHHours <= 10 || day.BOHHours <= 5 || day.FOHHeadcount <= 0 || day.BOHHeadcount <= 0 {
			continue
		}
		validDays++

		fohAvgShift := day.FOHHours / float64(day.FOHHeadcount)
		bohAvgShift := day.BOHHours / float64(day.BOHHeadcount)

		for _, position := range positions {
			poolSize := poolCounts[position.Name]
			if poolSize == 0 {
				continue
			}

			var categoryPool int
			var categoryHeadcount int
			var avgShift float64
			switch position.Category {
			case string(core.CategoryFrontOfHouse):
				categoryPool, categoryHeadcount, avgShift = fohTotal, day.FOHHeadcount, fohAvgShift
			case string(core.CategoryBackOfHouse):
				categoryPool, categoryHeadcount, avgShift = bohTotal, day.BOHHeadcount, bohAvgShift
			default:
				continue
			}
			if categoryPool == 0 {
				continue
			}

			estimatedWorkers := math.Round(float64(poolSize) / float64(categoryPool) * float64(categoryHeadcount))
			if estimatedWorkers < 1 {
				estimatedWorkers = 1
			}
			estimatedHours := estimatedWorkers * avgShift
			if estimatedHours <= 0 {
				continue
			}

			covers := float64(day.Covers)
			entry := stats[position.Name]
			if entry == nil {
				entry = &accumulator{}
				stats[position.Name] = entry
			}
			entry.coversWeight += covers
			entry.cplhWeighted += (covers / estimatedHours) * covers
			entry.shiftWeighted += avgShift * covers
		}
	}

	if validDays < calibrator.policy.CalibrationMinDays {
		return nil
	}

	overrides := make(map[string]float64)
	for positionName, entry := range stats {
		if entry.coversWeight <= 0 {
			continue
		}
		allDayCPLH := entry.cplhWeighted / entry.coversWeight
		avgShift := entry.shiftWeighted / entry.coversWeight
		derivedPeak := allDayCPLH * avgShift * calibrator.policy.PeakFraction
		if derivedPeak <= 0 {
			continue
		}

		catalogDefault := CatalogCPLH(positionName)
		if catalogDefault > 0 {
			overrides[positionName] = math.Round(derivedPeak*calibrator.policy.CalibrationBlendWeight + catalogDefault*(1-calibrator.policy.CalibrationBlendWeight))
		} else {
			overrides[positionName] = math.Round(derivedPeak)
		}
	}
	return overrides
}

// deriveBeverageShare 依星期幾分組平均飲務占比，觀測數不足的組不覆寫
func (calibrator *Calibrator) deriveBeverageShare(salesFacts []*model.SalesDayFact) map[time.Weekday]float64 {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, fact := range salesFacts {
		day, parseError := time.Parse("2006-01-02", fact.BusinessDate)
		if parseError != nil {
			continue
		}
		sums[day.Weekday()] += fact.BeverageShare
		counts[day.Weekday()]++
	}

	overrides := make(map[time.Weekday]float64)
	for weekday, count := range counts {
		if count >= calibrator.policy.BeverageMinObservations {
			overrides[weekday] = sums[weekday] / float64(count)
		}
	}
	return overrides
}
