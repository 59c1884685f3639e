package scheduler

import (
	"context"
	"time"

	"shiftwave/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayDemand 單日需求：預測來客數與營收
type DayDemand struct {
	Covers  float64
	Revenue float64
}

// weekDates 回傳週起始日起連續 7 個營業日
func weekDates(weekStart time.Time) []string {
	dates := make([]string, 0, 7)
	for offset := 0; offset < 7; offset++ {
		dates = append(dates, weekStart.AddDate(0, 0, offset).Format("2006-01-02"))
	}
	return dates
}

// fetchDemand 取目標週每日最新預測。缺某日代表該日休市，不是錯誤。
func fetchDemand(
	contextValue context.Context,
	source ForecastSource,
	venueIdentifier primitive.ObjectID,
	dates []string,
) (map[string]DayDemand, error) {

	forecasts, fetchError := source.ListLatestInRange(contextValue, venueIdentifier, dates[0], dates[len(dates)-1])
	if fetchError != nil {
		return nil, fetchError
	}

	// 同一營業日若出現多代預測，以 generatedAt 最新者為準
	latest := make(map[string]*model.DemandForecast, len(forecasts))
	for _, forecast := range forecasts {
		current, exists := latest[forecast.BusinessDate]
		if !exists || forecast.GeneratedAt.After(current.GeneratedAt) {
			latest[forecast.BusinessDate] = forecast
		}
	}

	demand := make(map[string]DayDemand, len(latest))
	for businessDate, forecast := range latest {
		if forecast.CoversPredicted <= 0 {
			continue
		}
		demand[businessDate] = DayDemand{
			Covers:  float64(forecast.CoversPredicted),
			Revenue: forecast.RevenuePredicted,
		}
	}
	return demand, nil
}
