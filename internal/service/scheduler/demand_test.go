package scheduler

import (
	"context"
	"testing"
	"time"

	"shiftwave/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWeekDates(t *testing.T) {
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	dates := weekDates(weekStart)

	require.Len(t, dates, 7)
	assert.Equal(t, "2026-01-05", dates[0])
	assert.Equal(t, "2026-01-11", dates[6])
}

func TestFetchDemandMissingDateMeansClosed(t *testing.T) {
	venueIdentifier := primitive.NewObjectID()
	source := &stubForecasts{forecasts: []*model.DemandForecast{
		{VenueID: venueIdentifier, BusinessDate: "2026-01-06", CoversPredicted: 120, RevenuePredicted: 6000},
		{VenueID: venueIdentifier, BusinessDate: "2026-01-07", CoversPredicted: 196, RevenuePredicted: 9800},
	}}

	dates := weekDates(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	demand, err := fetchDemand(context.Background(), source, venueIdentifier, dates)
	require.NoError(t, err)

	require.Len(t, demand, 2)
	assert.Equal(t, DayDemand{Covers: 120, Revenue: 6000}, demand["2026-01-06"])
	_, open := demand["2026-01-05"]
	assert.False(t, open, "date without forecast is a closed day")
}

func TestFetchDemandLatestGenerationWins(t *testing.T) {
	venueIdentifier := primitive.NewObjectID()
	firstGeneration := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	secondGeneration := time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC)

	// 同一營業日兩代預測，故意把較新的排在前面
	source := &stubForecasts{forecasts: []*model.DemandForecast{
		{VenueID: venueIdentifier, BusinessDate: "2026-01-09", CoversPredicted: 541, RevenuePredicted: 27050, GeneratedAt: secondGeneration},
		{VenueID: venueIdentifier, BusinessDate: "2026-01-09", CoversPredicted: 480, RevenuePredicted: 24000, GeneratedAt: firstGeneration},
		{VenueID: venueIdentifier, BusinessDate: "2026-01-10", CoversPredicted: 675, RevenuePredicted: 33750, GeneratedAt: firstGeneration},
	}}

	dates := weekDates(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	demand, err := fetchDemand(context.Background(), source, venueIdentifier, dates)
	require.NoError(t, err)

	require.Len(t, demand, 2)
	assert.Equal(t, DayDemand{Covers: 541, Revenue: 27050}, demand["2026-01-09"])
	assert.Equal(t, DayDemand{Covers: 675, Revenue: 33750}, demand["2026-01-10"])
}
