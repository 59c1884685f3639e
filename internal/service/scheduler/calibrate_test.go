package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiftwave/internal/core"
	"shiftwave/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func calibrationFixture() (positions []*model.Position, employees []*model.Employee) {
	serverPosition := &model.Position{
		ID:       primitive.NewObjectID(),
		Name:     "Server",
		Category: string(core.CategoryFrontOfHouse),
	}
	positions = []*model.Position{serverPosition}
	for index := 0; index < 4; index++ {
		employees = append(employees, &model.Employee{
			ID:                primitive.NewObjectID(),
			PrimaryPositionID: serverPosition.ID,
			EmploymentStatus:  core.EmploymentStatusActive,
		})
	}
	return positions, employees
}

func laborDays(count int) []*model.LaborDayFact {
	facts := make([]*model.LaborDayFact, 0, count)
	for index := 0; index < count; index++ {
		facts = append(facts, &model.LaborDayFact{
			ID:           primitive.NewObjectID(),
			BusinessDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, index).Format("2006-01-02"),
			Covers:       300,
			FOHHours:     40,
			BOHHours:     24,
			FOHHeadcount: 5,
			BOHHeadcount: 3,
		})
	}
	return facts
}

func TestCalibrateDerivesBlendedPeakCPLH(t *testing.T) {
	positions, employees := calibrationFixture()

	// 摻入一筆工時過低的髒資料，必須被有效日過濾擋掉
	facts := laborDays(10)
	facts = append(facts, &model.LaborDayFact{
		ID:           primitive.NewObjectID(),
		BusinessDate: "2026-01-20",
		Covers:       280,
		FOHHours:     4,
		BOHHours:     24,
		FOHHeadcount: 5,
		BOHHeadcount: 3,
	})

	calibrator := NewCalibrator(zap.NewNop(), &stubLabor{facts: facts}, &stubSales{}, testPolicy())
	calibration := calibrator.Calibrate(context.Background(), primitive.NewObjectID(), positions, employees)

	assert.Equal(t, CalibrationModeDerived, calibration.Mode)
	require.Contains(t, calibration.PeakCPLH, "Server")

	// 每日：FOH 平均班長 40/5 = 8h，估計 Server 工時 5*8 = 40h，全日 CPLH = 300/40 = 7.5
	// 尖峰推導 = 7.5 * 8 * 0.22 = 13.2，與型錄 18 以 0.4/0.6 混合後四捨五入 = 16
	assert.Equal(t, 16.0, calibration.PeakCPLH["Server"])
}

func TestCalibrateInsufficientDaysFallsBackToDefaults(t *testing.T) {
	positions, employees := calibrationFixture()

	calibrator := NewCalibrator(zap.NewNop(), &stubLabor{facts: laborDays(9)}, &stubSales{}, testPolicy())
	calibration := calibrator.Calibrate(context.Background(), primitive.NewObjectID(), positions, employees)

	assert.Equal(t, CalibrationModeDefault, calibration.Mode)
	assert.Empty(t, calibration.PeakCPLH)
}

func TestCalibrateSourceErrorDegradesToDefaults(t *testing.T) {
	positions, employees := calibrationFixture()

	calibrator := NewCalibrator(
		zap.NewNop(),
		&stubLabor{err: errors.New("labor facts unavailable")},
		&stubSales{err: errors.New("sales facts unavailable")},
		testPolicy(),
	)
	calibration := calibrator.Calibrate(context.Background(), primitive.NewObjectID(), positions, employees)

	assert.Equal(t, CalibrationModeDefault, calibration.Mode)
	assert.Empty(t, calibration.PeakCPLH)
	assert.Empty(t, calibration.BevShareByDOW)
}

func TestDeriveBeverageShareByWeekday(t *testing.T) {
	salesFacts := []*model.SalesDayFact{
		// 三個週五，平均 0.6
		{BusinessDate: "2026-01-02", BeverageShare: 0.5},
		{BusinessDate: "2026-01-09", BeverageShare: 0.6},
		{BusinessDate: "2026-01-16", BeverageShare: 0.7},
		// 只有兩個週六，觀測不足不覆寫
		{BusinessDate: "2026-01-03", BeverageShare: 0.8},
		{BusinessDate: "2026-01-10", BeverageShare: 0.9},
	}

	calibrator := NewCalibrator(zap.NewNop(), &stubLabor{}, &stubSales{}, testPolicy())
	overrides := calibrator.deriveBeverageShare(salesFacts)

	require.Contains(t, overrides, time.Friday)
	assert.InDelta(t, 0.6, overrides[time.Friday], 1e-9)
	assert.NotContains(t, overrides, time.Saturday)
}
