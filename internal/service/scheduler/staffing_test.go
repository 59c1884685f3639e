package scheduler

import (
	"testing"

	"shiftwave/config"
	"shiftwave/internal/core"

	"github.com/stretchr/testify/assert"
)

func testPolicy() config.Scheduler {
	return config.Scheduler{}.Normalized()
}

func TestPeakHeadcountZeroCoversMeansClosed(t *testing.T) {
	policy := testPolicy()
	day := staffingDay{covers: 0}

	assert.Equal(t, 0, peakHeadcount(PositionSpec{Model: FixedModel{}}, day, policy))
	assert.Equal(t, 0, peakHeadcount(PositionSpec{Model: RatioModel{DailyCoversPerWorker: 80}}, day, policy))
	assert.Equal(t, 0, peakHeadcount(PositionSpec{Model: CPLHModel{CoversPerLaborHour: 18}}, day, policy))
	assert.Equal(t, 0, peakHeadcount(PositionSpec{Model: BarCompositeModel{}}, day, policy))
}

func TestPeakHeadcountFixed(t *testing.T) {
	got := peakHeadcount(PositionSpec{Model: FixedModel{}}, staffingDay{covers: 675}, testPolicy())
	assert.Equal(t, 1, got)
}

func TestPeakHeadcountRatio(t *testing.T) {
	policy := testPolicy()
	spec := PositionSpec{Model: RatioModel{DailyCoversPerWorker: 60}}

	assert.Equal(t, 3, peakHeadcount(spec, staffingDay{covers: 150}, policy))
	// 極少來客仍需保底一人
	assert.Equal(t, 1, peakHeadcount(spec, staffingDay{covers: 5}, policy))
}

func TestPeakHeadcountCPLHRoundsUp(t *testing.T) {
	policy := testPolicy()
	spec := PositionSpec{Model: CPLHModel{CoversPerLaborHour: 13}}

	// 200 * 0.22 / 13 = 3.38，向上取整為 4
	got := peakHeadcount(spec, staffingDay{covers: 200}, policy)
	assert.Equal(t, 4, got)
}

func TestPeakHeadcountCPLHCalibrationOverride(t *testing.T) {
	policy := testPolicy()
	spec := PositionSpec{Model: CPLHModel{CoversPerLaborHour: 13}}

	// override 取代型錄值：200 * 0.22 / 22 = 2，不再是 4
	got := peakHeadcount(spec, staffingDay{covers: 200, cplhOverride: 22}, policy)
	assert.Equal(t, 2, got)
}

func TestPeakHeadcountBarComposite(t *testing.T) {
	policy := testPolicy()
	spec := PositionSpec{Model: BarCompositeModel{}}

	// drinksPerCover = (0.53 / 0.30) * 2.0 = 3.5333
	// peakDrinks = 400 * 0.22 * 3.5333 = 310.93，除 supper_club DPLH 38 = 8.18 → 9
	day := staffingDay{covers: 400, beverageShare: 0.53, venueClass: core.VenueClassSupperClub}
	assert.Equal(t, 9, peakHeadcount(spec, day, policy))
}

func TestPeakHeadcountBarCompositeClassDefaults(t *testing.T) {
	policy := testPolicy()
	spec := PositionSpec{Model: BarCompositeModel{}}

	// 無歷史觀測時依場館類別預設占比（nightclub 0.65、DPLH 45）
	// drinksPerCover = (0.65/0.30)*2 = 4.3333；peakDrinks = 300*0.22*4.3333 = 286 → /45 = 6.36 → 7
	day := staffingDay{covers: 300, venueClass: core.VenueClassNightclub}
	assert.Equal(t, 7, peakHeadcount(spec, day, policy))

	// 未分類場館退回產業平均 0.30、DPLH 35
	// drinksPerCover = 2；peakDrinks = 300*0.22*2 = 132 → /35 = 3.77 → 4
	day = staffingDay{covers: 300, venueClass: core.VenueClassUnclassified}
	assert.Equal(t, 4, peakHeadcount(spec, day, policy))
}

func TestDPLHForClass(t *testing.T) {
	assert.Equal(t, 45.0, DPLHForClass(core.VenueClassNightclub))
	assert.Equal(t, 38.0, DPLHForClass(core.VenueClassSupperClub))
	assert.Equal(t, 35.0, DPLHForClass(core.VenueClassUnclassified))
}

func TestBeverageShareDefault(t *testing.T) {
	policy := testPolicy()
	assert.Equal(t, 0.55, BeverageShareDefault(core.VenueClassLateNightBar, policy))
	assert.Equal(t, policy.IndustryBeverageShare, BeverageShareDefault(core.VenueClassUnclassified, policy))
}
