package scheduler

import (
	"math"

	"shiftwave/config"
	"shiftwave/internal/core"
)

// 各場館類別的吧檯產能上限（每勞動小時杯數）
var dplhByVenueClass = map[core.VenueClass]float64{
	core.VenueClassNightclub:    45,
	core.VenueClassLateNightBar: 42,
	core.VenueClassMemberClub:   40,
	core.VenueClassSupperClub:   38,
}

const defaultDPLH = 35

// 各場館類別的飲務營收占比預設值，歷史觀測不足時使用
var beverageShareByVenueClass = map[core.VenueClass]float64{
	core.VenueClassNightclub:    0.65,
	core.VenueClassLateNightBar: 0.55,
	core.VenueClassMemberClub:   0.45,
	core.VenueClassSupperClub:   0.40,
}

// DPLHForClass 取場館類別的吧檯 DPLH，未分類時用保守預設
func DPLHForClass(venueClass core.VenueClass) float64 {
	if value, ok := dplhByVenueClass[venueClass]; ok {
		return value
	}
	return defaultDPLH
}

// BeverageShareDefault 取場館類別的飲務占比預設值，未分類時退回產業平均
func BeverageShareDefault(venueClass core.VenueClass, policy config.Scheduler) float64 {
	if value, ok := beverageShareByVenueClass[venueClass]; ok {
		return value
	}
	return policy.IndustryBeverageShare
}

// staffingDay 單日單職位的尖峰人力輸入
type staffingDay struct {
	covers        float64
	cplhOverride  float64
	beverageShare float64
	venueClass    core.VenueClass
}

// peakHeadcount 將全日預測來客數換算成單一最忙小時所需人數。
// covers 為 0 代表休市，所有模型一律回 0。
func peakHeadcount(spec PositionSpec, day staffingDay, policy config.Scheduler) int {
	if day.covers <= 0 {
		return 0
	}

	switch model := spec.Model.(type) {
	case FixedModel:
		// 管理職固定每波一人，人數在波次分配階段展開
		return 1

	case RatioModel:
		needed := math.Ceil(day.covers / model.DailyCoversPerWorker)
		if needed < 1 {
			needed = 1
		}
		return int(needed)

	case CPLHModel:
		coversPerLaborHour := model.CoversPerLaborHour
		if day.cplhOverride > 0 {
			coversPerLaborHour = day.cplhOverride
		}
		needed := math.Ceil(day.covers * policy.PeakFraction / coversPerLaborHour)
		if needed < 1 {
			needed = 1
		}
		return int(needed)

	case BarCompositeModel:
		// 吧檯是整場酒水量的共用產能中心，不能照座位數換算
		beverageShare := day.beverageShare
		if beverageShare <= 0 {
			beverageShare = BeverageShareDefault(day.venueClass, policy)
		}
		drinksPerCover := (beverageShare / policy.IndustryBeverageShare) * policy.BaselineDrinksPerCover
		peakDrinks := day.covers * policy.PeakFraction * drinksPerCover
		needed := math.Ceil(peakDrinks / DPLHForClass(day.venueClass))
		if needed < 1 {
			needed = 1
		}
		return int(needed)
	}

	return 0
}
