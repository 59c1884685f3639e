package scheduler

import (
	"shiftwave/internal/core"
)

// StaffModel 是職位人力模型的密封變體型別，四種實作各自對應一種換算規則。
// 新增模型時 peakHeadcount 的 type switch 會是唯一要補的地方。
type StaffModel interface {
	staffModel()
}

// FixedModel 固定編制，不隨來客量縮放，每個波次模板固定一人
type FixedModel struct{}

// RatioModel 以全日來客數除以單人可服務數取整
type RatioModel struct {
	DailyCoversPerWorker float64
}

// CPLHModel 以尖峰小時來客數除以每勞動小時可服務數取整
type CPLHModel struct {
	CoversPerLaborHour float64
}

// BarCompositeModel 吧檯複合模型：整場酒水量換算產能，而非座位數
type BarCompositeModel struct{}

func (FixedModel) staffModel()        {}
func (RatioModel) staffModel()        {}
func (CPLHModel) staffModel()         {}
func (BarCompositeModel) staffModel() {}

// WaveTemplate 單一波次的班別時段。EndTime 小於等於 StartTime 代表跨午夜。
type WaveTemplate struct {
	Label         string
	ShiftType     core.ShiftType
	StartTime     string
	EndTime       string
	DurationHours float64
}

// PositionSpec 職位的人力模型加上 1~3 個依序排列的波次模板
type PositionSpec struct {
	Model StaffModel
	Waves []WaveTemplate
}

// 內建職位型錄。模板時段沿用營運現行班別，跨午夜班別的 EndTime 早於 StartTime。
var builtinCatalog = map[string]PositionSpec{
	"Server": {
		Model: CPLHModel{CoversPerLaborHour: 18},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeLunch, StartTime: "11:00", EndTime: "16:00", DurationHours: 5},
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
			{Label: "close", ShiftType: core.ShiftTypeLateNight, StartTime: "22:00", EndTime: "02:00", DurationHours: 4},
		},
	},
	"Bartender": {
		Model: BarCompositeModel{},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "16:00", EndTime: "22:00", DurationHours: 6},
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "18:00", EndTime: "00:00", DurationHours: 6},
			{Label: "close", ShiftType: core.ShiftTypeLateNight, StartTime: "21:00", EndTime: "03:00", DurationHours: 6},
		},
	},
	"Barback": {
		Model: CPLHModel{CoversPerLaborHour: 40},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
			{Label: "close", ShiftType: core.ShiftTypeLateNight, StartTime: "21:00", EndTime: "03:00", DurationHours: 6},
		},
	},
	"Busser": {
		Model: CPLHModel{CoversPerLaborHour: 35},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
			{Label: "late", ShiftType: core.ShiftTypeLateNight, StartTime: "21:00", EndTime: "01:00", DurationHours: 4},
		},
	},
	"Food Runner": {
		Model: CPLHModel{CoversPerLaborHour: 30},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
			{Label: "late", ShiftType: core.ShiftTypeLateNight, StartTime: "20:00", EndTime: "01:00", DurationHours: 5},
		},
	},
	"Host": {
		Model: RatioModel{DailyCoversPerWorker: 80},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "22:00", DurationHours: 5},
			{Label: "late", ShiftType: core.ShiftTypeLateNight, StartTime: "20:00", EndTime: "01:00", DurationHours: 5},
		},
	},
	"Line Cook": {
		Model: CPLHModel{CoversPerLaborHour: 22},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeLunch, StartTime: "10:00", EndTime: "16:00", DurationHours: 6},
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "15:00", EndTime: "23:00", DurationHours: 8},
			{Label: "close", ShiftType: core.ShiftTypeLateNight, StartTime: "19:00", EndTime: "01:00", DurationHours: 6},
		},
	},
	"Prep Cook": {
		Model: CPLHModel{CoversPerLaborHour: 50},
		Waves: []WaveTemplate{
			{Label: "prep", ShiftType: core.ShiftTypeOpening, StartTime: "07:00", EndTime: "14:00", DurationHours: 7},
		},
	},
	"Dishwasher": {
		Model: RatioModel{DailyCoversPerWorker: 60},
		Waves: []WaveTemplate{
			{Label: "early", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
			{Label: "late", ShiftType: core.ShiftTypeLateNight, StartTime: "20:00", EndTime: "02:00", DurationHours: 6},
		},
	},
	"Expeditor": {
		Model: FixedModel{},
		Waves: []WaveTemplate{
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
		},
	},
	"Shift Manager": {
		Model: CPLHModel{CoversPerLaborHour: 100},
		Waves: []WaveTemplate{
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "01:00", DurationHours: 8},
		},
	},
	"General Manager": {
		Model: FixedModel{},
		Waves: []WaveTemplate{
			{Label: "opening", ShiftType: core.ShiftTypeOpening, StartTime: "10:00", EndTime: "18:00", DurationHours: 8},
			{Label: "closing", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "01:00", DurationHours: 8},
		},
	},
	"Assistant Manager": {
		Model: FixedModel{},
		Waves: []WaveTemplate{
			{Label: "opening", ShiftType: core.ShiftTypeOpening, StartTime: "09:00", EndTime: "17:00", DurationHours: 8},
			{Label: "closing", ShiftType: core.ShiftTypeDinner, StartTime: "16:00", EndTime: "00:00", DurationHours: 8},
		},
	},
	"Sous Chef": {
		Model: FixedModel{},
		Waves: []WaveTemplate{
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "12:00", EndTime: "20:00", DurationHours: 8},
		},
	},
	"Executive Chef": {
		Model: FixedModel{},
		Waves: []WaveTemplate{
			{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "14:00", EndTime: "22:00", DurationHours: 8},
		},
	},
}

// 型錄未收錄的職位以保守的 CPLH 單波 dinner 班處理
var defaultPositionSpec = PositionSpec{
	Model: CPLHModel{CoversPerLaborHour: 10},
	Waves: []WaveTemplate{
		{Label: "main", ShiftType: core.ShiftTypeDinner, StartTime: "17:00", EndTime: "23:00", DurationHours: 6},
	},
}

// SpecFor 依職位名稱取得人力模型與波次模板
func SpecFor(positionName string) PositionSpec {
	if spec, ok := builtinCatalog[positionName]; ok {
		return spec
	}
	return defaultPositionSpec
}

// CatalogCPLH 回傳職位的型錄預設 CPLH；非 CPLH 模型回傳 0
func CatalogCPLH(positionName string) float64 {
	spec := SpecFor(positionName)
	if m, ok := spec.Model.(CPLHModel); ok {
		return m.CoversPerLaborHour
	}
	return 0
}
