package config

// Scheduler 彙整排班引擎的政策參數。
// 這些比例（兩波 40/60、三波 25/50/25、校准混合 0.4/0.6）為既有營運常數，
// 來源無推導依據，故開放設定檔調整，預設值即沿用原常數。
type Scheduler struct {
	// 單一尖峰小時佔全日 covers 的比例（職位未指定時的預設）
	PeakFraction float64 `mapstructure:"PEAK_FRACTION" json:"peak_fraction" yaml:"peak_fraction"`
	// 校准：venue 歷史推導值的混合權重（其餘權重給型錄預設值）
	CalibrationBlendWeight float64 `mapstructure:"CALIBRATION_BLEND_WEIGHT" json:"calibration_blend_weight" yaml:"calibration_blend_weight"`
	// 校准：回看天數與有效樣本門檻
	CalibrationWindowDays int     `mapstructure:"CALIBRATION_WINDOW_DAYS" json:"calibration_window_days" yaml:"calibration_window_days"`
	CalibrationMinDays    int     `mapstructure:"CALIBRATION_MIN_DAYS" json:"calibration_min_days" yaml:"calibration_min_days"`
	CalibrationMinCovers  float64 `mapstructure:"CALIBRATION_MIN_COVERS" json:"calibration_min_covers" yaml:"calibration_min_covers"`
	// 飲務強度：同一星期幾至少需要幾筆觀測才採用歷史平均
	BeverageMinObservations int `mapstructure:"BEVERAGE_MIN_OBSERVATIONS" json:"beverage_min_observations" yaml:"beverage_min_observations"`
	// 波次分配比例
	TwoWaveEarlyShare     float64 `mapstructure:"TWO_WAVE_EARLY_SHARE" json:"two_wave_early_share" yaml:"two_wave_early_share"`
	ThreeWaveBookendShare float64 `mapstructure:"THREE_WAVE_BOOKEND_SHARE" json:"three_wave_bookend_share" yaml:"three_wave_bookend_share"`
	// 吧檯複合模型
	BaselineDrinksPerCover float64 `mapstructure:"BASELINE_DRINKS_PER_COVER" json:"baseline_drinks_per_cover" yaml:"baseline_drinks_per_cover"`
	IndustryBeverageShare  float64 `mapstructure:"INDUSTRY_BEVERAGE_SHARE" json:"industry_beverage_share" yaml:"industry_beverage_share"`
	// 員工週工時上限未設定時的預設
	DefaultMaxHoursPerWeek float64 `mapstructure:"DEFAULT_MAX_HOURS_PER_WEEK" json:"default_max_hours_per_week" yaml:"default_max_hours_per_week"`
	// 班表寫入的批次大小
	InsertBatchSize int `mapstructure:"INSERT_BATCH_SIZE" json:"insert_batch_size" yaml:"insert_batch_size"`
	// 同一 (venue, week) 產生鎖的存活秒數
	RunLockTTLSeconds int64 `mapstructure:"RUN_LOCK_TTL_SECONDS" json:"run_lock_ttl_seconds" yaml:"run_lock_ttl_seconds"`
	// 週期性自動排班（robfig/cron 格式，含秒）；留空則停用
	AutoGenerateSpec string `mapstructure:"AUTO_GENERATE_SPEC" json:"auto_generate_spec" yaml:"auto_generate_spec"`
}

// Normalized 補上未設定欄位的預設值。
func (s Scheduler) Normalized() Scheduler {
	if s.PeakFraction <= 0 {
		s.PeakFraction = 0.22
	}
	if s.CalibrationBlendWeight <= 0 {
		s.CalibrationBlendWeight = 0.40
	}
	if s.CalibrationWindowDays <= 0 {
		s.CalibrationWindowDays = 90
	}
	if s.CalibrationMinDays <= 0 {
		s.CalibrationMinDays = 10
	}
	if s.CalibrationMinCovers <= 0 {
		s.CalibrationMinCovers = 100
	}
	if s.BeverageMinObservations <= 0 {
		s.BeverageMinObservations = 3
	}
	if s.TwoWaveEarlyShare <= 0 {
		s.TwoWaveEarlyShare = 0.40
	}
	if s.ThreeWaveBookendShare <= 0 {
		s.ThreeWaveBookendShare = 0.25
	}
	if s.BaselineDrinksPerCover <= 0 {
		s.BaselineDrinksPerCover = 2.0
	}
	if s.IndustryBeverageShare <= 0 {
		s.IndustryBeverageShare = 0.30
	}
	if s.DefaultMaxHoursPerWeek <= 0 {
		s.DefaultMaxHoursPerWeek = 40
	}
	if s.InsertBatchSize <= 0 {
		s.InsertBatchSize = 50
	}
	if s.RunLockTTLSeconds <= 0 {
		s.RunLockTTLSeconds = 300
	}
	return s
}
