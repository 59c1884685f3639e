package config

type Log struct {
	// 最低輸出層級 debug/info/warn/error/dpanic/panic/fatal
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
}
