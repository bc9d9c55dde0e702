package config

// Config 运行时配置
type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	Logging  LogConfig      `mapstructure:"logging"`
	Resolver ResolverConfig `mapstructure:"resolver"`
}

// SettingsConfig 设置文件配置
type SettingsConfig struct {
	Path string `mapstructure:"path"` // 空表示使用用户配置目录
}

// LogConfig 日志配置
type LogConfig struct {
	Level     string `mapstructure:"level"`
	File      string `mapstructure:"file"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// ResolverConfig 设置名纠错配置
type ResolverConfig struct {
	// AutocorrectConfidence 低于该相似度时不再给出建议 (0 表示总是建议)
	AutocorrectConfidence float64 `mapstructure:"autocorrect_confidence"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			Path: "",
		},
		Logging: LogConfig{
			Level:     "warn",
			File:      "",
			MaxSizeMB: 5,
			MaxFiles:  3,
		},
		Resolver: ResolverConfig{
			AutocorrectConfidence: 0,
		},
	}
}
