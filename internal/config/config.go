package config

import "time"

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetDataFolder() string
	GetHTTPTimeout() time.Duration
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
