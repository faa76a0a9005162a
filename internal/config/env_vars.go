package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	baseURLVar    = "MAILASSIST_BASE_URL"
	dataFolderVar = "MAILASSIST_DATA_FOLDER"
	timeoutVar    = "MAILASSIST_TIMEOUT"
	logLevelVar   = "MAILASSIST_LOG_LEVEL"
	appNameVar    = "MAILASSIST_APP_NAME"
)

const defaultDataFolderName = ".mailassist"

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Mail Assist")
}

// GetBaseURL returns the backend base URL (e.g. "http://localhost:8000").
// Set once at client construction, never per call.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8000")
}

// GetDataFolder returns the folder holding client-local durable state (the
// persisted bearer token). Defaults to ~/.mailassist.
func (EnvVars) GetDataFolder() string {
	if folder := os.Getenv(dataFolderVar); folder != "" {
		return folder
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDataFolderName
	}
	return filepath.Join(home, defaultDataFolderName)
}

func (EnvVars) GetHTTPTimeout() time.Duration {
	timeout, err := time.ParseDuration(GetEnv(timeoutVar, "15s"))
	if err != nil {
		return 15 * time.Second
	}
	return timeout
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
