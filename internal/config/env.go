package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for non-credential settings
const (
	EnvDefaultSTTProvider  = "DEFAULT_STT_PROVIDER"
	EnvDefaultLLMProvider  = "DEFAULT_LLM_PROVIDER"
	EnvLogLevel            = "LOG_LEVEL"
	EnvEnvironment         = "ENVIRONMENT"
	EnvDictationServerHost = "DICTATION_SERVER_HOST"
	EnvDictationServerPort = "DICTATION_SERVER_PORT"
	EnvConfigServerHost    = "CONFIG_SERVER_HOST"
	EnvConfigServerPort    = "CONFIG_SERVER_PORT"
)

// Settings holds the process configuration loaded from the environment.
// Provider secrets live in a separate Credentials snapshot, see LoadCredentials.
type Settings struct {
	DefaultSTTProvider string `env:"DEFAULT_STT_PROVIDER" validate:"required"`
	DefaultLLMProvider string `env:"DEFAULT_LLM_PROVIDER" validate:"required"`
	LogLevel           string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	Environment        string `env:"ENVIRONMENT" validate:"oneof=development production"`

	// Realtime dictation transport, served elsewhere.
	DictationServerHost string `env:"DICTATION_SERVER_HOST" validate:"required"`
	DictationServerPort int    `env:"DICTATION_SERVER_PORT" validate:"min=1,max=65535"`

	// HTTP surface publishing provider availability.
	ConfigServerHost string `env:"CONFIG_SERVER_HOST" validate:"required"`
	ConfigServerPort int    `env:"CONFIG_SERVER_PORT" validate:"min=1,max=65535"`
}

// IsProduction reports whether the process runs with production logging and gin release mode.
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
// Returns the path that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			abs, err := filepath.Abs(envPath)
			if err != nil {
				abs = envPath
			}
			return abs, nil
		}
	}

	return "", nil
}

// Load reads Settings from the environment and validates them
func Load() (*Settings, error) {
	dictationPort, err := getEnvInt(EnvDictationServerPort, DefaultDictationServerPort)
	if err != nil {
		return nil, err
	}
	configPort, err := getEnvInt(EnvConfigServerPort, DefaultConfigServerPort)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		DefaultSTTProvider:  strings.ToLower(getEnvOrDefault(EnvDefaultSTTProvider, DefaultSTTProvider)),
		DefaultLLMProvider:  strings.ToLower(getEnvOrDefault(EnvDefaultLLMProvider, DefaultLLMProvider)),
		LogLevel:            strings.ToLower(getEnvOrDefault(EnvLogLevel, DefaultLogLevel)),
		Environment:         strings.ToLower(getEnvOrDefault(EnvEnvironment, DefaultEnvironment)),
		DictationServerHost: getEnvOrDefault(EnvDictationServerHost, DefaultDictationServerHost),
		DictationServerPort: dictationPort,
		ConfigServerHost:    getEnvOrDefault(EnvConfigServerHost, DefaultConfigServerHost),
		ConfigServerPort:    configPort,
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadCredentials snapshots the named variables from the environment.
// Blank values are dropped so that "set but empty" reads as not configured.
func LoadCredentials(names []string) map[string]string {
	creds := make(map[string]string, len(names))
	for _, name := range names {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			continue
		}
		creds[name] = value
	}
	return creds
}

// InitializeConfig loads the .env file and the settings.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Settings, string, error) {
	envPath, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	settings, err := Load()
	if err != nil {
		return nil, envPath, err
	}

	return settings, envPath, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, raw)
	}
	return value, nil
}
