package config

import (
	"net"
	"os"
	"strconv"
)

// Network defaults
const (
	DefaultDictationServerHost = "127.0.0.1"
	DefaultDictationServerPort = 8765
	DefaultConfigServerHost    = "127.0.0.1"
	DefaultConfigServerPort    = 8766
)

// Other defaults
const (
	DefaultSTTProvider = "cartesia"
	DefaultLLMProvider = "cerebras"
	DefaultLogLevel    = "info"
	DefaultEnvironment = "development"
)

// DictationAddress returns host:port of the realtime dictation transport
func (s *Settings) DictationAddress() string {
	return net.JoinHostPort(s.DictationServerHost, strconv.Itoa(s.DictationServerPort))
}

// ConfigServerAddress returns host:port the HTTP surface listens on
func (s *Settings) ConfigServerAddress() string {
	return net.JoinHostPort(s.ConfigServerHost, strconv.Itoa(s.ConfigServerPort))
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
