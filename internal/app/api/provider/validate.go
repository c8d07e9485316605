package provider

import (
	"fmt"
	"net/url"
	"strings"
)

// CheckAPIKey rejects keys that can never be sent as a header value
func CheckAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("api key is empty")
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return fmt.Errorf("api key contains whitespace")
	}
	return nil
}

// ParseEndpoint validates the base URL of a self-hosted server and returns it
// without a trailing slash
func ParseEndpoint(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("endpoint %q must start with http:// or https://", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("endpoint %q has no host", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
