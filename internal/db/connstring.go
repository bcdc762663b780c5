package db

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// ParseConnectionString parses a postgresql:// or postgres:// URI into a
// ConnectionConfig. Query parameters other than sslmode, application_name
// and connect_timeout are preserved in AdditionalParams.
func ParseConnectionString(connStr string) (*piiscan.ConnectionConfig, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("malformed URI: %w", err)
	}
	if u.Scheme != "postgresql" && u.Scheme != "postgres" {
		return nil, fmt.Errorf("unsupported scheme %q: expected postgresql:// or postgres://", u.Scheme)
	}

	cfg := &piiscan.ConnectionConfig{
		Host:             u.Hostname(),
		Port:             5432,
		Database:         strings.TrimPrefix(u.Path, "/"),
		AdditionalParams: make(map[string]string),
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", portStr, err)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case "sslmode":
			cfg.SSLMode = value
		case "application_name":
			cfg.AppName = value
		case "connect_timeout":
			seconds, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid connect_timeout %q: %w", value, err)
			}
			cfg.ConnectTimeout = time.Duration(seconds) * time.Second
		default:
			cfg.AdditionalParams[key] = value
		}
	}

	return cfg, nil
}

// BuildConnectionString renders a ConnectionConfig as a postgresql:// URI.
func BuildConnectionString(config *piiscan.ConnectionConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/" + config.Database,
	}

	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}

	query := url.Values{}
	if config.SSLMode != "" {
		query.Set("sslmode", config.SSLMode)
	}
	if config.AppName != "" {
		query.Set("application_name", config.AppName)
	}
	if config.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(config.ConnectTimeout.Seconds())))
	}

	for key, value := range config.AdditionalParams {
		query.Set(key, value)
	}

	u.RawQuery = query.Encode()
	return u.String()
}
