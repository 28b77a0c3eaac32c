package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"myregistrar/domain"
	"myregistrar/interfaces"
	"myregistrar/service"

	"github.com/go-kit/log/level"
)

const (
	defaultPeriod   = 10 * time.Second
	defaultTimeout  = 5 * time.Second
	defaultLogLevel = "info"
)

// Config holds the host process settings read from properties. Identity properties are validated separately by
// RegistrationAgent.Check.
type Config struct {
	Port     int           // server.port, where the health/info server listens
	Period   time.Duration // spring.boot.admin.period (ms), delay between registration ticks
	Timeout  time.Duration // spring.boot.admin.timeout (ms), deadline of one tick
	LogLevel string        // logging.level: debug|info|warn|error
}

// LoadConfig reads server.port (required, 1-65535), spring.boot.admin.period and spring.boot.admin.timeout
// (optional, positive milliseconds) and logging.level (optional).
//
// Errors are service.MyError: missing_property when server.port is absent, invalid_property otherwise.
func LoadConfig(properties interfaces.PropertySource) (*Config, error) {
	portStr, _ := properties.Get(domain.PropertyServerPort)
	portStr = strings.TrimSpace(portStr)
	if portStr == "" {
		return nil, service.NewMissingPropertyError(domain.PropertyServerPort)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return nil, service.NewInvalidPropertyError(domain.PropertyServerPort,
			fmt.Errorf("must be a valid port (1-65535), got %q", portStr))
	}

	period, err := millisProperty(properties, domain.PropertyPeriod, defaultPeriod)
	if err != nil {
		return nil, err
	}
	timeout, err := millisProperty(properties, domain.PropertyTimeout, defaultTimeout)
	if err != nil {
		return nil, err
	}

	logLevel := defaultLogLevel
	if v, ok := properties.Get(domain.PropertyLoggingLevel); ok && strings.TrimSpace(v) != "" {
		logLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if _, err := levelOption(logLevel); err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		Period:   period,
		Timeout:  timeout,
		LogLevel: logLevel,
	}, nil
}

func millisProperty(properties interfaces.PropertySource, key string, def time.Duration) (time.Duration, error) {
	v, ok := properties.Get(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return def, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0, service.NewInvalidPropertyError(key, fmt.Errorf("must be a positive integer (ms), got %q", v))
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, service.NewInvalidPropertyError(domain.PropertyLoggingLevel,
			fmt.Errorf("must be debug|info|warn|error, got %q", name))
	}
}
