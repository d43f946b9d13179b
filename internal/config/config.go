package config

import (
	"os"
	"strconv"
	"time"
)

const (
	PORT         = "PORT"
	LOGLEVEL     = "LOGLEVEL"
	MAINTENANCE  = "MAINTENANCE"
	BUFFERSIZE   = "BUFFER_SIZE"
	POOLCAPACITY = "POOL_CAPACITY"

	defaultPort         = 9889
	defaultLogLevel     = LogLevelInfo
	defaultMaintenance  = 10 * time.Minute
	defaultBufferSize   = 8192
	defaultPoolCapacity = 4
)

type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

type Config interface {
	Port() int
	LogLevel() LogLevel
	Maintenance() time.Duration
	BufferSize() int
	PoolCapacity() int
}

type EnvConfig struct {
	port         int
	logLevel     LogLevel
	maintenance  time.Duration
	bufferSize   int
	poolCapacity int
}

func NewConfigFromEnv() (Config, error) {
	port, err := getIntOr(PORT, defaultPort)
	if err != nil {
		return nil, err
	}

	maintenance, err := getDurationOr(MAINTENANCE, defaultMaintenance)
	if err != nil {
		return nil, err
	}

	bufferSize, err := getIntOr(BUFFERSIZE, defaultBufferSize)
	if err != nil {
		return nil, err
	}

	poolCapacity, err := getIntOr(POOLCAPACITY, defaultPoolCapacity)
	if err != nil {
		return nil, err
	}

	return &EnvConfig{
		port:         port,
		logLevel:     getLogLevelOr(LOGLEVEL, defaultLogLevel),
		maintenance:  maintenance,
		bufferSize:   bufferSize,
		poolCapacity: poolCapacity,
	}, nil
}

func (o *EnvConfig) Port() int {
	return o.port
}

func (o *EnvConfig) LogLevel() LogLevel {
	return o.logLevel
}

func (o *EnvConfig) Maintenance() time.Duration {
	return o.maintenance
}

func (o *EnvConfig) BufferSize() int {
	return o.bufferSize
}

func (o *EnvConfig) PoolCapacity() int {
	return o.poolCapacity
}

func getIntOr(key string, defV int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defV, nil
	}

	return strconv.Atoi(v)
}

func getDurationOr(key string, defV time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defV, nil
	}

	return time.ParseDuration(v)
}

func getLogLevelOr(key string, defV LogLevel) LogLevel {
	switch LogLevel(os.Getenv(key)) {
	case LogLevelDebug:
		return LogLevelDebug
	case LogLevelInfo:
		return LogLevelInfo
	case LogLevelWarning:
		return LogLevelWarning
	case LogLevelError:
		return LogLevelError
	}

	return defV
}
