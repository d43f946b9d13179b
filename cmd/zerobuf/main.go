package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/7phs/zerobuf"
	"github.com/7phs/zerobuf/internal/config"
	"github.com/7phs/zerobuf/internal/linestats"
	"github.com/7phs/zerobuf/internal/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	errExitCode = 2
)

func logLevel(conf config.Config) zap.AtomicLevel {
	var level zapcore.Level

	switch conf.LogLevel() {
	case config.LogLevelDebug:
		level = zapcore.DebugLevel
	case config.LogLevelInfo:
		level = zapcore.InfoLevel
	case config.LogLevelWarning:
		level = zapcore.WarnLevel
	case config.LogLevelError:
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	return zap.NewAtomicLevelAt(level)
}

func buildLogger(conf config.Config) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = logLevel(conf)

	return logConfig.Build()
}

func main() {
	conf, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatal("failed to prepare config: %w", err)
	}

	logger, err := buildLogger(conf)
	if err != nil {
		log.Fatal("failed to init logger: %w", err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("APP RUN")

	logger.Info("config",
		zap.String(config.LOGLEVEL, string(conf.LogLevel())),
		zap.Int(config.PORT, conf.Port()),
		zap.Duration(config.MAINTENANCE, conf.Maintenance()),
		zap.Int(config.BUFFERSIZE, conf.BufferSize()),
		zap.Int(config.POOLCAPACITY, conf.PoolCapacity()),
	)

	logger.Info("init: buffer pool")

	pool, err := zerobuf.NewBufferPool(conf.PoolCapacity(), conf.BufferSize())
	if err != nil {
		logger.Fatal("failed to init buffer pool",
			zap.Error(err),
		)
	}

	logger.Info("init: line counter")

	counter := linestats.NewPoolCounter(pool)

	logger.Info("init: server")

	srv := server.NewServer(
		logger,
		conf,
		counter,
		pool,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		logger.Info("interrupt")

		cancel()
	}()

	go func() {
		logger.Info("start: server")

		err := srv.Start()
		if err != nil {
			logger.Fatal("failed to start server",
				zap.Error(err),
			)
			os.Exit(errExitCode)
		}
	}()

	<-ctx.Done()

	logger.Info("stop: server")

	srv.Stop()

	logger.Info("finish")
}
