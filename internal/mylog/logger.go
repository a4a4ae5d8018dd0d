package mylog

import (
	"log/slog"
	"os"
	"time"

	"github.com/jcooky/go-din"
	"github.com/lmittmann/tint"
	"github.com/openstay/stayagent/config"
)

type Logger = slog.Logger

var (
	Key = din.NewRandomName()
)

func ToLogLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewLogger(logLevel string, logHandler string) *Logger {
	slogLevel := ToLogLevel(logLevel)

	var handler slog.Handler
	switch logHandler {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     slogLevel,
		})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

func init() {
	din.Register(Key, func(c *din.Container) (any, error) {
		conf, err := din.GetT[*config.LogConfig](c)
		if err != nil {
			return nil, err
		}

		return NewLogger(conf.LogLevel, conf.LogHandler), nil
	})
}
