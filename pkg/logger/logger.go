package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/vending/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "vending"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// ParseLevel maps a configured level name to a zap level. Names are case
// insensitive.
func ParseLevel(name string) (zapcore.Level, error) {
	lvl, ok := logLvlMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unsupported log lvl: %s", name)
	}
	return lvl, nil
}

// New builds a console logger at the given level tagged with the service name.
func New(lvlName string) (*zap.Logger, error) {
	lvl, err := ParseLevel(lvlName)
	if err != nil {
		return nil, err
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         "console",
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": serviceName},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

// InitLogger replaces the global zap logger with one built from conf.
func InitLogger(conf *config.Config) error {
	logger, err := New(conf.LogLvl)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
