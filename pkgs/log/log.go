// Package mlog provides named sugared loggers on top of zap, routed
// through a configurable set of output cores.
package mlog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CoreConfig describes one log output.
type CoreConfig struct {
	OutputType  string // "console" or "file"
	OutputPath  string
	Level       string
	EncodeType  string // "json" for JSON encoding, console otherwise
	EncodeColor bool
}

var coreConfigs []CoreConfig

// SetOutputTypes adds outputs used by loggers created afterwards.
func SetOutputTypes(configs ...CoreConfig) {
	coreConfigs = append(coreConfigs, configs...)
}

type Logger struct {
	*zap.SugaredLogger
}

func New(name string) *Logger {
	logger := zap.New(newCore(), zap.AddCaller())
	return &Logger{logger.Sugar().Named(name)}
}

func newCore() zapcore.Core {
	cores := make([]zapcore.Core, 0, len(coreConfigs))
	for _, cfg := range coreConfigs {
		if core := buildCore(cfg); core != nil {
			cores = append(cores, core)
		}
	}
	if len(cores) == 0 {
		// stdout carries command output, logs go to stderr
		cfg := CoreConfig{OutputType: "console", OutputPath: "stderr", EncodeColor: true}
		if core := buildCore(cfg); core != nil {
			cores = append(cores, core)
		}
	}
	return zapcore.NewTee(cores...)
}

func buildCore(cfg CoreConfig) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		// Keys can be anything except the empty string.
		TimeKey:          "T",
		LevelKey:         "L",
		NameKey:          "N",
		CallerKey:        "C",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "M",
		StacktraceKey:    "S",
		EncodeTime:       zapcore.RFC3339TimeEncoder,
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: "\t",
	}
	if cfg.EncodeColor {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	var out string
	switch cfg.OutputType {
	case "", "console":
		out = "stderr"
		if strings.ToLower(cfg.OutputPath) == "stdout" {
			out = "stdout"
		}
	case "file":
		if cfg.OutputPath == "" {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
			return nil
		}
		encoderConfig.CallerKey = zapcore.OmitKey
		out = cfg.OutputPath
	default:
		return nil
	}

	var encoder zapcore.Encoder
	switch cfg.EncodeType {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	writer, _, err := zap.Open(out)
	if err != nil {
		return nil
	}
	return zapcore.NewCore(encoder, writer, level)
}
