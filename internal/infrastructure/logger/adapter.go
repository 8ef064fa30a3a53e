package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

type Config struct {
	Level string
	// File, when set, receives the same JSON lines as stdout.
	File string
}

type LoggerAdapter struct {
	base *zap.Logger
	file *os.File
}

func NewLoggerAdapter(cfg Config) (*LoggerAdapter, error) {
	level, err := zapcore.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	return &LoggerAdapter{
		base: zap.New(zapcore.NewTee(cores...)),
		file: file,
	}, nil
}

// NewFromZap wraps an existing zap logger, e.g. zaptest or zap.NewNop.
func NewFromZap(l *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{base: l}
}

func NewNop() *LoggerAdapter {
	return NewFromZap(zap.NewNop())
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.base.Debug(msg, fields(args)...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.base.Info(msg, fields(args)...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.base.Warn(msg, fields(args)...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.base.Error(msg, fields(args)...)
}

func (l *LoggerAdapter) Named(name string) output.LoggerPort {
	return &LoggerAdapter{base: l.base.Named(name), file: l.file}
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{base: l.base.With(zap.Any(key, value)), file: l.file}
}

func (l *LoggerAdapter) WithFields(f map[string]any) output.LoggerPort {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zf := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, f[k]))
	}
	return &LoggerAdapter{base: l.base.With(zf...), file: l.file}
}

func (l *LoggerAdapter) Close() error {
	_ = l.base.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// fields turns alternating key/value args into zap fields. A trailing key
// without a value, or a non-string key, is logged under "!BADKEY".
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			out = append(out, zap.Any("!BADKEY", args[i]))
			i--
			continue
		}
		if i+1 >= len(args) {
			out = append(out, zap.Any("!BADKEY", key))
			break
		}
		if err, isErr := args[i+1].(error); isErr {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, args[i+1]))
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
