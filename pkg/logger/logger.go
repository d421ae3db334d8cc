package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	multi "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

type Logger interface {
	SetLogLevel(levelStr string)
	GetLogLevel() string

	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, err error, args ...any)
	Fatal(msg string, err error, args ...any)
}

// Options selects where log records go. File, when set, receives JSON records
// and is rotated by size.
type Options struct {
	Level  string
	File   string
	Output io.Writer
}

type SlogLogger struct {
	log        *slog.Logger
	level      *slog.LevelVar
	levelNames map[slog.Leveler]string
	rotate     *lumberjack.Logger
}

func New(o Options) *SlogLogger {
	l := &SlogLogger{
		level: &slog.LevelVar{},
		levelNames: map[slog.Leveler]string{
			LevelTrace: "TRACE",
			LevelFatal: "FATAL",
		},
	}
	l.SetLogLevel(o.Level)

	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     l.level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				levelLabel, exists := l.levelNames[level]
				if !exists {
					levelLabel = level.String()
				}

				a.Value = slog.StringValue(levelLabel)
			}
			if a.Key == slog.SourceKey {
				a.Value = slog.StringValue(callerOutsideLogger(10))
			}

			return a
		},
	}

	out := o.Output
	if out == nil {
		// stdout carries results
		out = os.Stderr
	}
	handlers := []slog.Handler{slog.NewTextHandler(out, opts)}

	if o.File != "" {
		l.rotate = &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    64,
			MaxBackups: 8,
			MaxAge:     30,
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(l.rotate, opts))
	}

	l.log = slog.New(multi.Fanout(handlers...))
	return l
}

// NewNop returns a logger that drops everything.
func NewNop() *SlogLogger {
	l := &SlogLogger{level: &slog.LevelVar{}}
	l.log = slog.New(slog.DiscardHandler)
	return l
}

func (l *SlogLogger) SetLogLevel(levelStr string) {
	switch levelStr {
	case "trace":
		l.level.Set(LevelTrace)
	case "debug":
		l.level.Set(slog.LevelDebug)
	case "info":
		l.level.Set(slog.LevelInfo)
	case "warn":
		l.level.Set(slog.LevelWarn)
	case "error":
		l.level.Set(slog.LevelError)
	case "fatal":
		l.level.Set(LevelFatal)
	default:
		l.level.Set(slog.LevelInfo)
	}
}

func (l *SlogLogger) GetLogLevel() string {
	switch l.level.Level() {
	case LevelTrace:
		return "trace"
	case slog.LevelDebug:
		return "debug"
	case slog.LevelInfo:
		return "info"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}

	return "info"
}

func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log.Log(context.Background(), LevelTrace, msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, err error, args ...any) {
	if err != nil {
		l.log.Error(msg, append([]any{slog.Any("error", err.Error())}, args...)...)
	} else {
		l.log.Error(msg, args...)
	}
}

func (l *SlogLogger) Fatal(msg string, err error, args ...any) {
	if err != nil {
		l.log.Log(context.Background(), LevelFatal, msg, append([]any{slog.Any("error", err.Error())}, args...)...)
	} else {
		l.log.Log(context.Background(), LevelFatal, msg, args...)
	}

	l.Close()
	os.Exit(1)
}

// Close flushes and closes the rotating log file, if any.
func (l *SlogLogger) Close() error {
	if l.rotate == nil {
		return nil
	}
	return l.rotate.Close()
}

func callerOutsideLogger(skip int) string {
	for i := skip; ; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if !strings.Contains(file, "logger") {
			return fmt.Sprintf("%s:%d", file, line)
		}
	}
	return "unknown"
}
