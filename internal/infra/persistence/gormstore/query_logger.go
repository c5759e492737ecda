package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kasa/config"
	deliverycontext "kasa/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output to the request logger found in ctx, so record
// store queries carry the request_id of the call that issued them.
type queryLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newQueryLogger(fallback *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		fallback: fallback,
		level:    level,
		slow:     slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed queries, then slow ones, then everything in Info mode.
// Missing rows are expected lookups and are never reported as failures.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		logger.LogAttrs(ctx, slog.LevelError, "Record store query failed", append(queryAttrs(fc, elapsed), slog.Any("error", err))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		logger.LogAttrs(ctx, slog.LevelWarn, "Record store slow query", append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slow))...)
	case l.level >= gormlogger.Info:
		logger.LogAttrs(ctx, slog.LevelDebug, "Record store query", queryAttrs(fc, elapsed)...)
	}
}

func (l *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level < threshold {
		return
	}

	logger.LogAttrs(ctx, level, "Record store", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
