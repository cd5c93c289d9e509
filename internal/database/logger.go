package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// logger routes gorm's log output through charmbracelet/log.
// Failed statements are logged by the Client methods themselves, so traces stay at debug level.
type logger struct {
	log   *log.Logger
	level gormlogger.LogLevel
}

func newLogger() *logger {
	return &logger{
		log:   log.Default().WithPrefix("database"),
		level: gormlogger.Warn,
	}
}

func (l *logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &logger{log: l.log, level: level}
}

func (l *logger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log.Infof(msg, args...)
	}
}

func (l *logger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warnf(msg, args...)
	}
}

func (l *logger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log.Errorf(msg, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent || log.GetLevel() > log.DebugLevel {
		return
	}
	sql, rows := fc()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.log.Debug("query failed", "sql", sql, "rows", rows, "elapsed", time.Since(begin), "error", err)
		return
	}
	l.log.Debug("query", "sql", sql, "rows", rows, "elapsed", time.Since(begin))
}
