package gormstore

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"kasa/config"
	deliverycontext "kasa/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestQueryLogger_Trace(t *testing.T) {
	var fallbackOut, requestOut bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&fallbackOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	requestLogger := slog.New(slog.NewTextHandler(&requestOut, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-1"))

	l := newQueryLogger(fallback, &config.Config{})
	query := func() (string, int64) { return `SELECT * FROM "biens"`, 1 }

	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)
	l.Trace(ctx, time.Now(), query, errors.New("no such table"))
	assert.Contains(t, requestOut.String(), "Record store query failed")
	assert.Contains(t, requestOut.String(), "request_id=req-1")
	assert.Empty(t, fallbackOut.String())

	requestOut.Reset()
	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, requestOut.String())

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, fallbackOut.String(), "Record store slow query")

	fallbackOut.Reset()
	l.Trace(context.Background(), time.Now(), query, nil)
	assert.Empty(t, fallbackOut.String())

	l.LogMode(gormlogger.Info).Trace(context.Background(), time.Now(), query, nil)
	assert.Contains(t, fallbackOut.String(), `sql="SELECT * FROM \"biens\""`)

	fallbackOut.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
	assert.Empty(t, fallbackOut.String())
}
