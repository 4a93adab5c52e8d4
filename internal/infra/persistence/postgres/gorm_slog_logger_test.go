package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"agenda/config"
	deliverycontext "agenda/internal/delivery/context"
	"agenda/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func query() (string, int64) {
	return `SELECT * FROM "individuals" WHERE tax_id = $1`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failures are logged with the request logger", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		ctx := deliverycontext.WithLogger(context.Background(), l.logger.With("request_id", "req-9"))

		l.Trace(ctx, time.Now(), query, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), "request_id=req-9")
	})

	t.Run("misses and duplicates are not errors", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), query, &pgconn.PgError{Code: pgUniqueViolation})

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), query, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true)
		verbose.Trace(context.Background(), time.Now(), query, nil)
		assert.Contains(t, verboseBuf.String(), "msg=Query")
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet, _ := newBufferedGormLogger(false)
	_, params := quiet.ParamsFilter(context.Background(), "q", "52998224725")
	assert.Nil(t, params)

	verbose, _ := newBufferedGormLogger(true)
	_, params = verbose.ParamsFilter(context.Background(), "q", "52998224725")
	assert.Equal(t, []any{"52998224725"}, params)
}
