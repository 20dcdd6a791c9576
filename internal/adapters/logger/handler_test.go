package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/shade/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}).
		WithGroup("registry").
		WithAttrs([]slog.Attr{slog.String("suffix", ".d.ts")})
	lg := slog.New(handler)

	lg.Info("reconciled", "shaders", 3)
	lg.Error("failed", "path", "a.vert.d.ts")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Debug("hidden")
	level.Set(slog.LevelDebug)
	lg.Debug("shown")

	assert.Equal(t, "~ shown\n", buf.String())
}

func TestPrettyHandler_NilOptions(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("hidden")
	lg.Warn("careful")

	assert.Equal(t, "! careful\n", buf.String())
}

func TestPrettyHandler_ConcurrentWritesShareLock(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	base := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handlers := []slog.Handler{
		base,
		base.WithAttrs([]slog.Attr{slog.String("id", "a.vert")}),
		base.WithGroup("pass"),
	}

	const perHandler = 200
	var wg sync.WaitGroup
	for _, h := range handlers {
		lg := slog.New(h)
		for range 4 {
			wg.Go(func() {
				for range perHandler {
					lg.Info("wrote stub")
				}
			})
		}
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(handlers)*4*perHandler)
	for _, line := range lines {
		assert.Contains(t, line, "wrote stub")
	}
}
