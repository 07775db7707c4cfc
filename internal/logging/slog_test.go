package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlog(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newSlog(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "store loaded", "records", 2)
	log.Info(ctx, "credential added", "id", "a1")
	log.Warn(ctx, "clipboard copy failed", "error", "no display")
	log.Error(ctx, "delete failed", "id", "a1")

	out := buf.String()
	for _, want := range []string{
		`level=DEBUG msg="store loaded" records=2`,
		`level=INFO msg="credential added" id=a1`,
		`level=WARN msg="clipboard copy failed" error="no display"`,
		`level=ERROR msg="delete failed" id=a1`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_LevelFilter(t *testing.T) {
	log, buf := newSlog(slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSlogLogger_WithKeepsParentClean(t *testing.T) {
	log, buf := newSlog(slog.LevelInfo)
	ctx := context.Background()

	child := log.With("component", "view_controller")
	child.Info(ctx, "from child")
	log.Info(ctx, "from parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 2) {
		assert.Contains(t, string(lines[0]), "component=view_controller")
		assert.NotContains(t, string(lines[1]), "component=")
	}
}

func TestNop_Discards(t *testing.T) {
	l := Nop().With("component", "repl")
	ctx := context.Background()
	assert.NotPanics(t, func() {
		l.Debug(ctx, "x")
		l.Info(ctx, "x")
		l.Warn(ctx, "x")
		l.Error(ctx, "x")
	})
}

func TestNew_SlogWritesTextAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(FormatSlog, "debug", &buf)
	require.NoError(t, err)

	log.With("component", "credential_store").Debug(context.Background(), "collection loaded", "count", 0)
	assert.Contains(t, buf.String(), `level=DEBUG msg="collection loaded" component=credential_store count=0`)
}
