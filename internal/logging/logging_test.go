package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tc.level, "text", &buf)
			l.Debug("d-msg")
			l.Info("i-msg")
			l.Warn("w-msg")
			out := buf.String()
			assert.Equal(t, tc.debugSeen, strings.Contains(out, "d-msg"))
			assert.Equal(t, tc.infoSeen, strings.Contains(out, "i-msg"))
			assert.Equal(t, tc.warnSeen, strings.Contains(out, "w-msg"))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New("info", "json", &buf).Info("hello", "rows", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, float64(3), rec["rows"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestContext(t *testing.T) {
	l := Discard()
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Panics(t, func() { FromContext(context.Background()) })
}
