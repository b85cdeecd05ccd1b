package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, GetLoggerLevelByString("info"))
	assert.Equal(t, zapcore.ErrorLevel, GetLoggerLevelByString("error"))
	assert.Equal(t, zapcore.DebugLevel, GetLoggerLevelByString("loud"))
	assert.Equal(t, []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}, LevelNames())
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debug("hidden")
	l.Named("engine").With("piece", "abc").Infof("placed at %d,%d", 1, 2)
	require.NoError(t, l.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "info", rec["LEVEL"])
	assert.Equal(t, "engine", rec["NAME"])
	assert.Equal(t, "placed at 1,2", rec["MESSAGE"])
	assert.Equal(t, "abc", rec["piece"])
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens")
	l.Named("x").Warnf("still %s", "nothing")

	var zero Logx
	zero.Info("uninitialised logger is silent")
}
