package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		l, err := New(lvl)
		require.NoError(t, err, "level %s", lvl)
		require.NotNil(t, l.GetZap())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Level("loud"))
	assert.Error(t, err)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Debug("debug", Field{Key: "k", Value: 1})
	l.Info("info")
	l.Warn("warn")
	l.Error(errors.New("boom"), Field{Key: "cause", Value: "test"})
	l.Debugf("engine %d", 1)
	l.Infof("engine %s", "msg")
	l.Warnf("engine")
	l.Errorf("engine")
	assert.NoError(t, l.Sync())
}
