package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogIsUsableBeforeInit(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Info("pre-init logging is a no-op, not a crash")
	})
}

func TestInitReplacesNop(t *testing.T) {
	assert.NoError(t, Init(true))
	assert.NotNil(t, Log)
	assert.True(t, Log.Core().Enabled(0)) // InfoLevel enabled after Init
}
