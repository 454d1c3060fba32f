package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of these should panic
	logger.Info("balance credited: %d", 50)
	logger.Warn("upload degraded for user %s", "user-123")
	logger.Error("purchase failed: %v", "insufficient balance")
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()

	for i := 0; i < 3; i++ {
		logger.Info("call %d", i)
		logger.Warn("call %d", i)
		logger.Error("call %d", i)
	}
}
