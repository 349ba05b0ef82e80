package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var file, console bytes.Buffer
	logger := newLogger(&file, &console, false)

	logger.Info("started")
	logger.Warn("careful")
	logger.Error("broken")
	logger.Debug("details")

	assert.Contains(t, console.String(), "[INFO] ")
	assert.Contains(t, console.String(), "[WARN] ")
	assert.Contains(t, console.String(), "[ERROR] ")
	assert.NotContains(t, console.String(), "details")
	assert.Contains(t, file.String(), "[DEBUG] ")
	assert.Contains(t, file.String(), "details")
}

func TestLoggerDebugMode(t *testing.T) {
	var console bytes.Buffer
	logger := newLogger(nil, &console, true)
	logger.Debug("details")
	assert.Contains(t, console.String(), "[DEBUG] ")
}

func TestLoggerConsoleOnlyDropsDebug(t *testing.T) {
	var console bytes.Buffer
	logger := newLogger(nil, &console, false)
	logger.Debug("details")
	logger.Info("visible")
	assert.NotContains(t, console.String(), "details")
	assert.Contains(t, console.String(), "visible")
}
