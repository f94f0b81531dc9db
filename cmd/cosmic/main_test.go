package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-explorer/cosmic_explorer/internal/config"
)

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosmic.log")
	var console bytes.Buffer
	log, closeLog := setupLogging(&config.Config{LogLevel: "info", LogFile: path}, &console)
	log.Info().Msg("flight scene mounted")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flight scene mounted")
	assert.Contains(t, console.String(), "flight scene mounted")
	assert.NotContains(t, console.String(), "log file unavailable")
}

func TestSetupLoggingWarnsOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cosmic.log")
	var console bytes.Buffer
	log, closeLog := setupLogging(&config.Config{LogLevel: "info", LogFile: path}, &console)
	defer closeLog()

	assert.Contains(t, console.String(), "log file unavailable")
	assert.Contains(t, console.String(), path)

	log.Info().Msg("still logging")
	assert.Contains(t, console.String(), "still logging")
	assert.NoFileExists(t, path)
}
