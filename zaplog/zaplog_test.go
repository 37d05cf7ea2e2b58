// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package zaplog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, closer, err := New(&Config{Level: "info", Component: "azcdn"}, buf)
	require.NoError(t, err)
	defer closer()

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "azcdn", entry["component"])
	require.Equal(t, float64(os.Getpid()), entry["pid"])
	require.NotEmpty(t, entry["invocationID"])
}

func TestNewDefaultLevelIsWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, closer, err := New(&Config{}, buf)
	require.NoError(t, err)
	defer closer()

	logger.Info("hidden")
	require.Empty(t, buf.String())
	logger.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	_, closer, err := New(&Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
	closer()
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azcdn.log")
	logger, closer, err := New(&Config{Level: "debug", LogPath: path}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Debug("to file")
	require.NoError(t, logger.Sync())
	closer()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "to file")
}
