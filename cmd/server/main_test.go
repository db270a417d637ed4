package main

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutsuc/fsnd-trivia-api/internal/config"
)

func TestRunReportsConfigError(t *testing.T) {
	t.Setenv("TRIVIA_DATABASE_DRIVER", "mysql")

	err := run(false)
	assert.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestRunReportsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	port := busy.Addr().(*net.TCPAddr).Port
	t.Setenv("TRIVIA_SERVER_PORT", strconv.Itoa(port))
	t.Setenv("TRIVIA_DATABASE_DRIVER", "sqlite")
	t.Setenv("TRIVIA_DATABASE_DSN", filepath.Join(t.TempDir(), "trivia.db"))
	t.Setenv("TRIVIA_METRICS_ENABLED", "false")

	err = run(true)
	assert.ErrorContains(t, err, "failed to start server")
}
