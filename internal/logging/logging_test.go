// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/writer/pkg/types"
)

func TestSetupStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := setup(types.LogConfig{Level: "debug"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("family", "resume").Debug("rendered")
	assert.Contains(t, buf.String(), "family=resume")
	assert.Contains(t, buf.String(), "rendered")
}

func TestSetupDefaultLevel(t *testing.T) {
	logger, _, err := setup(types.LogConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestSetupBadLevel(t *testing.T) {
	_, _, err := setup(types.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "writer.log")
	logger, closer, err := Setup(types.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	logger.Info("compiled")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=compiled")
}
