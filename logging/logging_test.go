package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	var buf bytes.Buffer
	InitializeLogging(&buf)

	Log.Debug("hidden")
	Log.Infof("visible %d", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible 1")

	require.NoError(t, ConfigureLogging("DEBUG"))
	Log.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")

	require.NoError(t, ConfigureLogging("ERROR"))
	Log.Warning("dropped")
	assert.NotContains(t, buf.String(), "dropped")

	assert.Error(t, ConfigureLogging("LOUD"))
}
