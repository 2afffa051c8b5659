package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", false, &buf)
	t.Cleanup(func() { Setup("info", false, nil) })

	For("inspect").Info("hidden")
	For("inspect").Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "cmd=inspect")
}

func TestSetup_UnknownLevel(t *testing.T) {
	Setup("loud", false, &bytes.Buffer{})
	t.Cleanup(func() { Setup("info", false, nil) })

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", true, &buf)
	t.Cleanup(func() { Setup("info", false, nil) })

	For("watch").WithField("file", "styles.yaml").Debug("reloaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reloaded", entry["msg"])
	assert.Equal(t, "watch", entry["cmd"])
	assert.Equal(t, "styles.yaml", entry["file"])
}
