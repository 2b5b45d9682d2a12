package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroes/internal/logging"
)

func TestNew_DevelopmentIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithOutput(&buf, "heroes", "development", "")

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
	assert.Contains(t, buf.String(), "logger initialized")
}

func TestNew_ProductionIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithOutput(&buf, "heroes", "production", "")

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Empty(t, buf.String(), "init line is debug and must be filtered")

	l.WithField("op", "getHero").Info("hello")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "getHero", line["op"])
}

func TestNew_ExplicitLevelWins(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithOutput(&buf, "heroes", "production", "warn")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l = logging.NewWithOutput(&buf, "heroes", "development", "bogus")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}
