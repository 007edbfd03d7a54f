package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false)
	assert.Equal(t, log.InfoLevel, quiet.GetLevel())

	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	quiet.Warn("skipping", "path", "a/b")
	assert.Contains(t, buf.String(), Prefix)
	assert.Contains(t, buf.String(), "path=a/b")

	assert.Equal(t, log.DebugLevel, New(&buf, true).GetLevel())
}
