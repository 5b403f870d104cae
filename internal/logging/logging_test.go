package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.WarnLevel, ParseLevel("nonsense"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("overwrite", "path", "/tmp/x")
	out := buf.String()
	assert.Contains(t, out, Prefix)
	assert.Contains(t, out, "overwrite")
	assert.Contains(t, out, "/tmp/x")
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	Verbose(l, false)
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	Verbose(l, true)
	assert.Equal(t, log.InfoLevel, l.GetLevel())

	d := New(&buf, "debug")
	Verbose(d, true)
	assert.Equal(t, log.DebugLevel, d.GetLevel())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	assert.Equal(t, log.FatalLevel, l.GetLevel())
}
