package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"wfgraph/internal/adapters/logger"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SetOutputCapturesLines(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New().(*logger.Logger)
	log.SetOutput(&buf)

	log.Info("building target")
	log.Warn("option ignored")

	out := buf.String()
	assert.True(t, strings.Contains(out, "building target"))
	assert.True(t, strings.Contains(out, "option ignored"))
}

func TestLogger_ErrorIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New().(*logger.Logger)
	log.SetOutput(&buf)

	log.Error(assertError("boom"))
	assert.Contains(t, buf.String(), "boom")
}

type assertError string

func (e assertError) Error() string { return string(e) }
