package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "effect"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"session": 3})
	log.Info("session started", "effect", "halo")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "session started", entries[0]["message"])
	require.Equal(t, "effect", entries[0]["component"])
	require.Equal(t, "halo", entries[0]["effect"])
	require.EqualValues(t, 3, entries[0]["session"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("panel", "item-0")
	log.Error(errors.New("boom"), "measure failed", "phase", "opening")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "measure failed", entries[0]["message"])
	require.Equal(t, "item-0", entries[0]["panel"])
	require.Equal(t, "opening", entries[0]["phase"])
	require.Equal(t, "boom", entries[0]["error"])
}

func TestLoggerOddKeyvals(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Warn("dangling", "lonely")
	entries := decode(t, buf)
	require.Equal(t, "lonely", entries[0]["!BADKEY"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.With("k", "v"))
		require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	})

	require.NotPanics(t, func() { Nop().Info("ignored", "k", "v") })
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("region opened", "panel", "item-1")
	require.Contains(t, buf.String(), "region opened")
	require.Contains(t, buf.String(), "item-1")
}
