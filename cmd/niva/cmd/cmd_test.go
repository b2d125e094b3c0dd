package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Niva v"+version+"\n", out)
}

func TestEventsList(t *testing.T) {
	out, err := run(t, "events", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "preferences.draft.submitted")
	assert.Contains(t, out, "NAME")
}

func TestEventsListJSON(t *testing.T) {
	out, err := run(t, "events", "list", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Topics []struct {
			Name   string `json:"name"`
			Module string `json:"module"`
		} `json:"topics"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "preferences", got.Topics[0].Module)
}

func TestEventsGet(t *testing.T) {
	out, err := run(t, "events", "get", "preferences.draft.submitted")
	require.NoError(t, err)
	assert.Contains(t, out, "Module:      preferences")
	assert.Contains(t, out, `"frequency":"monthly"`)

	_, err = run(t, "events", "get", "nope.missing")
	assert.ErrorContains(t, err, "not found")
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "/preferences/submit")
	assert.Contains(t, out, "/health")
}

func TestEventsListRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "events", "list", "-f", "yaml")
	assert.ErrorContains(t, err, "unsupported output format")
}
