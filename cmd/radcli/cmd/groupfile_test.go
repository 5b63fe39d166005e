package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGroupFile(t *testing.T) {
	path := writeFile(t, "group.yaml", `
name: checkout-service
update_model: true
anomaly_threshold: 4.5
subgroups:
  - name: latency
    anomaly_threshold: 6.0
    parameters:
      - key: http.p99
        label: p99 latency
  - name: errors
    parameters:
      - key: http.5xx
`)

	settings, err := loadGroupFile(path)
	require.NoError(t, err)

	assert.Equal(t, "checkout-service", settings.Name)
	assert.True(t, settings.Options.UpdateModel)
	require.NotNil(t, settings.Options.AnomalyThreshold)
	assert.Equal(t, 4.5, *settings.Options.AnomalyThreshold)

	require.Len(t, settings.Subgroups, 2)
	assert.Equal(t, "latency", settings.Subgroups[0].Name)
	require.NotNil(t, settings.Subgroups[0].Options.AnomalyThreshold)
	assert.Equal(t, 6.0, *settings.Subgroups[0].Options.AnomalyThreshold)
	require.Len(t, settings.Subgroups[0].Parameters, 1)
	assert.Equal(t, "http.p99", settings.Subgroups[0].Parameters[0].Key)
	assert.Nil(t, settings.Subgroups[1].Options.AnomalyThreshold)
}

func TestLoadTrainingFile(t *testing.T) {
	training, err := loadTrainingFile("")
	require.NoError(t, err)
	assert.Nil(t, training)

	path := writeFile(t, "training.yaml", `
ranges:
  - from: 2026-08-01T00:00:00Z
    to: 2026-08-02T00:00:00Z
excluded_subgroups: [1, 3]
`)

	training, err = loadTrainingFile(path)
	require.NoError(t, err)
	require.NotNil(t, training)
	require.Len(t, training.Ranges, 1)
	assert.Equal(t, []int{1, 3}, training.ExcludedSubgroups)
	assert.Equal(t, int64(24*60*60), int64(training.Ranges[0].To.Sub(training.Ranges[0].From).Seconds()))
}
