package timer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddTime(90*time.Second))
	e.Start(t0)
	e.Tick(t0.Add(10 * time.Second))

	snap := e.Snapshot(t0.Add(10 * time.Second))
	assert.Equal(t, int64(80000), snap.RemainingMillis)
	assert.True(t, snap.Running)

	restored := NewEngine()
	later := t0.Add(time.Hour)
	require.NoError(t, restored.Restore(snap, later))
	assert.Equal(t, e.State(), restored.State())

	// downtime is not counted; only time after restore is
	restored.Tick(later.Add(5 * time.Second))
	assert.Equal(t, 75*time.Second, restored.State().Remaining)
}

func TestSnapshot_JSONFields(t *testing.T) {
	data, err := json.Marshal(Snapshot{RemainingMillis: 42, Running: true, SavedAt: t0})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"remaining_ms":42`)
	assert.Contains(t, string(data), `"running":true`)
}

func TestRestore_RejectsNegative(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddTime(time.Second))

	err := e.Restore(Snapshot{RemainingMillis: -1}, t0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, time.Second, e.State().Remaining)
}
