//go:build unit
// +build unit

package modelstore

import (
	"os"
	"path/filepath"
	"testing"

	"model_serving_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobModelStore_SaveAndLoad(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewGobModelStore(log)
	require.NoError(t, err)

	artifact := testutil.NewTestArtifact(t)
	path := filepath.Join(t.TempDir(), "model", "model.gob")

	err = store.Save(path, artifact)
	require.NoError(t, err)

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Name, loaded.Name)
	assert.Equal(t, artifact.Version, loaded.Version)
	assert.Equal(t, artifact.TaskType, loaded.TaskType)
	assert.Equal(t, artifact.Weights, loaded.Weights)
	assert.InDelta(t, artifact.Bias, loaded.Bias, 1e-12)
	assert.True(t, artifact.TrainedAt.Equal(loaded.TrainedAt))
}

func TestGobModelStore_Load_MissingFile(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewGobModelStore(log)
	require.NoError(t, err)

	_, err = store.Load(filepath.Join(t.TempDir(), "does-not-exist.gob"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open model artifact")
}

func TestGobModelStore_Load_CorruptFile(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewGobModelStore(log)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corrupt.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0600))

	_, err = store.Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode model artifact")
}

func TestGobModelStore_Save_InvalidArtifact(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	store, err := NewGobModelStore(log)
	require.NoError(t, err)

	artifact := testutil.NewTestArtifact(t)
	artifact.Weights = []float64{1.0} // mismatch with FeatureCount

	err = store.Save(filepath.Join(t.TempDir(), "model.gob"), artifact)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to save")
}
