package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmind/sigmem-go/pkg/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := core.DefaultConfig()

	assert.InDelta(t, 0.01, cfg.Learning.LearningRate, 1e-9)
	assert.InDelta(t, 0.01, cfg.Consolidation.DecayRate, 1e-9)
	assert.InDelta(t, 0.8, cfg.Consolidation.RetentionThreshold, 1e-9)
	assert.Equal(t, core.ProviderNone, cfg.Storage.Provider)
	assert.Equal(t, int64(1), cfg.NodeID)
	assert.NoError(t, cfg.Validate())
}

func TestValidateStorageRequirements(t *testing.T) {
	testCases := []struct {
		name    string
		storage core.StorageConfig
		wantErr bool
	}{
		{"none", core.StorageConfig{}, false},
		{"file with path", core.StorageConfig{Provider: core.ProviderFile, Path: "/tmp/x"}, false},
		{"file without path", core.StorageConfig{Provider: core.ProviderFile}, true},
		{"sqlite without path", core.StorageConfig{Provider: core.ProviderSQLite}, true},
		{"postgres with dsn", core.StorageConfig{Provider: core.ProviderPostgres, DSN: "postgres://x"}, false},
		{"postgres without dsn", core.StorageConfig{Provider: core.ProviderPostgres}, true},
		{"mysql without dsn", core.StorageConfig{Provider: core.ProviderMySQL}, true},
		{"unknown provider", core.StorageConfig{Provider: "etcd"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.Storage = tc.storage

			err := cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRates(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Consolidation.DecayRate = 1.5
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfig)

	cfg = core.DefaultConfig()
	cfg.Consolidation.DecayRate = -0.1
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfig)

	cfg = core.DefaultConfig()
	cfg.Learning.LearningRate = -0.01
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfig)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SIGMEM_LEARNING_RATE", "0.05")
	t.Setenv("SIGMEM_DECAY_RATE", "0.02")
	t.Setenv("SIGMEM_RETENTION_THRESHOLD", "0.9")
	t.Setenv("SIGMEM_SEED", "1234")
	t.Setenv("SIGMEM_STORAGE_PROVIDER", "file")
	t.Setenv("SIGMEM_STORAGE_PATH", t.TempDir())
	t.Setenv("SIGMEM_OPENAI_MODEL", "gpt-4o")

	cfg, err := core.LoadConfigFromEnv()
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cfg.Learning.LearningRate, 1e-9)
	assert.InDelta(t, 0.02, cfg.Consolidation.DecayRate, 1e-9)
	assert.InDelta(t, 0.9, cfg.Consolidation.RetentionThreshold, 1e-9)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, core.ProviderFile, cfg.Storage.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}

func TestLoadConfigFromEnvInvalidValue(t *testing.T) {
	t.Setenv("SIGMEM_DECAY_RATE", "not-a-float")

	_, err := core.LoadConfigFromEnv()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestMemoryErrorFormat(t *testing.T) {
	err := core.NewMemoryError("Consolidate", core.ErrNotFound)

	assert.Equal(t, "sigmem: Consolidate: sigel not found", err.Error())
	assert.ErrorIs(t, err, core.ErrNotFound)
}
