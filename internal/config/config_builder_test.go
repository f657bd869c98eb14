package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source's non-zero field
// is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(func(c *StructuredConfig) { c.Storage.PoolSize = 20 }),
		validConfig(func(c *StructuredConfig) { c.Storage.PoolSize = 5 }),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Storage.PoolSize)
}

// TestBuild_DefaultsFillGaps verifies that defaults populate fields no other
// source provided.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DSN: "postgres://localhost/app"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/app", cfg.Storage.DSN)
	assert.Equal(t, 10, cfg.Storage.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Storage.AcquireTimeout)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestBuild_ValidationFailure verifies that a merged config missing required
// fields fails to build.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.withDefaults() // defaults alone carry no DSN

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestValidate_Rules checks each validation rule in isolation.
func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *StructuredConfig) {},
		},
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero pool size",
			mutate:  func(c *StructuredConfig) { c.Storage.PoolSize = 0 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing redis address",
			mutate:  func(c *StructuredConfig) { c.Session.RedisAddress = "" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "non-positive session TTL",
			mutate:  func(c *StructuredConfig) { c.Session.TTL = 0 },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "bcrypt cost below minimum",
			mutate:  func(c *StructuredConfig) { c.App.BcryptCost = 9 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero touch queue",
			mutate:  func(c *StructuredConfig) { c.Workers.TouchQueueSize = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(tt.mutate)
			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func validConfig(mutate func(*StructuredConfig)) *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DSN = "postgres://localhost/app"
	mutate(cfg)
	return cfg
}
