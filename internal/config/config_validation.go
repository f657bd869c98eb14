package config

// minBcryptCost is the lowest bcrypt cost factor accepted for password
// hashing. Lower values do not adequately resist offline brute force.
const minBcryptCost = 10

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
// Validation failure is fatal: the server must not start with a broken config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.PoolSize < 1 || cfg.Storage.AcquireTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.RedisAddress == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < minBcryptCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.HealthCheckInterval <= 0 || cfg.Workers.TouchQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
