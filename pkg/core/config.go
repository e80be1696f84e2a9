package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage provider names.
const (
	ProviderNone     = ""
	ProviderFile     = "file"
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
	ProviderMySQL    = "mysql"
)

// Config contains the complete configuration for a sigmem client.
//
// Example:
//
//	config := &core.Config{
//	    Learning: core.LearningConfig{LearningRate: 0.01},
//	    Consolidation: core.ConsolidationConfig{
//	        DecayRate:          0.01,
//	        RetentionThreshold: 0.8,
//	    },
//	    Storage: core.StorageConfig{
//	        Provider: "sqlite",
//	        Path:     "./sigmem.db",
//	    },
//	}
type Config struct {
	// Learning contains learning loop settings.
	Learning LearningConfig `json:"learning"`

	// Consolidation contains consolidation pass settings.
	Consolidation ConsolidationConfig `json:"consolidation"`

	// Storage contains snapshot persistence settings.
	Storage StorageConfig `json:"storage"`

	// OpenAI contains optional LLM summarization settings.
	OpenAI OpenAIConfig `json:"openai"`

	// Seed seeds the learner's RNG. Zero means time-based seeding;
	// tests set a fixed seed for reproducible runs.
	Seed int64 `json:"seed"`

	// NodeID is the snowflake node for ID generation (default 1).
	NodeID int64 `json:"node_id"`
}

// LearningConfig contains learning loop settings.
type LearningConfig struct {
	// LearningRate scales pattern reinforcement for newly created sigels.
	LearningRate float64 `json:"learning_rate"`
}

// ConsolidationConfig contains consolidation pass settings.
type ConsolidationConfig struct {
	// DecayRate is the blanket pattern decay per pass (default 0.01).
	DecayRate float64 `json:"decay_rate"`

	// RetentionThreshold is the relevance cutoff for original records
	// (default 0.8).
	RetentionThreshold float64 `json:"retention_threshold"`
}

// StorageConfig contains snapshot persistence settings.
type StorageConfig struct {
	// Provider selects the backend: "file", "sqlite", "postgres", "mysql",
	// or empty for no persistence.
	Provider string `json:"provider"`

	// Path is the directory (file) or database file (sqlite).
	Path string `json:"path,omitempty"`

	// DSN is the connection string (postgres, mysql).
	DSN string `json:"dsn,omitempty"`

	// TableName overrides the snapshot table name (sql backends).
	TableName string `json:"table_name,omitempty"`
}

// OpenAIConfig contains optional LLM summarization settings.
type OpenAIConfig struct {
	// APIKey enables the OpenAI summarizer when non-empty.
	APIKey string `json:"-"`

	// Model is the completion model (default "gpt-4o-mini").
	Model string `json:"model,omitempty"`
}

// DefaultConfig returns a configuration with all defaults and no
// persistence.
func DefaultConfig() *Config {
	return &Config{
		Learning:      LearningConfig{LearningRate: 0.01},
		Consolidation: ConsolidationConfig{DecayRate: 0.01, RetentionThreshold: 0.8},
		NodeID:        1,
	}
}

// LoadConfigFromEnv builds a configuration from environment variables,
// loading a .env file first when one is present.
//
// Recognized variables:
//
//	SIGMEM_LEARNING_RATE        float, default 0.01
//	SIGMEM_DECAY_RATE           float, default 0.01
//	SIGMEM_RETENTION_THRESHOLD  float, default 0.8
//	SIGMEM_STORAGE_PROVIDER     file | sqlite | postgres | mysql
//	SIGMEM_STORAGE_PATH         directory or database file
//	SIGMEM_STORAGE_DSN          connection string
//	SIGMEM_STORAGE_TABLE        table name override
//	SIGMEM_SEED                 int64 RNG seed
//	OPENAI_API_KEY              enables LLM summarization
//	SIGMEM_OPENAI_MODEL         completion model
func LoadConfigFromEnv() (*Config, error) {
	// Missing .env is fine; process env still applies.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	var err error
	if cfg.Learning.LearningRate, err = envFloat("SIGMEM_LEARNING_RATE", cfg.Learning.LearningRate); err != nil {
		return nil, err
	}
	if cfg.Consolidation.DecayRate, err = envFloat("SIGMEM_DECAY_RATE", cfg.Consolidation.DecayRate); err != nil {
		return nil, err
	}
	if cfg.Consolidation.RetentionThreshold, err = envFloat("SIGMEM_RETENTION_THRESHOLD", cfg.Consolidation.RetentionThreshold); err != nil {
		return nil, err
	}
	if cfg.Seed, err = envInt("SIGMEM_SEED", 0); err != nil {
		return nil, err
	}

	cfg.Storage.Provider = os.Getenv("SIGMEM_STORAGE_PROVIDER")
	cfg.Storage.Path = os.Getenv("SIGMEM_STORAGE_PATH")
	cfg.Storage.DSN = os.Getenv("SIGMEM_STORAGE_DSN")
	cfg.Storage.TableName = os.Getenv("SIGMEM_STORAGE_TABLE")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAI.Model = os.Getenv("SIGMEM_OPENAI_MODEL")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.Storage.Provider {
	case ProviderNone:
	case ProviderFile, ProviderSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage provider %q requires a path", ErrInvalidConfig, c.Storage.Provider)
		}
	case ProviderPostgres, ProviderMySQL:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: storage provider %q requires a DSN", ErrInvalidConfig, c.Storage.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown storage provider %q", ErrInvalidConfig, c.Storage.Provider)
	}

	if c.Consolidation.DecayRate < 0 || c.Consolidation.DecayRate > 1 {
		return fmt.Errorf("%w: decay rate must be in [0, 1]", ErrInvalidConfig)
	}
	if c.Learning.LearningRate < 0 {
		return fmt.Errorf("%w: learning rate must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	return f, nil
}

func envInt(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	return n, nil
}
