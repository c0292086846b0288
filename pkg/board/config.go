package board

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig specifies all tunable parameters for one Analyze call
// (spec 6.3). It is request-scoped: nothing here persists across
// requests, and the same config + seed must always produce the same
// response.
type EngineConfig struct {
	// SampleBudget is the maximum accepted-or-attempted sample count
	// for the Distribution Estimator.
	SampleBudget int `yaml:"sample_budget" json:"sample_budget"`

	// WallClockMS is the estimator's deadline in milliseconds.
	WallClockMS int `yaml:"wallclock_ms" json:"wallclock_ms"`

	// Seed optionally fixes the RNG seed for reproducible sampling.
	// A nil Seed means "derive one from the current time".
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// QuitThresholdLevel is the level-mode quit advisory threshold.
	QuitThresholdLevel float64 `yaml:"quit_threshold_level" json:"quit_threshold_level"`

	// QuitThresholdProfit is the profit-mode quit advisory threshold.
	QuitThresholdProfit float64 `yaml:"quit_threshold_profit" json:"quit_threshold_profit"`

	// RiskTiers holds the three boundaries separating
	// Safe|Low|Medium|High, in ascending order (spec 4.4's defaults
	// are 0, 0.15, 0.35).
	RiskTiers [3]float64 `yaml:"risk_tiers" json:"risk_tiers"`
}

// DefaultEngineConfig returns the configuration with every default
// named in spec 6.3.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SampleBudget:        20000,
		WallClockMS:         2000,
		Seed:                nil,
		QuitThresholdLevel:  0.45,
		QuitThresholdProfit: 1.0,
		RiskTiers:           [3]float64{0.0, 0.15, 0.35},
	}
}

// LoadConfig reads and validates a YAML configuration file, starting
// from the defaults and overlaying whatever fields are present.
func LoadConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading engine config: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
// Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing engine config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every EngineConfig field against its documented
// bounds.
func (c *EngineConfig) Validate() error {
	if c.SampleBudget <= 0 {
		return fmt.Errorf("sample_budget must be positive, got %d", c.SampleBudget)
	}
	if c.WallClockMS <= 0 {
		return fmt.Errorf("wallclock_ms must be positive, got %d", c.WallClockMS)
	}
	if c.QuitThresholdLevel < 0.0 || c.QuitThresholdLevel > 1.0 {
		return fmt.Errorf("quit_threshold_level must be in [0,1], got %f", c.QuitThresholdLevel)
	}
	if c.QuitThresholdProfit < 0.0 {
		return fmt.Errorf("quit_threshold_profit must be non-negative, got %f", c.QuitThresholdProfit)
	}
	for i := 1; i < 3; i++ {
		if c.RiskTiers[i] < c.RiskTiers[i-1] {
			return fmt.Errorf("risk_tiers must be ascending, got %v", c.RiskTiers)
		}
	}
	for i, t := range c.RiskTiers {
		if t < 0.0 || t > 1.0 {
			return fmt.Errorf("risk_tiers[%d] must be in [0,1], got %f", i, t)
		}
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *EngineConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to
// derive reproducible per-component sub-seeds the same way the
// teacher's pipeline derives per-stage RNG seeds.
func (c *EngineConfig) Hash() []byte {
	h := sha256.New()
	data, err := c.ToYAML()
	if err != nil {
		// Fallback: hash the sample budget alone so Hash never panics.
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(c.SampleBudget))
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h.Write(data)
	return h.Sum(nil)
}
