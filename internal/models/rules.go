package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSecretMin       = 100
	DefaultSecretMax       = 9999
	DefaultSmallerThanSpan = 200
	DefaultMaxMultiplier   = 9
)

// Rules controls how a puzzle is generated.
type Rules struct {
	SecretMin       int    `yaml:"secret_min"`
	SecretMax       int    `yaml:"secret_max"`
	SmallerThanSpan int    `yaml:"smaller_than_span"` // SmallerThan bound is in (secret, secret+span]
	MaxMultiplier   int    `yaml:"max_multiplier"`    // HasMultiple multiplier is in [1, max]
	Kinds           []Kind `yaml:"kinds"`
}

// DefaultRules returns the reference rules: secrets in 100..9999 and every kind in the pool.
func DefaultRules() Rules {
	return Rules{
		SecretMin:       DefaultSecretMin,
		SecretMax:       DefaultSecretMax,
		SmallerThanSpan: DefaultSmallerThanSpan,
		MaxMultiplier:   DefaultMaxMultiplier,
		Kinds:           AllKinds(),
	}
}

// Validate checks that the rules can always produce a puzzle.
func (r Rules) Validate() error {
	if r.SecretMin < 1 {
		return fmt.Errorf("secret_min must be at least 1, got %d", r.SecretMin)
	}
	if r.SecretMin > r.SecretMax {
		return fmt.Errorf("secret_min %d is greater than secret_max %d", r.SecretMin, r.SecretMax)
	}
	if r.SmallerThanSpan < 1 {
		return fmt.Errorf("smaller_than_span must be at least 1, got %d", r.SmallerThanSpan)
	}
	if r.MaxMultiplier < 1 {
		return fmt.Errorf("max_multiplier must be at least 1, got %d", r.MaxMultiplier)
	}
	if len(r.Kinds) == 0 {
		return fmt.Errorf("kinds must not be empty")
	}
	for _, k := range r.Kinds {
		if !k.Valid() {
			return fmt.Errorf("unknown condition kind %q", k)
		}
	}
	return nil
}

// LoadRules reads rules from a YAML file. Fields missing from the file keep
// their default values.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules %s: %w", path, err)
	}
	return rules, nil
}

// SaveRules writes rules to a YAML file.
func (r Rules) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
