package screening

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Weights are the maximum points of each criterion.
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills"`
	Similarity float64 `mapstructure:"similarity" json:"similarity"`
	BonusCap   float64 `mapstructure:"bonus-cap" json:"bonus_cap"`
}

func DefaultWeights() Weights {
	return Weights{Skills: 40, Similarity: 30, BonusCap: 30}
}

// Config is the scoring vocabulary and rule set.
type Config struct {
	Skills     []string    `mapstructure:"skills" json:"skills"`
	Bonus      []BonusRule `mapstructure:"bonus" json:"bonus"`
	Weights    Weights     `mapstructure:"weights" json:"weights"`
	Thresholds Thresholds  `mapstructure:"thresholds" json:"thresholds"`
}

func DefaultConfig() *Config {
	return &Config{
		Skills:     append([]string(nil), DefaultSkills...),
		Bonus:      DefaultBonusRules(),
		Weights:    DefaultWeights(),
		Thresholds: DefaultThresholds(),
	}
}

// DecodeConfig overlays raw settings on DefaultConfig. Lists given in raw
// replace the defaults entirely, scalar settings are merged one by one.
func DecodeConfig(raw map[string]any) (*Config, error) {
	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}

	if _, ok := raw["skills"]; ok {
		cfg.Skills = nil
	}
	if _, ok := raw["bonus"]; ok {
		cfg.Bonus = nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode screening config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can produce scores in range.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("screening config is required")
	}
	if NewVocabulary(c.Skills...).Len() == 0 {
		return errors.New("skill vocabulary must not be empty")
	}
	if c.Weights.Skills < 0 || c.Weights.Similarity < 0 || c.Weights.BonusCap < 0 {
		return fmt.Errorf("weights must not be negative: %+v", c.Weights)
	}
	for _, rule := range c.Bonus {
		if strings.TrimSpace(rule.Name) == "" {
			return errors.New("bonus rule name is required")
		}
		if rule.Points < 0 {
			return fmt.Errorf("bonus rule %q: points must not be negative", rule.Name)
		}
		if len(rule.Phrases) == 0 {
			return fmt.Errorf("bonus rule %q: at least one phrase is required", rule.Name)
		}
	}
	if c.Thresholds.Maybe > c.Thresholds.Shortlist {
		return fmt.Errorf("maybe threshold %.2f is above shortlist threshold %.2f",
			c.Thresholds.Maybe, c.Thresholds.Shortlist)
	}
	return nil
}
