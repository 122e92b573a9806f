package screening

import "strings"

// BonusRule awards Points once when any of its phrases occurs in the resume.
type BonusRule struct {
	Name    string   `mapstructure:"name" json:"name"`
	Phrases []string `mapstructure:"phrases" json:"phrases"`
	Points  float64  `mapstructure:"points" json:"points"`
}

// DefaultBonusRules returns the built-in trigger phrases.
func DefaultBonusRules() []BonusRule {
	return []BonusRule{
		{Name: "internship", Phrases: []string{"internship"}, Points: 8},
		{Name: "project", Phrases: []string{"project"}, Points: 8},
		{Name: "github", Phrases: []string{"github"}, Points: 7},
		{Name: "certification", Phrases: []string{"certification", "certified"}, Points: 7},
	}
}

// Matches reports whether the lower-cased text contains one of the rule phrases.
func (r BonusRule) Matches(lower string) bool {
	for _, phrase := range r.Phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" && strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Bonus sums the points of every rule that fires on text and caps the sum at limit.
func Bonus(text string, rules []BonusRule, limit float64) float64 {
	lower := strings.ToLower(text)

	var total float64
	for _, rule := range rules {
		if rule.Matches(lower) {
			total += rule.Points
		}
	}

	if total > limit {
		total = limit
	}
	return total
}

func ruleNames(rules []BonusRule) string {
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, rule.Name)
	}
	return strings.Join(names, "/")
}
