package screening

import (
	"fmt"
	"strings"
)

// Breakdown holds the per-criterion scores. Every field is rounded to two decimals.
type Breakdown struct {
	SkillScore        float64 `json:"skill_score"`
	SimilarityScore   float64 `json:"similarity_score"`
	BonusScore        float64 `json:"bonus_score"`
	TotalScore        float64 `json:"total_score"`
	SkillMatchPercent float64 `json:"skill_match_percent"`
	SimilarityPercent float64 `json:"similarity_percent"`
}

// Explain renders the breakdown and skill sets as human readable lines.
func Explain(b Breakdown, w Weights, rules []BonusRule, matched, missing SkillSet) []string {
	lines := []string{
		fmt.Sprintf("Skill Match: %s%% → %s/%s",
			formatNumber(b.SkillMatchPercent), formatNumber(b.SkillScore), formatNumber(w.Skills)),
		fmt.Sprintf("JD Similarity: %s%% → %s/%s",
			formatNumber(b.SimilarityPercent), formatNumber(b.SimilarityScore), formatNumber(w.Similarity)),
		fmt.Sprintf("Bonus Score: %s/%s (%s)",
			formatNumber(b.BonusScore), formatNumber(w.BonusCap), ruleNames(rules)),
	}

	if matched.Len() > 0 {
		lines = append(lines, "Matched Skills: "+strings.Join(matched.Sorted(), ", "))
	}
	if missing.Len() > 0 {
		lines = append(lines, "Missing Skills: "+strings.Join(missing.Sorted(), ", "))
	}

	return lines
}

// Suggestions returns advice for the candidate based on the decision.
func Suggestions(d Decision) []string {
	switch d {
	case Reject:
		return []string{
			"Resume does not align well with the job description.",
			"Consider improving skill relevance and project descriptions.",
		}
	case Maybe:
		return []string{
			"Add missing skills if you have hands-on experience.",
			"Improve keyword alignment between resume and JD.",
		}
	case Shortlist:
		return []string{"Strong profile. Proceed with interview preparation."}
	default:
		return nil
	}
}
