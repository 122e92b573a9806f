package screening

import "strconv"

// Decision is the hiring recommendation derived from the total score.
type Decision string

const (
	Shortlist Decision = "SHORTLIST"
	Maybe     Decision = "MAYBE"
	Reject    Decision = "REJECT"
)

func (d Decision) Valid() bool {
	switch d {
	case Shortlist, Maybe, Reject:
		return true
	default:
		return false
	}
}

// Icon is a presentational marker for terminal and HTML output.
func (d Decision) Icon() string {
	switch d {
	case Shortlist:
		return "✅"
	case Maybe:
		return "⚠️"
	case Reject:
		return "❌"
	default:
		return ""
	}
}

// Thresholds are the inclusive lower bounds of the SHORTLIST and MAYBE bands.
type Thresholds struct {
	Shortlist float64 `mapstructure:"shortlist" json:"shortlist"`
	Maybe     float64 `mapstructure:"maybe" json:"maybe"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Shortlist: 70, Maybe: 50}
}

// Decide maps a total score to a decision.
func (t Thresholds) Decide(total float64) Decision {
	switch {
	case total >= t.Shortlist:
		return Shortlist
	case total >= t.Maybe:
		return Maybe
	default:
		return Reject
	}
}

// SkillScore returns the matched share of required skills as a percentage and
// scaled to weight. Both are zero when nothing is required.
func SkillScore(matched, required int, weight float64) (percent, score float64) {
	if required == 0 {
		return 0, 0
	}

	ratio := float64(matched) / float64(required)
	return round2(ratio * 100), round2(ratio * weight)
}

// Aggregate sums the already rounded component scores.
func Aggregate(skill, similarity, bonus float64) float64 {
	return round2(skill + similarity + bonus)
}

// round2 rounds half to even on the exact binary value, the same way
// the decimal formatter does.
func round2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
