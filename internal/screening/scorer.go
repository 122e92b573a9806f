package screening

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/utils"
)

const maxPreviewLength = 120

// Result is the outcome of scoring one resume against one job description.
type Result struct {
	Breakdown
	Decision      Decision `json:"decision"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Explanation   []string `json:"explanation"`
	Suggestions   []string `json:"suggestions"`
}

// Scorer holds an immutable configuration and is safe for concurrent use.
type Scorer struct {
	vocabulary Vocabulary
	bonus      []BonusRule
	weights    Weights
	thresholds Thresholds
	logger     *zap.Logger
}

func New(cfg *Config, logger *zap.Logger) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid screening config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		vocabulary: NewVocabulary(cfg.Skills...),
		bonus:      append([]BonusRule(nil), cfg.Bonus...),
		weights:    cfg.Weights,
		thresholds: cfg.Thresholds,
		logger:     logger,
	}, nil
}

// Score compares resume text with a job description. It never fails:
// degenerate inputs produce zero-valued criteria.
func (s *Scorer) Score(resumeText, jdText string) *Result {
	resumeSkills := ExtractSkills(resumeText, s.vocabulary)
	jdSkills := ExtractSkills(jdText, s.vocabulary)

	matched := resumeSkills.Intersect(jdSkills)
	missing := jdSkills.Difference(matched)

	var b Breakdown
	b.SkillMatchPercent, b.SkillScore = SkillScore(matched.Len(), jdSkills.Len(), s.weights.Skills)

	similarity, err := Similarity(resumeText, jdText)
	if err != nil {
		if !errors.Is(err, ErrEmptyVocabulary) {
			s.logger.Warn("unexpected similarity failure", zap.Error(err))
		}
		s.logger.Debug("similarity degraded to zero",
			zap.String("reason", err.Error()),
			zap.String("resume_preview", utils.TruncateForLog(resumeText, maxPreviewLength)),
			zap.String("jd_preview", utils.TruncateForLog(jdText, maxPreviewLength)),
		)
		similarity = 0
	}
	b.SimilarityPercent = round2(similarity * 100)
	b.SimilarityScore = round2(similarity * s.weights.Similarity)

	b.BonusScore = round2(Bonus(resumeText, s.bonus, s.weights.BonusCap))
	b.TotalScore = Aggregate(b.SkillScore, b.SimilarityScore, b.BonusScore)

	decision := s.thresholds.Decide(b.TotalScore)

	s.logger.Debug("resume scored",
		zap.Int("resume_length", utf8.RuneCountInString(resumeText)),
		zap.Int("jd_length", utf8.RuneCountInString(jdText)),
		zap.Int("jd_skills", jdSkills.Len()),
		zap.Int("matched_skills", matched.Len()),
		zap.Float64("total_score", b.TotalScore),
		zap.String("decision", string(decision)),
	)

	return &Result{
		Breakdown:     b,
		Decision:      decision,
		MatchedSkills: matched.Sorted(),
		MissingSkills: missing.Sorted(),
		Explanation:   Explain(b, s.weights, s.bonus, matched, missing),
		Suggestions:   Suggestions(decision),
	}
}

// Vocabulary returns the skill phrases the scorer looks for.
func (s *Scorer) Vocabulary() []string {
	return s.vocabulary.Phrases()
}
