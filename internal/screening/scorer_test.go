package screening

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	sampleResume = "Experienced Python developer. Worked on github projects. Certified in AWS."
	sampleJD     = "Looking for Python and SQL developer with machine learning experience."
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()

	scorer, err := New(nil, zap.NewNop())
	require.NoError(t, err)
	return scorer
}

func TestScoreSample(t *testing.T) {
	result := newTestScorer(t).Score(sampleResume, sampleJD)

	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"machine learning", "sql"}, result.MissingSkills)
	assert.Equal(t, 33.33, result.SkillMatchPercent)
	assert.Equal(t, 13.33, result.SkillScore)
	assert.Equal(t, 15.59, result.SimilarityPercent)
	assert.Equal(t, 4.68, result.SimilarityScore)
	assert.Equal(t, 22.0, result.BonusScore)
	assert.Equal(t, 40.01, result.TotalScore)
	assert.Equal(t, Reject, result.Decision)

	assert.Equal(t, []string{
		"Skill Match: 33.33% → 13.33/40",
		"JD Similarity: 15.59% → 4.68/30",
		"Bonus Score: 22/30 (internship/project/github/certification)",
		"Matched Skills: python",
		"Missing Skills: machine learning, sql",
	}, result.Explanation)
	assert.Equal(t, Suggestions(Reject), result.Suggestions)
}

func TestScoreDecisions(t *testing.T) {
	scorer := newTestScorer(t)

	tests := []struct {
		name     string
		resume   string
		jd       string
		total    float64
		decision Decision
	}{
		{
			name:     "maybe",
			resume:   "python developer project",
			jd:       "python developer",
			total:    69.28,
			decision: Maybe,
		},
		{
			name:     "shortlist",
			resume:   "Python SQL internship, project, github, certification",
			jd:       "Python SQL",
			decision: Shortlist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.resume, tt.jd)
			assert.Equal(t, tt.decision, result.Decision)
			if tt.total != 0 {
				assert.Equal(t, tt.total, result.TotalScore)
			}
			assert.LessOrEqual(t, result.TotalScore, 100.0)
			assert.Equal(t, Aggregate(result.SkillScore, result.SimilarityScore, result.BonusScore), result.TotalScore)
		})
	}
}

func TestScoreEmptyResume(t *testing.T) {
	result := newTestScorer(t).Score("", sampleJD)

	assert.Zero(t, result.SkillScore)
	assert.Zero(t, result.SimilarityScore)
	assert.Zero(t, result.BonusScore)
	assert.Zero(t, result.TotalScore)
	assert.Equal(t, Reject, result.Decision)
	assert.Empty(t, result.MatchedSkills)
	assert.Equal(t, []string{"machine learning", "python", "sql"}, result.MissingSkills)
	assert.Equal(t, "Skill Match: 0% → 0/40", result.Explanation[0])
}

func TestScoreJobWithoutSkills(t *testing.T) {
	result := newTestScorer(t).Score(sampleResume, "Friendly team player wanted")

	assert.Zero(t, result.SkillScore)
	assert.Zero(t, result.SkillMatchPercent)
	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.Len(t, result.Explanation, 3)
}

func TestScoreDegradesOnEmptyVocabulary(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	scorer, err := New(DefaultConfig(), zap.New(core))
	require.NoError(t, err)

	result := scorer.Score("the and of", "with for a")

	assert.Zero(t, result.SimilarityScore)
	assert.Zero(t, result.TotalScore)
	assert.Equal(t, Reject, result.Decision)

	degraded := observed.FilterMessage("similarity degraded to zero").All()
	require.Len(t, degraded, 1)
	assert.Equal(t, ErrEmptyVocabulary.Error(), degraded[0].ContextMap()["reason"])
	assert.Empty(t, observed.FilterLevelExact(zapcore.WarnLevel).All())
}

func TestScoreIdenticalDocuments(t *testing.T) {
	result := newTestScorer(t).Score("python developer", "python developer")

	assert.Equal(t, 30.0, result.SimilarityScore)
	assert.Equal(t, 100.0, result.SimilarityPercent)
	assert.Equal(t, 40.0, result.SkillScore)
	assert.Zero(t, result.BonusScore)
	assert.Equal(t, 70.0, result.TotalScore)
	assert.Equal(t, Shortlist, result.Decision)
}

func TestScoreCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Skills = []string{"Go", "Kubernetes"}
	cfg.Bonus = []BonusRule{{Name: "oss", Phrases: []string{"open source"}, Points: 10}}
	cfg.Weights.BonusCap = 5

	scorer, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, scorer.Vocabulary())

	result := scorer.Score("Go developer, open source maintainer", "Go and Kubernetes engineer")
	assert.Equal(t, []string{"go"}, result.MatchedSkills)
	assert.Equal(t, []string{"kubernetes"}, result.MissingSkills)
	assert.Equal(t, 5.0, result.BonusScore)
	assert.Equal(t, "Bonus Score: 5/5 (oss)", result.Explanation[2])
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Skills = nil

	_, err := New(cfg, nil)
	require.Error(t, err)
}

func TestResultJSON(t *testing.T) {
	result := newTestScorer(t).Score("", "Friendly team player wanted")

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"total_score", "decision", "skill_score", "similarity_score", "bonus_score",
		"skill_match_percent", "similarity_percent", "matched_skills", "missing_skills", "explanation",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, []any{}, decoded["matched_skills"])
	assert.Equal(t, "REJECT", decoded["decision"])
}

func TestScoreConcurrentUse(t *testing.T) {
	scorer := newTestScorer(t)
	want := scorer.Score(sampleResume, sampleJD)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := scorer.Score(sampleResume, sampleJD)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
