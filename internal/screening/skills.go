package screening

import (
	"sort"
	"strings"
)

// DefaultSkills is the built-in skill vocabulary.
var DefaultSkills = []string{
	"python", "java", "c++", "sql", "mongodb",
	"machine learning", "deep learning", "data science",
	"flask", "django", "react", "node", "html", "css", "javascript",
	"power bi", "excel",
	"numpy", "pandas", "scikit-learn", "tensorflow", "pytorch",
}

// Vocabulary is an ordered list of lower-cased skill phrases without duplicates.
type Vocabulary struct {
	phrases []string
}

// NewVocabulary trims and lower-cases the phrases, dropping blanks and duplicates.
func NewVocabulary(phrases ...string) Vocabulary {
	seen := make(map[string]struct{}, len(phrases))
	result := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		result = append(result, phrase)
	}

	return Vocabulary{phrases: result}
}

func (v Vocabulary) Len() int {
	return len(v.phrases)
}

// Phrases returns a copy of the vocabulary.
func (v Vocabulary) Phrases() []string {
	return append([]string(nil), v.phrases...)
}

// SkillSet is a set of phrases drawn from a Vocabulary.
type SkillSet map[string]struct{}

func NewSkillSet(skills ...string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, skill := range skills {
		set[skill] = struct{}{}
	}
	return set
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. Never nil.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if other.Has(skill) {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Difference returns the skills of s that are not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if !other.Has(skill) {
			out[skill] = struct{}{}
		}
	}
	return out
}

// ExtractSkills returns the vocabulary phrases contained in text.
// Matching is plain substring containment on the lower-cased text, so
// multi-word phrases must appear verbatim.
func ExtractSkills(text string, vocabulary Vocabulary) SkillSet {
	found := make(SkillSet)
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, phrase := range vocabulary.phrases {
		if strings.Contains(lower, phrase) {
			found[phrase] = struct{}{}
		}
	}

	return found
}
