package screening

import (
	"reflect"
	"testing"
)

func TestNewVocabulary(t *testing.T) {
	v := NewVocabulary(" Python ", "python", "", "Machine Learning", "  ")

	want := []string{"python", "machine learning"}
	if got := v.Phrases(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	vocabulary := NewVocabulary(DefaultSkills...)

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "empty text",
			text:   "",
			expect: []string{},
		},
		{
			name:   "case insensitive",
			text:   "PYTHON and Sql",
			expect: []string{"python", "sql"},
		},
		{
			name:   "multi word phrase must match verbatim",
			text:   "machine-learning and learning about machines",
			expect: []string{},
		},
		{
			name:   "multi word phrase",
			text:   "Looking for Python and SQL developer with machine learning experience.",
			expect: []string{"machine learning", "python", "sql"},
		},
		{
			name:   "substring semantics",
			text:   "JavaScript",
			expect: []string{"java", "javascript"},
		},
		{
			name:   "symbols inside phrases",
			text:   "C++, scikit-learn, Power BI",
			expect: []string{"c++", "power bi", "scikit-learn"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractSkills(tt.text, vocabulary).Sorted()
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestSkillSetOperations(t *testing.T) {
	resume := NewSkillSet("python", "java")
	jd := NewSkillSet("python", "sql", "machine learning")

	matched := resume.Intersect(jd)
	missing := jd.Difference(matched)

	if got := matched.Sorted(); !reflect.DeepEqual(got, []string{"python"}) {
		t.Fatalf("unexpected matched skills: %v", got)
	}
	if got := missing.Sorted(); !reflect.DeepEqual(got, []string{"machine learning", "sql"}) {
		t.Fatalf("unexpected missing skills: %v", got)
	}

	for skill := range matched {
		if !resume.Has(skill) || !jd.Has(skill) {
			t.Fatalf("matched skill %q must be in both sets", skill)
		}
	}
	if matched.Len()+missing.Len() != jd.Len() {
		t.Fatalf("matched and missing must partition the job skills")
	}
}
