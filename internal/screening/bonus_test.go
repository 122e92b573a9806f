package screening

import "testing"

func TestBonus(t *testing.T) {
	t.Parallel()

	rules := DefaultBonusRules()

	tests := []struct {
		name   string
		text   string
		expect float64
	}{
		{name: "no triggers", text: "Backend engineer", expect: 0},
		{name: "empty text", text: "", expect: 0},
		{name: "internship", text: "Summer INTERNSHIP at Acme", expect: 8},
		{name: "repeated phrase counts once", text: "project project projects", expect: 8},
		{name: "either certification phrase", text: "AWS Certified", expect: 7},
		{name: "both certification phrases count once", text: "certified, certification", expect: 7},
		{
			name:   "github projects certified",
			text:   "Experienced Python developer. Worked on github projects. Certified in AWS.",
			expect: 22,
		},
		{name: "all triggers", text: "internship, project, github, certification", expect: 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Bonus(tt.text, rules, 30); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestBonusIsMonotonic(t *testing.T) {
	rules := DefaultBonusRules()
	phrases := []string{"github", "internship", "certified", "project", "github", "project"}

	text := "resume"
	previous := Bonus(text, rules, 30)
	for _, phrase := range phrases {
		text += " " + phrase
		current := Bonus(text, rules, 30)
		if current < previous {
			t.Fatalf("bonus decreased from %v to %v after adding %q", previous, current, phrase)
		}
		if current > 30 {
			t.Fatalf("bonus %v exceeds the cap", current)
		}
		previous = current
	}

	if previous != 30 {
		t.Fatalf("expected full bonus, got %v", previous)
	}
}

func TestBonusIsCapped(t *testing.T) {
	rules := []BonusRule{
		{Name: "oss", Phrases: []string{"open source"}, Points: 20},
		{Name: "talks", Phrases: []string{"conference"}, Points: 20},
	}

	if got := Bonus("open source maintainer, conference speaker", rules, 30); got != 30 {
		t.Fatalf("expected capped bonus of 30, got %v", got)
	}
}
