package taxonomy

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestClassifier_Classify_Scenario(t *testing.T) {
	c := NewDefaultClassifier()

	chunks := []string{
		"The password reset policy requires employees to use the self-service portal.",
		"VPN access rules: remote workers must connect through the corporate VPN.",
	}

	result := c.Classify(chunks)

	wantLabels := map[string]bool{
		"Identity & Access Management": true,
		"Network & Remote Access":      true,
	}
	for label := range wantLabels {
		found := false
		for _, got := range result.Labels {
			if got == label {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Classify() labels %v missing %q", result.Labels, label)
		}
	}

	if len(result.FollowUps) == 0 || len(result.FollowUps) > 3 {
		t.Fatalf("Classify() returned %d follow-ups, want 1..3", len(result.FollowUps))
	}

	// Follow-ups must come only from the matched categories' pools.
	allowed := make(map[string]bool)
	for _, cat := range DefaultTaxonomy() {
		if wantLabels[cat.Label] {
			for _, q := range cat.Questions {
				allowed[q] = true
			}
		}
	}
	for _, q := range result.FollowUps {
		if !allowed[q] {
			t.Errorf("follow-up %q not drawn from matched category pools", q)
		}
	}
}

func TestClassifier_Classify_OrderIndependent(t *testing.T) {
	c := NewDefaultClassifier()

	chunks := []string{
		"Report phishing attempts to the security team immediately.",
		"Printer toner can be ordered through the helpdesk portal.",
		"Software license requests go through your manager.",
	}
	permuted := []string{chunks[2], chunks[0], chunks[1]}

	a := c.Classify(chunks)
	b := c.Classify(permuted)

	if !reflect.DeepEqual(a.Labels, b.Labels) {
		t.Errorf("Classify() labels differ under permutation: %v vs %v", a.Labels, b.Labels)
	}
}

func TestClassifier_Classify_Deterministic(t *testing.T) {
	c := NewDefaultClassifier()
	chunks := []string{"email and vpn and printer and backup issues everywhere"}

	first := c.Classify(chunks)
	for i := 0; i < 10; i++ {
		again := c.Classify(chunks)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Classify() not deterministic: %+v vs %+v", first, again)
		}
	}

	if !sort.StringsAreSorted(first.Labels) {
		t.Errorf("Classify() labels not sorted: %v", first.Labels)
	}
}

func TestClassifier_Classify_CaseInsensitive(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify([]string{"PASSWORD policies apply to ALL LOGIN attempts"})

	found := false
	for _, label := range result.Labels {
		if label == "Identity & Access Management" {
			found = true
		}
	}
	if !found {
		t.Errorf("Classify() should match keywords case-insensitively, got %v", result.Labels)
	}
}

func TestClassifier_Classify_NoMatchFallback(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify([]string{"the cafeteria menu changes on tuesdays"})

	if len(result.Labels) != 0 {
		t.Errorf("Classify() labels = %v, want none", result.Labels)
	}
	if !reflect.DeepEqual(result.FollowUps, GenericFollowUps()) {
		t.Errorf("Classify() follow-ups = %v, want generic fallback", result.FollowUps)
	}
	if len(result.FollowUps) != 3 {
		t.Errorf("generic fallback has %d items, want exactly 3", len(result.FollowUps))
	}
}

func TestClassifier_Classify_EmptyInput(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify(nil)
	if len(result.Labels) != 0 {
		t.Errorf("Classify(nil) labels = %v, want none", result.Labels)
	}
	if len(result.FollowUps) != 3 {
		t.Errorf("Classify(nil) follow-ups = %d items, want 3", len(result.FollowUps))
	}
}

func TestClassifier_FollowUps_TruncatedToThree(t *testing.T) {
	c := NewDefaultClassifier()

	// Trigger many categories at once.
	result := c.Classify([]string{
		"password vpn printer email laptop backup phishing software ticket server mobile onboarding",
	})

	if len(result.Labels) < 4 {
		t.Fatalf("expected many categories to match, got %v", result.Labels)
	}
	if len(result.FollowUps) != 3 {
		t.Errorf("follow-ups = %d items, want exactly 3", len(result.FollowUps))
	}

	// Candidates come from the first three matched categories in label order.
	allowed := make(map[string]bool)
	count := 0
	for _, cat := range DefaultTaxonomy() {
		if count >= 3 {
			break
		}
		for _, label := range result.Labels[:3] {
			if cat.Label == label {
				for _, q := range cat.Questions {
					allowed[q] = true
				}
				count++
			}
		}
	}
	for _, q := range result.FollowUps {
		if !allowed[q] {
			t.Errorf("follow-up %q not from the first three matched pools", q)
		}
	}
}

func TestClassifier_FollowUps_Deduplicated(t *testing.T) {
	categories := []Category{
		{
			Label:     "A",
			Keywords:  []string{"alpha"},
			Questions: []string{"shared question", "a question"},
		},
		{
			Label:     "B",
			Keywords:  []string{"beta"},
			Questions: []string{"shared question", "b question"},
		},
	}
	c := NewClassifier(categories, GenericFollowUps())

	result := c.Classify([]string{"alpha and beta both appear"})

	seen := make(map[string]int)
	for _, q := range result.FollowUps {
		seen[q]++
	}
	if seen["shared question"] != 1 {
		t.Errorf("duplicate question appeared %d times, want 1", seen["shared question"])
	}
	want := []string{"shared question", "a question", "b question"}
	if !reflect.DeepEqual(result.FollowUps, want) {
		t.Errorf("follow-ups = %v, want %v", result.FollowUps, want)
	}
}

func TestDefaultTaxonomy_KeywordsDisjoint(t *testing.T) {
	owner := make(map[string]string)
	for _, cat := range DefaultTaxonomy() {
		for _, keyword := range cat.Keywords {
			k := strings.ToLower(keyword)
			if prev, ok := owner[k]; ok {
				t.Errorf("keyword %q appears in both %q and %q", k, prev, cat.Label)
			}
			owner[k] = cat.Label
		}
	}
}

func TestDefaultTaxonomy_Shape(t *testing.T) {
	cats := DefaultTaxonomy()
	if len(cats) != 12 {
		t.Fatalf("taxonomy has %d categories, want 12", len(cats))
	}
	for _, cat := range cats {
		if len(cat.Keywords) == 0 {
			t.Errorf("category %q has no keywords", cat.Label)
		}
		if len(cat.Questions) < 3 {
			t.Errorf("category %q has %d questions, want at least 3", cat.Label, len(cat.Questions))
		}
	}
}
