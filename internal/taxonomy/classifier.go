package taxonomy

import (
	"sort"
	"strings"
)

// maxFollowUps bounds the number of follow-up suggestions per response.
const maxFollowUps = 3

// Classification is the result of classifying retrieved context.
type Classification struct {
	// Labels are the matched category labels, deduplicated and sorted
	// alphabetically. Go maps don't guarantee iteration order, so sorting
	// is what makes the output deterministic.
	Labels []string
	// FollowUps are up to three suggested follow-up questions.
	FollowUps []string
}

// Classifier maps retrieved chunk texts to policy categories and follow-up
// questions by keyword matching. It is a pure function of its inputs and
// safe for concurrent use.
type Classifier struct {
	categories []Category
	fallback   []string
}

// NewClassifier creates a classifier over the given category tables.
// fallback is returned as the follow-up set when no category matches.
func NewClassifier(categories []Category, fallback []string) *Classifier {
	return &Classifier{
		categories: categories,
		fallback:   fallback,
	}
}

// NewDefaultClassifier creates a classifier over the built-in taxonomy.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultTaxonomy(), GenericFollowUps())
}

// Classify matches the combined retrieved context against every category
// independently. Matching is case-insensitive substring containment; a single
// chunk may trigger multiple categories. Chunks are joined with a separator
// so no keyword can match across a chunk boundary, which keeps the result
// independent of chunk order.
func (c *Classifier) Classify(chunks []string) Classification {
	combined := strings.ToLower(strings.Join(chunks, "\n\n"))

	var matched []Category
	for _, cat := range c.categories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(combined, strings.ToLower(keyword)) {
				matched = append(matched, cat)
				break
			}
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Label < matched[j].Label
	})

	labels := make([]string, len(matched))
	for i, cat := range matched {
		labels[i] = cat.Label
	}

	return Classification{
		Labels:    labels,
		FollowUps: c.followUps(matched),
	}
}

// followUps draws candidates from up to three matched categories' question
// pools, deduplicated, truncated to three. With no matches it falls back to
// the fixed generic set.
func (c *Classifier) followUps(matched []Category) []string {
	if len(matched) == 0 {
		followUps := make([]string, len(c.fallback))
		copy(followUps, c.fallback)
		return followUps
	}

	pools := matched
	if len(pools) > maxFollowUps {
		pools = pools[:maxFollowUps]
	}

	seen := make(map[string]bool)
	var followUps []string
	for _, cat := range pools {
		for _, question := range cat.Questions {
			if seen[question] {
				continue
			}
			seen[question] = true
			followUps = append(followUps, question)
			if len(followUps) == maxFollowUps {
				return followUps
			}
		}
	}

	return followUps
}
