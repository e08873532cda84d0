package retrieval

// ConfidenceLevel is a coarse label summarizing retrieval quality.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// ConfidenceMapper maps a mean similarity score to a ConfidenceLevel.
// Breakpoints are exclusive on the lower comparison: a mean of exactly
// HighAbove is Medium, a mean of exactly MediumAbove is Low.
type ConfidenceMapper struct {
	HighAbove   float64
	MediumAbove float64
}

// NewConfidenceMapper creates a mapper with the given breakpoints.
func NewConfidenceMapper(highAbove, mediumAbove float64) ConfidenceMapper {
	return ConfidenceMapper{
		HighAbove:   highAbove,
		MediumAbove: mediumAbove,
	}
}

// FromMean maps a mean score to a level. The checks run in a fixed order,
// High first, so the boundaries are unambiguous.
func (m ConfidenceMapper) FromMean(mean float64) ConfidenceLevel {
	if mean > m.HighAbove {
		return ConfidenceHigh
	}
	if mean > m.MediumAbove {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
