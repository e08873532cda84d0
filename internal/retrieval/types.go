package retrieval

// ScoredDocument pairs a retrieved chunk's text with its similarity score.
// Scores follow the vector store's convention: higher is more similar.
type ScoredDocument struct {
	Text  string
	Score float64
}

// Result is the outcome of a filtered retrieval.
type Result struct {
	// Documents are the hits whose score strictly exceeded the threshold.
	Documents []ScoredDocument
	// MeanScore is the arithmetic mean over Documents. Zero when empty.
	MeanScore float64
}

// Empty reports whether nothing relevant was retrieved. A search that
// returned hits all at or below the threshold is indistinguishable from a
// search that returned nothing.
func (r Result) Empty() bool {
	return len(r.Documents) == 0
}

// Texts returns the surviving documents' text in retrieval order.
func (r Result) Texts() []string {
	texts := make([]string, len(r.Documents))
	for i, doc := range r.Documents {
		texts[i] = doc.Text
	}
	return texts
}
