package ingest

import "fmt"

// Chunk is a bounded-length slice of the source document.
type Chunk struct {
	Index int
	Text  string
}

// Chunker splits text into overlapping fixed-size windows. Sizes are
// measured in runes so multi-byte content chunks the same as ASCII.
// For a document of L runes with size S and overlap O, the window stride
// is S-O, so the chunk count is 1 for L <= S and ceil((L-O)/(S-O)) above.
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker creates a chunker. Overlap must be smaller than size or the
// window would never advance.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be greater than 0")
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, size)")
	}
	return &Chunker{Size: size, Overlap: overlap}, nil
}

// Split splits text into overlapping windows. Empty input yields no chunks.
func (c *Chunker) Split(text string) []Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	stride := c.Size - c.Overlap
	var chunks []Chunk
	for start := 0; ; start += stride {
		end := start + c.Size
		if end >= len(runes) {
			chunks = append(chunks, Chunk{
				Index: len(chunks),
				Text:  string(runes[start:]),
			})
			break
		}
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  string(runes[start:end]),
		})
	}

	return chunks
}
