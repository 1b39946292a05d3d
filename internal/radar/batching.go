package radar

const (
	// Sentiment requests are split into sub-batches of this size so a
	// single completion never carries an unbounded payload.
	SentimentChunkSize = 20

	// Topic analysis does not chunk; it drops everything past this cap.
	// The asymmetry with sentiment is inherited behavior, kept as-is.
	TopicMaxTexts = 50
)

// ChunkTexts splits texts into contiguous chunks of at most size items.
// The last chunk may be shorter. A nil or empty input yields no chunks.
func ChunkTexts(texts []string, size int) [][]string {
	if size <= 0 || len(texts) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(texts)+size-1)/size)
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, texts[start:end])
	}
	return chunks
}
