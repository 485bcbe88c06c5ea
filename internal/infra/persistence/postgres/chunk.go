package postgres

// inClauseChunkLen caps the number of values bound into a single IN clause.
const inClauseChunkLen = 1000

// chunkInt64s splits ids into slices of at most inClauseChunkLen elements.
func chunkInt64s(ids []int64) [][]int64 {
	if len(ids) == 0 {
		return nil
	}

	chunks := make([][]int64, 0, (len(ids)+inClauseChunkLen-1)/inClauseChunkLen)
	for start := 0; start < len(ids); start += inClauseChunkLen {
		end := start + inClauseChunkLen
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}

	return chunks
}

// chunkStrings splits values into slices of at most inClauseChunkLen elements.
func chunkStrings(values []string) [][]string {
	if len(values) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(values)+inClauseChunkLen-1)/inClauseChunkLen)
	for start := 0; start < len(values); start += inClauseChunkLen {
		end := start + inClauseChunkLen
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[start:end])
	}

	return chunks
}
