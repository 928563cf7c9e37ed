package rank

// sparseMatrix is a row-major sparse document-term matrix: one map of
// column index to value per document row. Rows for documents with no
// candidates stay empty and contribute nothing beyond the corpus size
// used by IDF smoothing.
type sparseMatrix struct {
	rows []map[int]float64
}

// buildMatrix fills the matrix with raw term frequencies.
func buildMatrix(bags []map[string]int, index map[string]int) *sparseMatrix {
	m := &sparseMatrix{rows: make([]map[int]float64, len(bags))}
	for i, bag := range bags {
		row := make(map[int]float64, len(bag))
		for term, freq := range bag {
			row[index[term]] = float64(freq)
		}
		m.rows[i] = row
	}
	return m
}

// applyTFIDF scales every entry by its column's IDF weight in place.
func (m *sparseMatrix) applyTFIDF(idf []float64) {
	for _, row := range m.rows {
		for col, tf := range row {
			row[col] = tf * idf[col]
		}
	}
}

// columnSums sums each column across all rows.
func (m *sparseMatrix) columnSums(cols int) []float64 {
	sums := make([]float64, cols)
	for _, row := range m.rows {
		for col, v := range row {
			sums[col] += v
		}
	}
	return sums
}
