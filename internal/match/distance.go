package match

// Distance is the Levenshtein edit distance between a and b in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] is the distance between the prefix of ra handled so far and rb[:j]
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			sub := diag
			if ra[i-1] != rb[j-1] {
				sub++
			}

			diag = row[j]
			row[j] = min(row[j]+1, row[j-1]+1, sub)
		}
	}

	return row[len(rb)]
}

// Similarity scores two identifiers from 0 to 1 after folding them, 1 when
// they differ only in case and separators.
func Similarity(a, b string) float64 {
	fa, fb := []rune(Fold(a)), []rune(Fold(b))

	longest := max(len(fa), len(fb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(string(fa), string(fb)))/float64(longest)
}
