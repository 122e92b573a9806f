package screening

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary is returned by Similarity when neither document has a
// scorable term left after stop-word removal.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words")

// Similarity returns the cosine similarity of the TF-IDF vectors of the two
// documents. The vector space is built from these two documents only.
func Similarity(a, b string) (float64, error) {
	docs := [2]map[string]int{termCounts(a), termCounts(b)}

	df := make(map[string]int)
	for _, counts := range docs {
		for term := range counts {
			df[term]++
		}
	}
	if len(df) == 0 {
		return 0, ErrEmptyVocabulary
	}

	// sorted so the float sums do not depend on map order
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	var dot, normA, normB float64
	for _, term := range terms {
		// smoothed idf, as if one extra document contained every term
		weight := math.Log((1+n)/(1+float64(df[term]))) + 1
		wa := float64(docs[0][term]) * weight
		wb := float64(docs[1][term]) * weight
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim)), nil
}

// termCounts tokenizes text into lower-cased words of at least two
// characters and counts the ones that are not stop words.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if isStopWord(token) {
			continue
		}
		counts[token]++
	}
	return counts
}

func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := words[:0]
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
