package syntax

// WordSet is an immutable membership set of lower-cased ASCII tokens.
// Lookups are exact matches; no prefix or fuzzy matching.
type WordSet struct {
	words map[string]struct{}
}

// NewWordSet builds a WordSet from the given words. The words are stored as
// given; callers supply them already lower-cased.
func NewWordSet(words ...string) WordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return WordSet{words: set}
}

// Contains reports whether tok is a member of the set.
func (s WordSet) Contains(tok string) bool {
	_, ok := s.words[tok]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int {
	return len(s.words)
}
