// Package match contains the deterministic fit-ranking machinery: a pure
// frequency-based keyword extractor and the composite 0-10 scorer built on
// top of it. Nothing in this package performs I/O.
package match

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords are generic recruiting terms that carry no ranking signal and
// are dropped during extraction.
var stopWords = map[string]struct{}{
	"experience":    {},
	"experienced":   {},
	"required":      {},
	"requirements":  {},
	"skills":        {},
	"team":          {},
	"work":          {},
	"working":       {},
	"years":         {},
	"must":          {},
	"have":          {},
	"strong":        {},
	"ability":       {},
	"able":          {},
	"knowledge":     {},
	"understanding": {},
	"including":     {},
	"preferred":     {},
	"excellent":     {},
	"good":          {},
	"will":          {},
	"with":          {},
	"this":          {},
	"that":          {},
	"candidate":     {},
	"candidates":    {},
	"role":          {},
	"position":      {},
	"company":       {},
	"related":       {},
	"relevant":      {},
	"other":         {},
	"responsibilities": {},
}

// Tokenize lowercases text and splits it on every rune that is not a
// letter, digit, '+' or '-', so terms like "c++" and "front-end" survive.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '-'
	})
}

// ExtractKeywords returns up to limit candidate keywords from free text,
// ranked by descending frequency. Tokens of length <= 3, stop words and
// purely numeric tokens are dropped. Ties keep first-appearance order, so
// the result is stable for identical input.
func ExtractKeywords(text string, limit int) []string {
	freq := make(map[string]int)
	order := make(map[string]int)
	var seen int

	for _, tok := range Tokenize(text) {
		if len(tok) <= 3 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		if _, ok := freq[tok]; !ok {
			order[tok] = seen
			seen++
		}
		freq[tok]++
	}

	keywords := make([]string, 0, len(freq))
	for tok := range freq {
		keywords = append(keywords, tok)
	}
	sort.Slice(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return order[a] < order[b]
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
