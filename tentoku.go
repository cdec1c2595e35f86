// Package tentoku implements a dictionary-driven Japanese tokenizer:
// greedy longest-match segmentation of Japanese text into tokens, each
// resolved to a dictionary entry and, where applicable, the chain of
// grammatical transformations that produced its surface form.
//
// The text is normalized once, then repeatedly probed from the current
// position, advancing by however much each probe consumed.
package tentoku

import (
	"errors"
	"unicode/utf16"

	"github.com/eridgd/tentoku/model"
	"github.com/eridgd/tentoku/normalize"
	"github.com/eridgd/tentoku/wordsearch"
)

// DefaultMaxResults is the tokenizer's own max_results default, larger
// than word_search's because a bigger candidate pool helps the
// longest-match selection at each position.
const DefaultMaxResults = 12

// ErrNoDictionary is returned when Tokenize is called with a nil
// Dictionary.
var ErrNoDictionary = errors.New("tentoku: no dictionary provided")

// Tokenize segments text into Tokens by repeated longest-match word
// search, advancing past whatever each search consumes and falling back
// to a single untagged code unit wherever nothing matches.
func Tokenize(text string, dict model.Dictionary, maxResults int) ([]model.Token, error) {
	if dict == nil {
		return nil, ErrNoDictionary
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	norm, offsetMap := normalize.NormalizeDefault(text)
	normUnits := utf16.Encode([]rune(norm))

	var tokens []model.Token
	p := 0 // UTF-16 code unit cursor into norm, matching offsetMap's indexing
	for p < len(normUnits) {
		remaining := string(utf16.Decode(normUnits[p:]))
		start := offsetMap[p]
		// Rebase the map onto start so Search reports MatchLen as a length.
		shifted := make([]int, len(offsetMap)-p)
		for i, o := range offsetMap[p:] {
			shifted[i] = o - start
		}
		result := wordsearch.Search(remaining, dict, maxResults, shifted)

		if result == nil || len(result.Data) == 0 {
			tok, nextP := singleUnitToken(text, offsetMap, p)
			tokens = append(tokens, tok)
			p = nextP
			continue
		}

		hit := result.Data[0]
		end := start + hit.MatchLen
		entry := hit.Entry
		tokens = append(tokens, model.Token{
			Text:                utf16Slice(text, start, end),
			Start:               start,
			End:                 end,
			DictionaryEntry:     &entry,
			DeinflectionReasons: hit.ReasonChains,
		})

		nextP := advancePosition(offsetMap, p, end)
		if nextP <= p {
			nextP = p + 1
		}
		p = nextP
	}

	return tokens, nil
}

// singleUnitToken emits the one-normalized-code-unit fallback token
// starting at position p, and returns the position to resume at.
func singleUnitToken(text string, offsetMap []int, p int) (model.Token, int) {
	start := offsetMap[p]
	nextP := p + 1
	if nextP >= len(offsetMap) {
		nextP = len(offsetMap) - 1
	}
	end := offsetMap[nextP]
	if end <= start {
		end = start + 1
	}
	return model.Token{Text: utf16Slice(text, start, end), Start: start, End: end}, nextP
}

// advancePosition finds the smallest normalized position at or after
// from whose original-text offset has reached targetOriginalEnd.
func advancePosition(offsetMap []int, from, targetOriginalEnd int) int {
	for i := from; i < len(offsetMap); i++ {
		if offsetMap[i] >= targetOriginalEnd {
			return i
		}
	}
	return len(offsetMap) - 1
}

// utf16Slice extracts the substring of text spanning UTF-16 code units
// [start, end), clamping to text's bounds.
func utf16Slice(text string, start, end int) string {
	units := utf16.Encode([]rune(text))
	if start < 0 {
		start = 0
	}
	if end > len(units) {
		end = len(units)
	}
	if start > end {
		start = end
	}
	return string(utf16.Decode(units[start:end]))
}
