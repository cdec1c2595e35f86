// Package wordsearch implements the backtracking longest-match probe
// that combines variation generation, deinflection, dictionary lookup,
// and type-filtered validation: a loop that repeatedly shortens a
// candidate span and tries alternate surface forms before giving up.
package wordsearch

import (
	"strings"
	"unicode"

	"github.com/eridgd/tentoku/deinflect"
	"github.com/eridgd/tentoku/match"
	"github.com/eridgd/tentoku/model"
	"github.com/eridgd/tentoku/normalize"
	"github.com/eridgd/tentoku/rank"
	"github.com/eridgd/tentoku/variation"
	"github.com/eridgd/tentoku/yoon"
)

// defaultBudgetMultiplier bounds total accumulated results to
// 5×maxResults, a tunable heuristic to keep pathological inputs from
// exhausting the dictionary at every backtrack step.
const defaultBudgetMultiplier = 5

// Result is the outcome of a successful Search: one or more dictionary
// hits, the original-input match length they span, and whether at least
// maxResults results were found.
type Result struct {
	Data     []model.WordResult
	MatchLen int
	More     bool
}

// Search implements word_search: it backtracks from the full length of
// normalizedText down to a single code unit, trying dictionary lookups
// (directly and via variation/deinflection) at each length, and returns
// the longest length at which anything was found.
func Search(normalizedText string, dict model.Dictionary, maxResults int, offsetMap []int) *Result {
	longestMatch := 0
	have := make(map[string]bool)
	var results []model.WordResult
	includeVariants := true

	currentInput := normalizedText
	for len([]rune(currentInput)) > 0 {
		if isPunctuationOrDigits(currentInput) {
			break
		}

		variations := []string{currentInput}
		if includeVariants {
			variations = append(variations, variation.ExpandChoon(currentInput)...)
			if shinjitai := variation.KyuujitaiToShinjitai(currentInput); shinjitai != currentInput {
				variations = append(variations, shinjitai)
			}
		}

		currentOriginalLen := offsetAt(offsetMap, normalize.UTF16Len(currentInput))

		for _, variant := range variations {
			hits := lookupCandidates(variant, dict, have, maxResults, currentOriginalLen, currentInput)
			if len(hits) == 0 {
				continue
			}
			for _, hit := range hits {
				have[hit.Entry.EntryID] = true
			}
			results = append(results, hits...)
			if currentOriginalLen > longestMatch {
				longestMatch = currentOriginalLen
			}
			currentInput = variant
			includeVariants = false
			break
		}

		if len(results) >= defaultBudgetMultiplier*maxResults {
			break
		}

		if yoon.EndsInYoon(currentInput) {
			currentInput = dropRunes(currentInput, 2)
		} else {
			currentInput = dropRunes(currentInput, 1)
		}
	}

	if len(results) == 0 {
		return nil
	}
	rank.Sort(results)
	more := len(results) >= maxResults
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return &Result{Data: results, MatchLen: longestMatch, More: more}
}

// lookupCandidates deinflects variant and queries dict for each
// resulting candidate, filtering non-identity candidates by word-type
// compatibility.
func lookupCandidates(variant string, dict model.Dictionary, have map[string]bool, maxResults int, currentOriginalLen int, matchingText string) []model.WordResult {
	candidates := deinflect.Deinflect(variant)

	var out []model.WordResult
	for i, cand := range candidates {
		entries, err := dict.GetWords(cand.Word, 2*maxResults, matchingText)
		if err != nil || len(entries) == 0 {
			continue
		}
		for _, entry := range entries {
			if i != 0 && !match.EntryMatchesType(entry, cand.Type) {
				continue
			}
			if have[entry.EntryID] {
				continue
			}
			var chains [][]model.Reason
			if len(cand.ReasonChains) > 0 {
				chains = cand.ReasonChains
			}
			out = append(out, model.WordResult{
				Entry:        entry,
				MatchLen:     currentOriginalLen,
				ReasonChains: chains,
			})
		}
	}
	rank.Sort(out)
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// offsetAt returns offsetMap[i], where i is a UTF-16 code unit position
// (see normalize.UTF16Len), clamped to offsetMap's bounds.
func offsetAt(offsetMap []int, i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(offsetMap) {
		return offsetMap[len(offsetMap)-1]
	}
	return offsetMap[i]
}

func dropRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[:len(runes)-n])
}

// isPunctuationOrDigits reports whether text consists entirely of
// half-, full-, or ideographic-width digits, commas, and periods.
func isPunctuationOrDigits(text string) bool {
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
		case strings.ContainsRune(",.、。，．", r):
		case r >= 0xFF10 && r <= 0xFF19: // full-width digits
		default:
			return false
		}
	}
	return true
}
