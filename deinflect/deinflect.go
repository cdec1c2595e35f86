// Package deinflect implements the BFS forward-closure deinflection
// engine: given a surface form, it returns every plausible
// dictionary-form candidate reachable by the static rule table, each
// annotated with the word-type mask and reason chains that justify it.
//
// The rule table and its two indices (by exact ending, by ending
// length) are built once under sync.Once and held for the lifetime of
// the process.
package deinflect

import (
	"sort"
	"sync"

	"github.com/eridgd/tentoku/model"
)

var (
	rulesOnce  sync.Once
	rules      []model.DeinflectRule
	byEnding   map[string][]model.DeinflectRule
	lengthsSet map[int]bool
	lengths    []int // distinct rule.From lengths, descending
)

func buildRules() {
	rules = append(rules, buildGodanRules()...)
	rules = append(rules, buildIchidanRules()...)
	rules = append(rules, buildIAdjRules()...)
	rules = append(rules, buildSuruRules()...)
	selfCheckRules(rules)

	byEnding = make(map[string][]model.DeinflectRule, len(rules))
	lengthsSet = make(map[int]bool)
	for _, rl := range rules {
		byEnding[rl.From] = append(byEnding[rl.From], rl)
		lengthsSet[len([]rune(rl.From))] = true
	}
	for l := range lengthsSet {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
}

func ruleIndex() map[string][]model.DeinflectRule {
	rulesOnce.Do(buildRules)
	return byEnding
}

// Rules returns the static rule table, built and self-checked once at
// first use. Callers must treat the returned slice as read-only.
func Rules() []model.DeinflectRule {
	rulesOnce.Do(buildRules)
	return rules
}

// Deinflect returns every plausible uninflected candidate for word.
// The identity candidate -- word itself, with the full terminal type
// mask and an empty reason chain -- is always present.
func Deinflect(word string) []model.CandidateWord {
	index := ruleIndex()

	result := []model.CandidateWord{
		{Word: word, Type: model.All &^ model.StemOnly, ReasonChains: nil},
	}
	// byWordType maps word -> (type -> index in result), since a single
	// word string can appear multiple times with distinct types.
	byWordType := map[string]map[model.WordType]int{
		word: {result[0].Type: 0},
	}

	for i := 0; i < len(result); i++ {
		cur := result[i]

		// 1. Masu-stem short-circuit.
		if cur.Type.Has(model.IchidanVerb|model.KuruVerb) && isSoleMasuStemChain(cur.ReasonChains) {
			continue
		}

		// 2. Stem forwarding for Ichidan/Kuru.
		if cur.Type.Has(model.StemMasu | model.StemTaTe | model.StemIrrealis) {
			suppressed := cur.Type.Has(model.StemIrrealis) && firstReasonIsCausativeFamily(cur.ReasonChains)
			if !suppressed {
				forwardWord := cur.Word + "る"
				forwardType := model.IchidanVerb | model.KuruVerb
				chains := copyChains(cur.ReasonChains)
				if len(chains) == 0 && cur.Type.Has(model.StemMasu) {
					chains = [][]model.Reason{{model.MasuStem}}
				}
				appendOrMerge(&result, byWordType, forwardWord, forwardType, chains)
			}
		}

		// 3. Rule application.
		runes := []rune(cur.Word)
		maxLen := 7
		if len(runes) < maxLen {
			maxLen = len(runes)
		}
		for _, l := range lengths {
			if l > maxLen {
				continue
			}
			if l <= 0 || l > len(runes) {
				continue
			}
			ending := string(runes[len(runes)-l:])
			candidates := index[ending]
			if len(candidates) == 0 {
				continue
			}
			for _, rl := range candidates {
				applyRule(&result, byWordType, cur, rl)
			}
		}
	}

	out := make([]model.CandidateWord, 0, len(result))
	for _, c := range result {
		if c.Type.Has(model.All) {
			out = append(out, c)
		}
	}
	return out
}

func isSoleMasuStemChain(chains [][]model.Reason) bool {
	if len(chains) != 1 {
		return false
	}
	return len(chains[0]) == 1 && chains[0][0] == model.MasuStem
}

func firstReasonIsCausativeFamily(chains [][]model.Reason) bool {
	if len(chains) == 0 || len(chains[0]) == 0 {
		return false
	}
	switch chains[0][0] {
	case model.Passive, model.Causative, model.CausativePassive:
		return true
	default:
		return false
	}
}

func copyChains(chains [][]model.Reason) [][]model.Reason {
	if chains == nil {
		return nil
	}
	out := make([][]model.Reason, len(chains))
	for i, chain := range chains {
		out[i] = append([]model.Reason(nil), chain...)
	}
	return out
}

func hasReason(chains [][]model.Reason, reason model.Reason) bool {
	for _, chain := range chains {
		for _, rr := range chain {
			if rr == reason {
				return true
			}
		}
	}
	return false
}

func applyRule(result *[]model.CandidateWord, byWordType map[string]map[model.WordType]int, cur model.CandidateWord, rl model.DeinflectRule) {
	if !cur.Type.Has(rl.FromType) {
		return
	}
	for _, reason := range rl.Reasons {
		if hasReason(cur.ReasonChains, reason) {
			return
		}
	}

	fromRunes := []rune(rl.From)
	curRunes := []rune(cur.Word)
	if len(fromRunes) > len(curRunes) {
		return
	}
	newWord := string(curRunes[:len(curRunes)-len(fromRunes)]) + rl.To
	if newWord == "" {
		return
	}

	if byType, ok := byWordType[newWord]; ok {
		if idx, ok2 := byType[rl.ToType]; ok2 {
			(*result)[idx].ReasonChains = append((*result)[idx].ReasonChains, append([]model.Reason(nil), rl.Reasons...))
			return
		}
	}

	chains := copyChains(cur.ReasonChains)
	if len(rl.Reasons) > 0 {
		switch {
		case len(chains) > 0 && rl.Reasons[0] == model.Causative && chains[0][0] == model.PotentialOrPassive:
			chains[0][0] = model.CausativePassive
		case rl.Reasons[0] == model.MasuStem && len(chains) > 0:
			// masu-stem is implicit once a chain already exists; leave
			// chains untouched.
		default:
			if len(chains) == 0 {
				chains = [][]model.Reason{append([]model.Reason(nil), rl.Reasons...)}
			} else {
				chains[0] = append(append([]model.Reason(nil), rl.Reasons...), chains[0]...)
			}
		}
	}

	appendOrMerge(result, byWordType, newWord, rl.ToType, chains)
}

// appendOrMerge appends a new candidate, or -- if (word, wtype) already
// exists -- merges chains into the existing entry's chain list.
func appendOrMerge(result *[]model.CandidateWord, byWordType map[string]map[model.WordType]int, word string, wtype model.WordType, chains [][]model.Reason) {
	if byType, ok := byWordType[word]; ok {
		if idx, ok2 := byType[wtype]; ok2 {
			(*result)[idx].ReasonChains = append((*result)[idx].ReasonChains, chains...)
			return
		}
	}
	idx := len(*result)
	*result = append(*result, model.CandidateWord{Word: word, Type: wtype, ReasonChains: chains})
	if byWordType[word] == nil {
		byWordType[word] = make(map[model.WordType]int)
	}
	byWordType[word][wtype] = idx
}
