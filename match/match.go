// Package match decides whether a dictionary entry's part-of-speech tags
// are compatible with a deinflection candidate's WordType bitmask. It
// walks each sense's part-of-speech tags, matching on JMDict's short
// codes (v1, v5u, adj-i, ...) and their expanded English phrases against
// the full word-type mask.
package match

import (
	"strings"

	"github.com/eridgd/tentoku/model"
)

// EntryMatchesType reports whether entry is a plausible dictionary form
// for a candidate whose word-type mask is wordType. It collects the
// part-of-speech tags of every sense and tests for
// membership against wordType; an entry with no part-of-speech tags at
// all never matches.
func EntryMatchesType(entry model.WordEntry, wordType model.WordType) bool {
	tags := collectTags(entry)
	if len(tags) == 0 {
		return false
	}

	if wordType.Has(model.IchidanVerb) && anyTag(tags, hasPrefix("v1"), contains("ichidan verb")) {
		return true
	}
	if wordType.Has(model.GodanFamily) && anyTag(tags, hasPrefix("v5"), hasPrefix("v4"), contains("godan verb")) {
		return true
	}
	if wordType.Has(model.IAdj) && anyTag(tags, hasPrefix("adj-i"), containsFold("adjective")) {
		return true
	}
	if wordType.Has(model.KuruVerb) && anyTag(tags, equal("vk"), contains("kuru verb")) {
		return true
	}
	if wordType.Has(model.SuruVerb) && anyTag(tags, equal("vs-i"), equal("vs-s"), contains("suru verb")) {
		return true
	}
	if wordType.Has(model.SpecialSuruVerb) && anyTag(tags, equal("vs-s"), equal("vz")) {
		return true
	}
	if wordType.Has(model.NounVS) && anyTag(tags, equal("vs"), contains("noun or participle")) {
		return true
	}

	// Expression-only entries (every tag is exp/expression) are
	// treated as verb-compatible for any verb word-type: idiomatic
	// expressions built on a conjugating verb are still found this way.
	if isExpressionOnly(tags) && wordType.Has(model.All&^model.IAdj) {
		return true
	}

	return false
}

func collectTags(entry model.WordEntry) []string {
	var tags []string
	for _, sense := range entry.Senses {
		tags = append(tags, sense.POSTags...)
	}
	return tags
}

func isExpressionOnly(tags []string) bool {
	sawExp := false
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if lower == "exp" || strings.Contains(lower, "expression") {
			sawExp = true
			continue
		}
		return false
	}
	return sawExp
}

type predicate func(tag string) bool

func hasPrefix(prefix string) predicate {
	return func(tag string) bool { return strings.HasPrefix(tag, prefix) }
}

func equal(want string) predicate {
	return func(tag string) bool { return tag == want }
}

func contains(substr string) predicate {
	return func(tag string) bool { return strings.Contains(strings.ToLower(tag), substr) }
}

func containsFold(substr string) predicate {
	return contains(substr)
}

func anyTag(tags []string, preds ...predicate) bool {
	for _, tag := range tags {
		for _, p := range preds {
			if p(tag) {
				return true
			}
		}
	}
	return false
}
