// Package rank orders dictionary lookup hits by match length, deinflection
// depth, headword obscurity, and JMDict-style priority score.
package rank

import (
	"sort"
	"strconv"
	"strings"

	"github.com/eridgd/tentoku/model"
)

// priorityWeights maps a JMDict priority tag (and its short-code alias)
// to its base weight.
var priorityWeights = map[string]float64{
	"ichi1": 50, "i1": 50,
	"ichi2": 25, "i2": 25,
	"news1": 40, "n1": 40,
	"news2": 20, "n2": 20,
	"spec1": 32, "s1": 32,
	"spec2": 16, "s2": 16,
	"gai1": 30, "g1": 30,
	"gai2": 15, "g2": 15,
}

// tagWeight returns the numeric weight of a single priority tag, or 0
// for a tag this implementation doesn't recognise.
func tagWeight(tag string) float64 {
	if w, ok := priorityWeights[tag]; ok {
		return w
	}
	if strings.HasPrefix(tag, "nf") {
		numStr := strings.TrimPrefix(tag, "nf")
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return 0
		}
		w := 48 - float64(n)/2
		if w < 0 {
			w = 0
		}
		if w > 48 {
			w = 48
		}
		return w
	}
	return 0
}

// PriorityScore scans only the kanji-then-kana readings whose Match flag
// is set, and returns the highest composite score across those readings
// (0 if none match or the entry has no priority tags at all).
func PriorityScore(entry model.WordEntry) float64 {
	best := 0.0
	score := func(priority []string) {
		if len(priority) == 0 {
			return
		}
		weights := make([]float64, 0, len(priority))
		for _, tag := range priority {
			weights = append(weights, tagWeight(tag))
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
		total := 0.0
		for k, w := range weights {
			if k == 0 {
				total += w
			} else {
				total += w / pow10(k)
			}
		}
		if total > best {
			best = total
		}
	}

	for _, k := range entry.KanjiReadings {
		if k.Match {
			score(k.Priority)
		}
	}
	for _, r := range entry.KanaReadings {
		if r.Match {
			score(r.Priority)
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func pow10(k int) float64 {
	v := 1.0
	for i := 0; i < k; i++ {
		v *= 10
	}
	return v
}

var obscureKanaInfo = map[string]bool{"ok": true, "rk": true, "sk": true, "ik": true}
var obscureKanjiInfo = map[string]bool{"rK": true, "sK": true, "iK": true}

// HeadwordType scores how directly the matched reading names a usable
// headword: 1 is preferred over 2.
func HeadwordType(entry model.WordEntry) int {
	var matched *model.KanaReading
	for i := range entry.KanaReadings {
		if entry.KanaReadings[i].Match {
			matched = &entry.KanaReadings[i]
			break
		}
	}
	if matched == nil {
		return 1
	}
	if hasAnyInfo(matched.Info, obscureKanaInfo) {
		return 2
	}
	if len(entry.KanjiReadings) == 0 {
		return 1
	}
	allObscure := true
	for _, k := range entry.KanjiReadings {
		if !hasAnyInfo(k.Info, obscureKanjiInfo) {
			allObscure = false
			break
		}
	}
	if allObscure {
		return 1
	}
	if usuallyKana(entry) {
		return 1
	}
	if matched.NoKanji {
		return 1
	}
	return 2
}

func hasAnyInfo(info []string, set map[string]bool) bool {
	for _, tag := range info {
		if set[tag] {
			return true
		}
	}
	return false
}

// usuallyKana reports whether at least half of the English-language
// senses carry a "uk" misc tag.
func usuallyKana(entry model.WordEntry) bool {
	total, uk := 0, 0
	for _, sense := range entry.Senses {
		isEnglish := false
		for _, g := range sense.Glosses {
			if g.Lang == "" || g.Lang == "eng" || g.Lang == "en" {
				isEnglish = true
				break
			}
		}
		if !isEnglish {
			continue
		}
		total++
		for _, m := range sense.Misc {
			if m == "uk" {
				uk++
				break
			}
		}
	}
	if total == 0 {
		return false
	}
	return uk*2 >= total
}

// DeinflectionSteps returns max(len(chain) for chain in reasonChains), or
// 0 if reasonChains is empty.
func DeinflectionSteps(reasonChains [][]model.Reason) int {
	max := 0
	for _, chain := range reasonChains {
		if len(chain) > max {
			max = len(chain)
		}
	}
	return max
}

// sortKey is the tuple results are sorted ascending by.
type sortKey struct {
	negMatchLen int
	steps       int
	headword    int
	negPriority float64
}

func keyOf(r model.WordResult) sortKey {
	return sortKey{
		negMatchLen: -r.MatchLen,
		steps:       DeinflectionSteps(r.ReasonChains),
		headword:    HeadwordType(r.Entry),
		negPriority: -PriorityScore(r.Entry),
	}
}

// Sort orders results in place: longest match first, fewer deinflection
// steps preferred, headword_type 1 before 2, higher priority score
// first.
func Sort(results []model.WordResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := keyOf(results[i]), keyOf(results[j])
		if a.negMatchLen != b.negMatchLen {
			return a.negMatchLen < b.negMatchLen
		}
		if a.steps != b.steps {
			return a.steps < b.steps
		}
		if a.headword != b.headword {
			return a.headword < b.headword
		}
		return a.negPriority < b.negPriority
	})
}
