package rank

import (
	"testing"

	"github.com/eridgd/tentoku/model"
)

func TestPriorityScoreIgnoresUnmatchedReadings(t *testing.T) {
	entry := model.WordEntry{
		KanaReadings: []model.KanaReading{
			{Text: "にべ", Priority: []string{"ichi1"}, Match: false},
			{Text: "に", Priority: nil, Match: true},
		},
	}
	if got := PriorityScore(entry); got != 0 {
		t.Errorf("PriorityScore() = %v, want 0 (matched reading has no priority tags)", got)
	}
}

func TestPriorityScoreHighPriorityParticleOutranksUnmarked(t *testing.T) {
	particle := model.WordEntry{
		KanaReadings: []model.KanaReading{{Text: "に", Priority: []string{"ichi1"}, Match: true}},
	}
	fish := model.WordEntry{
		KanaReadings: []model.KanaReading{{Text: "にべ", Priority: nil, Match: true}},
	}
	if PriorityScore(particle) <= PriorityScore(fish) {
		t.Errorf("expected high-priority particle to outscore unmarked entry")
	}
}

func TestPriorityScoreNfTagClampedRange(t *testing.T) {
	entry := model.WordEntry{
		KanaReadings: []model.KanaReading{{Text: "x", Priority: []string{"nf01"}, Match: true}},
	}
	got := PriorityScore(entry)
	if got <= 0 || got > 48 {
		t.Errorf("PriorityScore(nf01) = %v, want in (0, 48]", got)
	}
}

func TestHeadwordTypeNoKanaMatchReturnsOne(t *testing.T) {
	entry := model.WordEntry{}
	if got := HeadwordType(entry); got != 1 {
		t.Errorf("HeadwordType() = %d, want 1", got)
	}
}

func TestHeadwordTypeObscureKanaReturnsTwo(t *testing.T) {
	entry := model.WordEntry{
		KanaReadings: []model.KanaReading{{Text: "x", Match: true, Info: []string{"ok"}}},
	}
	if got := HeadwordType(entry); got != 2 {
		t.Errorf("HeadwordType() = %d, want 2", got)
	}
}

func TestHeadwordTypeAllKanjiObscureReturnsOne(t *testing.T) {
	entry := model.WordEntry{
		KanaReadings:  []model.KanaReading{{Text: "x", Match: true}},
		KanjiReadings: []model.KanjiReading{{Text: "y", Info: []string{"rK"}}},
	}
	if got := HeadwordType(entry); got != 1 {
		t.Errorf("HeadwordType() = %d, want 1", got)
	}
}

func TestHeadwordTypeOrdinaryReturnsTwo(t *testing.T) {
	entry := model.WordEntry{
		KanaReadings:  []model.KanaReading{{Text: "x", Match: true}},
		KanjiReadings: []model.KanjiReading{{Text: "y"}},
	}
	if got := HeadwordType(entry); got != 2 {
		t.Errorf("HeadwordType() = %d, want 2", got)
	}
}

func TestSortLongerMatchFirst(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: "short"}, MatchLen: 1},
		{Entry: model.WordEntry{EntryID: "long"}, MatchLen: 3},
	}
	Sort(results)
	if results[0].Entry.EntryID != "long" {
		t.Errorf("Sort did not place the longer match first: %+v", results)
	}
}

func TestSortFewerStepsPreferredAtEqualMatchLen(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: "two-step"}, MatchLen: 2, ReasonChains: [][]model.Reason{{model.Polite, model.Past}}},
		{Entry: model.WordEntry{EntryID: "one-step"}, MatchLen: 2, ReasonChains: [][]model.Reason{{model.Polite}}},
	}
	Sort(results)
	if results[0].Entry.EntryID != "one-step" {
		t.Errorf("Sort did not prefer fewer deinflection steps: %+v", results)
	}
}

func TestDeinflectionStepsEmptyIsZero(t *testing.T) {
	if got := DeinflectionSteps(nil); got != 0 {
		t.Errorf("DeinflectionSteps(nil) = %d, want 0", got)
	}
}
