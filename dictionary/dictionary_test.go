package dictionary

import (
	"errors"
	"testing"

	"github.com/eridgd/tentoku/model"
)

func wordEntry(id, kanji, kana string) model.WordEntry {
	return model.WordEntry{
		EntryID:       id,
		KanjiReadings: []model.KanjiReading{{Text: kanji}},
		KanaReadings:  []model.KanaReading{{Text: kana}},
	}
}

func TestStaticDictionaryLooksUpByKanji(t *testing.T) {
	d := NewStaticDictionary([]model.WordEntry{wordEntry("1", "食べる", "たべる")})
	entries, err := d.GetWords("食べる", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID != "1" {
		t.Fatalf("expected entry 1, got %+v", entries)
	}
}

func TestStaticDictionaryLooksUpByKatakanaFoldedKana(t *testing.T) {
	d := NewStaticDictionary([]model.WordEntry{wordEntry("2", "", "ねこ")})
	entries, err := d.GetWords("ネコ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID != "2" {
		t.Fatalf("expected entry 2 via katakana folding, got %+v", entries)
	}
}

func TestStaticDictionaryNoMatchReturnsNilNotError(t *testing.T) {
	d := NewStaticDictionary(nil)
	entries, err := d.GetWords("謎", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected nil entries, got %+v", entries)
	}
}

func TestStaticDictionaryMarksKanjiMatchOverKana(t *testing.T) {
	d := NewStaticDictionary([]model.WordEntry{wordEntry("3", "食べる", "たべる")})
	entries, err := d.GetWords("食べる", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entries[0].KanjiReadings[0].Match {
		t.Error("expected kanji reading to be marked as matched")
	}
	if entries[0].KanaReadings[0].Match {
		t.Error("did not expect kana reading to be marked once kanji matched")
	}
}

func TestStaticDictionaryBeyondLookupLengthMisses(t *testing.T) {
	d := NewStaticDictionary([]model.WordEntry{wordEntry("4", "", "")})
	long := "一二三四五六七八九十一二三四五六七八九十"
	entries, err := d.GetWords(long, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected no lookup beyond maxLookupLength, got %+v", entries)
	}
}

type stubDictionary struct {
	entries []model.WordEntry
	err     error
}

func (s stubDictionary) GetWords(inputText string, maxResults int, matchingText ...string) ([]model.WordEntry, error) {
	return s.entries, s.err
}

func TestCombinedDictionaryFallsThroughToSecondStore(t *testing.T) {
	first := stubDictionary{}
	second := stubDictionary{entries: []model.WordEntry{wordEntry("5", "名前", "なまえ")}}
	c := NewCombinedDictionary(first, second)

	entries, err := c.GetWords("名前", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID != "5" {
		t.Fatalf("expected entry 5 from second store, got %+v", entries)
	}
}

func TestCombinedDictionaryStopsAtFirstNonEmptyStore(t *testing.T) {
	first := stubDictionary{entries: []model.WordEntry{wordEntry("6", "", "")}}
	second := stubDictionary{entries: []model.WordEntry{wordEntry("7", "", "")}}
	c := NewCombinedDictionary(first, second)

	entries, err := c.GetWords("x", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID != "6" {
		t.Fatalf("expected entry 6 from first store, got %+v", entries)
	}
}

func TestCombinedDictionaryPropagatesUnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCombinedDictionary(stubDictionary{err: boom})

	_, err := c.GetWords("x", 5)
	if err == nil {
		t.Fatal("expected an error to be propagated")
	}
}
