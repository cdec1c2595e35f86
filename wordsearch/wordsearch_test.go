package wordsearch

import (
	"testing"

	"github.com/eridgd/tentoku/dictionary"
	"github.com/eridgd/tentoku/model"
	"github.com/eridgd/tentoku/normalize"
)

func entry(id string, kanji, kana string, posTags []string) model.WordEntry {
	return model.WordEntry{
		EntryID:       id,
		KanjiReadings: []model.KanjiReading{{Text: kanji}},
		KanaReadings:  []model.KanaReading{{Text: kana}},
		Senses:        []model.Sense{{POSTags: posTags}},
	}
}

func TestSearchFindsInflectedIchidanVerb(t *testing.T) {
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("1", "食べる", "たべる", []string{"v1"}),
	})
	normalized, offsetMap := normalize.NormalizeDefault("食べました")
	result := Search(normalized, dict, 12, offsetMap)
	if result == nil {
		t.Fatal("expected a result, got nil")
	}
	if result.Data[0].Entry.EntryID != "1" {
		t.Fatalf("expected entry 1, got %+v", result.Data[0])
	}
	wantLen := len([]rune("食べました")) // all-BMP input: UTF-16 units == rune count
	if result.MatchLen != wantLen {
		t.Errorf("MatchLen = %d, want %d", result.MatchLen, wantLen)
	}
}

func TestSearchReturnsNilOnNoMatch(t *testing.T) {
	dict := dictionary.NewStaticDictionary(nil)
	normalized, offsetMap := normalize.NormalizeDefault("全然知らない言葉")
	result := Search(normalized, dict, 12, offsetMap)
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
}

func TestSearchStopsAtDigitsOnly(t *testing.T) {
	dict := dictionary.NewStaticDictionary(nil)
	normalized, offsetMap := normalize.NormalizeDefault("123")
	result := Search(normalized, dict, 12, offsetMap)
	if result != nil {
		t.Fatalf("expected nil result for digits-only input, got %+v", result)
	}
}

func TestSearchIdentityMatchForParticle(t *testing.T) {
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("50", "", "は", []string{"prt"}),
	})
	normalized, offsetMap := normalize.NormalizeDefault("は")
	result := Search(normalized, dict, 12, offsetMap)
	if result == nil {
		t.Fatal("expected a result for particle は")
	}
	if result.Data[0].Entry.EntryID != "50" {
		t.Errorf("expected entry 50, got %+v", result.Data[0])
	}
}

func TestSearchMatchLenIsUTF16UnitsAcrossASupplementaryPlaneRune(t *testing.T) {
	// U+20000 is outside the BMP, so it contributes one rune but two
	// UTF-16 code units; MatchLen must count the latter.
	word := "\U00020000然"
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("60", word, "", []string{"n"}),
	})
	normalized, offsetMap := normalize.NormalizeDefault(word)
	result := Search(normalized, dict, 12, offsetMap)
	if result == nil {
		t.Fatal("expected a result")
	}
	wantLen := normalize.UTF16Len(word)
	if wantLen != len([]rune(word))+1 {
		t.Fatalf("test setup sanity check failed: want UTF16Len one greater than rune count")
	}
	if result.MatchLen != wantLen {
		t.Errorf("MatchLen = %d, want %d (UTF-16 units, not rune count)", result.MatchLen, wantLen)
	}
}
