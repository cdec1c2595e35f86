package tentoku

import (
	"testing"

	"github.com/eridgd/tentoku/dictionary"
	"github.com/eridgd/tentoku/model"
)

func entry(id, kanji, kana string, posTags []string) model.WordEntry {
	return model.WordEntry{
		EntryID:       id,
		KanjiReadings: []model.KanjiReading{{Text: kanji}},
		KanaReadings:  []model.KanaReading{{Text: kana}},
		Senses:        []model.Sense{{POSTags: posTags}},
	}
}

func TestTokenizeNoDictionary(t *testing.T) {
	if _, err := Tokenize("食べる", nil, 0); err != ErrNoDictionary {
		t.Fatalf("expected ErrNoDictionary, got %v", err)
	}
}

func TestTokenizeSingleInflectedVerb(t *testing.T) {
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("1", "食べる", "たべる", []string{"v1"}),
	})
	tokens, err := Tokenize("食べました", dict, 12)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected a single token, got %d: %+v", len(tokens), tokens)
	}
	tok := tokens[0]
	if tok.Text != "食べました" {
		t.Errorf("Text = %q, want 食べました", tok.Text)
	}
	if tok.DictionaryEntry == nil || tok.DictionaryEntry.EntryID != "1" {
		t.Errorf("expected dictionary entry 1, got %+v", tok.DictionaryEntry)
	}
	if tok.Start != 0 || tok.End != len([]rune("食べました")) {
		t.Errorf("Start/End = %d/%d, want 0/%d", tok.Start, tok.End, len([]rune("食べました")))
	}
}

func TestTokenizeMultipleWords(t *testing.T) {
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("1", "私", "わたし", []string{"n"}),
		entry("2", "", "は", []string{"prt"}),
		entry("3", "学生", "がくせい", []string{"n"}),
	})
	tokens, err := Tokenize("私は学生", dict, 12)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(tokens), tokens)
	}
	wantTexts := []string{"私", "は", "学生"}
	for i, want := range wantTexts {
		if tokens[i].Text != want {
			t.Errorf("token %d = %q, want %q", i, tokens[i].Text, want)
		}
	}
}

func TestTokenizeFallsBackOnUnknownText(t *testing.T) {
	dict := dictionary.NewStaticDictionary(nil)
	tokens, err := Tokenize("謎", dict, 12)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected a single fallback token, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].DictionaryEntry != nil {
		t.Errorf("expected no dictionary entry for fallback token, got %+v", tokens[0].DictionaryEntry)
	}
	if tokens[0].Text != "謎" {
		t.Errorf("Text = %q, want 謎", tokens[0].Text)
	}
}

func TestTokenizeAdvancesPastUnmatchedTextBetweenWords(t *testing.T) {
	dict := dictionary.NewStaticDictionary([]model.WordEntry{
		entry("1", "猫", "ねこ", []string{"n"}),
	})
	tokens, err := Tokenize("謎猫", dict, 12)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Text != "謎" || tokens[0].DictionaryEntry != nil {
		t.Errorf("token 0 = %+v, want fallback 謎", tokens[0])
	}
	if tokens[1].Text != "猫" || tokens[1].DictionaryEntry == nil {
		t.Errorf("token 1 = %+v, want matched 猫", tokens[1])
	}
}
