// Package dictionary implements model.Dictionary against a JMDict-XML
// backed store (JMDictDictionary) and a trivial in-memory store for
// tests (StaticDictionary).
package dictionary

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	jmdict "github.com/yomidevs/jmdict-go"

	"github.com/eridgd/tentoku/model"
	"github.com/eridgd/tentoku/normalize"
)

// maxLookupLength reflects that no dictionary entry exceeds roughly 15
// code points, so longer inputs short-circuit to a miss without
// touching the index.
const maxLookupLength = 15

// JMDictDictionary serves model.Dictionary.GetWords from a JMDict XML
// file loaded once at construction. Lookup is by exact kanji/kana text
// or its hiragana-folded form, via a folded-text index built at load
// time.
type JMDictDictionary struct {
	mu       sync.RWMutex
	entries  []jmdict.JmdictEntry
	byFolded map[string][]int // folded headword text -> entry indices
}

// LoadJMDict reads a JMDict XML file (optionally gzip-compressed, as
// distributed upstream) and builds the folded-text index.
func LoadJMDict(path string) (*JMDictDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()
	br := bufio.NewReader(f)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("dictionary: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		return LoadJMDictFrom(gz)
	}
	return LoadJMDictFrom(br)
}

// LoadJMDictFrom reads JMDict XML from an already-open reader.
func LoadJMDictFrom(r io.Reader) (*JMDictDictionary, error) {
	parsed, _, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, fmt.Errorf("dictionary: parse jmdict: %w", err)
	}

	d := &JMDictDictionary{
		entries:  parsed.Entries,
		byFolded: make(map[string][]int, len(parsed.Entries)*2),
	}
	for i, entry := range d.entries {
		for _, k := range entry.Kanji {
			d.index(k.Expression, i)
		}
		for _, r := range entry.Readings {
			d.index(r.Reading, i)
		}
	}
	return d, nil
}

func (d *JMDictDictionary) index(text string, entryIdx int) {
	folded := normalize.KanaToHiragana(text)
	d.byFolded[folded] = append(d.byFolded[folded], entryIdx)
}

// GetWords implements model.Dictionary.
func (d *JMDictDictionary) GetWords(inputText string, maxResults int, matchingText ...string) ([]model.WordEntry, error) {
	if len([]rune(inputText)) > maxLookupLength {
		return nil, nil
	}
	matchText := inputText
	if len(matchingText) > 0 && matchingText[0] != "" {
		matchText = matchingText[0]
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	folded := normalize.KanaToHiragana(inputText)
	idxs := d.byFolded[folded]
	if len(idxs) == 0 {
		return nil, nil
	}
	if maxResults > 0 && len(idxs) > maxResults {
		idxs = idxs[:maxResults]
	}

	foldedMatch := normalize.KanaToHiragana(matchText)
	out := make([]model.WordEntry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, convertEntry(d.entries[i], foldedMatch))
	}
	return out, nil
}

func convertEntry(jm jmdict.JmdictEntry, foldedMatch string) model.WordEntry {
	seq := strconv.Itoa(jm.Sequence)
	entry := model.WordEntry{
		EntryID: seq,
		EntSeq:  seq,
		Source:  "JMdict",
	}

	for _, k := range jm.Kanji {
		entry.KanjiReadings = append(entry.KanjiReadings, model.KanjiReading{
			Text:     k.Expression,
			Priority: k.Priorities,
			Info:     k.Information,
		})
	}
	for _, r := range jm.Readings {
		entry.KanaReadings = append(entry.KanaReadings, model.KanaReading{
			Text:     r.Reading,
			Priority: r.Priorities,
			Info:     r.Information,
			NoKanji:  r.NoKanji != nil,
		})
	}
	for i, s := range jm.Sense {
		sense := model.Sense{
			Index:   i,
			POSTags: s.PartsOfSpeech,
			Field:   s.Fields,
			Misc:    s.Misc,
			Dial:    s.Dialects,
		}
		for _, g := range s.Glossary {
			sense.Glosses = append(sense.Glosses, model.Gloss{
				Text:  g.Content,
				Lang:  derefString(g.Language),
				GType: derefString(g.Type),
			})
		}
		entry.Senses = append(entry.Senses, sense)
	}

	applyMatchRanges(&entry, foldedMatch)
	return entry
}

// applyMatchRanges implements the kanji/kana split-match policy: if any
// kanji reading equals the match text under kana folding, only kanji
// readings are marked; otherwise matching kana readings are marked.
func applyMatchRanges(entry *model.WordEntry, foldedMatch string) {
	kanjiHit := false
	for i := range entry.KanjiReadings {
		if normalize.KanaToHiragana(entry.KanjiReadings[i].Text) == foldedMatch {
			mark(&entry.KanjiReadings[i].Match, &entry.KanjiReadings[i].MatchStart, &entry.KanjiReadings[i].MatchEnd, entry.KanjiReadings[i].Text)
			kanjiHit = true
		}
	}
	if kanjiHit {
		return
	}
	for i := range entry.KanaReadings {
		if normalize.KanaToHiragana(entry.KanaReadings[i].Text) == foldedMatch {
			mark(&entry.KanaReadings[i].Match, &entry.KanaReadings[i].MatchStart, &entry.KanaReadings[i].MatchEnd, entry.KanaReadings[i].Text)
		}
	}
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func mark(match *bool, start, end *int, text string) {
	*match = true
	*start = 0
	*end = len([]rune(text))
}

// StaticDictionary is a trivial in-memory model.Dictionary, built from a
// fixed entry list, used by package tests that need a dictionary but
// shouldn't depend on a real JMDict file being present on disk.
type StaticDictionary struct {
	byFolded map[string][]model.WordEntry
}

// NewStaticDictionary indexes entries by the hiragana-folded form of
// every kanji and kana reading they carry.
func NewStaticDictionary(entries []model.WordEntry) *StaticDictionary {
	d := &StaticDictionary{byFolded: make(map[string][]model.WordEntry)}
	for _, entry := range entries {
		for _, k := range entry.KanjiReadings {
			d.add(k.Text, entry)
		}
		for _, r := range entry.KanaReadings {
			d.add(r.Text, entry)
		}
	}
	return d
}

func (d *StaticDictionary) add(text string, entry model.WordEntry) {
	folded := normalize.KanaToHiragana(text)
	d.byFolded[folded] = append(d.byFolded[folded], entry)
}

// GetWords implements model.Dictionary.
func (d *StaticDictionary) GetWords(inputText string, maxResults int, matchingText ...string) ([]model.WordEntry, error) {
	if len([]rune(inputText)) > maxLookupLength {
		return nil, nil
	}
	matchText := inputText
	if len(matchingText) > 0 && matchingText[0] != "" {
		matchText = matchingText[0]
	}

	folded := normalize.KanaToHiragana(inputText)
	matches := d.byFolded[folded]
	if len(matches) == 0 {
		return nil, nil
	}
	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	foldedMatch := normalize.KanaToHiragana(matchText)
	out := make([]model.WordEntry, len(matches))
	for i, entry := range matches {
		cp := entry
		cp.KanjiReadings = append([]model.KanjiReading(nil), entry.KanjiReadings...)
		cp.KanaReadings = append([]model.KanaReading(nil), entry.KanaReadings...)
		applyMatchRanges(&cp, foldedMatch)
		out[i] = cp
	}
	return out, nil
}
