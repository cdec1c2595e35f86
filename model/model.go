// Package model holds the types shared across every package of tentoku:
// the reason/word-type enums, the deinflection rule and candidate types,
// the dictionary entry schema, and the Token the tokenizer emits.
//
// These types are process-lifetime stable once built (Reason, WordType,
// DeinflectRule) or per-call transients (CandidateWord, WordEntry,
// WordResult, Token).
package model

// Reason names a single surface-to-underlying grammatical transformation
// step recorded by the deinflection engine. A Token's DeinflectionReasons
// is a list of chains of Reason, most-recent-first.
type Reason int

// The reason vocabulary. Order is insignificant; values are stable within
// a process but not guaranteed stable across versions, so callers should
// not persist the numeric value.
const (
	ReasonNone Reason = iota
	Polite
	Past
	PolitePast
	Negative
	PoliteNegative
	NegativePast
	PoliteNegativePast
	Continuous
	ContinuousPast
	Te
	Passive
	Causative
	CausativePassive
	Potential
	PotentialOrPassive
	Volitional
	Tai
	Zu
	Nu
	Ba
	Tara
	MasuStem
	TaTeStem
	ImperativeNegative
	Imperative
	Respectful
	Humble
	Kansai
	Tame
	Sou
	Sugiru
	Adv
	Noun
	Chau
	Toku
	Ki
	SuruConj
	Conditional
	Ki2
	Shimau
	Nasai
	Yasui
	Nikui
	Garu
	Ageru
	Kureru
	Morau
	Itadaku
	Kudasaru
	Irrealis
	Naide
	Nagara
	Nakereba
	Nakya
	Naito
	Darou
	Deshou
	Rashii
	Souda
	Youda
	Mitai
)

// reasonNames backs Reason.String and is also walked at startup to
// validate that every Reason named by a rule is a registered value.
var reasonNames = map[Reason]string{
	ReasonNone:         "None",
	Polite:             "Polite",
	Past:               "Past",
	PolitePast:         "PolitePast",
	Negative:           "Negative",
	PoliteNegative:     "PoliteNegative",
	NegativePast:       "NegativePast",
	PoliteNegativePast: "PoliteNegativePast",
	Continuous:         "Continuous",
	ContinuousPast:     "ContinuousPast",
	Te:                 "Te",
	Passive:            "Passive",
	Causative:          "Causative",
	CausativePassive:   "CausativePassive",
	Potential:          "Potential",
	PotentialOrPassive: "PotentialOrPassive",
	Volitional:         "Volitional",
	Tai:                "Tai",
	Zu:                 "Zu",
	Nu:                 "Nu",
	Ba:                 "Ba",
	Tara:               "Tara",
	MasuStem:           "MasuStem",
	TaTeStem:           "TaTeStem",
	ImperativeNegative: "ImperativeNegative",
	Imperative:         "Imperative",
	Respectful:         "Respectful",
	Humble:             "Humble",
	Kansai:             "Kansai",
	Tame:               "Tame",
	Sou:                "Sou",
	Sugiru:             "Sugiru",
	Adv:                "Adv",
	Noun:                "Noun",
	Chau:               "Chau",
	Toku:               "Toku",
	Ki:                 "Ki",
	SuruConj:           "SuruConj",
	Conditional:        "Conditional",
	Ki2:                "Ki2",
	Shimau:             "Shimau",
	Nasai:              "Nasai",
	Yasui:              "Yasui",
	Nikui:              "Nikui",
	Garu:               "Garu",
	Ageru:              "Ageru",
	Kureru:             "Kureru",
	Morau:              "Morau",
	Itadaku:            "Itadaku",
	Kudasaru:           "Kudasaru",
	Irrealis:           "Irrealis",
	Naide:              "Naide",
	Nagara:             "Nagara",
	Nakereba:           "Nakereba",
	Nakya:              "Nakya",
	Naito:              "Naito",
	Darou:              "Darou",
	Deshou:             "Deshou",
	Rashii:             "Rashii",
	Souda:              "Souda",
	Youda:              "Youda",
	Mitai:              "Mitai",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "Unknown"
}

// IsRegistered reports whether r is one of the named Reason values, used
// by the deinflect package's startup self-check.
func (r Reason) IsRegistered() bool {
	_, ok := reasonNames[r]
	return ok
}

// WordType is a bitmask over verb/adjective categories plus intermediate
// stem markers. Width is at least 16 bits; we use a 32-bit mask for
// headroom.
type WordType uint32

const (
	IchidanVerb WordType = 1 << iota
	GodanVerb
	GodanVerbSpecial // irregular godan ending rows (くださる, いらっしゃる, ...)
	GodanUVerb       // ～う row
	GodanTsuVerb     // ～つ row
	GodanRuVerb      // ～る row
	GodanKuVerb      // ～く row
	GodanGuVerb      // ～ぐ row
	GodanSuVerb      // ～す row
	GodanNuVerb      // ～ぬ row
	GodanBuVerb      // ～ぶ row
	GodanMuVerb      // ～む row
	KuruVerb
	SuruVerb
	SpecialSuruVerb
	NounVS
	IAdj
	StemMasu     // masu-stem intermediate marker (distinct from Reason MasuStem)
	StemTaTe     // te/ta-stem intermediate marker (distinct from Reason TaTeStem)
	StemDaDe     // de/da-stem intermediate marker (nasal-row te/ta variant)
	StemIrrealis // nai-stem (negative base) intermediate marker
)

// All is the union of terminal (dictionary-form) categories. Deinflection
// candidates whose type does not intersect All are intermediate stems and
// are filtered out of deinflect.Deinflect's return value.
const All = IchidanVerb | GodanVerb | GodanVerbSpecial | GodanUVerb |
	GodanTsuVerb | GodanRuVerb | GodanKuVerb | GodanGuVerb | GodanSuVerb |
	GodanNuVerb | GodanBuVerb | GodanMuVerb | KuruVerb | SuruVerb |
	SpecialSuruVerb | NounVS | IAdj

// StemOnly is the union of the intermediate-stem-only bits; a WordType
// value made entirely of these bits never appears in deinflect.Deinflect's
// return value.
const StemOnly = StemMasu | StemTaTe | StemDaDe | StemIrrealis

// GodanFamily is the union of the generic GodanVerb bit and every
// row-specific Godan subtype bit. The type matcher treats any of these
// as satisfying a dictionary entry's "Godan verb" part-of-speech tag;
// the deinflection rule table uses the row-specific bits internally to
// pick the correct terminating kana when reconstructing a dictionary
// form from a stem.
const GodanFamily = GodanVerb | GodanVerbSpecial | GodanUVerb | GodanTsuVerb |
	GodanRuVerb | GodanKuVerb | GodanGuVerb | GodanSuVerb | GodanNuVerb |
	GodanBuVerb | GodanMuVerb

// Has reports whether mask shares any bit with t.
func (t WordType) Has(mask WordType) bool { return t&mask != 0 }

// DeinflectRule is a single entry of the static ~400-rule table. From is
// matched against a candidate's trailing characters; on match the suffix
// is replaced by To, the candidate's type must intersect FromType, and
// the result's type becomes ToType. Reasons lists the grammatical step(s)
// this rule records.
type DeinflectRule struct {
	From     string
	To       string
	FromType WordType
	ToType   WordType
	Reasons  []Reason
}

// CandidateWord is a hypothesized earlier form reached by zero or more
// deinflection rule applications. ReasonChains lists every distinct
// derivation path that produced Word; within a chain, index 0 is the step
// nearest the original surface form.
type CandidateWord struct {
	Word         string
	Type         WordType
	ReasonChains [][]Reason
}

// KanjiReading is one kanji-form headword of a dictionary entry.
type KanjiReading struct {
	Text       string   `json:"text"`
	Priority   []string `json:"priority,omitempty"`
	Info       []string `json:"info,omitempty"`
	MatchStart int      `json:"match_start,omitempty"`
	MatchEnd   int      `json:"match_end,omitempty"`
	Match      bool     `json:"match,omitempty"`
}

// KanaReading is one kana-form headword of a dictionary entry.
type KanaReading struct {
	Text       string   `json:"text"`
	Priority   []string `json:"priority,omitempty"`
	Info       []string `json:"info,omitempty"`
	NoKanji    bool     `json:"no_kanji,omitempty"`
	MatchStart int      `json:"match_start,omitempty"`
	MatchEnd   int      `json:"match_end,omitempty"`
	Match      bool     `json:"match,omitempty"`
}

// Gloss is a single sense definition in a given language.
type Gloss struct {
	Text  string `json:"text"`
	Lang  string `json:"lang,omitempty"`
	GType string `json:"g_type,omitempty"`
}

// Sense is one numbered meaning of a dictionary entry, with its own part
// of speech tags (the tag vocabulary recognised by package match) and
// glosses.
type Sense struct {
	Index   int      `json:"index"`
	POSTags []string `json:"pos_tags,omitempty"`
	Glosses []Gloss  `json:"glosses,omitempty"`
	Info    []string `json:"info,omitempty"`
	Field   []string `json:"field,omitempty"`
	Misc    []string `json:"misc,omitempty"`
	Dial    []string `json:"dial,omitempty"`
}

// WordEntry is a single dictionary entry: a JMDict-equivalent headword
// group plus its readings and senses.
type WordEntry struct {
	EntryID       string         `json:"entry_id"`
	EntSeq        string         `json:"ent_seq,omitempty"`
	KanjiReadings []KanjiReading `json:"kanji_readings,omitempty"`
	KanaReadings  []KanaReading  `json:"kana_readings,omitempty"`
	Senses        []Sense        `json:"senses,omitempty"`
	Source        string         `json:"source,omitempty"`
}

// WordResult pairs a dictionary entry with how much of the original input
// (in UTF-16 code units) it consumed and the deinflection reason chains,
// if the surface form required deinflection to reach entry.
type WordResult struct {
	Entry        WordEntry
	MatchLen     int
	ReasonChains [][]Reason
}

// Token is a single segmented unit of the tokenizer's output. Start/End
// are UTF-16 code unit offsets into the original input text, so that
// original_text[t.Start:t.End] (measured in UTF-16 units) reproduces
// t.Text.
type Token struct {
	Text                string     `json:"text"`
	Start               int        `json:"start"`
	End                 int        `json:"end"`
	DictionaryEntry     *WordEntry `json:"dictionary_entry,omitempty"`
	DeinflectionReasons [][]Reason `json:"deinflection_reasons,omitempty"`
}

// Dictionary is the contract tentoku requires of an external dictionary
// store. Implementations live in package dictionary; the storage format
// behind GetWords is not part of this contract.
type Dictionary interface {
	// GetWords returns up to maxResults entries whose kanji or kana form
	// equals inputText or its hiragana-folded form. matchingText, if
	// given, overrides inputText for the purpose of setting Match/
	// MatchStart/MatchEnd on the returned entries' readings; it defaults
	// to inputText.
	GetWords(inputText string, maxResults int, matchingText ...string) ([]WordEntry, error)
}
