// Package variation generates alternative surface forms the word-search
// loop probes alongside the literal input text: long-vowel-mark (choon)
// expansion and old-kanji-form (kyuujitai) to new-kanji-form (shinjitai)
// substitution.
//
// The kyuujitai table is static, process-lifetime lookup data: a plain
// package-level map literal, since it is small and has no external file
// to parse.
package variation

import "strings"

const choon = 'ー'

// choonVariants is the fixed substitution set applied at the first choon
// occurrence: あいうえお in that order.
var choonVariants = []rune{'あ', 'い', 'う', 'え', 'お'}

// ExpandChoon returns five variants of text, each replacing the first
// occurrence of the long-vowel mark ー (U+30FC) with one of あいうえお.
// If text contains no ー, it returns nil -- callers re-enter with
// progressively shorter inputs, so only the first occurrence is ever
// expanded per call.
func ExpandChoon(text string) []string {
	idx := strings.IndexRune(text, choon)
	if idx < 0 {
		return nil
	}

	runes := []rune(text)
	choonPos := -1
	for i, r := range runes {
		if r == choon {
			choonPos = i
			break
		}
	}
	if choonPos < 0 {
		return nil
	}

	variants := make([]string, 0, len(choonVariants))
	for _, v := range choonVariants {
		out := make([]rune, len(runes))
		copy(out, runes)
		out[choonPos] = v
		variants = append(variants, string(out))
	}
	return variants
}

// kyuujitaiTable maps pre-1946 kyuujitai kanji forms to their 1946+
// shinjitai replacements. Non-exhaustive but covers the common
// substitutions a JMDict-era dictionary is likely to encounter.
var kyuujitaiTable = map[rune]rune{
	'舊': '旧', '體': '体', '國': '国', '學': '学', '會': '会',
	'變': '変', '廣': '広', '應': '応', '勸': '勧', '歸': '帰',
	'氣': '気', '歐': '欧', '檢': '検', '輕': '軽', '藝': '芸',
	'權': '権', '號': '号', '濟': '済', '參': '参', '產': '産',
	'絲': '糸', '實': '実', '從': '従', '獸': '獣', '澁': '渋',
	'縱': '縦', '敍': '叙', '證': '証', '條': '条', '眞': '真',
	'盡': '尽', '聲': '声', '專': '専', '戰': '戦', '纖': '繊',
	'踐': '践', '錢': '銭', '鐵': '鉄', '傳': '伝', '燈': '灯',
	'齋': '斎', '蠶': '蚕', '雜': '雑', '續': '続',
	'賣': '売', '發': '発', '髮': '髪', '飜': '翻',
	'萬': '万', '樣': '様', '豫': '予', '譯': '訳', '顯': '顕',
	'龜': '亀', '爲': '為', '醫': '医', '壽': '寿', '靈': '霊',
}

// KyuujitaiToShinjitai performs a character-wise substitution of
// kyuujitai kanji to their shinjitai equivalents. If no characters of
// text are in the substitution table, it returns text unchanged (the
// same backing string).
func KyuujitaiToShinjitai(text string) string {
	changed := false
	runes := []rune(text)
	for i, r := range runes {
		if repl, ok := kyuujitaiTable[r]; ok {
			runes[i] = repl
			changed = true
		}
	}
	if !changed {
		return text
	}
	return string(runes)
}
