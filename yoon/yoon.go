// Package yoon detects a trailing yoon (拗音) -- a palatalized digraph
// such as きゃ, しゅ, ちょ -- so the word-search backtracking loop can
// shorten its probe by two code units instead of one and avoid splitting
// the digraph.
//
// Ported from the original Python reference's yoon.py, which defines the
// same two fixed code-point sets and the same last-two-characters check.
package yoon

// yoonStart holds the consonant kana that can precede a small や/ゆ/よ to
// form a single mora: きしちにひみりぎじびぴ.
var yoonStart = map[rune]bool{
	0x304D: true, // き
	0x3057: true, // し
	0x3061: true, // ち
	0x306B: true, // に
	0x3072: true, // ひ
	0x307F: true, // み
	0x308A: true, // り
	0x304E: true, // ぎ
	0x3058: true, // じ
	0x3073: true, // び
	0x3074: true, // ぴ
}

// smallY holds the small-form や/ゆ/よ that complete a yoon digraph.
var smallY = map[rune]bool{
	0x3083: true, // ゃ
	0x3085: true, // ゅ
	0x3087: true, // ょ
}

// EndsInYoon reports whether text ends in a yoon: its last rune is one of
// ゃゅょ and the rune before it is one of きしちにひみりぎじびぴ. Text
// shorter than two runes is never considered to end in a yoon.
func EndsInYoon(text string) bool {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return false
	}
	last := runes[n-1]
	secondLast := runes[n-2]
	return smallY[last] && yoonStart[secondLast]
}
