// Package normalize prepares raw input text for the word-search loop:
// Unicode canonicalization, half-to-full-width digit folding, ZWNJ
// removal, and a UTF-16 offset table back to the original input.
//
// Each transform is a small, static, allocation-light function with no
// package-level state, generalized to the richer offset-tracking
// contract this tokenizer needs.
package normalize

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

const zwnj = 0x200C

// utf16RuneLen reports the number of UTF-16 code units needed to encode
// r, mirroring the semantics of unicode/utf16.RuneLen (unavailable in
// this Go toolchain): 1 for BMP runes, 2 for supplementary-plane runes,
// and -1 for runes that cannot be encoded in UTF-16.
func utf16RuneLen(r rune) int {
	switch {
	case r < 0 || r > unicode.MaxRune:
		return -1
	case r >= 0xD800 && r <= 0xDFFF: // surrogate halves
		return -1
	case r > 0xFFFF:
		return 2
	default:
		return 1
	}
}

// Options controls optional normalize.Normalize steps.
type Options struct {
	// FullWidthDigits maps ASCII 0-9 to their full-width counterparts
	// before NFC composition. Defaults to true via NormalizeDefault.
	FullWidthDigits bool
	// StripZWNJ removes U+200C (inserted between characters by some
	// word processors) after NFC composition. Defaults to true via
	// NormalizeDefault.
	StripZWNJ bool
}

// DefaultOptions enables both knobs; Normalize(text, DefaultOptions())
// == NormalizeDefault(text).
func DefaultOptions() Options {
	return Options{FullWidthDigits: true, StripZWNJ: true}
}

// NormalizeDefault runs Normalize with both normalization steps enabled,
// the configuration the word-search loop always uses.
func NormalizeDefault(input string) (string, []int) {
	return Normalize(input, DefaultOptions())
}

// Normalize returns the normalized form of input and an offset map such
// that offsetMap[i] is the UTF-16 code unit offset into the *original*
// input string corresponding to UTF-16 code unit i of the normalized
// result. len(offsetMap) == utf16Len(normalized)+1; the final entry is a
// sentinel equal to the UTF-16 length of the original input, except that
// when ZWNJ stripping removes trailing code units it is the original
// offset just past the last kept code unit.
func Normalize(input string, opts Options) (string, []int) {
	if input == "" {
		return "", []int{0}
	}

	widened := input
	if opts.FullWidthDigits {
		widened = halfToFullWidthDigits(widened)
	}

	composed, offsetMap := toNFCWithOffsets(widened)

	if opts.StripZWNJ {
		composed, offsetMap = stripZWNJ(composed, offsetMap)
	}

	if len(offsetMap) == 0 {
		offsetMap = []int{0}
	}
	return composed, offsetMap
}

// halfToFullWidthDigits maps ASCII '0'-'9' (U+0030-0039) to their
// full-width counterparts U+FF10-FF19. It is a 1:1 rune substitution, so
// it never changes UTF-16 code-unit count.
func halfToFullWidthDigits(s string) string {
	hasDigit := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r-'0'+0xFF10)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// toNFCWithOffsets applies Unicode NFC canonical composition to s and
// builds the UTF-16-code-unit offset map back into s (the pre-NFC,
// post-width-fold string).
//
// s is split into maximal normalization segments with norm.NFC's
// NextBoundary so that every composed unit NFC produces from a segment
// (which may merge several source runes, e.g. a kana base plus a
// combining dakuten) is attributed to the UTF-16 offset where that
// segment begins in s -- the same "most recent unambiguous anchor"
// policy used for non-BMP runes, generalized to multi-rune-to-one-rune
// composition.
func toNFCWithOffsets(s string) (string, []int) {
	src := []byte(s)
	var composed []rune
	var offsetMap []int

	bytePos := 0
	utf16Pos := 0
	for bytePos < len(src) {
		rest := src[bytePos:]
		end := norm.NFC.NextBoundary(rest, true)
		if end <= 0 {
			end = len(rest)
		}
		segment := rest[:end]
		segmentUTF16Start := utf16Pos

		out := norm.NFC.String(string(segment))
		for _, r := range out {
			width := utf16RuneLen(r)
			if width < 1 {
				width = 1
			}
			composed = append(composed, r)
			for i := 0; i < width; i++ {
				offsetMap = append(offsetMap, segmentUTF16Start)
			}
		}

		for _, r := range string(segment) {
			w := utf16RuneLen(r)
			if w < 1 {
				w = 1
			}
			utf16Pos += w
		}
		bytePos += end
	}

	offsetMap = append(offsetMap, utf16Pos)
	return string(composed), offsetMap
}

// stripZWNJ removes every U+200C from normalized, rebuilding offsetMap
// so each surviving code unit's entry points to its pre-strip original
// offset and the appended sentinel equals the original offset just past
// the last kept code unit.
func stripZWNJ(normalized string, offsetMap []int) (string, []int) {
	if !containsZWNJ(normalized) {
		return normalized, offsetMap
	}

	units := utf16.Encode([]rune(normalized))
	out := make([]uint16, 0, len(units))
	newOffsets := make([]int, 0, len(offsetMap))
	last := 0
	if len(offsetMap) > 0 {
		last = offsetMap[0]
	}

	for i, u := range units {
		if u == zwnj {
			continue
		}
		out = append(out, u)
		if i < len(offsetMap) {
			newOffsets = append(newOffsets, offsetMap[i])
			if i+1 < len(offsetMap) {
				last = offsetMap[i+1]
			} else {
				last = offsetMap[len(offsetMap)-1]
			}
		}
	}
	newOffsets = append(newOffsets, last)

	return string(utf16.Decode(out)), newOffsets
}

func containsZWNJ(s string) bool {
	for _, r := range s {
		if r == zwnj {
			return true
		}
	}
	return false
}

// UTF16Len returns the number of UTF-16 code units s encodes to. Callers
// use this to index an offset map returned by Normalize, which is keyed
// by UTF-16 code unit position, not by rune count -- a surrogate-pair
// rune (outside the BMP) contributes two entries to that map but only
// one entry to []rune(s).
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		width := utf16RuneLen(r)
		if width < 1 {
			width = 1
		}
		n += width
	}
	return n
}

// KanaToHiragana lowers every katakana code point in U+30A1..30F6 by
// 0x60, maps U+30F7/8/9/A to わ/ゐ/ゑ/を (four historical katakana-only
// code points with no modern katakana counterpart), and leaves
// everything else (including the long-vowel mark U+30FC) unchanged.
func KanaToHiragana(text string) string {
	runes := []rune(text)
	changed := false
	for i, r := range runes {
		switch {
		case r >= 0x30A1 && r <= 0x30F6:
			runes[i] = r - 0x60
			changed = true
		case r == 0x30F7:
			runes[i] = 'わ'
			changed = true
		case r == 0x30F8:
			runes[i] = 'ゐ'
			changed = true
		case r == 0x30F9:
			runes[i] = 'ゑ'
			changed = true
		case r == 0x30FA:
			runes[i] = 'を'
			changed = true
		}
	}
	if !changed {
		return text
	}
	return string(runes)
}
