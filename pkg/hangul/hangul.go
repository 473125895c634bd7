// Package hangul implements the algorithmic Hangul codec: mapping between
// precomposed syllables (U+AC00..U+D7A3) and Unicode compatibility jamo
// (U+3131..U+3163), plus predicates over the jamo block.
//
// Every conversion derives from the composition identity
//
//	syllable = 0xAC00 + initial*21*28 + medial*28 + final
//
// with 19 initials, 21 medials, and 28 finals (index 0 meaning "no final").
package hangul

const (
	// SyllableBase and SyllableLast bound the precomposed syllable block.
	SyllableBase = 0xAC00
	SyllableLast = 0xD7A3

	// JamoBase and JamoLast bound the compatibility jamo block used for
	// decomposed output. JamoBase-1 (0x3130) is the offset added to Ohi
	// slot indices to obtain a standalone jamo.
	JamoBase = 0x3131
	JamoLast = 0x3163

	medialCount = 21
	finalCount  = 28
)

var (
	choseong = [19]rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	jungseong = [21]rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
	}
	jongseong = [28]rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Reverse lookup is direct-address over the 51-slot compatibility block so
// Compose stays O(1) on the interactive hot path. noIndex marks a jamo that
// has no slot in the given position.
const noIndex = 0xFF

var (
	choseongIndex  [JamoLast - JamoBase + 1]uint8
	jungseongIndex [JamoLast - JamoBase + 1]uint8
	jongseongIndex [JamoLast - JamoBase + 1]uint8
)

func init() {
	for i := range choseongIndex {
		choseongIndex[i] = noIndex
		jungseongIndex[i] = noIndex
		jongseongIndex[i] = noIndex
	}
	for i, r := range choseong {
		choseongIndex[r-JamoBase] = uint8(i)
	}
	for i, r := range jungseong {
		jungseongIndex[r-JamoBase] = uint8(i)
	}
	for i, r := range jongseong {
		if r != 0 {
			jongseongIndex[r-JamoBase] = uint8(i)
		}
	}
}

func lookup(table *[JamoLast - JamoBase + 1]uint8, cp rune) (int, bool) {
	if cp < JamoBase || cp > JamoLast {
		return 0, false
	}
	idx := table[cp-JamoBase]
	if idx == noIndex {
		return 0, false
	}
	return int(idx), true
}

// IsSyllable reports whether cp is a precomposed Hangul syllable.
func IsSyllable(cp rune) bool {
	return cp >= SyllableBase && cp <= SyllableLast
}

// Decompose splits a syllable into its compatibility jamo. The final is 0
// when the syllable has none. ok is false for anything outside the
// syllable block.
func Decompose(cp rune) (initial, medial, final rune, ok bool) {
	if !IsSyllable(cp) {
		return 0, 0, 0, false
	}
	offset := cp - SyllableBase
	initial = choseong[offset/(medialCount*finalCount)]
	medial = jungseong[(offset/finalCount)%medialCount]
	final = jongseong[offset%finalCount]
	return initial, medial, final, true
}

// Compose assembles a syllable from compatibility jamo. final may be 0 for
// "no final"; any other code point outside the recognized sets yields
// ok == false.
func Compose(initial, medial, final rune) (rune, bool) {
	ci, ok := lookup(&choseongIndex, initial)
	if !ok {
		return 0, false
	}
	mi, ok := lookup(&jungseongIndex, medial)
	if !ok {
		return 0, false
	}
	fi := 0
	if final != 0 {
		fi, ok = lookup(&jongseongIndex, final)
		if !ok {
			return 0, false
		}
	}
	return SyllableBase + rune(ci*medialCount*finalCount+mi*finalCount+fi), true
}

// HasFinal reports whether cp is a syllable carrying a 종성.
func HasFinal(cp rune) bool {
	_, _, final, ok := Decompose(cp)
	return ok && final != 0
}

// Initial returns the 초성 of a syllable, or 0 if cp is not a syllable.
func Initial(cp rune) rune {
	initial, _, _, ok := Decompose(cp)
	if !ok {
		return 0
	}
	return initial
}

// Medial returns the 중성 of a syllable, or 0 if cp is not a syllable.
func Medial(cp rune) rune {
	_, medial, _, ok := Decompose(cp)
	if !ok {
		return 0
	}
	return medial
}

// Final returns the 종성 of a syllable, or 0 when absent or cp is not a
// syllable.
func Final(cp rune) rune {
	_, _, final, ok := Decompose(cp)
	if !ok {
		return 0
	}
	return final
}

// IsJamo reports whether cp lies in the compatibility jamo block.
func IsJamo(cp rune) bool {
	return cp >= JamoBase && cp <= JamoLast
}

// IsConsonant reports whether cp is a compatibility consonant (자음).
func IsConsonant(cp rune) bool {
	return cp >= JamoBase && cp <= 'ㅎ'
}

// IsVowel reports whether cp is a compatibility vowel (모음).
func IsVowel(cp rune) bool {
	return cp >= 'ㅏ' && cp <= JamoLast
}

// IsDoubleConsonant reports whether cp is one of ㄲ ㄸ ㅃ ㅆ ㅉ.
func IsDoubleConsonant(cp rune) bool {
	switch cp {
	case 'ㄲ', 'ㄸ', 'ㅃ', 'ㅆ', 'ㅉ':
		return true
	}
	return false
}

// IsDoubleVowel reports whether cp is one of ㅘ ㅙ ㅚ ㅝ ㅞ ㅟ ㅢ.
func IsDoubleVowel(cp rune) bool {
	switch cp {
	case 'ㅘ', 'ㅙ', 'ㅚ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅢ':
		return true
	}
	return false
}
