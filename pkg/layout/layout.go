// Package layout maps raw keys to typed jamo tokens for the two Korean
// keyboard layouts the composer understands: 2-Bulsik (Dubeolsik) and
// 3-Bulsik (Sebeolsik 390).
//
// Jamo are addressed by Ohi slot indices: consonants occupy 1..30 and
// vowels 31..51, mirroring the compatibility jamo block so that
// Jamo(i) == 0x3130 + i.
package layout

import "sort"

// Ohi slot index bounds.
const (
	ConsonantFirst = 1
	ConsonantLast  = 30
	VowelFirst     = 31
	VowelLast      = 51
)

// Jamo returns the standalone compatibility jamo for an Ohi slot index,
// or 0 when the index is out of range.
func Jamo(i int) rune {
	if i < ConsonantFirst || i > VowelLast {
		return 0
	}
	return 0x3130 + rune(i)
}

// IsConsonantIndex reports whether i addresses a consonant slot.
func IsConsonantIndex(i int) bool { return i >= ConsonantFirst && i <= ConsonantLast }

// IsVowelIndex reports whether i addresses a vowel slot.
func IsVowelIndex(i int) bool { return i >= VowelFirst && i <= VowelLast }

// Dubeolsik letter rows. Indexed by key - 'a'; 0 means the key carries no
// jamo in that row.
var (
	dubeolsikPlain = [26]int{
		17, 48, 26, 23, 7, 9, 30, 39, 33, 35, 31, 51, 49,
		44, 32, 36, 18, 1, 4, 21, 37, 29, 24, 28, 43, 27,
	}
	dubeolsikShift = [26]int{
		17, 48, 26, 23, 8, 9, 30, 39, 33, 35, 31, 51, 49,
		44, 34, 38, 19, 2, 4, 22, 37, 29, 25, 28, 43, 27,
	}
)

// Dubeolsik translates an ASCII letter into an Ohi slot index. Keys
// outside a..z (or A..Z) return 0.
func Dubeolsik(key byte, shift bool) int {
	switch {
	case key >= 'a' && key <= 'z':
	case key >= 'A' && key <= 'Z':
		key += 'a' - 'A'
		shift = true
	default:
		return 0
	}
	if shift {
		return dubeolsikShift[key-'a']
	}
	return dubeolsikPlain[key-'a']
}

// Names lists the built-in layouts.
func Names() []string {
	names := []string{"dubeolsik", "sebeolsik-390"}
	sort.Strings(names)
	return names
}
