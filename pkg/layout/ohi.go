package layout

// The Ohi consonant space 1..30 is sparse with respect to the codec index
// spaces (19 initials, 28 finals), so the conversions are precomputed
// tables rather than arithmetic. -1 marks a slot with no codec index.

var ohiToInitial = [31]int8{
	-1, 0, 1, -1, 2, -1, -1, 3, 4, 5,
	-1, -1, -1, -1, -1, -1, -1, 6, 7, 8,
	-1, 9, 10, 11, 12, 13, 14, 15, 16, 17,
	18,
}

var ohiToFinal = [31]int8{
	0, 1, 2, 3, 4, 5, 6, 7, -1, 8,
	9, 10, 11, 12, 13, 14, 15, 16, 17, -1,
	18, 19, 20, 21, 22, -1, 23, 24, 25, 26,
	27,
}

// InitialIndex converts an Ohi consonant slot to the codec 초성 index.
func InitialIndex(i int) (int, bool) {
	if i < ConsonantFirst || i > ConsonantLast {
		return 0, false
	}
	idx := ohiToInitial[i]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}

// MedialIndex converts an Ohi vowel slot to the codec 중성 index.
func MedialIndex(i int) (int, bool) {
	if i < VowelFirst || i > VowelLast {
		return 0, false
	}
	return i - VowelFirst, true
}

// FinalIndex converts an Ohi consonant slot to the codec 종성 index.
// Slot 0 is the legal "no final" value. ㄸ ㅃ ㅉ have no 종성 form.
func FinalIndex(i int) (int, bool) {
	if i < 0 || i > ConsonantLast {
		return 0, false
	}
	idx := ohiToFinal[i]
	if idx < 0 {
		return 0, false
	}
	return int(idx), true
}
