package ime

import "hancore/pkg/layout"

// ProcessKey2 feeds one 2-Bulsik keystroke, given as an Ohi slot index
// (consonant 1..30, vowel 31..51). Anything out of range is a no-op.
//
// 2-Bulsik keys carry no 초성/종성 role, so a consonant after a finished
// syllable is held as a 종성 until a following vowel pulls it over into
// the next syllable.
func (s *State) ProcessKey2(jamo int) KeyResult {
	switch {
	case layout.IsConsonantIndex(jamo):
		return s.consonant2(jamo)
	case layout.IsVowelIndex(jamo):
		return s.vowel2(jamo)
	default:
		return KeyResult{}
	}
}

func (s *State) consonant2(in int) KeyResult {
	shouldEmit := false
	if s.medial > 0 && s.final > 0 {
		if !s.finalFlag {
			if compound, ok := doubleFinal[[2]int{s.final, in}]; ok {
				s.final = compound
				s.finalFlag = true
				return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
			}
		}
		// The 종성 cannot absorb this key; the syllable is done.
		shouldEmit = true
	}

	if s.medial == 0 || shouldEmit || (s.initial > 0 && s.final == 0 && canFollowAsInitial(in)) {
		if s.medial == 0 && s.final == 0 && s.initial > 0 {
			if compound, ok := doubleInitial[[2]int{s.initial, in}]; ok {
				s.initial = compound
				s.initialFlag = true
				return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
			}
		}
		if s.empty() {
			s.initial = in
			s.initialFlag = true
			return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
		}
		prev := s.Codepoint()
		s.Reset()
		s.initial = in
		s.initialFlag = true
		return KeyResult{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}

	if s.initial == 0 {
		s.initial = in
		s.initialFlag = true
	} else if s.final == 0 {
		s.final = in
		s.finalFlag = false
	}
	return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
}

func (s *State) vowel2(in int) KeyResult {
	// The reference marks the medial slot with -1 when a double-vowel
	// attempt fails; a local flag keeps the live medial visible to the
	// emit below while routing to the same branch.
	blocked := false
	if s.medial > 0 && s.final == 0 && !s.medialFlag {
		if compound, ok := doubleMedial[[2]int{s.medial, in}]; ok {
			s.medial = compound
			s.medialFlag = true
			return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
		}
		blocked = true
	}

	if s.initial > 0 && s.medial > 0 && s.final > 0 {
		// A vowel after a closed syllable: the 종성 (or the second half
		// of a compound 종성) migrates to the new syllable.
		newInitial := s.final
		if s.finalFlag {
			if pair, ok := finalSplit[s.final]; ok {
				s.final = pair[0]
				newInitial = pair[1]
			} else {
				s.final = 0
			}
		} else {
			s.final = 0
		}
		prev := s.Codepoint()
		s.Reset()
		s.initial = newInitial
		s.medial = in
		return KeyResult{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}

	if s.initial == 0 || s.medial > 0 || blocked {
		if s.empty() {
			s.medial = in
			return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
		}
		prev := s.Codepoint()
		s.Reset()
		s.medial = in
		return KeyResult{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}

	s.medial = in
	s.medialFlag = false
	return KeyResult{Action: ActionReplace, Current: s.Codepoint()}
}
