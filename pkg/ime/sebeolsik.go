package ime

import "hancore/pkg/layout"

// ProcessKey3 feeds one 3-Bulsik keystroke as a raw ASCII byte. Keys are
// typed by role (초/중/종) on distinct keys, so there is no syllable
// splitting; non-jamo keys come back as literals. Unmapped bytes are a
// no-op.
func (s *State) ProcessKey3(key byte) Key3Result {
	token := layout.Sebeolsik(key)
	switch token.Kind {
	case layout.TokenInitial:
		return s.cho3(token.Index)
	case layout.TokenMedial:
		return s.jung3(token.Index)
	case layout.TokenFinal:
		return s.jong3(token.Index)
	case layout.TokenLiteral:
		return s.literal3(token.Literal)
	default:
		return Key3Result{}
	}
}

func (s *State) cho3(in int) Key3Result {
	if s.initial > 0 && s.medial == 0 && !s.initialFlag {
		if compound, ok := doubleInitial[[2]int{s.initial, in}]; ok {
			s.initial = compound
			s.initialFlag = true
			return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
		}
	}
	if !s.empty() {
		prev := s.Codepoint()
		s.Reset()
		s.initial = in
		return Key3Result{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}
	s.initial = in
	return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
}

func (s *State) jung3(in int) Key3Result {
	blocked := false
	if s.medial > 0 && s.final == 0 && !s.medialFlag {
		if compound, ok := doubleMedial[[2]int{s.medial, in}]; ok {
			s.medial = compound
			s.medialFlag = true
			return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
		}
		blocked = true
	}
	if ((s.initial == 0 || s.medial != 0) && (!s.medialFlag || s.final > 0)) || blocked {
		if s.empty() {
			s.medial = in
			return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
		}
		prev := s.Codepoint()
		s.Reset()
		s.medial = in
		return Key3Result{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}
	s.medial = in
	s.medialFlag = false
	return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
}

func (s *State) jong3(in int) Key3Result {
	if s.final > 0 && !s.finalFlag {
		if compound, ok := doubleFinal[[2]int{s.final, in}]; ok {
			s.final = compound
			s.finalFlag = true
			return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
		}
	}
	if s.initial > 0 && s.medial > 0 && s.final == 0 {
		s.final = in
		s.finalFlag = false
		return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
	}
	// A 종성 with no syllable to attach to: emit whatever is live and
	// hold the lone 종성; the next key resolves it.
	if !s.empty() {
		prev := s.Codepoint()
		s.Reset()
		s.final = in
		return Key3Result{Action: ActionEmitAndNew, Prev: prev, Current: s.Codepoint()}
	}
	s.final = in
	return Key3Result{Action: ActionReplace, Current: s.Codepoint()}
}

func (s *State) literal3(cp rune) Key3Result {
	var prev rune
	if !s.empty() {
		prev = s.Codepoint()
		s.Reset()
	}
	return Key3Result{Action: ActionLiteral, Prev: prev, Literal: cp}
}
