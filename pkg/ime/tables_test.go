package ime

import (
	"testing"

	"hancore/pkg/layout"
)

func TestEveryDoubleInitialRule(t *testing.T) {
	for pair, compound := range doubleInitial {
		s := NewState()
		s.ProcessKey2(pair[0])
		r := s.ProcessKey2(pair[1])
		if r.Action != ActionReplace || r.Current != layout.Jamo(compound) {
			t.Fatalf("%c+%c: got action %d %c, want %c",
				layout.Jamo(pair[0]), layout.Jamo(pair[1]), r.Action, r.Current, layout.Jamo(compound))
		}
	}
}

func TestEveryDoubleMedialRule(t *testing.T) {
	for pair, compound := range doubleMedial {
		s := NewState()
		s.ProcessKey2(23) // ㅇ
		s.ProcessKey2(pair[0])
		r := s.ProcessKey2(pair[1])
		want, _ := compose(23, compound, 0)
		if r.Action != ActionReplace || r.Current != want {
			t.Fatalf("%c+%c: got action %d %c, want %c",
				layout.Jamo(pair[0]), layout.Jamo(pair[1]), r.Action, r.Current, want)
		}
	}
}

func TestEveryDoubleFinalRuleAndSplit(t *testing.T) {
	for pair, compound := range doubleFinal {
		s := NewState()
		s.ProcessKey2(23) // ㅇ
		s.ProcessKey2(31) // ㅏ
		s.ProcessKey2(pair[0])
		r := s.ProcessKey2(pair[1])
		want, _ := compose(23, 31, compound)
		if r.Action != ActionReplace || r.Current != want {
			t.Fatalf("form %c+%c: got action %d %U, want %U",
				layout.Jamo(pair[0]), layout.Jamo(pair[1]), r.Action, r.Current, want)
		}

		// A following vowel keeps the base and migrates the second.
		r = s.ProcessKey2(31)
		wantPrev, _ := compose(23, 31, pair[0])
		wantCurrent, _ := compose(pair[1], 31, 0)
		if r.Action != ActionEmitAndNew || r.Prev != wantPrev || r.Current != wantCurrent {
			t.Fatalf("split %c: got (%U, %U), want (%U, %U)",
				layout.Jamo(compound), r.Prev, r.Current, wantPrev, wantCurrent)
		}
	}
}

// compose builds the expected syllable straight from Ohi slots.
func compose(initial, medial, final int) (rune, bool) {
	s := State{initial: initial, medial: medial, final: final}
	cp := s.Codepoint()
	return cp, cp != 0
}
