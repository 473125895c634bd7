// Package ime implements the per-session Korean composition state
// machine. Keystrokes arrive as Ohi slot indices (2-Bulsik) or raw ASCII
// bytes (3-Bulsik) and come back as edit actions for the host text field.
package ime

import (
	"hancore/pkg/hangul"
	"hancore/pkg/layout"
)

// Action tells the host how to apply a key result to its text field.
type Action int

const (
	// ActionNone leaves the text field untouched.
	ActionNone Action = iota
	// ActionReplace overwrites the character under composition with
	// Current, or inserts Current when no composition is active.
	ActionReplace
	// ActionEmitAndNew finalizes Prev in place and inserts Current as the
	// start of a new composition.
	ActionEmitAndNew
	// ActionLiteral finalizes any active composition, then inserts the
	// literal code point verbatim. 3-Bulsik only.
	ActionLiteral
)

// KeyResult is the outcome of a 2-Bulsik keystroke.
type KeyResult struct {
	Action  Action
	Prev    rune
	Current rune
}

// Key3Result is the outcome of a 3-Bulsik keystroke.
type Key3Result struct {
	Action  Action
	Prev    rune
	Current rune
	Literal rune
}

// State holds the partial syllable under composition. Slots are Ohi
// indices; 0 means empty. A flag records that its slot was just formed as
// a double jamo and must not absorb another key. 2-Bulsik input also sets
// the 초성 flag for a single typed consonant; its handlers never read it.
//
// One State belongs to one logical caller; all mutation goes through the
// handler methods.
type State struct {
	initial     int
	initialFlag bool
	medial      int
	medialFlag  bool
	final       int
	finalFlag   bool
}

// NewState returns an empty composition state.
func NewState() *State { return &State{} }

func (s *State) empty() bool {
	return s.initial <= 0 && s.medial <= 0 && s.final <= 0
}

// Reset discards the current composition.
func (s *State) Reset() { *s = State{} }

// Commit finalizes the current composition: it returns the composed code
// point (0 when empty) and clears the state. Distinct from Reset; hosts
// call this on focus loss.
func (s *State) Commit() rune {
	cp := s.Codepoint()
	s.Reset()
	return cp
}

// Codepoint projects the state to a single code point: 0 when empty, a
// standalone compatibility jamo when exactly one slot is live, or a
// composed syllable when 초성 and 중성 are both present. Out-of-range
// slot values project to 0.
func (s *State) Codepoint() rune {
	if s.initial > 0 && s.medial > 0 {
		final := rune(0)
		if s.final > 0 {
			final = layout.Jamo(s.final)
		}
		cp, ok := hangul.Compose(layout.Jamo(s.initial), layout.Jamo(s.medial), final)
		if !ok {
			return 0
		}
		return cp
	}
	live := 0
	slot := 0
	for _, v := range [3]int{s.initial, s.medial, s.final} {
		if v > 0 {
			live++
			slot = v
		}
	}
	if live != 1 {
		return 0
	}
	return layout.Jamo(slot)
}

// Backspace removes the rightmost live component together with its flag.
// It returns the remaining projection and true while the state stays
// non-empty, or (0, false) once it is empty and the host should delete
// the composition character itself.
func (s *State) Backspace() (rune, bool) {
	switch {
	case s.final > 0:
		s.final = 0
		s.finalFlag = false
	case s.medial > 0:
		s.medial = 0
		s.medialFlag = false
	case s.initial > 0:
		s.initial = 0
		s.initialFlag = false
		return 0, false
	default:
		return 0, false
	}
	if s.empty() {
		return 0, false
	}
	return s.Codepoint(), true
}

// Snapshot returns the raw slot values and flags in field order:
// initial, initial flag, medial, medial flag, final, final flag.
func (s *State) Snapshot() [6]int {
	return [6]int{
		s.initial, boolInt(s.initialFlag),
		s.medial, boolInt(s.medialFlag),
		s.final, boolInt(s.finalFlag),
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
