package hangul

import "testing"

func TestRoundtripAllSyllables(t *testing.T) {
	for cp := rune(SyllableBase); cp <= SyllableLast; cp++ {
		initial, medial, final, ok := Decompose(cp)
		if !ok {
			t.Fatalf("decompose rejected syllable %U", cp)
		}
		back, ok := Compose(initial, medial, final)
		if !ok {
			t.Fatalf("compose rejected jamo of %U (%c %c %c)", cp, initial, medial, final)
		}
		if back != cp {
			t.Fatalf("roundtrip %U -> %U", cp, back)
		}
	}
}

func TestCompositionCoversEverySyllable(t *testing.T) {
	seen := make(map[rune]struct{}, 11172)
	for _, initial := range choseong {
		for _, medial := range jungseong {
			for _, final := range jongseong {
				cp, ok := Compose(initial, medial, final)
				if !ok {
					t.Fatalf("compose failed for %c %c %c", initial, medial, final)
				}
				if !IsSyllable(cp) {
					t.Fatalf("composed %U outside the syllable block", cp)
				}
				seen[cp] = struct{}{}
			}
		}
	}
	if len(seen) != 11172 {
		t.Fatalf("expected 11172 distinct syllables, got %d", len(seen))
	}
}

func TestComposeRejectsInvalidJamo(t *testing.T) {
	cases := []struct {
		name                   string
		initial, medial, final rune
	}{
		{"vowel as initial", 'ㅏ', 'ㅏ', 0},
		{"compound consonant as initial", 'ㄳ', 'ㅏ', 0},
		{"consonant as medial", 'ㄱ', 'ㄴ', 0},
		{"vowel as final", 'ㄱ', 'ㅏ', 'ㅓ'},
		{"initial-only consonant as final", 'ㄱ', 'ㅏ', 'ㄸ'},
		{"latin letter", 'g', 'ㅏ', 0},
		{"zero initial", 0, 'ㅏ', 0},
		{"zero medial", 'ㄱ', 0, 0},
	}
	for _, tc := range cases {
		if cp, ok := Compose(tc.initial, tc.medial, tc.final); ok {
			t.Fatalf("%s: expected rejection, got %U", tc.name, cp)
		}
	}
}

func TestDecomposeRejectsNonSyllables(t *testing.T) {
	for _, cp := range []rune{0, 'a', 'ㄱ', 'ㅏ', SyllableBase - 1, SyllableLast + 1, 0x1100} {
		if _, _, _, ok := Decompose(cp); ok {
			t.Fatalf("decompose accepted %U", cp)
		}
	}
}

func TestAccessors(t *testing.T) {
	// 한 = ㅎ + ㅏ + ㄴ, 하 has no final.
	if got := Initial('한'); got != 'ㅎ' {
		t.Fatalf("initial of 한: got %c", got)
	}
	if got := Medial('한'); got != 'ㅏ' {
		t.Fatalf("medial of 한: got %c", got)
	}
	if got := Final('한'); got != 'ㄴ' {
		t.Fatalf("final of 한: got %c", got)
	}
	if !HasFinal('한') || HasFinal('하') {
		t.Fatalf("HasFinal misclassified 한/하")
	}
	if Initial('x') != 0 || Medial('x') != 0 || Final('x') != 0 {
		t.Fatalf("accessors leaked a value for a non-syllable")
	}
}

func TestPredicates(t *testing.T) {
	if !IsJamo('ㄱ') || !IsJamo('ㅣ') || IsJamo('가') || IsJamo('a') {
		t.Fatalf("IsJamo misclassified")
	}
	if !IsConsonant('ㄱ') || !IsConsonant('ㅎ') || IsConsonant('ㅏ') {
		t.Fatalf("IsConsonant misclassified")
	}
	if !IsVowel('ㅏ') || !IsVowel('ㅣ') || IsVowel('ㅎ') {
		t.Fatalf("IsVowel misclassified")
	}
	for _, cp := range []rune{'ㄲ', 'ㄸ', 'ㅃ', 'ㅆ', 'ㅉ'} {
		if !IsDoubleConsonant(cp) {
			t.Fatalf("IsDoubleConsonant rejected %c", cp)
		}
	}
	if IsDoubleConsonant('ㄳ') || IsDoubleConsonant('ㄱ') {
		t.Fatalf("IsDoubleConsonant accepted a non-double")
	}
	for _, cp := range []rune{'ㅘ', 'ㅙ', 'ㅚ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅢ'} {
		if !IsDoubleVowel(cp) {
			t.Fatalf("IsDoubleVowel rejected %c", cp)
		}
	}
	if IsDoubleVowel('ㅏ') || IsDoubleVowel('ㅛ') {
		t.Fatalf("IsDoubleVowel accepted a non-double")
	}
}
