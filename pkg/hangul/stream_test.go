package hangul

import (
	"reflect"
	"testing"
)

func TestDecodeChar(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		start int
		cp    rune
		size  int
	}{
		{"ascii", []byte("a"), 0, 'a', 1},
		{"two byte", []byte("é"), 0, 'é', 2},
		{"three byte syllable", []byte{0xED, 0x95, 0x9C}, 0, '한', 3},
		{"four byte", []byte{0xF0, 0x9F, 0x98, 0x80}, 0, 0x1F600, 4},
		{"offset", []byte("a한"), 1, '한', 3},
		{"truncated", []byte{0xED, 0x95}, 0, 0, 0},
		{"bad continuation", []byte{0xED, 0x41, 0x9C}, 0, 0, 0},
		{"stray continuation", []byte{0x9C}, 0, 0, 0},
		{"past end", []byte("a"), 1, 0, 0},
		{"negative start", []byte("a"), -1, 0, 0},
	}
	for _, tc := range cases {
		cp, size := DecodeChar(tc.input, tc.start)
		if cp != tc.cp || size != tc.size {
			t.Fatalf("%s: got (%U, %d), want (%U, %d)", tc.name, cp, size, tc.cp, tc.size)
		}
	}
}

func TestDecomposeStringSyllable(t *testing.T) {
	got := DecomposeString([]byte{0xED, 0x95, 0x9C}) // 한
	want := []rune{'ㅎ', 'ㅏ', 'ㄴ'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", string(got), string(want))
	}
}

func TestDecomposeStringMixed(t *testing.T) {
	got := DecomposeString([]byte("한글 ok"))
	want := []rune{'ㅎ', 'ㅏ', 'ㄴ', 'ㄱ', 'ㅡ', 'ㄹ', ' ', 'o', 'k'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", string(got), string(want))
	}
}

func TestDecomposeStringPassesNonHangulIdentically(t *testing.T) {
	input := "abc déf 123 日本"
	got := DecomposeString([]byte(input))
	if string(got) != input {
		t.Fatalf("got %q, want %q", string(got), input)
	}
}

func TestDecomposeStringStopsAtMalformedByte(t *testing.T) {
	input := append([]byte("ab"), 0xED, 0x95) // truncated 한
	got := DecomposeString(input)
	if string(got) != "ab" {
		t.Fatalf("got %q, want %q", string(got), "ab")
	}
}

func TestComposeStringHangul(t *testing.T) {
	got := ComposeString([]rune{'ㅎ', 'ㅏ', 'ㄴ', 'ㄱ', 'ㅡ', 'ㄹ'})
	if string(got) != "한글" {
		t.Fatalf("got %q, want 한글", string(got))
	}
}

func TestComposeStringLookahead(t *testing.T) {
	// The ㄴ is followed by a vowel, so it opens the next syllable
	// instead of closing the first.
	got := ComposeString([]rune{'ㄱ', 'ㅏ', 'ㄴ', 'ㅏ'})
	if string(got) != "가나" {
		t.Fatalf("got %q, want 가나", string(got))
	}
}

func TestComposeStringPassthrough(t *testing.T) {
	cases := []struct {
		name  string
		input []rune
		want  string
	}{
		{"no jamo", []rune("hello"), "hello"},
		{"lone vowel", []rune{'ㅏ', 'ㅏ'}, "ㅏㅏ"},
		{"lone consonant", []rune{'ㄱ'}, "ㄱ"},
		{"unfusable pair", []rune{'ㄳ', 'ㅏ'}, "ㄳㅏ"},
		{"mixed", []rune{'x', 'ㄱ', 'ㅏ', 'y'}, "x가y"},
	}
	for _, tc := range cases {
		if got := string(ComposeString(tc.input)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestComposeStringInvertsDecomposeStringForPlainText(t *testing.T) {
	input := "한글 입력기"
	if got := string(ComposeString(DecomposeString([]byte(input)))); got != input {
		t.Fatalf("got %q, want %q", got, input)
	}
}
