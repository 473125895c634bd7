package layout

// TokenKind classifies what a 3-Bulsik key produces.
type TokenKind int

const (
	TokenNone    TokenKind = iota // key carries nothing
	TokenInitial                  // 초성, Index is an Ohi consonant slot
	TokenMedial                   // 중성, Index is an Ohi vowel slot
	TokenFinal                    // 종성, Index is an Ohi consonant slot
	TokenLiteral                  // Literal is inserted verbatim
)

// Token is a typed 3-Bulsik key translation.
type Token struct {
	Kind    TokenKind
	Index   int
	Literal rune
}

// The Sebeolsik 390 table covers ASCII 33..126. Entry values select the
// token kind by range: 93..122 initial (value-92), 66..86 medial
// (value-35), 1..30 final, anything else a literal code point. The three
// keys whose own ASCII codes fall inside the initial range ('^' '_' '`')
// carry fullwidth literals instead.
var sebeolsik390 = [94]rune{
	'!',    // 33 !
	18,     // 34 "  ㅂ final
	'#',    // 35 #
	'$',    // 36 $
	'%',    // 37 %
	'&',    // 38 &
	79,     // 39 '  ㅜ
	'(',    // 40 (
	')',    // 41 )
	'*',    // 42 *
	'+',    // 43 +
	75,     // 44 ,  ㅘ
	'-',    // 45 -
	80,     // 46 .  ㅝ
	82,     // 47 /  ㅟ
	'0',    // 48 0
	'1',    // 49 1
	'2',    // 50 2
	'3',    // 51 3
	'4',    // 52 4
	'5',    // 53 5
	'6',    // 54 6
	'7',    // 55 7
	'8',    // 56 8
	'9',    // 57 9
	17,     // 58 :  ㅁ final
	83,     // 59 ;  ㅠ
	76,     // 60 <  ㅙ
	'=',    // 61 =
	81,     // 62 >  ㅞ
	'?',    // 63 ?
	'@',    // 64 @
	109,    // 65 A  ㅁ initial
	23,     // 66 B  ㅇ final
	118,    // 67 C  ㅊ initial
	115,    // 68 D  ㅇ initial
	100,    // 69 E  ㄸ initial
	101,    // 70 F  ㄹ initial
	122,    // 71 G  ㅎ initial
	1,      // 72 H  ㄱ final
	26,     // 73 I  ㅊ final
	4,      // 74 J  ㄴ final
	7,      // 75 K  ㄷ final
	9,      // 76 L  ㄹ final
	30,     // 77 M  ㅎ final
	21,     // 78 N  ㅅ final
	27,     // 79 O  ㅋ final
	28,     // 80 P  ㅌ final
	111,    // 81 Q  ㅃ initial
	94,     // 82 R  ㄲ initial
	96,     // 83 S  ㄴ initial
	114,    // 84 T  ㅆ initial
	24,     // 85 U  ㅈ final
	121,    // 86 V  ㅍ initial
	117,    // 87 W  ㅉ initial
	120,    // 88 X  ㅌ initial
	21,     // 89 Y  ㅅ final
	119,    // 90 Z  ㅋ initial
	69,     // 91 [  ㅒ
	85,     // 92 \  ㅢ
	73,     // 93 ]  ㅖ
	'＾',   // 94 ^
	'＿',   // 95 _
	'｀',   // 96 `
	109,    // 97 a  ㅁ initial
	83,     // 98 b  ㅠ
	118,    // 99 c  ㅊ initial
	115,    // 100 d ㅇ initial
	99,     // 101 e ㄷ initial
	101,    // 102 f ㄹ initial
	122,    // 103 g ㅎ initial
	74,     // 104 h ㅗ
	68,     // 105 i ㅑ
	70,     // 106 j ㅓ
	66,     // 107 k ㅏ
	86,     // 108 l ㅣ
	84,     // 109 m ㅡ
	79,     // 110 n ㅜ
	67,     // 111 o ㅐ
	71,     // 112 p ㅔ
	110,    // 113 q ㅂ initial
	93,     // 114 r ㄱ initial
	96,     // 115 s ㄴ initial
	113,    // 116 t ㅅ initial
	72,     // 117 u ㅕ
	121,    // 118 v ㅍ initial
	116,    // 119 w ㅈ initial
	120,    // 120 x ㅌ initial
	78,     // 121 y ㅛ
	119,    // 122 z ㅋ initial
	29,     // 123 {  ㅍ final
	'|',    // 124 |
	30,     // 125 }  ㅎ final
	'~',    // 126 ~
}

// Sebeolsik translates an ASCII byte into a typed 3-Bulsik token. Bytes
// outside 33..126 are unmapped.
func Sebeolsik(key byte) Token {
	if key < 33 || key > 126 {
		return Token{Kind: TokenNone}
	}
	v := sebeolsik390[key-33]
	switch {
	case v >= 93 && v <= 122:
		return Token{Kind: TokenInitial, Index: int(v) - 92}
	case v >= 66 && v <= 86:
		return Token{Kind: TokenMedial, Index: int(v) - 35}
	case v >= 1 && v <= 30:
		return Token{Kind: TokenFinal, Index: int(v)}
	default:
		return Token{Kind: TokenLiteral, Literal: v}
	}
}
