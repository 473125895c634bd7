package ime

// Double-jamo formation rules over Ohi slot indices.

var doubleInitial = map[[2]int]int{
	{1, 1}:   2,  // ㄱㄱ → ㄲ
	{7, 7}:   8,  // ㄷㄷ → ㄸ
	{18, 18}: 19, // ㅂㅂ → ㅃ
	{21, 21}: 22, // ㅅㅅ → ㅆ
	{24, 24}: 25, // ㅈㅈ → ㅉ
}

var doubleMedial = map[[2]int]int{
	{39, 31}: 40, // ㅗㅏ → ㅘ
	{39, 32}: 41, // ㅗㅐ → ㅙ
	{39, 51}: 42, // ㅗㅣ → ㅚ
	{44, 35}: 45, // ㅜㅓ → ㅝ
	{44, 36}: 46, // ㅜㅔ → ㅞ
	{44, 51}: 47, // ㅜㅣ → ㅟ
	{49, 51}: 50, // ㅡㅣ → ㅢ
}

var doubleFinal = map[[2]int]int{
	{1, 21}:  3,  // ㄱㅅ → ㄳ
	{4, 24}:  5,  // ㄴㅈ → ㄵ
	{4, 30}:  6,  // ㄴㅎ → ㄶ
	{9, 1}:   10, // ㄹㄱ → ㄺ
	{9, 17}:  11, // ㄹㅁ → ㄻ
	{9, 18}:  12, // ㄹㅂ → ㄼ
	{9, 21}:  13, // ㄹㅅ → ㄽ
	{9, 28}:  14, // ㄹㅌ → ㄾ
	{9, 29}:  15, // ㄹㅍ → ㄿ
	{9, 30}:  16, // ㄹㅎ → ㅀ
	{18, 21}: 20, // ㅂㅅ → ㅄ
}

// finalSplit recovers (base, second) from a compound 종성 when a vowel
// forces the second consonant over to the next syllable.
var finalSplit = invertPairs(doubleFinal)

func invertPairs(src map[[2]int]int) map[int][2]int {
	dst := make(map[int][2]int, len(src))
	for pair, compound := range src {
		dst[compound] = pair
	}
	return dst
}

// canFollowAsInitial holds the consonants that can only ever start a
// syllable (ㄸ ㅃ ㅉ have no 종성 form), so typing one after a live
// syllable always opens a new one. Inherited from the reference automata
// and load-bearing for correct input; see
// TestInitialOnlyConsonantNeverBecomesFinal.
func canFollowAsInitial(i int) bool {
	return i == 8 || i == 19 || i == 25
}
