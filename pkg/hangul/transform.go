package hangul

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Decomposer is a transform.Transformer that rewrites a UTF-8 stream,
// expanding every precomposed syllable into its compatibility jamo and
// passing every other byte through. It composes with transform.NewReader,
// transform.NewWriter, and transform.String.
type Decomposer struct {
	transform.NopResetter
}

// NewDecomposer returns a streaming syllable decomposer.
func NewDecomposer() Decomposer { return Decomposer{} }

// Transform implements transform.Transformer.
func (Decomposer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		cp, size := utf8.DecodeRune(src[nSrc:])
		if cp == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				return nDst, nSrc, err
			}
			// Malformed input: forward the byte untouched.
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}
		initial, medial, final, ok := Decompose(cp)
		if !ok {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		need := utf8.RuneLen(initial) + utf8.RuneLen(medial)
		if final != 0 {
			need += utf8.RuneLen(final)
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], initial)
		nDst += utf8.EncodeRune(dst[nDst:], medial)
		if final != 0 {
			nDst += utf8.EncodeRune(dst[nDst:], final)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
