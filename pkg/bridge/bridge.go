// Package bridge exposes the core over a C-ABI-style flat surface for
// cross-language hosts: every pointer is a byte offset into a linear
// memory region, every integer width is explicit, and results are written
// little-endian. A pure-Go caller wants pkg/hangul and pkg/ime directly;
// this package exists for embeddings that marshal through integer
// buffers.
package bridge

import (
	"encoding/binary"

	"hancore/internal/arena"
	"hancore/pkg/hangul"
	"hancore/pkg/ime"
)

// Core owns the linear memory, the bump arena over it, and the live IME
// sessions. It is single-caller, like everything else in the core.
type Core struct {
	mem    [arena.Size]byte
	arena  *arena.Arena
	states map[uint32]*ime.State
}

// New returns a core with an empty arena and no sessions.
func New() *Core {
	return &Core{
		arena:  arena.New(),
		states: make(map[uint32]*ime.State),
	}
}

// Memory returns the linear region for host-side marshalling.
func (c *Core) Memory() []byte { return c.mem[:] }

// Alloc reserves size bytes, returning a non-zero offset or 0 on failure.
func (c *Core) Alloc(size uint32) uint32 { return c.arena.Alloc(size) }

// Free releases one allocation.
func (c *Core) Free(ptr, size uint32) { c.arena.Free(ptr, size) }

// AllocReset rewinds the arena, invalidating all outstanding offsets and
// destroying nothing else; live IME handles keep working.
func (c *Core) AllocReset() { c.arena.Reset() }

// AllocUsed reports reserved bytes.
func (c *Core) AllocUsed() uint32 { return c.arena.Used() }

// AllocActive reports outstanding allocations.
func (c *Core) AllocActive() uint32 { return c.arena.Active() }

func (c *Core) inBounds(ptr, size uint32) bool {
	end := uint64(ptr) + uint64(size)
	return ptr != 0 && end <= uint64(len(c.mem))
}

func (c *Core) putU32(ptr uint32, v uint32) {
	binary.LittleEndian.PutUint32(c.mem[ptr:], v)
}

func (c *Core) getU32(ptr uint32) uint32 {
	return binary.LittleEndian.Uint32(c.mem[ptr:])
}

// IsHangulSyllable reports whether cp is a precomposed syllable.
func (c *Core) IsHangulSyllable(cp uint32) bool { return hangul.IsSyllable(rune(cp)) }

// HasFinal reports whether cp is a syllable with a 종성.
func (c *Core) HasFinal(cp uint32) bool { return hangul.HasFinal(rune(cp)) }

// GetInitial returns the 초성 jamo of cp, or 0.
func (c *Core) GetInitial(cp uint32) uint32 { return uint32(hangul.Initial(rune(cp))) }

// GetMedial returns the 중성 jamo of cp, or 0.
func (c *Core) GetMedial(cp uint32) uint32 { return uint32(hangul.Medial(rune(cp))) }

// GetFinal returns the 종성 jamo of cp, or 0.
func (c *Core) GetFinal(cp uint32) uint32 { return uint32(hangul.Final(rune(cp))) }

// Compose builds a syllable from compatibility jamo, 0 on failure.
func (c *Core) Compose(initial, medial, final uint32) uint32 {
	cp, ok := hangul.Compose(rune(initial), rune(medial), rune(final))
	if !ok {
		return 0
	}
	return uint32(cp)
}

// Decompose writes the three jamo of cp as u32s at outPtr. It returns
// false when cp is not a syllable or the buffer is out of bounds.
func (c *Core) Decompose(cp, outPtr uint32) bool {
	return c.DecomposeSafe(cp, outPtr, 3)
}

// DecomposeSafe is Decompose with an explicit capacity in u32 units; a
// capacity below 3 fails instead of writing.
func (c *Core) DecomposeSafe(cp, outPtr, outCapU32 uint32) bool {
	if outCapU32 < 3 || !c.inBounds(outPtr, 12) {
		return false
	}
	initial, medial, final, ok := hangul.Decompose(rune(cp))
	if !ok {
		return false
	}
	c.putU32(outPtr, uint32(initial))
	c.putU32(outPtr+4, uint32(medial))
	c.putU32(outPtr+8, uint32(final))
	return true
}

// IsJamo reports whether cp is in the compatibility jamo block.
func (c *Core) IsJamo(cp uint32) bool { return hangul.IsJamo(rune(cp)) }

// IsConsonant reports whether cp is a compatibility consonant.
func (c *Core) IsConsonant(cp uint32) bool { return hangul.IsConsonant(rune(cp)) }

// IsVowel reports whether cp is a compatibility vowel.
func (c *Core) IsVowel(cp uint32) bool { return hangul.IsVowel(rune(cp)) }

// IsDoubleConsonant reports whether cp is ㄲ ㄸ ㅃ ㅆ ㅉ.
func (c *Core) IsDoubleConsonant(cp uint32) bool { return hangul.IsDoubleConsonant(rune(cp)) }

// IsDoubleVowel reports whether cp is ㅘ ㅙ ㅚ ㅝ ㅞ ㅟ ㅢ.
func (c *Core) IsDoubleVowel(cp uint32) bool { return hangul.IsDoubleVowel(rune(cp)) }

// DecomposeString reads inLen UTF-8 bytes at inPtr, expands syllables to
// jamo, and writes the code points as u32s at outPtr. It returns the
// number of u32s written; output that would overrun the region is
// truncated there.
func (c *Core) DecomposeString(inPtr, inLen, outPtr uint32) uint32 {
	if !c.inBounds(inPtr, inLen) || outPtr == 0 {
		return 0
	}
	cps := hangul.DecomposeString(c.mem[inPtr : inPtr+inLen])
	return c.writeU32s(outPtr, cps)
}

// ComposeString reads inLenU32 code points at inPtrU32, greedily fuses
// jamo runs into syllables, and writes the result at outPtrU32. It
// returns the number of u32s written.
func (c *Core) ComposeString(inPtrU32, inLenU32, outPtrU32 uint32) uint32 {
	if inLenU32 > uint32(len(c.mem))/4 || !c.inBounds(inPtrU32, inLenU32*4) || outPtrU32 == 0 {
		return 0
	}
	cps := make([]rune, inLenU32)
	for i := range cps {
		cps[i] = rune(c.getU32(inPtrU32 + uint32(i)*4))
	}
	return c.writeU32s(outPtrU32, hangul.ComposeString(cps))
}

func (c *Core) writeU32s(ptr uint32, cps []rune) uint32 {
	var n uint32
	for _, cp := range cps {
		if !c.inBounds(ptr+n*4, 4) {
			break
		}
		c.putU32(ptr+n*4, uint32(cp))
		n++
	}
	return n
}
