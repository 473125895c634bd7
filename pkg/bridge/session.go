package bridge

import "hancore/pkg/ime"

// IME session handles. A handle is an arena offset whose block mirrors
// the six state bytes, so session lifetime shows up in the allocation
// counters the same way marshalling buffers do.

const stateBytes = 6

// ImeCreate opens a composition session and returns its handle, 0 on
// allocation failure.
func (c *Core) ImeCreate() uint32 {
	h := c.arena.Alloc(stateBytes)
	if h == 0 {
		return 0
	}
	c.states[h] = ime.NewState()
	c.syncState(h)
	return h
}

// ImeDestroy closes a session. Unknown handles are ignored.
func (c *Core) ImeDestroy(h uint32) {
	if _, ok := c.states[h]; !ok {
		return
	}
	delete(c.states, h)
	c.arena.Free(h, stateBytes)
}

// ImeReset discards the session's composition.
func (c *Core) ImeReset(h uint32) {
	if s, ok := c.states[h]; ok {
		s.Reset()
		c.syncState(h)
	}
}

// ImeCommit finalizes the composition, returning the composed code point
// or 0 when the session is empty or unknown.
func (c *Core) ImeCommit(h uint32) uint32 {
	s, ok := c.states[h]
	if !ok {
		return 0
	}
	cp := s.Commit()
	c.syncState(h)
	return uint32(cp)
}

// ImeProcessKey feeds a 2-Bulsik keystroke as an Ohi slot index and
// writes {action, prev, current} as three u32s at outPtr. It returns
// false when the handle is unknown or the buffer is out of bounds; an
// unmapped index still succeeds with a no-change result.
func (c *Core) ImeProcessKey(h uint32, ohiIndex int8, outPtr uint32) bool {
	s, ok := c.states[h]
	if !ok || !c.inBounds(outPtr, 12) {
		return false
	}
	r := s.ProcessKey2(int(ohiIndex))
	c.syncState(h)
	c.putU32(outPtr, uint32(r.Action))
	c.putU32(outPtr+4, uint32(r.Prev))
	c.putU32(outPtr+8, uint32(r.Current))
	return true
}

// ImeProcessKey3 feeds a 3-Bulsik keystroke as an ASCII byte and writes
// {action, prev, current, literal} as four u32s at outPtr.
func (c *Core) ImeProcessKey3(h uint32, ascii byte, outPtr uint32) bool {
	s, ok := c.states[h]
	if !ok || !c.inBounds(outPtr, 16) {
		return false
	}
	r := s.ProcessKey3(ascii)
	c.syncState(h)
	c.putU32(outPtr, uint32(r.Action))
	c.putU32(outPtr+4, uint32(r.Prev))
	c.putU32(outPtr+8, uint32(r.Current))
	c.putU32(outPtr+12, uint32(r.Literal))
	return true
}

// ImeBackspace removes the rightmost component and returns the remaining
// projection, or 0 when the session is now empty and the host deletes
// the character.
func (c *Core) ImeBackspace(h uint32) uint32 {
	s, ok := c.states[h]
	if !ok {
		return 0
	}
	cp, live := s.Backspace()
	c.syncState(h)
	if !live {
		return 0
	}
	return uint32(cp)
}

// ImeGetState writes the six raw state bytes (initial, initial flag,
// medial, medial flag, final, final flag) at outPtr.
func (c *Core) ImeGetState(h, outPtr uint32) {
	s, ok := c.states[h]
	if !ok || !c.inBounds(outPtr, stateBytes) {
		return
	}
	snap := s.Snapshot()
	for i, v := range snap {
		c.mem[outPtr+uint32(i)] = byte(v)
	}
}

// syncState mirrors the session state into its handle block so hosts
// that read linear memory directly observe the same six bytes
// ImeGetState reports.
func (c *Core) syncState(h uint32) {
	s, ok := c.states[h]
	if !ok || !c.inBounds(h, stateBytes) {
		return
	}
	snap := s.Snapshot()
	for i, v := range snap {
		c.mem[h+uint32(i)] = byte(v)
	}
}
