package arena

import "testing"

func TestAllocAlignsAndCounts(t *testing.T) {
	a := New()
	first := a.Alloc(6)
	if first == 0 || first%4 != 0 {
		t.Fatalf("first block at %d", first)
	}
	second := a.Alloc(1)
	if second != first+8 {
		t.Fatalf("expected padded offset %d, got %d", first+8, second)
	}
	if a.Active() != 2 {
		t.Fatalf("active = %d", a.Active())
	}
	if a.Used() != 12 {
		t.Fatalf("used = %d", a.Used())
	}
}

func TestFreeRewindsWhenLastBlockReleased(t *testing.T) {
	a := New()
	first := a.Alloc(16)
	second := a.Alloc(16)

	a.Free(first, 16)
	if a.Used() == 0 {
		t.Fatalf("region rewound with a block still live")
	}
	a.Free(second, 16)
	if a.Used() != 0 || a.Active() != 0 {
		t.Fatalf("region not rewound: used=%d active=%d", a.Used(), a.Active())
	}
	if again := a.Alloc(16); again != first {
		t.Fatalf("expected reuse from %d, got %d", first, again)
	}
}

func TestAllocFailure(t *testing.T) {
	a := New()
	if a.Alloc(0) != 0 {
		t.Fatalf("zero-size alloc succeeded")
	}
	if a.Alloc(Size+1) != 0 {
		t.Fatalf("oversized alloc succeeded")
	}
	if got := a.Alloc(Size - 4); got == 0 {
		t.Fatalf("full-region alloc failed")
	}
	if a.Alloc(4) != 0 {
		t.Fatalf("alloc beyond capacity succeeded")
	}
}

func TestReset(t *testing.T) {
	a := New()
	a.Alloc(32)
	a.Alloc(32)
	a.Reset()
	if a.Used() != 0 || a.Active() != 0 {
		t.Fatalf("reset left used=%d active=%d", a.Used(), a.Active())
	}
}
