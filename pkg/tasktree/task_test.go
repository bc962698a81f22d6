package tasktree

import (
	"testing"
)

func TestPushOffsets(t *testing.T) {
	var s taskStack

	s.push()
	if got := s.offsets(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("After first push, offsets = %v, want [0]", got)
	}

	s.push()
	s.push()

	want := []int{2, 1, 0}
	got := s.offsets()
	if len(got) != len(want) {
		t.Fatalf("Offsets length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offset[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPushIncrementsExisting(t *testing.T) {
	var s taskStack
	s.push()
	s.push()

	before := s.offsets()
	s.push()
	after := s.offsets()

	if after[len(after)-1] != 0 {
		t.Errorf("New task offset = %d, want 0", after[len(after)-1])
	}
	for i := range before {
		if after[i] != before[i]+1 {
			t.Errorf("Offset[%d] = %d, want %d", i, after[i], before[i]+1)
		}
	}
}

func TestPopOrder(t *testing.T) {
	var s taskStack
	s.push()
	s.push()
	s.push()

	// Deepest first, smallest offset first.
	for want := 0; want < 3; want++ {
		popped, ok := s.pop()
		if !ok {
			t.Fatalf("Pop %d failed on non-empty stack", want)
		}
		if popped.rowOffset != want {
			t.Errorf("Popped offset = %d, want %d", popped.rowOffset, want)
		}
	}

	if _, ok := s.pop(); ok {
		t.Error("Pop on empty stack reported ok")
	}
}

func TestPoppedOffsetCountsLaterStarts(t *testing.T) {
	var s taskStack
	s.push() // the task under test
	s.push()
	s.push()

	s.pop()
	s.pop()
	popped, ok := s.pop()
	if !ok {
		t.Fatal("Pop failed")
	}
	// Two pushes happened after its own, so it sits two rows up.
	if popped.rowOffset != 2 {
		t.Errorf("Popped offset = %d, want 2", popped.rowOffset)
	}
}
