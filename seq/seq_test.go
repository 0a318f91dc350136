package seq

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var s Sequence[int]
	if !s.IsEmpty() {
		t.Error("expected zero-value sequence to be empty, isn't")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty sequence to have length 0, has %d", s.Len())
	}
	if !s.Tail().IsEmpty() {
		t.Error("expected tail of empty sequence to be empty, isn't")
	}
}

func TestConsAndDecompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "recur.seq")
	defer teardown()
	//
	s := New(1, 2, 3)
	t.Logf("s = %v", s)
	if s.Len() != 3 {
		t.Fatalf("expected length of (1 2 3) to be 3, is %d", s.Len())
	}
	if s.Head() != 1 {
		t.Errorf("expected head to be 1, is %d", s.Head())
	}
	if s.Tail().Head() != 2 {
		t.Errorf("expected second element to be 2, is %d", s.Tail().Head())
	}
	if s.String() != "(1 2 3)" {
		t.Errorf("expected string form (1 2 3), is %s", s.String())
	}
}

func TestHeadOfEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Head of empty sequence to panic, didn't")
		}
	}()
	Empty[int]().Head()
}

func TestTailsAreShared(t *testing.T) {
	s := New(2, 3)
	u := Cons(1, s)
	v := Cons(0, s)
	if u.Tail().cell != s.cell || v.Tail().cell != s.cell {
		t.Error("expected both derived sequences to share the original cells, don't")
	}
	if s.String() != "(2 3)" {
		t.Errorf("expected original to stay (2 3), is %s", s)
	}
}

func TestFirstLast(t *testing.T) {
	s := New(1, 2, 3)
	var v int
	switch m := s.First().Match(); m {
	case m.Just(&v):
		t.Logf("First = Just(%d)", v)
	case m.Nothing():
		t.Error("expected First of (1 2 3) to be Just, is Nothing")
	}
	if v != 1 {
		t.Errorf("expected First to hold 1, holds %d", v)
	}
	if s.Last().WithDefault(-1) != 3 {
		t.Errorf("expected Last to be 3, is %d", s.Last().WithDefault(-1))
	}
	e := Empty[int]()
	if e.First().WithDefault(-1) != -1 {
		t.Error("expected First of empty sequence to be Nothing, isn't")
	}
	if e.Last().WithDefault(-1) != -1 {
		t.Error("expected Last of empty sequence to be Nothing, isn't")
	}
}

func TestAppendReverse(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	ab := a.Append(b)
	if !Equal(ab, New(1, 2, 3, 4)) {
		t.Errorf("expected (1 2) ++ (3 4) to be (1 2 3 4), is %s", ab)
	}
	if ab.Tail().Tail().cell != b.cell {
		t.Error("expected appendee to be shared as the tail of the result, isn't")
	}
	if !Equal(a.Append(Empty[int]()), a) || !Equal(Empty[int]().Append(b), b) {
		t.Error("expected append with an empty operand to return the other unchanged")
	}
	if !Equal(New(1, 2, 3).Reverse(), New(3, 2, 1)) {
		t.Error("expected reverse of (1 2 3) to be (3 2 1), isn't")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(New(1, 2, 3), New(1, 2, 3)) {
		t.Error("expected equal sequences to compare equal, don't")
	}
	if Equal(New(1, 2, 3), New(1, 2)) {
		t.Error("expected sequences of different length to compare unequal, don't")
	}
	if Equal(New(1, 2, 3), New(1, 2, 4)) {
		t.Error("expected sequences with different elements to compare unequal, don't")
	}
	if !Equal(Empty[int](), Empty[int]()) {
		t.Error("expected empty sequences to compare equal, don't")
	}
}

func TestSliceRoundTrip(t *testing.T) {
	s := New(7, 8, 9)
	sl := s.Slice()
	if len(sl) != 3 || sl[0] != 7 || sl[2] != 9 {
		t.Errorf("expected slice [7 8 9], is %v", sl)
	}
	if !Equal(New(sl...), s) {
		t.Error("expected New(s.Slice()...) to equal s, doesn't")
	}
}
