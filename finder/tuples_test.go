package finder

import (
	"reflect"
	"testing"

	"github.com/crillab/gophermodel/logic"
)

func collect(it *tupleIter) [][]int {
	var out [][]int
	for it.next() {
		out = append(out, append([]int(nil), it.values()...))
	}
	return out
}

func TestTupleIterLastPositionFastest(t *testing.T) {
	it := newTupleIter([]int{logic.NoBound, 2}, 3)
	want := [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 1}, {3, 2}}
	if got := collect(it); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTupleIterClampsToSize(t *testing.T) {
	it := newTupleIter([]int{5}, 2)
	if got := it.count(); got != 2 {
		t.Errorf("count is %d, expected the bound clamped to the size", got)
	}
	if got := collect(it); !reflect.DeepEqual(got, [][]int{{1}, {2}}) {
		t.Errorf("got %v, want [[1] [2]]", got)
	}
}

func TestTupleIterEmptyTuple(t *testing.T) {
	it := newTupleIter(nil, 4)
	if !it.next() {
		t.Fatal("the zero-length tuple must be yielded once")
	}
	if len(it.values()) != 0 {
		t.Errorf("unexpected values %v", it.values())
	}
	if it.next() {
		t.Error("the zero-length tuple must be yielded only once")
	}
	if got := newTupleIter(nil, 4).count(); got != 1 {
		t.Errorf("count is %d, expected 1", got)
	}
}

func TestTupleIterZeroBound(t *testing.T) {
	it := newTupleIter([]int{2, 0}, 3)
	if it.next() {
		t.Error("a position with no admissible value yields no tuple")
	}
	if got := it.count(); got != 0 {
		t.Errorf("count is %d, expected 0", got)
	}
}

func TestTupleIterCountMatchesEnumeration(t *testing.T) {
	it := newTupleIter([]int{2, logic.NoBound, 3}, 4)
	want := it.count()
	if got := len(collect(it)); got != want || want != 2*4*3 {
		t.Errorf("enumerated %d tuples, count says %d", got, want)
	}
}
