package segtree

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type addInt struct{}

func (addInt) Identity() int                   { return 0 }
func (addInt) Compose(first, second int) int   { return first + second }
func (addInt) Apply(value, delta int) int      { return value + delta }
func (addInt) Scale(delta int, length int) int { return delta * length }

type addIntUnscaled struct{ addInt }

func (addIntUnscaled) Scale(delta int, _ int) int { return delta }

func makeSumAddTree(t *testing.T, values ...int) *LazyTree[int, int] {
	t.Helper()
	tree, err := NewLazy(LazyConfig[int, int]{Monoid: intSum{}, Action: addInt{}}, values)
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	return tree
}

func mustQuery[S any](t *testing.T, tree *LazyTree[int, S], l, r int) int {
	t.Helper()
	v, err := tree.Query(l, r)
	if err != nil {
		t.Fatalf("Query(%d,%d) failed: %v", l, r, err)
	}
	return v
}

func TestNewLazyRejectsInvalidConfig(t *testing.T) {
	_, err := NewLazy[int, int](LazyConfig[int, int]{Monoid: intSum{}}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing action, got %v", err)
	}
	_, err = NewLazy[int, int](LazyConfig[int, int]{Action: addInt{}}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
}

func TestLazySumAddScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree := makeSumAddTree(t, 3, 1, 4, 1, 5, 9, 2, 6)
	if got := mustQuery(t, tree, 0, 8); got != 31 {
		t.Fatalf("Query(0,8) = %d, want 31", got)
	}
	if err := tree.Apply(2, 5, 10); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := mustQuery(t, tree, 0, 8); got != 61 {
		t.Errorf("Query(0,8) = %d, want 61", got)
	}
	if got := mustQuery(t, tree, 2, 5); got != 40 {
		t.Errorf("Query(2,5) = %d, want 40", got)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestLazyMinAddScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	cfg := LazyConfig[int, int]{Monoid: intMin{}, Action: addIntUnscaled{}}
	tree, err := NewLazy(cfg, []int{3, 1, 4, 1, 5, 9, 2, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got := mustQuery(t, tree, 0, 8); got != 1 {
		t.Fatalf("Query(0,8) = %d, want 1", got)
	}
	if err := tree.Apply(0, 4, -2); err != nil {
		t.Fatal(err)
	}
	if got := mustQuery(t, tree, 0, 8); got != -1 {
		t.Errorf("Query(0,8) = %d, want -1", got)
	}
	if got := mustQuery(t, tree, 4, 8); got != 2 {
		t.Errorf("Query(4,8) = %d, want 2", got)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestLazyEmptyRanges(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4, 5)
	for i := 0; i <= tree.Len(); i++ {
		if err := tree.Apply(i, i, 100); err != nil {
			t.Fatalf("Apply(%d,%d) failed: %v", i, i, err)
		}
		if got := mustQuery(t, tree, i, i); got != 0 {
			t.Errorf("Query(%d,%d) = %d, want 0", i, i, got)
		}
	}
	if tree.Summary() != 15 {
		t.Errorf("empty applies changed the tree: summary=%d", tree.Summary())
	}
}

func TestLazyRejectsMalformedRanges(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4, 5)
	for _, c := range [][2]int{{-1, 2}, {3, 2}, {0, 6}, {5, 8}} {
		if err := tree.Apply(c[0], c[1], 1); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Apply(%d,%d): expected ErrIndexOutOfBounds, got %v", c[0], c[1], err)
		}
		if _, err := tree.Query(c[0], c[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Query(%d,%d): expected ErrIndexOutOfBounds, got %v", c[0], c[1], err)
		}
	}
	if tree.Summary() != 15 {
		t.Errorf("rejected calls changed the tree: summary=%d", tree.Summary())
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestLazyPointAccess(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4, 5, 6)
	if err := tree.Apply(1, 5, 10); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 12, 13, 14, 15, 6}
	for i, w := range want {
		v, err := tree.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if v != w {
			t.Errorf("Get(%d) = %d, want %d", i, v, w)
		}
	}
	if err := tree.Set(2, 0); err != nil {
		t.Fatal(err)
	}
	if got := mustQuery(t, tree, 0, 6); got != 1+12+0+14+15+6 {
		t.Errorf("Query(0,6) after Set = %d", got)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.Get(6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Get(6): expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestLazyValuesResolvesPending(t *testing.T) {
	tree := makeSumAddTree(t, 0, 0, 0, 0, 0)
	if err := tree.Apply(0, 5, 1); err != nil {
		t.Fatal(err)
	}
	if err := tree.Apply(1, 3, 2); err != nil {
		t.Fatal(err)
	}
	got := tree.Values()
	want := []int{1, 3, 3, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
	for p := 1; p < tree.Size(); p++ {
		if tree.pending[p] != 0 {
			t.Errorf("pending action left at node %d after full resolve", p)
		}
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestLazyForEachStopsEarly(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4)
	n := 0
	tree.ForEach(func(i int, v int) bool {
		n++
		return i < 1
	})
	if n != 2 {
		t.Errorf("expected 2 callbacks, got %d", n)
	}
}

func TestLazyCheckDetectsLostPending(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4)
	if err := tree.Apply(0, 2, 5); err != nil {
		t.Fatal(err)
	}
	tree.pending[2] = 0 // drop an undelivered action on purpose
	err := tree.Check(eqInt)
	if !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree, got %v", err)
	}
}

func TestLazyCheckDetectsWeightDrift(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3)
	tree.weight[3] = 3
	err := tree.Check(eqInt)
	if err == nil || !strings.Contains(err.Error(), "weight of node 3") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLazyEmptyTree(t *testing.T) {
	tree := makeSumAddTree(t)
	if err := tree.Apply(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := mustQuery(t, tree, 0, 0); got != 0 {
		t.Errorf("Query(0,0) = %d", got)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestLazyToDotShowsPending(t *testing.T) {
	tree := makeSumAddTree(t, 1, 2, 3, 4)
	if err := tree.Apply(0, 4, 7); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	tree.ToDot(&b, nil)
	if !strings.Contains(b.String(), `"1" [label="38\n⟨7⟩"`) {
		t.Errorf("root label missing pending action:\n%s", b.String())
	}
}

func TestLazyMinAddLargeTop(t *testing.T) {
	cfg := LazyConfig[int, int]{Monoid: intMin{}, Action: addIntUnscaled{}}
	tree, err := NewLazy(cfg, []int{5, 5, 5})
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Apply(0, 3, -1); err != nil {
		t.Fatal(err)
	}
	if v := tree.Summary(); v != 4 {
		t.Errorf("summary = %d, want 4", v)
	}
	// padding leaf must remain the neutral element
	if tree.agg[tree.size+3] != math.MaxInt {
		t.Errorf("padding leaf was modified")
	}
}
