package Heaps

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, h *MinHeap[T]) []T {
	t.Helper()
	var got []T
	for !h.Empty() {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, v)
		if h.Corrupt() {
			t.Fatalf("heap order broken after ExtractMin() returned %v", v)
		}
	}
	return got
}

func TestMinHeap_Order(t *testing.T) {
	h := New[int]()
	for _, v := range []int{30, 10, 20, 5, 15} {
		h.Insert(v)
	}
	v, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 5, h.Size())
	require.Equal(t, []int{5, 10, 15, 20, 30}, drain(t, h))
	require.True(t, h.Empty())

	for _, v := range []int{8, 12, 3, 17} {
		h.Insert(v)
	}
	require.Equal(t, 4, h.Size())
	h.Clear()
	require.True(t, h.Empty())
}

func TestMinHeap_Empty(t *testing.T) {
	h := New[float64]()
	_, err := h.Peek()
	var ece *Go_Containers.EmptyContainerError
	require.ErrorAs(t, err, &ece)
	require.Equal(t, "Peek", ece.Op)
	_, err = h.ExtractMin()
	require.ErrorAs(t, err, &ece)
	require.Equal(t, "ExtractMin", ece.Op)

	h.Insert(1.5)
	_, err = h.ExtractMin()
	require.NoError(t, err)
	_, err = h.ExtractMin()
	require.ErrorIs(t, err, Go_Containers.ErrEmptyContainer)
}

func TestMinHeap_Property(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0))
	h := New[int]()
	var want []int
	for range 5000 {
		if rng.IntN(3) == 0 && !h.Empty() {
			got, err := h.ExtractMin()
			require.NoError(t, err)
			i := slices.Index(want, slices.Min(want))
			require.Equal(t, want[i], got)
			want = slices.Delete(want, i, i+1)
		} else {
			v := rng.IntN(200)
			h.Insert(v)
			want = append(want, v)
		}
		require.Equal(t, len(want), h.Size())
		if h.Corrupt() {
			t.Fatal("heap order broken")
		}
	}
	sort.Ints(want)
	if d := cmp.Diff(want, drain(t, h)); d != "" {
		t.Errorf("ExtractMin() until empty; diff (-want +got):\n%s", d)
	}
}

func TestMinHeap_StorageOrder(t *testing.T) {
	h := New[int]()
	for _, v := range []int{30, 10, 20, 5, 15} {
		h.Insert(v)
	}
	// 10 swaps above 30; 5 climbs past 30 and then 10; 15 stays under 10.
	require.Equal(t, []int{5, 10, 20, 30, 15}, slices.Collect(h.All()))
	require.Equal(t, []interface{}{5, 10, 20, 30, 15}, h.Values())
	require.Equal(t, "[5, 10, 20, 30, 15]", h.String())
}

type task struct {
	name string
	prio int
}

func TestMinHeap_Func(t *testing.T) {
	h := NewFunc(func(a, b task) int {
		if a.prio != b.prio {
			return b.prio - a.prio // highest priority first
		}
		return strings.Compare(a.name, b.name)
	})
	for _, tk := range []task{{"b", 1}, {"a", 3}, {"c", 3}, {"d", 2}} {
		h.Insert(tk)
	}
	require.Equal(t, []task{{"a", 3}, {"c", 3}, {"d", 2}, {"b", 1}}, drain(t, h))
}

type job struct {
	prio int
	args []string
}

func TestMinHeap_SliceField(t *testing.T) {
	h := NewFunc(func(a, b job) int { return a.prio - b.prio })
	h.Insert(job{3, []string{"c"}})
	h.Insert(job{1, []string{"a", "x"}})
	h.Insert(job{2, nil})
	require.Equal(t, []job{{1, []string{"a", "x"}}, {2, nil}, {3, []string{"c"}}}, drain(t, h))
}

func TestMinHeap_NaN(t *testing.T) {
	h := New[float64]()
	for _, v := range []float64{2, math.NaN(), 1, math.NaN(), 0} {
		h.Insert(v)
		require.False(t, h.Corrupt())
	}
	got := drain(t, h)
	require.True(t, math.IsNaN(got[0]) && math.IsNaN(got[1]), "NaN orders first")
	require.Equal(t, []float64{0, 1, 2}, got[2:])
}

func BenchmarkMinHeap(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 0))
	vs := make([]int, 1<<12)
	for i := range vs {
		vs[i] = rng.Int()
	}
	b.ResetTimer()
	for range b.N {
		h := New[int]()
		for _, v := range vs {
			h.Insert(v)
		}
		for !h.Empty() {
			_, _ = h.ExtractMin()
		}
	}
}
