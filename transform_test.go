package linkedhashmap

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapValues(t *testing.T) {
	m := New[string, int]().Set("a", 1).Set("b", 2).Set("c", 3)

	s := MapValues(m, strconv.Itoa)
	require.Equal(t, []Pair[string, string]{
		{"a", "1"}, {"b", "2"}, {"c", "3"},
	}, s.ToList())

	// The source keeps its own value type and contents.
	require.Equal(t, 2, m.MustGet("b"))
}

func TestMapValuesWithKeyPreservesTombstonePositions(t *testing.T) {
	m := New[string, int]().Set("a", 1).Set("b", 2).Set("c", 3).Delete("b")

	out := MapValuesWithKey(m, func(k string, v int) string {
		return k + strconv.Itoa(v)
	})

	require.Equal(t, []Pair[string, string]{{"a", "a1"}, {"c", "c3"}}, out.ToList())
	// The tombstone survives the transform, positions included.
	require.Equal(t, m.log.Len(), out.log.Len())
	e, ok := out.index.Get("c")
	require.True(t, ok)
	require.Equal(t, 2, e.pos)
}

func TestTraverseWithKeyVisitsLiveEntriesInOrder(t *testing.T) {
	m := New[string, int]().Set("a", 1).Set("b", 2).Set("c", 3).Set("d", 4)
	m = m.Delete("b")

	var visited []string
	out, err := TraverseWithKey(m, func(k string, v int) (int, error) {
		visited = append(visited, k)
		return v * 10, nil
	})
	require.NoError(t, err)

	// The deleted key gets no call at all.
	require.Equal(t, []string{"a", "c", "d"}, visited)
	require.Equal(t, []Pair[string, int]{{"a", 10}, {"c", 30}, {"d", 40}}, out.ToList())
	checkInvariants(t, out)
}

func TestTraverseWithKeyShortCircuits(t *testing.T) {
	m := New[string, int]().Set("a", 1).Set("b", 2).Set("c", 3)

	boom := errors.New("boom")
	var visited []string
	out, err := TraverseWithKey(m, func(k string, v int) (int, error) {
		visited = append(visited, k)
		if k == "b" {
			return 0, boom
		}
		return v, nil
	})

	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
	// Entries after the failure are never visited.
	require.Equal(t, []string{"a", "b"}, visited)
}

func TestFoldRight(t *testing.T) {
	m := New[string, string]().Set("a", "x").Set("b", "y").Set("c", "z")

	// foldr cons over the values keeps them in insertion order, which is the
	// point of a right fold.
	got := FoldRight(m, func(v string, acc []string) []string {
		return append([]string{v}, acc...)
	}, nil)
	require.Equal(t, []string{"x", "y", "z"}, got)

	// Association is to the right: f(x, f(y, f(z, initial))).
	assoc := FoldRight(m, func(v, acc string) string {
		return "(" + v + acc + ")"
	}, "0")
	require.Equal(t, "(x(y(z0)))", assoc)

	require.Equal(t, "0", FoldRight(New[string, string](), func(v, acc string) string {
		return v + acc
	}, "0"))

	// Deleted values are invisible to the fold.
	m = m.Delete("b")
	joined := FoldRight(m, func(v, acc string) string { return v + acc }, "")
	require.Equal(t, "xz", joined)
	require.False(t, strings.Contains(joined, "y"))
}
