package artree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/artree"
)

// S1: small dictionary + bounds.
func TestScenarioSmallDictionaryAndBounds(t *testing.T) {
	tr := artree.New()

	_, isNew, err := tr.Insert([]byte("A"), artree.UintValue(1))
	require.NoError(t, err)
	require.True(t, isNew)

	_, isNew, err = tr.Insert([]byte("Azrael"), artree.UintValue(2))
	require.NoError(t, err)
	require.True(t, isNew)

	_, isNew, err = tr.Insert([]byte("zythum"), artree.UintValue(3))
	require.NoError(t, err)
	require.True(t, isNew)

	require.Equal(t, 3, tr.Count())

	minKey, _, ok := tr.Minimum()
	require.True(t, ok)
	require.Equal(t, "A", string(minKey))

	maxKey, _, ok := tr.Maximum()
	require.True(t, ok)
	require.Equal(t, "zythum", string(maxKey))
}

// S2: node-growth shape change.
func TestScenarioNodeGrowthShapeChange(t *testing.T) {
	tr := artree.New()

	var keys []string
	for c := byte('a'); c <= 'p'; c++ { // 16 keys: 'a'..'p'
		keys = append(keys, string(c))
	}

	for i, k := range keys {
		_, isNew, err := tr.Insert([]byte(k), artree.UintValue(uint64(i+1)))
		require.NoError(t, err)
		require.True(t, isNew)
	}
	require.Equal(t, 16, tr.Count())

	_, isNew, err := tr.Insert([]byte("q"), artree.UintValue(17))
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, 17, tr.Count())

	keys = append(keys, "q")
	for i, k := range keys {
		v, ok := tr.Search([]byte(k))
		require.True(t, ok, "key %q", k)
		require.Equal(t, uint64(i+1), v.Uint())
	}
}

// S3: very long shared prefix.
func TestScenarioVeryLongSharedPrefix(t *testing.T) {
	tr := artree.New()

	entries := map[string]uint64{
		"this:key:has:a:long:prefix:3":        3,
		"this:key:has:a:long:common:prefix:2": 2,
		"this:key:has:a:long:common:prefix:1": 1,
	}
	for k, v := range entries {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(v))
		require.NoError(t, err)
	}

	for k, want := range entries {
		v, ok := tr.Search([]byte(k))
		require.True(t, ok)
		require.Equal(t, want, v.Uint())
	}

	var got []string
	tr.VisitPrefix([]byte("this:key:has"), func(key []byte, _ artree.Value) bool {
		got = append(got, string(key))
		return true
	})
	require.Equal(t, []string{
		"this:key:has:a:long:common:prefix:1",
		"this:key:has:a:long:common:prefix:2",
		"this:key:has:a:long:prefix:3",
	}, got)
}

// S4: prefix-is-another-key safety, using a trailing NUL sentinel the way
// the scenario's own key set does, since the virtual terminator byte alone
// cannot tell "api" apart from a stored key that continues "api" with a 0
// byte (see the caveat on the tree package's byteAt helper).
func TestScenarioPrefixIsAnotherKeySafety(t *testing.T) {
	tr := artree.New()

	keys := []string{
		"api\x00",
		"api.foo\x00",
		"api.foo.bar\x00",
		"api.foo.baz\x00",
		"api.foe.fum\x00",
		"abc.123.456\x00",
	}
	for i, k := range keys {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}

	var got []string
	tr.VisitPrefix([]byte("api"), func(key []byte, _ artree.Value) bool {
		got = append(got, string(key))
		return true
	})
	require.Equal(t, []string{
		"api\x00",
		"api.foe.fum\x00",
		"api.foo\x00",
		"api.foo.bar\x00",
		"api.foo.baz\x00",
	}, got)

	var none []string
	tr.VisitPrefix([]byte("b"), func(key []byte, _ artree.Value) bool {
		none = append(none, string(key))
		return true
	})
	require.Empty(t, none)
}

// S5: delete + shrink cascade.
func TestScenarioDeleteAndShrinkCascade(t *testing.T) {
	tr := artree.New()

	keys := make([][]byte, 50)
	for i := 0; i < 50; i++ {
		keys[i] = []byte{byte(i), 'k', 'e', 'y'}
	}
	for i, k := range keys {
		_, _, err := tr.Insert(k, artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}
	require.Equal(t, 50, tr.Count())

	for i, k := range keys {
		_, removed := tr.Delete(k)
		require.True(t, removed)
		require.Equal(t, 50-i-1, tr.Count())
	}
	require.Equal(t, 0, tr.Count())

	_, _, ok := tr.Minimum()
	require.False(t, ok)
	_, _, ok = tr.Maximum()
	require.False(t, ok)
	require.Equal(t, 0, tr.NodeCount())
}

// S6: round-trip XOR check from traversal.
func TestScenarioRoundTripXORCheck(t *testing.T) {
	tr := artree.New()

	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}

	var wantXOR uint64
	for i, w := range words {
		line := uint64(i + 1)
		wantXOR ^= line * (uint64(w[0]) + uint64(len(w)))

		_, _, err := tr.Insert([]byte(w), artree.UintValue(line))
		require.NoError(t, err)
	}

	var gotXOR uint64
	calls := 0
	complete := tr.Visit(func(key []byte, value artree.Value) bool {
		calls++
		gotXOR ^= value.Uint() * (uint64(key[0]) + uint64(len(key)))
		return true
	})

	require.True(t, complete)
	require.Equal(t, len(words), calls)
	require.Equal(t, len(words), tr.Count())
	require.Equal(t, wantXOR, gotXOR)
}

// P3: inserting the same key twice with different values.
func TestInsertTwiceReturnsOldValue(t *testing.T) {
	tr := artree.New()

	_, isNew, err := tr.Insert([]byte("k"), artree.UintValue(1))
	require.NoError(t, err)
	require.True(t, isNew)

	old, isNew, err := tr.Insert([]byte("k"), artree.UintValue(2))
	require.NoError(t, err)
	require.False(t, isNew)
	require.Equal(t, uint64(1), old.Uint())

	require.Equal(t, 1, tr.Count())
	v, ok := tr.Search([]byte("k"))
	require.True(t, ok)
	require.Equal(t, uint64(2), v.Uint())
}

// P2: inserting then deleting every key empties the tree.
func TestInsertThenDeleteAllEmptiesTree(t *testing.T) {
	tr := artree.New()

	keys := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for i, k := range keys {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}

	for _, k := range keys {
		_, removed := tr.Delete([]byte(k))
		require.True(t, removed)
	}

	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0, tr.NodeCount())

	_, _, ok := tr.Minimum()
	require.False(t, ok)
}

// P4/P5: full traversal is ascending and exactly count long; prefix
// traversal with an empty prefix equals the full traversal.
func TestTraversalOrderingAndPrefixEquivalence(t *testing.T) {
	tr := artree.New()

	keys := []string{"delta", "alpha", "charlie", "bravo"}
	for i, k := range keys {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}

	var full []string
	tr.Visit(func(key []byte, _ artree.Value) bool {
		full = append(full, string(key))
		return true
	})
	require.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, full)
	require.Len(t, full, tr.Count())

	var prefixed []string
	tr.VisitPrefix(nil, func(key []byte, _ artree.Value) bool {
		prefixed = append(prefixed, string(key))
		return true
	})
	require.Equal(t, full, prefixed)
}

func TestInsertRejectsOversizedKeys(t *testing.T) {
	tr := artree.New()

	_, _, err := tr.Insert(make([]byte, artree.MaxKeyLen+1), artree.UintValue(1))
	require.ErrorIs(t, err, artree.ErrKeyTooLong)
}

func TestTrySearchReturnsOption(t *testing.T) {
	tr := artree.New()
	_, _, err := tr.Insert([]byte("k"), artree.UintValue(42))
	require.NoError(t, err)

	found := tr.TrySearch([]byte("k"))
	require.True(t, found.IsSome())
	require.Equal(t, uint64(42), found.Unwrap().Uint())

	missing := tr.TrySearch([]byte("nope"))
	require.True(t, missing.IsNone())
}

func TestEntriesAndEntriesPrefix(t *testing.T) {
	tr := artree.New()
	for i, k := range []string{"app", "apple", "apply", "banana"} {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}

	entries := tr.Entries()
	require.Len(t, entries, 4)
	k0, v0 := entries[0].Unpack()
	require.Equal(t, "app", string(k0))
	require.Equal(t, uint64(0), v0.Uint())

	appEntries := tr.EntriesPrefix([]byte("app"))
	require.Len(t, appEntries, 3)
}

func TestAllIterator(t *testing.T) {
	tr := artree.New()
	for i, k := range []string{"b", "a", "c"} {
		_, _, err := tr.Insert([]byte(k), artree.UintValue(uint64(i)))
		require.NoError(t, err)
	}

	var got []string
	for k := range tr.All() {
		got = append(got, string(k))
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestInsertIncrementAndDeleteDecrement(t *testing.T) {
	tr := artree.New()

	for i := 0; i < 3; i++ {
		_, isNew, err := tr.InsertIncrement([]byte("hits"), artree.IncrementWhole)
		require.NoError(t, err)
		require.Equal(t, i == 0, isNew)
	}

	v, ok := tr.Search([]byte("hits"))
	require.True(t, ok)
	require.Equal(t, uint64(3), v.Uint())

	old, removed := tr.DeleteDecrement([]byte("hits"), artree.IncrementWhole)
	require.False(t, removed)
	require.Equal(t, uint64(3), old.Uint())

	v, ok = tr.Search([]byte("hits"))
	require.True(t, ok)
	require.Equal(t, uint64(2), v.Uint())

	tr.DeleteDecrement([]byte("hits"), artree.IncrementWhole)
	_, removed = tr.DeleteDecrement([]byte("hits"), artree.IncrementWhole)
	require.True(t, removed)

	_, ok = tr.Search([]byte("hits"))
	require.False(t, ok)
}
