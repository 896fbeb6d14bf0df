package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	s := New[int]()

	_, had, err := s.Put("test", 1)
	require.NoError(t, err)
	assert.False(t, had)

	got, ok, err := s.Get("test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok, err = s.Get("nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutOverwrite(t *testing.T) {
	s := New[int]()

	_, had, err := s.Put("key", 1)
	require.NoError(t, err)
	assert.False(t, had)

	prev, had, err := s.Put("key", 2)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, 1, prev)

	got, ok, err := s.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_RemoveNotFound(t *testing.T) {
	s := New[int]()
	_, err := s.Remove("absent")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_EmptyKeyRejected(t *testing.T) {
	s := New[int]()

	_, _, err := s.Put("", 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, _, err = s.Get("")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = s.Remove("")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestStore_WildcardInKeyRejected(t *testing.T) {
	s := New[int]()

	_, _, err := s.Put("wi*ldcard", 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, ok, getErr := s.Get("wi*ldcard")
	require.NoError(t, getErr)
	assert.False(t, ok)
}

func TestStore_Split_RemainderIsPrefixOfChild(t *testing.T) {
	s := New[int]()
	require.NoError(t, put(t, s, "apple", 1))
	require.NoError(t, put(t, s, "app", 2))

	assertGet(t, s, "apple", 1)
	assertGet(t, s, "app", 2)
}

func TestStore_Split_FreshSibling(t *testing.T) {
	s := New[int]()
	require.NoError(t, put(t, s, "apple", 1))
	require.NoError(t, put(t, s, "apply", 2))

	assertGet(t, s, "apple", 1)
	assertGet(t, s, "apply", 2)
}

func TestStore_MatchByPrefix(t *testing.T) {
	s := New[string]()
	for k, v := range map[string]string{
		"apple":  "fruit",
		"app":    "short",
		"banana": "yellow",
		"orange": "orange",
	} {
		require.NoError(t, put(t, s, k, v))
	}

	tests := []struct {
		name   string
		prefix string
		want   map[string]string
	}{
		{"prefix app", "app", map[string]string{"app": "short", "apple": "fruit"}},
		{"prefix ban", "ban", map[string]string{"banana": "yellow"}},
		{"no match", "xyz", map[string]string{}},
		{"empty prefix enumerates all", "", map[string]string{
			"apple": "fruit", "app": "short", "banana": "yellow", "orange": "orange",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string]string{}
			it := s.MatchByPrefix(tt.prefix)
			for it.Next() {
				got[it.Key()] = it.Value()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_RemoveCompactsBranch(t *testing.T) {
	s := New[int]()
	require.NoError(t, put(t, s, "hello", 1))
	require.NoError(t, put(t, s, "help", 2))
	require.NoError(t, put(t, s, "helm", 3))

	_, err := s.Remove("help")
	require.NoError(t, err)

	got := map[string]int{}
	it := s.MatchByPrefix("hel")
	for it.Next() {
		got[it.Key()] = it.Value()
	}
	assert.Equal(t, map[string]int{"hello": 1, "helm": 3}, got)

	_, ok, err := s.Get("help")
	require.NoError(t, err)
	assert.False(t, ok)

	assertInvariants(t, s)
}

func TestStore_Stats(t *testing.T) {
	s := New[int]()
	require.NoError(t, put(t, s, "a", 1))
	require.NoError(t, put(t, s, "ab", 2))
	require.NoError(t, put(t, s, "abc", 3))

	stats := s.Stats()
	assert.Equal(t, 3, stats.Keys)
	assert.Equal(t, 3, s.Len())
	assert.GreaterOrEqual(t, stats.Nodes, stats.Keys)
}

func TestStore_CaseInsensitive(t *testing.T) {
	s := New(WithCaseInsensitive[int]())
	require.NoError(t, put(t, s, "Hello", 1))

	got, ok, err := s.Get("HELLO")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	it := s.MatchByPrefix("hel")
	require.True(t, it.Next())
	assert.Equal(t, "hello", it.Key())
}

func put[V any](t *testing.T, s *Store[V], key string, value V) error {
	t.Helper()
	_, _, err := s.Put(key, value)
	return err
}

func assertGet[V any](t *testing.T, s *Store[V], key string, want V) {
	t.Helper()
	got, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok, "expected %q to be present", key)
	assert.Equal(t, want, got)
}
