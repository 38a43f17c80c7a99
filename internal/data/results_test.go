package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStorePutGet(t *testing.T) {
	s := NewResultStore(time.Minute)

	id := s.Put("payload-a")
	require.NotEmpty(t, id)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "payload-a", got)

	other := s.Put("payload-b")
	assert.NotEqual(t, id, other)
	assert.Equal(t, 2, s.Len())
}

func TestResultStoreUnknownID(t *testing.T) {
	s := NewResultStore(time.Minute)
	_, ok := s.Get("not-an-id")
	assert.False(t, ok)
}

func TestResultStoreExpiry(t *testing.T) {
	s := NewResultStore(10 * time.Millisecond)
	id := s.Put("ephemeral")

	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestResultStoreClear(t *testing.T) {
	s := NewResultStore(time.Minute)
	id := s.Put("x")
	s.Clear()

	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestResultStoreDefaultTTL(t *testing.T) {
	s := NewResultStore(0)
	assert.Equal(t, DefaultResultTTL, s.ttl)
}
