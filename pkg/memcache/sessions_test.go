package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessions_PutValidRevoke(t *testing.T) {
	store := NewSessions()

	assert.False(t, store.Valid("missing"))

	store.Put("abc", "admin@example.com", time.Minute)
	assert.True(t, store.Valid("abc"))

	store.Revoke("abc")
	assert.False(t, store.Valid("abc"))
}

func TestSessions_ExpiredEntryRejected(t *testing.T) {
	store := NewSessions()

	store.Put("stale", "admin@example.com", -time.Second)
	assert.False(t, store.Valid("stale"))

	// A second lookup stays invalid after the expired row was dropped.
	assert.False(t, store.Valid("stale"))
}

func TestSessions_RevokeIsIdempotent(t *testing.T) {
	store := NewSessions()

	store.Put("abc", "admin@example.com", time.Minute)
	store.Revoke("abc")
	store.Revoke("abc")
	assert.False(t, store.Valid("abc"))
}
