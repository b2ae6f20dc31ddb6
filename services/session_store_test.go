package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreatesAndReuses(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token, sess := store.Get("")
	require.NotEmpty(t, token)
	require.NotNil(t, sess.Wizard)
	require.NotNil(t, sess.Contact)

	again, same := store.Get(token)
	assert.Equal(t, token, again)
	assert.Same(t, sess, same)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreUnknownTokenGetsNewSession(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token, _ := store.Get("forged-token")
	assert.NotEqual(t, "forged-token", token)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(time.Hour)
	store.now = func() time.Time { return now }

	old, oldSess := store.Get("")
	now = now.Add(30 * time.Minute)
	kept, _ := store.Get(old)
	assert.Equal(t, old, kept)

	now = now.Add(2 * time.Hour)
	fresh, freshSess := store.Get(old)
	assert.NotEqual(t, old, fresh)
	assert.NotSame(t, oldSess, freshSess)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(0)
	token, _ := store.Get("")

	store.Delete(token)
	assert.Zero(t, store.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewSessionStore(time.Hour)
	_, a := store.Get("")
	_, b := store.Get("")

	a.Wizard.SelectRoom(2)
	assert.Zero(t, b.Wizard.State(nil).Form.RoomID)
}
