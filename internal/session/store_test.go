package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/errors"
)

func TestSaveAndLoad(t *testing.T) {
	store := NewStore(t.TempDir())

	sess := Session{
		Token: "tok-123",
		User:  User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"},
	}
	require.NoError(t, store.Save(sess))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, got)
	assert.True(t, store.Active())
}

func TestLoadMissingIsNotLoggedIn(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthNotLoggedIn))
	assert.False(t, store.Active())
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionCorrupt))
}

func TestLoadEmptyToken(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(Session{User: User{ID: "u1"}}))

	_, err := store.Load()
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthNotLoggedIn))
}

func TestClear(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(Session{Token: "tok"}))
	require.NoError(t, store.Clear())
	assert.False(t, store.Active())

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestSessionFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(Session{Token: "tok"}))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRequireGuardsBeforeAnyFetch(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Require()
	require.Error(t, err, "protected operations must refuse without a session")

	require.NoError(t, store.Save(Session{Token: "tok", User: User{ID: "u1"}}))
	sess, err := store.Require()
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
}
