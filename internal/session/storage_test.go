package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarques/hiredash/internal/types"
)

func TestFileStorage_Roundtrip(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	identity := &types.Identity{Email: "user@hiredash.test", HasCV: true}
	require.NoError(t, storage.SaveIdentity(identity))

	loaded, err := storage.LoadIdentity()
	require.NoError(t, err)
	assert.Equal(t, identity, loaded)
}

func TestFileStorage_MissingFileMeansNoSession(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	loaded, err := storage.LoadIdentity()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStorage_CorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{corrupt"), 0o600))

	storage := NewFileStorage(dir)
	_, err := storage.LoadIdentity()
	assert.Error(t, err)
}

func TestFileStorage_ClearIsIdempotent(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	require.NoError(t, storage.ClearIdentity())
	require.NoError(t, storage.SaveIdentity(&types.Identity{Email: "user@hiredash.test"}))
	require.NoError(t, storage.ClearIdentity())
	require.NoError(t, storage.ClearIdentity())

	loaded, err := storage.LoadIdentity()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStorage_OwnerOnlyPermissions(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	require.NoError(t, storage.SaveIdentity(&types.Identity{Email: "user@hiredash.test"}))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRemember_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	entry, err := Remember(dir, "user@hiredash.test")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Token)

	loaded, err := Remembered(dir)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entry.Email, loaded.Email)
	assert.Equal(t, entry.Token, loaded.Token)
}

func TestRemember_NeverStoresPlaintextEmail(t *testing.T) {
	dir := t.TempDir()

	_, err := Remember(dir, "user@hiredash.test")
	require.NoError(t, err)

	sealed, err := os.ReadFile(filepath.Join(dir, "remember.bin"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "user@hiredash.test")
}

func TestRemembered_MissingFileMeansNone(t *testing.T) {
	loaded, err := Remembered(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRemembered_WrongKeyFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Remember(dir, "user@hiredash.test")
	require.NoError(t, err)

	// Replace the key; the sealed entry must no longer open.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "remember.key"), make([]byte, 32), 0o600))

	_, err = Remembered(dir)
	assert.Error(t, err)
}

func TestForget_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	_, err := Remember(dir, "user@hiredash.test")
	require.NoError(t, err)

	require.NoError(t, Forget(dir))
	require.NoError(t, Forget(dir))

	loaded, err := Remembered(dir)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
