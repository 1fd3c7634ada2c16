package resources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"appres/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := At(t.TempDir())

	err := store.SaveText("greeting.txt", "Hello World")
	require.NoError(t, err)

	text, err := store.LoadText("greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)

	content, err := store.LoadBytes("greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello World"), content)
}

func TestStore_SaveBytes_CreatesParentDirectories(t *testing.T) {
	baseDir := t.TempDir()
	store := At(baseDir)

	err := store.SaveBytes(filepath.Join("a", "b", "c.txt"), []byte("nested"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(baseDir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, err := os.ReadFile(filepath.Join(baseDir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("nested"), content)
}

func TestStore_SaveBytes_SecondSaveOverwrites(t *testing.T) {
	store := At(t.TempDir())

	require.NoError(t, store.SaveBytes("twice.txt", []byte("first")))
	require.NoError(t, store.SaveBytes("twice.txt", []byte("second")))

	text, err := store.LoadText("twice.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestStore_SaveBytes_IdempotentWithExistingDirectories(t *testing.T) {
	store := At(t.TempDir())
	relativePath := filepath.Join("sub", "repeat.txt")

	require.NoError(t, store.SaveBytes(relativePath, []byte("same")))
	require.NoError(t, store.SaveBytes(relativePath, []byte("same")))

	text, err := store.LoadText(relativePath)
	require.NoError(t, err)
	assert.Equal(t, "same", text)
}

func TestStore_SaveBytes_FailsWithoutParentSegment(t *testing.T) {
	store := At(string(os.PathSeparator))

	err := store.SaveBytes(".", []byte("content"))
	assert.ErrorIs(t, err, ErrNoParentDirectory)
}

func TestStore_LoadText_PropagatesNotFound(t *testing.T) {
	store := At(t.TempDir())

	_, err := store.LoadText("missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStore_Exists(t *testing.T) {
	store := At(t.TempDir())
	require.NoError(t, store.SaveText("present.txt", "x"))

	tests := []struct {
		name         string
		relativePath string
		expected     bool
	}{
		{"existing file", "present.txt", true},
		{"missing file", "absent.txt", false},
		{"missing intermediate directory", filepath.Join("does", "not", "exist.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.Exists(tt.relativePath))
		})
	}
}

func TestStore_Exists_ReturnsFalseOnFileSystemError(t *testing.T) {
	mockFs := new(testutil.MockFileSystem)
	mockFs.On("FileExists", filepath.Join("base", "file.txt")).
		Return(false, errors.New("permission denied"))

	store := NewStore(mockFs, "base")

	assert.False(t, store.Exists("file.txt"))
	mockFs.AssertExpectations(t)
}

func TestStore_IsDirectory(t *testing.T) {
	baseDir := t.TempDir()
	store := At(baseDir)

	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "sub"), 0700))
	require.NoError(t, store.SaveText("file.txt", "x"))

	assert.True(t, store.IsDirectory("sub"))
	assert.False(t, store.IsDirectory("file.txt"))
	assert.False(t, store.IsDirectory("missing"))
}

func TestStore_IsDirectory_ReturnsFalseOnFileSystemError(t *testing.T) {
	mockFs := new(testutil.MockFileSystem)
	mockFs.On("DirExists", filepath.Join("base", "sub")).
		Return(false, errors.New("permission denied"))

	store := NewStore(mockFs, "base")

	assert.False(t, store.IsDirectory("sub"))
	mockFs.AssertExpectations(t)
}

func TestStore_ResolvedPath(t *testing.T) {
	store := At(filepath.Join("base", "dir"))

	assert.Equal(
		t,
		filepath.Join("base", "dir", "sub", "file.txt"),
		store.ResolvedPath(filepath.Join("sub", "file.txt")),
	)
}

func TestStore_BasePath(t *testing.T) {
	store := At("some/dir")

	assert.Equal(t, "some/dir", store.BasePath())
}

func TestStore_WithSandboxedFileSystem(t *testing.T) {
	sandbox := testutil.NewTestFileSystem(t)
	store := NewStore(sandbox, "resources")

	require.NoError(t, store.SaveText("cfg.txt", "sandboxed"))

	text, err := store.LoadText("cfg.txt")
	require.NoError(t, err)
	assert.Equal(t, "sandboxed", text)
	assert.True(t, store.Exists("cfg.txt"))
}

func TestRelativeToExecutable(t *testing.T) {
	store, err := RelativeToExecutable()
	require.NoError(t, err)

	executablePath, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(executablePath), store.BasePath())
}

func TestRelativeToExecutableDir(t *testing.T) {
	store, err := RelativeToExecutableDir("assets")
	require.NoError(t, err)

	executablePath, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(executablePath), "assets"), store.BasePath())
}

func TestForApp(t *testing.T) {
	configDir, err := ConfigDir()
	if err != nil {
		t.Skipf("no config dir on this platform: %v", err)
	}

	store, err := ForApp("appres-test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "appres-test"), store.BasePath())
}
