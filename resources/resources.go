// Package resources locates an application's resource directory and
// loads/saves files within it. A Store is bound to a base directory at
// construction; every operation resolves a relative path against that
// base, opens the file, performs the read or write, and closes it again.
package resources

import (
	"fmt"
	"path/filepath"

	"appres/adapters/filesystem"
	"appres/ports"
)

// Store is a handle to a resource directory. It holds no open file
// handles and is safe for concurrent use.
type Store struct {
	fs       ports.FileSystem
	basePath string
}

// NewStore creates a Store over the given file system implementation.
// Use this to supply a custom ports.FileSystem, for example in tests.
func NewStore(fs ports.FileSystem, basePath string) *Store {
	return &Store{
		fs:       fs,
		basePath: basePath,
	}
}

// At wraps an arbitrary base directory. No I/O is performed; the
// directory does not need to exist yet.
func At(basePath string) *Store {
	return NewStore(filesystem.ProvideOsFileSystem(), basePath)
}

// RelativeToExecutable creates a Store rooted at the directory
// containing the currently running executable.
func RelativeToExecutable() (*Store, error) {
	executableDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}
	return At(executableDir), nil
}

// RelativeToExecutableDir creates a Store rooted at a subdirectory of
// the directory containing the currently running executable.
func RelativeToExecutableDir(subdir string) (*Store, error) {
	executableDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}
	return At(Join(executableDir, subdir)), nil
}

// RelativeToConfig creates a Store rooted at the per-user configuration
// directory.
func RelativeToConfig() (*Store, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return At(configDir), nil
}

// RelativeToConfigDir creates a Store rooted at a subdirectory of the
// per-user configuration directory.
func RelativeToConfigDir(subdir string) (*Store, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return At(Join(configDir, subdir)), nil
}

// ForApp creates a Store rooted at the application's own directory
// under the per-user configuration directory. Shorthand for
// RelativeToConfigDir(appName).
func ForApp(appName string) (*Store, error) {
	return RelativeToConfigDir(appName)
}

// BasePath returns the directory all relative operations resolve
// against.
func (s *Store) BasePath() string {
	return s.basePath
}

// ResolvedPath returns the absolute location of a relative path within
// the store. No I/O is performed.
func (s *Store) ResolvedPath(relativePath string) string {
	return Join(s.basePath, relativePath)
}

// LoadBytes reads the full content of a file within the store.
func (s *Store) LoadBytes(relativePath string) ([]byte, error) {
	content, err := s.fs.ReadFile(s.ResolvedPath(relativePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file: %w", err)
	}
	return content, nil
}

// LoadText reads the full content of a file within the store as UTF-8
// text.
func (s *Store) LoadText(relativePath string) (string, error) {
	content, err := s.LoadBytes(relativePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// SaveBytes writes content to a file within the store, truncating any
// existing file. The parent directory of the target is created
// recursively if it does not exist. The write is not atomic.
func (s *Store) SaveBytes(relativePath string, content []byte) error {
	resolvedPath := s.ResolvedPath(relativePath)
	if filepath.Dir(resolvedPath) == resolvedPath {
		return ErrNoParentDirectory
	}

	if err := s.fs.WriteFile(resolvedPath, content, ports.ReadAllWriteOwner); err != nil {
		return fmt.Errorf("failed to write resource file: %w", err)
	}
	return nil
}

// SaveText writes text to a file within the store, truncating any
// existing file.
func (s *Store) SaveText(relativePath string, text string) error {
	return s.SaveBytes(relativePath, []byte(text))
}

// Exists reports whether a path within the store exists. Any underlying
// I/O error is treated as "does not exist"; callers that must
// distinguish the two cases should probe through ports.FileSystem
// directly.
func (s *Store) Exists(relativePath string) bool {
	exists, err := s.fs.FileExists(s.ResolvedPath(relativePath))
	return err == nil && exists
}

// IsDirectory reports whether a path within the store is an existing
// directory. Like Exists, I/O errors are treated as "no".
func (s *Store) IsDirectory(relativePath string) bool {
	isDir, err := s.fs.DirExists(s.ResolvedPath(relativePath))
	return err == nil && isDir
}
