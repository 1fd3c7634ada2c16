package resources

import "errors"

var (
	// ErrConfigDirNotFound is returned when the platform provides no
	// per-user configuration directory.
	ErrConfigDirNotFound = errors.New("cannot find config dir")

	// ErrNoParentDirectory is returned when a save target resolves to a
	// path without a parent segment, such as a filesystem root.
	ErrNoParentDirectory = errors.New("path has no parent directory")
)
