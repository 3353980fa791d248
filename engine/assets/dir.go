package assets

import "path/filepath"

// Dir is a filesystem directory assets are resolved against.
type Dir struct {
	Path string
}

func NewDir(path string) Dir {
	return Dir{Path: filepath.Clean(path)}
}

// Append returns the sub-directory rel of d.
func (d Dir) Append(rel string) Dir {
	return Dir{Path: filepath.Join(d.Path, rel)}
}

// Join returns the path of name inside d. Absolute names are returned as-is.
func (d Dir) Join(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Path, name)
}

func (d Dir) String() string {
	return d.Path
}
