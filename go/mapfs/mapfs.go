// Package mapfs exposes an explicit list of files on disk as a flat fs.FS,
// so a handful of files named on the command line can be walked the same
// way as a directory tree.
package mapfs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MapFS maps names inside the filesystem to paths on disk.
type MapFS map[string]string

var _ fs.FS = (*MapFS)(nil)

// New creates a MapFS holding paths.
func New(paths ...string) (MapFS, error) {
	m := make(MapFS)
	for _, p := range paths {
		if err := m.Add(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m MapFS) Open(filename string) (fs.File, error) {
	if filename == "." {
		var entries []fs.DirEntry
		for name, fullpath := range m {
			info, err := os.Stat(fullpath)
			if err != nil {
				continue
			}
			entries = append(entries, fileDirEntry{name: name, info: info})
		}
		return &virtualDir{
			entries: entries,
			pos:     0,
		}, nil
	}

	if _, ok := m[filename]; !ok {
		return nil, &fs.PathError{Op: "open", Path: filename, Err: fs.ErrNotExist}
	}
	return os.Open(m[filename])
}

// Add registers path under its slash-separated path relative to the working
// directory; files outside the working directory keep their absolute path
// minus the leading separator.
func (m MapFS) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	name, err := nameFor(path)
	if err != nil {
		return err
	}
	if existing, ok := m[name]; ok {
		return fmt.Errorf("%s and %s map to the same name %s", existing, path, name)
	}
	m[name] = path
	return nil
}

func nameFor(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	name := abs
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, abs); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			name = rel
		}
	}
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, filepath.ToSlash(filepath.VolumeName(name)))
	name = strings.TrimLeft(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("cannot name %s inside a filesystem", path)
	}
	return name, nil
}

// virtualDir implements fs.File + ReadDirFile
type virtualDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return dirInfo{name: ".", mode: fs.ModeDir}, nil
}

func (d *virtualDir) Read([]byte) (int, error) {
	return 0, io.EOF // directories have no data
}

func (d *virtualDir) Close() error {
	return nil
}

func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		if n <= 0 {
			return nil, nil
		}
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

// fileDirEntry implements fs.DirEntry
type fileDirEntry struct {
	name string
	info os.FileInfo
}

func (e fileDirEntry) Name() string               { return e.name }
func (e fileDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e fileDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e fileDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// dirInfo is a simple FileInfo for the root dir
type dirInfo struct {
	name string
	mode fs.FileMode
}

func (d dirInfo) Name() string       { return d.name }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() fs.FileMode  { return d.mode }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return d.mode.IsDir() }
func (d dirInfo) Sys() interface{}   { return nil }
