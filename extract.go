package javacomments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/javacomments/javaparser"
)

// DefaultInclude matches every Java source file in a tree.
const DefaultInclude = "**/*.java"

// Options that affect which files are scanned and how; pass an empty struct
// to get default options.
type Options struct {
	Scan javaparser.Options

	// Include and Exclude are doublestar patterns matched against the
	// slash-separated path inside each filesystem. An empty Include means
	// DefaultInclude.
	Include []string
	Exclude []string

	// IncludeHidden also walks files and directories whose name starts with
	// a dot. Set it when the filesystem only holds files that were asked
	// for by name.
	IncludeHidden bool

	// Logger receives debug output for every file and warnings for files
	// ending inside a comment or literal. Nil means no logging.
	Logger logrus.FieldLogger
}

// File is the extraction result for one source file.
type File struct {
	FS     int    // index of the filesystem the file was found in
	Path   string // slash-separated path inside that filesystem
	Output string

	// State is the scanner state at end of input; anything but CodeState
	// means the file ends inside a comment or literal
	State javaparser.State
}

// Document is the combined result of scanning one or more filesystems.
type Document struct {
	Files       []File
	Fingerprint string
}

// Empty is true if no files matched.
func (d Document) Empty() bool {
	return len(d.Files) == 0
}

// Unterminated returns the files that ended in a state other than Code.
func (d Document) Unterminated() []File {
	var result []File
	for _, f := range d.Files {
		if f.State != javaparser.CodeState {
			result = append(result, f)
		}
	}
	return result
}

func (opts Options) logger() logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (opts Options) matches(path string) bool {
	include := opts.Include
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	for _, pattern := range opts.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	for _, pattern := range include {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

func (opts Options) validate() error {
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}

// Extract walks every filesystem in lexical order and scans each matching
// file. Hidden files and directories (such as .git) are skipped unless
// IncludeHidden is set.
//
// Files that are not valid UTF-8 do not stop the walk; they are collected
// and returned together as DecodeErrors. Any other error is from reading
// the filesystems, or from the same content being found twice.
func Extract(opts Options, fsys ...fs.FS) (result Document, err error) {
	if err = opts.validate(); err != nil {
		return Document{}, err
	}
	logger := opts.logger()

	// Passing the same directory twice is easy to do by accident, so two
	// files with the exact same contents are reported
	hashes := make(map[uint64]string)
	var decodeErrors DecodeErrors

	for fidx, f := range fsys {
		// WalkDir is in lexical order according to docs, so output should be stable
		err = fs.WalkDir(f, ".",
			func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !opts.IncludeHidden && path != "." && (strings.HasPrefix(path, ".") || strings.Contains(path, "/.")) {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if d.IsDir() || !opts.matches(path) {
					return nil
				}

				buf, err := fs.ReadFile(f, path)
				if err != nil {
					return err
				}

				// empty files are legitimately identical
				if len(buf) > 0 {
					pathDesc := fmt.Sprintf("fs[%d]:%s", fidx, path)
					hash := xxhash.Sum64(buf)
					if existing, ok := hashes[hash]; ok {
						return fmt.Errorf("file %s has exact same contents as %s (possibly in different filesystems)",
							pathDesc, existing)
					}
					hashes[hash] = pathDesc
				}

				var out strings.Builder
				state, err := javaparser.ScanReader(javaparser.FileRef(path), bytes.NewReader(buf), &out, opts.Scan)
				if err != nil {
					var perr javaparser.Error
					if errors.As(err, &perr) {
						decodeErrors.Errors = append(decodeErrors.Errors, perr)
						return nil
					}
					return err
				}

				fields := logrus.Fields{"file": path, "state": state.String()}
				if state != javaparser.CodeState {
					logger.WithFields(fields).Warnf("input ends inside %s", state)
				} else {
					logger.WithFields(fields).Debug("scanned")
				}

				result.Files = append(result.Files, File{FS: fidx, Path: path, Output: out.String(), State: state})
				return nil
			})
		if err != nil {
			return Document{}, err
		}
	}

	if len(decodeErrors.Errors) > 0 {
		return Document{}, decodeErrors
	}

	result.Fingerprint = Fingerprint(result.Files)
	return result, nil
}

// MustExtract is like Extract but panics on error.
func MustExtract(opts Options, fsys ...fs.FS) Document {
	result, err := Extract(opts, fsys...)
	if err != nil {
		panic(err)
	}
	return result
}
