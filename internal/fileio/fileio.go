// Package fileio is the storage gateway: whole-file reads and writes with a
// platform-independent error classification the editor can display.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrDialogClosed marks a path selection the user cancelled.
var ErrDialogClosed = errors.New("file selection cancelled")

// Kind is a coarse, platform-independent category for I/O failures.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "I/O error"
	}
}

// IOError wraps a read or write failure with its classification.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *IOError) Unwrap() error { return e.Err }

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}

// File is a fully loaded file: its resolved path and entire content.
type File struct {
	Path    string
	Content string
}

// Load reads the file at path fully into memory. It resolves the path to an
// absolute one so the editor's location label is unambiguous. Nothing is
// mutated on failure.
func Load(path string) (File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return File{}, &IOError{Op: "load", Path: abs, Kind: classify(err), Err: err}
	}
	return File{Path: abs, Content: string(data)}, nil
}

// Save writes text fully to path and returns the resolved path; a brand-new
// file acquires its definitive path here.
func Save(path, text string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := os.WriteFile(abs, []byte(text), 0644); err != nil {
		return "", &IOError{Op: "save", Path: abs, Kind: classify(err), Err: err}
	}
	return abs, nil
}

// Describe renders err for the status bar.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrDialogClosed) {
		return ErrDialogClosed.Error()
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Error()
	}
	return err.Error()
}
