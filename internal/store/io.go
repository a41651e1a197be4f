package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DirPerm is used for every directory the pipeline creates.
	DirPerm = os.FileMode(0o755)
	// FilePerm is used for every file the pipeline writes.
	FilePerm = os.FileMode(0o644)
)

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := readFile(path)
	if err != nil {
		return err
	}
	if b == nil { // file didn't exist
		return nil
	}
	return errors.Wrapf(json.Unmarshal(b, out), "parsing %s", path)
}

// readFile reads the file at path into b; a missing file is not an error.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return b, nil
}

// WriteJSON writes v as 2-space indented JSON via a temp file then rename.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	return WriteFile(path, b)
}

// WriteFile writes bytes via a temp file, then atomically replaces the target.
// Missing parent directories are created.
func WriteFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Chmod(FilePerm); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "chmod %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}

	return errors.Wrapf(os.Rename(tmp, path), "replacing %s", path)
}
