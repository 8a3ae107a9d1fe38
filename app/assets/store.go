package assets

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrNotFound means the referenced asset does not exist on disk.
	ErrNotFound = errors.New("asset not found")
	// ErrInvalidPath means the identifier could escape the asset root.
	ErrInvalidPath = errors.New("invalid asset path")
)

// PromoteOutcome reports which branch of the move/copy fallback ran.
type PromoteOutcome int

const (
	OutcomeMoved PromoteOutcome = iota
	OutcomeCopied
)

// Store owns the on-disk layout for image assets: temp uploads directly
// under the root, finalized images and crops under one directory per exam.
type Store struct {
	Root string

	// rename is swappable so tests can force the copy fallback.
	rename func(oldpath, newpath string) error
}

// NewStore creates the asset root if needed and returns a store over it.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &Store{Root: root, rename: os.Rename}, nil
}

// CheckPath rejects externally supplied identifiers that contain
// parent-directory traversal or absolute-path prefixes.
func CheckPath(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") ||
		strings.Contains(name, "..") || filepath.IsAbs(name) {
		return ErrInvalidPath
	}
	return nil
}

// Resolve maps a stored relative asset path (temp or finalized) to an
// absolute path under the root, verifying the file exists.
func (s *Store) Resolve(name string) (string, error) {
	if err := CheckPath(name); err != nil {
		return "", err
	}
	abs := filepath.Join(s.Root, filepath.FromSlash(name))
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return abs, nil
}

// ResolveTemp maps a temp asset identifier to its absolute path. Callers
// must resolve before opening a transaction that depends on the file.
func (s *Store) ResolveTemp(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidPath
	}
	return s.Resolve(name)
}

// TempPath returns the absolute path a new temp asset should be written to.
func (s *Store) TempPath(name string) string {
	return filepath.Join(s.Root, name)
}

// Promote moves a temp asset into the exam's directory under the canonical
// name image<ext>. When the move fails (e.g. cross-device) it falls back to
// copy and removes the source best-effort. Returns the absolute and
// root-relative final paths plus which branch ran.
func (s *Store) Promote(examID int, tempPath string) (string, string, PromoteOutcome, error) {
	examDir := filepath.Join(s.Root, strconv.Itoa(examID))
	if err := os.MkdirAll(examDir, 0o755); err != nil {
		return "", "", OutcomeMoved, fmt.Errorf("failed to create exam directory: %w", err)
	}

	finalName := "image" + filepath.Ext(tempPath)
	abs := filepath.Join(examDir, finalName)
	rel := filepath.Join(strconv.Itoa(examID), finalName)

	err := s.rename(tempPath, abs)
	if err == nil {
		return abs, rel, OutcomeMoved, nil
	}
	log.Printf("Could not move %s, attempting copy: %v", tempPath, err)

	if err := copyFile(tempPath, abs); err != nil {
		return "", "", OutcomeMoved, fmt.Errorf("failed to move or copy %s: %w", tempPath, err)
	}
	if err := os.Remove(tempPath); err != nil {
		log.Printf("Could not remove source %s after copy: %v", tempPath, err)
	}
	return abs, rel, OutcomeCopied, nil
}

// CropTarget returns the absolute and root-relative paths for a
// rectangle's cropped image. rectIndex is unique per exam, so the path
// needs no collision handling.
func (s *Store) CropTarget(examID, rectIndex int) (string, string) {
	name := fmt.Sprintf("crop_%d.png", rectIndex)
	return filepath.Join(s.Root, strconv.Itoa(examID), name),
		filepath.Join(strconv.Itoa(examID), name)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
