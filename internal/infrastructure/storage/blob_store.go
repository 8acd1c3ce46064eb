package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// medicalRecordsDir is the subdirectory medical-record blobs live under,
// independent of the primary store.
const medicalRecordsDir = "medical_records"

// BlobStore keeps uploaded files under a media root. Production uses the OS
// filesystem; tests swap in afero's memory filesystem.
type BlobStore struct {
	fs   afero.Fs
	root string
}

func NewBlobStore(fs afero.Fs, mediaRoot string) *BlobStore {
	return &BlobStore{fs: fs, root: mediaRoot}
}

func NewOSBlobStore(mediaRoot string) *BlobStore {
	return NewBlobStore(afero.NewOsFs(), mediaRoot)
}

// SaveMedicalRecord writes an uploaded blob and returns its store-relative
// path. The stored name is prefixed with a fresh uuid so uploads never
// collide or overwrite each other.
func (s *BlobStore) SaveMedicalRecord(filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, medicalRecordsDir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(filename))
	relPath := path.Join(medicalRecordsDir, name)

	f, err := s.fs.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Best effort cleanup of the partial write.
		s.fs.Remove(filepath.Join(s.root, relPath))
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return relPath, nil
}

// Open returns a reader for a stored blob.
func (s *BlobStore) Open(relPath string) (io.ReadCloser, error) {
	return s.fs.Open(filepath.Join(s.root, relPath))
}

// Exists reports whether a stored blob is present.
func (s *BlobStore) Exists(relPath string) (bool, error) {
	return afero.Exists(s.fs, filepath.Join(s.root, relPath))
}

// Remove deletes a stored blob. It is idempotent: removing a blob that is
// already gone is not an error, so every deletion path can call it safely.
func (s *BlobStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := s.fs.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeFilename strips directory components and characters that have no
// business in a stored filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
