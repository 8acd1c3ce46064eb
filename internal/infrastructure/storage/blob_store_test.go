package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestSaveMedicalRecord(t *testing.T) {
	store := NewBlobStore(afero.NewMemMapFs(), "media")

	path, err := store.SaveMedicalRecord("scan.png", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}

	if !strings.HasPrefix(path, "medical_records/") {
		t.Errorf("path = %q, want medical_records/ prefix", path)
	}
	if !strings.HasSuffix(path, "_scan.png") {
		t.Errorf("path = %q, want original filename suffix", path)
	}

	f, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	data, _ := io.ReadAll(f)
	if string(data) != "image bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveMedicalRecordUniqueNames(t *testing.T) {
	store := NewBlobStore(afero.NewMemMapFs(), "media")

	first, err := store.SaveMedicalRecord("report.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}
	second, err := store.SaveMedicalRecord("report.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}

	if first == second {
		t.Errorf("same filename produced the same path %q", first)
	}
}

func TestSaveMedicalRecordSanitizesFilename(t *testing.T) {
	store := NewBlobStore(afero.NewMemMapFs(), "media")

	path, err := store.SaveMedicalRecord("../../etc/pass wd.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}

	if strings.Contains(path, "..") {
		t.Errorf("path %q contains directory traversal", path)
	}
	if strings.Contains(path, " ") {
		t.Errorf("path %q contains whitespace", path)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewBlobStore(afero.NewMemMapFs(), "media")

	path, err := store.SaveMedicalRecord("scan.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveMedicalRecord() error = %v", err)
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("first Remove() error = %v", err)
	}
	if err := store.Remove(path); err != nil {
		t.Fatalf("second Remove() error = %v, want nil", err)
	}
	if err := store.Remove(""); err != nil {
		t.Fatalf("Remove(\"\") error = %v, want nil", err)
	}

	if exists, _ := store.Exists(path); exists {
		t.Error("blob still present after remove")
	}
}
