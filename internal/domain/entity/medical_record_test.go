package entity

import "testing"

func TestFileTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", FileTypePDF},
		{"Report.PDF", FileTypePDF},
		{"scan.jpg", FileTypeJPG},
		{"scan.jpeg", FileTypeJPG},
		{"SCAN.JPEG", FileTypeJPG},
		{"xray.png", FileTypePNG},
		{"notes.docx", FileTypeOther},
		{"noextension", FileTypeOther},
		{"", FileTypeOther},
		{"archive.pdf.zip", FileTypeOther},
	}

	for _, tt := range tests {
		if got := FileTypeFromName(tt.name); got != tt.want {
			t.Errorf("FileTypeFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
