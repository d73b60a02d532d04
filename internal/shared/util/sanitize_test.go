package util

import (
	"errors"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"  resume.docx  ", "resume.docx"},
		{"folder/resume.pdf", "folder_resume.pdf"},
		{`dir\resume.pdf`, "dir_resume.pdf"},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileNameRejectsBadNames(t *testing.T) {
	for _, in := range []string{"../../etc/passwd", "..", "", "   "} {
		if _, err := SanitizeFileName(in); !errors.Is(err, ErrBadFileName) {
			t.Errorf("SanitizeFileName(%q): want ErrBadFileName, got %v", in, err)
		}
	}
}
