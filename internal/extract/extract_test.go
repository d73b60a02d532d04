package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Roe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Software Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "Jane Roe") || !strings.Contains(text, "Senior Software Engineer") {
		t.Fatalf("unexpected text: %q", text)
	}
	// Paragraph ends become newlines.
	if !strings.Contains(text, "Jane Roe\n") {
		t.Fatalf("expected newline after first paragraph, got %q", text)
	}
}

func TestTextFromBytesZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	if _, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromBytesPlainTextPassthrough(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("plain resume"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "plain resume" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesOctetStreamFallsBackToExtension(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)
	if _, err := TextFromBytes(context.Background(), data, "application/octet-stream", "resume.docx"); err != nil {
		t.Fatalf("expected extension fallback for octet-stream, got: %v", err)
	}
}
