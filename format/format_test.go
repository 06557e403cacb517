package format

import (
	"errors"
	"strings"
	"testing"

	converrors "github.com/docforge/convertd/errors"
)

func TestClassify_SupportedExtensions(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{"docx", Text},
		{"doc", Text},
		{"odt", Text},
		{"rtf", Text},
		{"txt", Text},
		{"xlsx", Spreadsheet},
		{"xls", Spreadsheet},
		{"ods", Spreadsheet},
		{"csv", Spreadsheet},
		{"pptx", Presentation},
		{"ppt", Presentation},
		{"odp", Presentation},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := Classify(tt.ext)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.ext, got, tt.want)
			}
		})
	}
}

func TestClassify_CaseInsensitiveAndDotted(t *testing.T) {
	for _, ext := range []string{"DOCX", ".docx", ".DocX"} {
		got, err := Classify(ext)
		if err != nil {
			t.Fatalf("Classify(%q): %v", ext, err)
		}
		if got != Text {
			t.Errorf("Classify(%q) = %s, want text", ext, got)
		}
	}
}

func TestClassify_Unsupported(t *testing.T) {
	_, err := Classify("xyz")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	var e *converrors.Error
	if !errors.As(err, &e) || e.Kind != converrors.KindUnsupportedFormat {
		t.Fatalf("expected unsupported_format, got %v", err)
	}
	if !strings.Contains(err.Error(), `"xyz"`) {
		t.Errorf("error should name the extension: %v", err)
	}
}

func TestClassify_PDFIsOutputOnly(t *testing.T) {
	if _, err := Classify("pdf"); err == nil {
		t.Error("pdf is a conversion target, not a classifiable input")
	}
}

func TestSaveTarget_Known(t *testing.T) {
	mime, desc := SaveTarget("xlsx")
	if mime != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected mime: %s", mime)
	}
	if desc != "Excel Workbook" {
		t.Errorf("unexpected description: %s", desc)
	}
}

func TestSaveTarget_UnknownDegrades(t *testing.T) {
	mime, desc := SaveTarget("xyz")
	if mime != GenericMIME || desc != GenericDescription {
		t.Errorf("unknown extension should degrade to generic target, got %s / %s", mime, desc)
	}
}

func TestOutputCodes_RoundTrip(t *testing.T) {
	tests := []struct {
		ext  string
		code int
	}{
		{"docx", 65},
		{"odt", 67},
		{"txt", 69},
		{"pptx", 129},
		{"xlsx", 257},
		{"csv", 260},
		{"pdf", 513},
	}

	for _, tt := range tests {
		code, ok := OutputCode(tt.ext)
		if !ok || code != tt.code {
			t.Errorf("OutputCode(%q) = %d (ok=%v), want %d", tt.ext, code, ok, tt.code)
		}
		ext, ok := ExtensionForCode(tt.code)
		if !ok || ext != tt.ext {
			t.Errorf("ExtensionForCode(%d) = %q (ok=%v), want %q", tt.code, ext, ok, tt.ext)
		}
	}

	if _, ok := OutputCode("xyz"); ok {
		t.Error("unknown extension should have no output code")
	}
	if _, ok := ExtensionForCode(9999); ok {
		t.Error("unknown code should not resolve")
	}
}

func TestExtensions_InputsFirst(t *testing.T) {
	exts := Extensions()
	if len(exts) != 13 {
		t.Fatalf("expected 13 table entries, got %d: %v", len(exts), exts)
	}
	if exts[len(exts)-1] != "pdf" {
		t.Errorf("output-only entries should come last, got %v", exts)
	}
}
