package storage

import (
	"testing"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload("image/png", 1024); err != nil {
		t.Fatalf("png of 1KB should pass: %v", err)
	}

	if err := ValidateUpload("application/pdf", 1024); !httperr.IsBusiness(err, "invalid_file_type") {
		t.Fatalf("expected invalid_file_type, got %v", err)
	}

	if err := ValidateUpload("image/jpeg", MaxFileSize+1); !httperr.IsBusiness(err, "file_too_large") {
		t.Fatalf("expected file_too_large, got %v", err)
	}

	if err := ValidateUpload("image/jpeg", 0); !httperr.IsBusiness(err, "file_too_large") {
		t.Fatalf("empty payloads are rejected, got %v", err)
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range []string{"hero", "service", "gallery", "logo", "general"} {
		if !IsValidCategory(category) {
			t.Fatalf("expected %q to be valid", category)
		}
	}
	if IsValidCategory("banner") {
		t.Fatalf("unknown categories are rejected")
	}
}

func TestSanitizeName(t *testing.T) {
	if got := sanitizeName("  foto do carro.jpg "); got != "foto-do-carro.jpg" {
		t.Fatalf("unexpected name: %s", got)
	}
	if got := sanitizeName(""); got != "image" {
		t.Fatalf("empty names fall back to a placeholder, got %s", got)
	}
}

func TestTrimExtension(t *testing.T) {
	if got := trimExtension("foto.jpg"); got != "foto" {
		t.Fatalf("expected foto, got %s", got)
	}
	if got := trimExtension("semext"); got != "semext" {
		t.Fatalf("expected semext, got %s", got)
	}
	if got := trimExtension(".hidden"); got != ".hidden" {
		t.Fatalf("leading dot is not an extension, got %s", got)
	}
}
