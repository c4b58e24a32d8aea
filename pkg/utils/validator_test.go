package utils

import (
	"testing"

	"github.com/festpix/festpix-backend/internal/models"
)

type imagePayload struct {
	MimeType string `validate:"required,supported_image"`
}

func TestSupportedImageValidation(t *testing.T) {
	v := NewValidator()

	for _, mime := range []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/heic"} {
		if err := v.Struct(imagePayload{MimeType: mime}); err != nil {
			t.Fatalf("%s should be accepted: %v", mime, err)
		}
	}

	for _, mime := range []string{"image/tiff", "application/pdf", "video/mp4", ""} {
		if err := v.Struct(imagePayload{MimeType: mime}); err == nil {
			t.Fatalf("%s should be rejected", mime)
		}
	}
}

func TestUploadMetadataAllowsZeroByteFile(t *testing.T) {
	v := NewValidator()

	req := models.GuestUploadRequest{
		EventID:   1,
		GuestName: "Liv",
		FileURL:   "https://files.test/uploads/empty.png",
		FileName:  "empty.png",
		FileSize:  0,
		MimeType:  "image/png",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("zero-byte file metadata must validate: %v", err)
	}
}
