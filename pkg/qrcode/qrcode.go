package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders guest-access links as QR codes
type QRService struct {
	baseURL string // e.g. "https://festpix.app/e/"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateQRCode returns a PNG QR code pointing at the guest page for the
// given event token.
func (s *QRService) GenerateQRCode(token string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, token)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
