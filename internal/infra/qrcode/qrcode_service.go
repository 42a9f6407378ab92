// Package qrcode renders feedback rate links as QR codes so a business can
// hand a customer a scannable card instead of a pasted URL.
package qrcode

import (
	"fmt"

	"vendofyx/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRateLinkQR renders the public rate-page URL as a PNG QR code.
func (s *qrcodeService) GenerateRateLinkQR(rateURL string) ([]byte, error) {
	if rateURL == "" {
		return nil, fmt.Errorf("rate URL must not be empty")
	}

	qrCode, err := qrcode.New(rateURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
