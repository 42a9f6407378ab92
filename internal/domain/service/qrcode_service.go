package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateRateLinkQR renders the public rate-page URL for a feedback
	// request as a PNG QR code.
	GenerateRateLinkQR(rateURL string) ([]byte, error)
}
