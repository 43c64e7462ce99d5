package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReferralQR generates a shareable QR code image for a referral code
	GenerateReferralQR(code string) ([]byte, error)

	// ParseReferralQR parses QR code data and returns the embedded referral code
	ParseReferralQR(qrData string) (string, error)
}
