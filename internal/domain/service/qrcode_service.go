package service

// QRCodeService renders onboarding invite links as QR code images.
type QRCodeService interface {
	// GenerateInviteQR encodes an invite URL as a PNG image.
	GenerateInviteQR(inviteURL string) ([]byte, error)
}
