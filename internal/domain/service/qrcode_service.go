package service

// QRCodeService generates QR codes pointing customers at a restaurant menu.
type QRCodeService interface {
	// MenuURL returns the public menu URL for a restaurant identifier.
	MenuURL(identifier string) string

	// GenerateMenuQR renders the menu URL as a PNG QR code.
	GenerateMenuQR(identifier string) ([]byte, error)
}
