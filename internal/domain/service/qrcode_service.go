package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR generates a PNG QR code that identifies an order
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the order ID
	ParseOrderQR(qrData string) (string, error)
}
