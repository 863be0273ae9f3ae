package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

const orderType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(0, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateOrderQR renders a PNG the customer can show when following up on an order
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if !strings.HasPrefix(orderID, entity.OrderIDPrefix) {
		return nil, errors.Errorf("invalid order id: %q", orderID)
	}

	jsonData, err := json.Marshal(QRCodeData{OrderID: orderID, Type: orderType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR parses scanned QR code text and returns the order id
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != orderType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if !strings.HasPrefix(data.OrderID, entity.OrderIDPrefix) {
		return "", errors.Errorf("invalid order id: %q", data.OrderID)
	}

	return data.OrderID, nil
}
