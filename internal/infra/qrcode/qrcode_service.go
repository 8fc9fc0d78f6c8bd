package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"comanda/config"
	"comanda/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var qrCfg config.QRCodeConfig
	if cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// MenuURL returns {baseURL}/r/{identifier}.
func (s *qrcodeService) MenuURL(identifier string) string {
	return s.baseURL + "/r/" + url.PathEscape(identifier)
}

// GenerateMenuQR renders the menu URL as a PNG.
func (s *qrcodeService) GenerateMenuQR(identifier string) ([]byte, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, fmt.Errorf("restaurant identifier is required")
	}

	qrCode, err := qrcode.New(s.MenuURL(identifier), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
