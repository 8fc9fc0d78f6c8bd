package qrcode

import (
	"testing"

	"comanda/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_MenuURL(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M", "https://menu.example.com/"))

	assert.Equal(t, "https://menu.example.com/r/la-esquina", service.MenuURL("la-esquina"))
	assert.Equal(t, "https://menu.example.com/r/a%2Fb", service.MenuURL("a/b"))
}

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M", "https://menu.example.com"))

	qrBytes, err := service.GenerateMenuQR("la-esquina")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateMenuQR_DifferentSizes(t *testing.T) {
	small, err := NewQRCodeService(newTestConfig(128, "L", "http://x")).GenerateMenuQR("r1")
	require.NoError(t, err)

	large, err := NewQRCodeService(newTestConfig(512, "L", "http://x")).GenerateMenuQR("r1")
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_GenerateMenuQR_EmptyIdentifier(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	_, err := service.GenerateMenuQR("  ")
	assert.Error(t, err)
}
