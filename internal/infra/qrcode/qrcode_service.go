package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"matjip/config"
	"matjip/internal/domain/service"
	"matjip/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	// detailPath is the web client's listing detail page.
	detailPath = "/detail"

	defaultSize                 = 256
	defaultErrorCorrectionLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New creates the QR code service from config, falling back to defaults for unset values.
func New(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, defaultErrorCorrectionLevel, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		baseURL = cfg.QRCode.BaseURL
	}

	return NewQRCodeService(size, level, baseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ListingURL returns the detail page URL encoded in a listing's QR code.
func (s *qrcodeService) ListingURL(listingID int64) string {
	return fmt.Sprintf("%s%s?id=%d", s.baseURL, detailPath, listingID)
}

// GenerateListingQR generates a PNG QR code that opens the listing detail page
func (s *qrcodeService) GenerateListingQR(listingID int64) ([]byte, error) {
	if listingID <= 0 {
		return nil, errors.Errorf("invalid listing ID: %d", listingID)
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.ListingURL(listingID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseListingQR parses the content of a listing QR code and returns the listing ID
func (s *qrcodeService) ParseListingQR(content string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code content")
	}

	if !strings.HasSuffix(strings.TrimRight(u.Path, "/"), detailPath) {
		return 0, errors.Errorf("not a listing QR code: %s", content)
	}

	listingID, err := strconv.ParseInt(u.Query().Get("id"), 10, 64)
	if err != nil || listingID <= 0 {
		return 0, errors.Errorf("invalid listing ID in QR code: %q", u.Query().Get("id"))
	}

	return listingID, nil
}
