package service

// QRCodeService defines the interface for listing share QR codes
type QRCodeService interface {
	// GenerateListingQR generates a PNG QR code pointing at the listing detail page
	GenerateListingQR(listingID int64) ([]byte, error)

	// ParseListingQR parses QR code content and returns the listing ID
	ParseListingQR(content string) (int64, error)
}
