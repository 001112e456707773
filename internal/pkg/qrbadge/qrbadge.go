package qrbadge

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the badge side length in pixels.
const DefaultSize = 256

// Generate renders a user id as a QR PNG for kiosk scanning. The payload is
// the bare id; the kiosk scanner forwards it verbatim to the clock toggle.
func Generate(userID string, size int) ([]byte, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(userID, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode badge QR: %w", err)
	}
	return png, nil
}
