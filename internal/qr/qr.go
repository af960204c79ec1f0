// Package qr renders share URLs as inline QR images for the viewer page.
package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DataURI encodes url as a PNG QR code wrapped in a data URI, ready to be
// used as an <img> source.
func DataURI(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 128)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
