package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// QRDataURL renders the given public menu URL as a PNG QR code and returns it
// as a base64 data URL, ready to drop into an <img src=...> on the admin
// success screen or to download as the printable table card.
func QRDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 512)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
