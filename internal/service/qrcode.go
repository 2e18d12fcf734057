package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

// DefaultQRGenerator encodes a deep link to a restaurant's feed page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	link := fmt.Sprintf("%s/restaurants/%d", g.BaseURL, restaurantID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
