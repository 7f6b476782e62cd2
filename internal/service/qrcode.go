package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// ReceiptQRGenerator encodes a link to the order's receipt page as a PNG.
type ReceiptQRGenerator struct {
	BaseURL string
	Size    int
}

func (g ReceiptQRGenerator) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	link := fmt.Sprintf("%s/api/orders/%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(link, qrcode.Medium, size)
}
