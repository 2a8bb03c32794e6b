package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(tableNumber int) ([]byte, error)
}

// DefaultQRGenerator links a table to the guest menu page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableNumber int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/?table=%d", strings.TrimRight(g.BaseURL, "/"), tableNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
