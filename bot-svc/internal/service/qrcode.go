package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// FeedbackQRGenerator encodes a link to the order's feedback page.
type FeedbackQRGenerator struct {
	BaseURL string
}

func (g FeedbackQRGenerator) Link(orderID int) string {
	return fmt.Sprintf("%s/feedback?order_id=%d", g.BaseURL, orderID)
}

func (g FeedbackQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, 256)
}
