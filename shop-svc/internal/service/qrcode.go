package service

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const QRPlaceholder = ImageBasePath + "qris-placeholder.svg"

type QRGenerator interface {
	Generate(amount int64, orderID, merchantName string) string
}

type EncodeFunc func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// DefaultQRGenerator renders a QRIS-looking payload. It is cosmetic only and never
// fails: the worst case is the static placeholder image.
type DefaultQRGenerator struct {
	MerchantID  string
	Size        int
	Placeholder string
	Encode      EncodeFunc
	Logger      *zap.Logger
}

func NewQRGenerator(merchantID string, logger *zap.Logger) *DefaultQRGenerator {
	return &DefaultQRGenerator{
		MerchantID:  merchantID,
		Size:        256,
		Placeholder: QRPlaceholder,
		Encode:      qrcode.Encode,
		Logger:      logger,
	}
}

func (g *DefaultQRGenerator) Generate(amount int64, orderID, merchantName string) string {
	encode := g.Encode
	if encode == nil {
		encode = qrcode.Encode
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}

	payload := fmt.Sprintf("QRIS|%s|%d|%s|%s", g.MerchantID, amount, orderID, merchantName)
	png, err := encode(payload, qrcode.Medium, size)
	if err == nil {
		return pngDataURI(png)
	}
	g.logger().Warn("qr encode failed, trying simplified payload", zap.String("order_id", orderID), zap.Error(err))

	png, err = encode(fmt.Sprintf("%d|%s", amount, orderID), qrcode.Low, size)
	if err == nil {
		return pngDataURI(png)
	}
	g.logger().Warn("simplified qr encode failed, using placeholder", zap.String("order_id", orderID), zap.Error(err))

	if g.Placeholder == "" {
		return QRPlaceholder
	}
	return g.Placeholder
}

func (g *DefaultQRGenerator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func pngDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
