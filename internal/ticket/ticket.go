// Package ticket generates the public ticket identifiers embedded in
// registrations and renders them as QR images for outbound emails.
package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	codeCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randomSuffixLen = 4
	qrImageSize     = 256
)

// NewCode returns a fresh ticket code: the last six digits of the current
// epoch-millisecond timestamp plus four random uppercase alphanumerics,
// formatted TICKET-<digits>-<chars>. Collision-resistant, not
// collision-proof; the registrations table carries a unique index on the
// code so the rare collision surfaces as an insert error instead of two
// tickets sharing a lookup key.
func NewCode() string {
	millis := time.Now().UnixMilli() % 1_000_000

	suffix := make([]byte, randomSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// nothing sensible to do but stop.
			panic(fmt.Sprintf("ticket: read random: %v", err))
		}
		suffix[i] = codeCharset[n.Int64()]
	}

	return fmt.Sprintf("TICKET-%06d-%s", millis, suffix)
}

// QRCode encodes the ticket lookup URL as a PNG. The image is regenerated
// for every email render, never stored.
func QRCode(lookupURL string) ([]byte, error) {
	png, err := qrcode.Encode(lookupURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
