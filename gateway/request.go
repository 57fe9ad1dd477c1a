package gateway

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
)

const (
	// PayPath is the gateway's pay-page endpoint path segment. It is part
	// of the signing material as well as the request URL.
	PayPath = "/pg/v1/pay"
	// StatusPathPrefix is the prefix of the status-poll endpoint path.
	StatusPathPrefix = "/pg/v1/status"

	keyIndex          = "1"
	checksumSeparator = "###"
)

// PaymentInstrument selects the gateway's hosted pay page.
type PaymentInstrument struct {
	Type string `json:"type"`
}

// PayRequest is the JSON payload posted to the gateway's pay endpoint.
// Amount is in minor currency units.
type PayRequest struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Name                  string            `json:"name"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	MobileNumber          string            `json:"mobileNumber"`
	PaymentInstrument     PaymentInstrument `json:"paymentInstrument"`
}

// MinorUnits converts a currency amount to integer minor units. Rounding
// matters: truncating 19.99*100 would yield 1998 because of float
// representation.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewMerchantTransactionID generates the random identifier naming one
// checkout attempt: 16 random bytes, hex encoded.
func NewMerchantTransactionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate merchant transaction id: %v", err)
	}
	return hex.EncodeToString(b), nil
}

// EncodePayload marshals the pay request and base64-encodes it for the
// request body and the checksum input.
func EncodePayload(req *PayRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal pay request: %v", err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Checksum computes the X-VERIFY header value for a request:
// hex(SHA-256(payload + path + apiKey)) + "###" + keyIndex. For status
// polls the payload is empty and the path carries the merchant and
// transaction ids.
func Checksum(payload, path, apiKey string) string {
	sum := sha256.Sum256([]byte(payload + path + apiKey))
	return hex.EncodeToString(sum[:]) + checksumSeparator + keyIndex
}
