package gateway

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumFormat(t *testing.T) {
	payload := "eyJtZXJjaGFudElkIjoiTTEifQ=="
	apiKey := "test-api-key"

	got := Checksum(payload, PayPath, apiKey)

	sum := sha256.Sum256([]byte(payload + PayPath + apiKey))
	want := hex.EncodeToString(sum[:]) + "###1"
	assert.Equal(t, want, got)

	// Deterministic for identical inputs
	assert.Equal(t, got, Checksum(payload, PayPath, apiKey))

	// Different key produces a different digest
	assert.NotEqual(t, got, Checksum(payload, PayPath, "other-key"))
}

func TestChecksumStatusPathUsesEmptyPayload(t *testing.T) {
	path := StatusPathPrefix + "/M1/abc123"
	apiKey := "test-api-key"

	got := Checksum("", path, apiKey)

	sum := sha256.Sum256([]byte(path + apiKey))
	assert.Equal(t, hex.EncodeToString(sum[:])+"###1", got)
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{100, 10000},
		// 19.99*100 is 1998.999... in float64; rounding must not lose a unit
		{19.99, 1999},
		{0.1, 10},
		{1234.56, 123456},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

func TestNewMerchantTransactionID(t *testing.T) {
	first, err := NewMerchantTransactionID()
	require.NoError(t, err)
	second, err := NewMerchantTransactionID()
	require.NoError(t, err)

	// 16 random bytes, hex encoded
	assert.Len(t, first, 32)
	_, err = hex.DecodeString(first)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEncodePayload(t *testing.T) {
	req := &PayRequest{
		MerchantID:            "M1",
		MerchantTransactionID: "txn-1",
		MerchantUserID:        "MUID1700000000000",
		Name:                  "Asha",
		Amount:                149900,
		RedirectURL:           "https://example.com/v1/payment/status/txn-1/M1/1499/7",
		RedirectMode:          "POST",
		MobileNumber:          "9876543210",
		PaymentInstrument:     PaymentInstrument{Type: "PAY_PAGE"},
	}

	encoded, err := EncodePayload(req)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	// Wire field names must match the gateway contract exactly
	for _, field := range []string{
		"merchantId", "merchantTransactionId", "merchantUserId",
		"amount", "redirectUrl", "redirectMode", "mobileNumber", "paymentInstrument",
	} {
		assert.True(t, strings.Contains(string(raw), `"`+field+`"`), "missing field %s", field)
	}

	var decoded PayRequest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, req.MerchantID, decoded.MerchantID)
	assert.Equal(t, req.Amount, decoded.Amount)
	assert.Equal(t, "PAY_PAGE", decoded.PaymentInstrument.Type)
}
