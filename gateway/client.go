package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client performs the outbound calls to the payment gateway. Both calls
// are signed with the same checksum scheme over the shared API key.
type Client struct {
	baseURL    string
	merchantID string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given merchant credentials.
func NewClient(baseURL, merchantID, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		merchantID: merchantID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// StatusResult carries the outcome of a status poll. Success and Code
// are reported as the gateway sent them; Amount is the canonical amount
// in minor units from the gateway, not the callback URL. RawBody keeps
// the unparsed response for the payment record.
type StatusResult struct {
	Success bool
	Code    string
	Amount  int64
	RawBody string
}

type initiateResponse struct {
	Success bool `json:"success"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

type statusResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ResponseCode string `json:"responseCode"`
		Amount       int64  `json:"amount"`
	} `json:"data"`
}

// Initiate posts the signed pay request and returns the hosted pay page
// URL the buyer should be redirected to.
func (c *Client) Initiate(ctx context.Context, payReq *PayRequest) (string, error) {
	payload, err := EncodePayload(payReq)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(map[string]string{"request": payload})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PayPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build pay request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", Checksum(payload, PayPath, c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pay request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gateway returned status %d for pay request", resp.StatusCode)
	}

	var parsed initiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode pay response: %v", err)
	}

	redirectURL := parsed.Data.InstrumentResponse.RedirectInfo.URL
	if !parsed.Success || redirectURL == "" {
		return "", fmt.Errorf("gateway did not return a redirect url")
	}
	return redirectURL, nil
}

// PollStatus fetches the gateway's view of a transaction. Transport
// errors and non-2xx responses both surface as errors; the caller treats
// any error as a failed payment.
func (c *Client) PollStatus(ctx context.Context, merchantTransactionID string) (*StatusResult, error) {
	path := fmt.Sprintf("%s/%s/%s", StatusPathPrefix, c.merchantID, merchantTransactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", Checksum("", path, c.apiKey))
	req.Header.Set("X-MERCHANT-ID", c.merchantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d for status request", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %v", err)
	}

	var parsed statusResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %v", err)
	}

	return &StatusResult{
		Success: parsed.Success,
		Code:    parsed.Data.ResponseCode,
		Amount:  parsed.Data.Amount,
		RawBody: string(raw),
	}, nil
}
