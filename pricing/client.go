package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/quotes"
)

// Sentinel errors every upstream failure maps onto. Handlers translate these
// to HTTP statuses in one place instead of inspecting raw transport errors.
var (
	ErrBadRequest  = errors.New("pricing: rejected request")
	ErrUnavailable = errors.New("pricing: service unavailable")
	ErrBadResponse = errors.New("pricing: malformed response")
)

// RawQuote is one carrier's rate record as returned by the pricing service.
// Cost components are already summed into TotalCost upstream.
type RawQuote struct {
	CarrierName           string  `json:"carrier_name"`
	ServiceLevel          string  `json:"service_level"`
	TotalCost             float64 `json:"total_cost"`
	BaseRate              float64 `json:"base_rate"`
	FuelSurcharge         float64 `json:"fuel_surcharge"`
	InsuranceCost         float64 `json:"insurance_cost"`
	AdditionalFees        float64 `json:"additional_fees"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
}

type RateResponse struct {
	Quotes             []RawQuote `json:"carrier_quotes"`
	RecommendedCarrier string     `json:"recommended_carrier,omitempty"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClientFromEnv builds the client from PRICING_API_URL / PRICING_API_KEY /
// PRICING_TIMEOUT_SECONDS. No retries: a failed rate request surfaces to the
// caller and the user asks again.
func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("PRICING_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("missing PRICING_API_URL env var")
	}

	timeout := 10
	if v := os.Getenv("PRICING_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  os.Getenv("PRICING_API_KEY"),
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

// GetRates fetches raw per-carrier quotes for an assembled rate request.
func (c *Client) GetRates(ctx context.Context, req quotes.RateRequest) (*RateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rates", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: upstream status %d", ErrBadRequest, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	var out RateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if out.Quotes == nil {
		return nil, fmt.Errorf("%w: missing carrier_quotes", ErrBadResponse)
	}
	return &out, nil
}
