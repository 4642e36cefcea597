package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackClient talks to the Paystack transaction REST API. Amounts
// cross the wire in the smallest currency unit (pesewas/kobo).
type PaystackClient struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewPaystackClient(secretKey string) *PaystackClient {
	return &PaystackClient{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewPaystackClientWithBaseURL exists for tests against a local server.
func NewPaystackClientWithBaseURL(secretKey, baseURL string) *PaystackClient {
	c := NewPaystackClient(secretKey)
	c.baseURL = baseURL
	return c
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
	Channel string  `json:"channel"`
}

func (c *PaystackClient) Initialize(ctx context.Context, in InitializeInput) (*InitializeResult, error) {
	body := map[string]any{
		"email":        in.Email,
		"amount":       int64(math.Round(in.Amount * 100)),
		"reference":    in.Reference,
		"callback_url": in.CallbackURL,
		"metadata":     in.Metadata,
	}

	var data paystackInitData
	if err := c.post(ctx, "/transaction/initialize", body, &data); err != nil {
		return nil, err
	}

	return &InitializeResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	var data paystackVerifyData
	if err := c.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}

	switch data.Status {
	case "success":
		return &VerifyResult{
			Paid:   true,
			Amount: data.Amount / 100,
			Method: data.Channel,
		}, nil
	case "failed", "reversed":
		return &VerifyResult{}, nil
	default:
		// "pending", "ongoing", "abandoned", and friends mean the customer has not
		// completed the transaction yet.
		return &VerifyResult{Pending: true}, nil
	}
}

func (c *PaystackClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &GatewayError{Detail: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &GatewayError{Detail: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *PaystackClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &GatewayError{Detail: "build request", Err: err}
	}

	return c.do(req, out)
}

func (c *PaystackClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return &GatewayError{Detail: "provider unreachable", Err: err}
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &GatewayError{Detail: "decode response", Err: err}
	}

	if resp.StatusCode >= 400 || !envelope.Status {
		detail := envelope.Message
		if detail == "" {
			detail = fmt.Sprintf("provider returned HTTP %d", resp.StatusCode)
		}
		return &GatewayError{Detail: detail}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &GatewayError{Detail: "decode response data", Err: err}
		}
	}

	return nil
}

var _ Gateway = (*PaystackClient)(nil)
