package payment

import (
	"context"
	"errors"
)

// InitializeInput carries everything a provider needs to open a payment
// session for one booking attempt.
type InitializeInput struct {
	// Amount in major currency units (e.g. GHS).
	Amount      float64
	Email       string
	Reference   string
	CallbackURL string
	Metadata    map[string]any
}

type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is deliberately tri-state: a transaction the customer has
// not finished yet is Pending, which is not an error and not a failure.
type VerifyResult struct {
	Paid    bool
	Pending bool

	// Set when Paid.
	Amount float64
	Method string
}

// Gateway isolates the orchestrator from the payment provider's
// transport details. Providers are untrusted, possibly slow and
// possibly failing; every call takes a context.
type Gateway interface {
	Initialize(ctx context.Context, in InitializeInput) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

// GatewayError wraps network failures, bad credentials and provider-side
// rejections with a human-readable detail.
type GatewayError struct {
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return "payment gateway: " + e.Detail + ": " + e.Err.Error()
	}
	return "payment gateway: " + e.Detail
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}

func GatewayDetail(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Detail
	}
	return ""
}
