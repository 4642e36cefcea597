package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoClient implements the gateway over the Mercado Pago SDK:
// Initialize creates a checkout preference keyed by our reference, and
// Verify searches payments by external_reference.
type MercadoPagoClient struct {
	preferences preference.Client
	payments    mppayment.Client
}

func NewMercadoPagoClient(accessToken string) (*MercadoPagoClient, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, &GatewayError{Detail: "invalid credentials", Err: err}
	}

	return &MercadoPagoClient{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
	}, nil
}

func (c *MercadoPagoClient) Initialize(ctx context.Context, in InitializeInput) (*InitializeResult, error) {
	title := "Hair appointment"
	if s, ok := in.Metadata["service"].(string); ok && s != "" {
		title = s
	}

	req := preference.Request{
		ExternalReference: in.Reference,
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: in.Amount,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: in.CallbackURL,
			Pending: in.CallbackURL,
			Failure: in.CallbackURL,
		},
		Metadata: in.Metadata,
	}

	resource, err := c.preferences.Create(ctx, req)
	if err != nil {
		return nil, &GatewayError{Detail: "preference creation failed", Err: err}
	}

	return &InitializeResult{
		AuthorizationURL: resource.InitPoint,
		AccessCode:       resource.ID,
		Reference:        in.Reference,
	}, nil
}

func (c *MercadoPagoClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	result, err := c.payments.Search(ctx, mppayment.SearchRequest{
		Filters: map[string]string{
			"external_reference": reference,
		},
	})
	if err != nil {
		return nil, &GatewayError{Detail: "payment search failed", Err: err}
	}

	pending := false
	for _, p := range result.Results {
		switch p.Status {
		case "approved":
			return &VerifyResult{
				Paid:   true,
				Amount: p.TransactionAmount,
				Method: p.PaymentMethodID,
			}, nil
		case "rejected", "cancelled", "refunded", "charged_back":
			// keep scanning; a later attempt may have succeeded
		default:
			pending = true
		}
	}

	if pending || len(result.Results) == 0 {
		return &VerifyResult{Pending: true}, nil
	}

	return &VerifyResult{}, nil
}

var _ Gateway = (*MercadoPagoClient)(nil)
