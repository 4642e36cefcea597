package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaystackInitialize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": true,
				"message": "Authorization URL created",
				"data": {
					"authorization_url": "https://checkout.paystack.com/abc123",
					"access_code": "abc123",
					"reference": "HAIRSLOT_1_deadbeef"
				}
			}`))
		}))
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_abc", srv.URL)

		result, err := client.Initialize(context.Background(), InitializeInput{
			Amount:      450,
			Email:       "0244123456@bookings.idohairstudios.com",
			Reference:   "HAIRSLOT_1_deadbeef",
			CallbackURL: "https://idohairstudios.com/payment-success?reference=HAIRSLOT_1_deadbeef",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc123", result.AuthorizationURL)
		assert.Equal(t, "abc123", result.AccessCode)
		assert.Equal(t, "HAIRSLOT_1_deadbeef", result.Reference)

		// Amount crosses the wire in the smallest unit.
		assert.Equal(t, float64(45000), gotBody["amount"])
		assert.Equal(t, "HAIRSLOT_1_deadbeef", gotBody["reference"])
	})

	t.Run("provider rejection surfaces the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_bad", srv.URL)

		_, err := client.Initialize(context.Background(), InitializeInput{Amount: 450})

		require.Error(t, err)
		assert.True(t, IsGatewayError(err))
		assert.Equal(t, "Invalid key", GatewayDetail(err))
	})

	t.Run("unreachable provider", func(t *testing.T) {
		client := NewPaystackClientWithBaseURL("sk_test_abc", "http://127.0.0.1:1")

		_, err := client.Initialize(context.Background(), InitializeInput{Amount: 450})

		require.Error(t, err)
		assert.True(t, IsGatewayError(err))
	})
}

func TestPaystackVerify(t *testing.T) {
	verifyServer := func(payload string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transaction/verify/HAIRSLOT_1_deadbeef", r.URL.Path)
			w.Write([]byte(payload))
		}))
	}

	t.Run("success converts to major units", func(t *testing.T) {
		srv := verifyServer(`{
			"status": true,
			"data": {"status": "success", "amount": 45000, "channel": "mobile_money"}
		}`)
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_abc", srv.URL)

		result, err := client.Verify(context.Background(), "HAIRSLOT_1_deadbeef")

		require.NoError(t, err)
		assert.True(t, result.Paid)
		assert.False(t, result.Pending)
		assert.Equal(t, 450.0, result.Amount)
		assert.Equal(t, "mobile_money", result.Method)
	})

	t.Run("abandoned reads as pending", func(t *testing.T) {
		srv := verifyServer(`{"status": true, "data": {"status": "abandoned"}}`)
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_abc", srv.URL)

		result, err := client.Verify(context.Background(), "HAIRSLOT_1_deadbeef")

		require.NoError(t, err)
		assert.False(t, result.Paid)
		assert.True(t, result.Pending)
	})

	t.Run("failed is a definitive no", func(t *testing.T) {
		srv := verifyServer(`{"status": true, "data": {"status": "failed"}}`)
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_abc", srv.URL)

		result, err := client.Verify(context.Background(), "HAIRSLOT_1_deadbeef")

		require.NoError(t, err)
		assert.False(t, result.Paid)
		assert.False(t, result.Pending)
	})

	t.Run("unknown reference", func(t *testing.T) {
		srv := verifyServer(`{"status": false, "message": "Transaction reference not found"}`)
		defer srv.Close()

		client := NewPaystackClientWithBaseURL("sk_test_abc", srv.URL)

		_, err := client.Verify(context.Background(), "HAIRSLOT_1_deadbeef")

		require.Error(t, err)
		assert.Equal(t, "Transaction reference not found", GatewayDetail(err))
	})
}
