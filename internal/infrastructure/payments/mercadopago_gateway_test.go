package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_MOCK", "on")
		g, err := NewMercadoPagoGateway("")
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v (%v)", g, err)
		}
		id, status, resp, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":300000}`))
		if err != nil || id == "" || status != "approved" {
			t.Fatalf("unexpected mock result id=%q status=%q err=%v", id, status, err)
		}
		var body map[string]any
		if err := json.Unmarshal(resp, &body); err != nil || body["transaction_amount"] != float64(300000) {
			t.Fatalf("mock response must echo the request, got %s", resp)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{}}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{`)); err == nil {
			t.Fatalf("expected unmarshal error")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{err: errors.New(`{"status":400}`)}}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); err == nil || err.Error() != `{"status":400}` {
			t.Fatalf("expected sdk error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		fake := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
		g := &MercadoPagoGateway{client: fake}

		id, status, resp, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":400000,"payment_method_id":"pix","external_reference":"e1:middle"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "42" || status != "approved" || !json.Valid(resp) {
			t.Fatalf("unexpected result id=%q status=%q resp=%s", id, status, resp)
		}
		if fake.got.TransactionAmount != 400000 || fake.got.ExternalReference != "e1:middle" {
			t.Fatalf("request not forwarded: %+v", fake.got)
		}
	})
}
