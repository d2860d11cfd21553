package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ucraft_estimates/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg := &config.Config{
		StorageDriver:  config.StorageFile,
		DataDir:        t.TempDir(),
		CurrencySymbol: "₩",
	}
	h, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected wiring error: %v", err)
	}
	r := gin.New()
	registerRoutes(r.Group("/v1"), h)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(w.Body.String(), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, out
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	code, body := do(t, r, http.MethodGet, "/v1/ping", "")
	if code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("expected pong, got %d %v", code, body)
	}
}

func TestEstimateLifecycleWithInstallments(t *testing.T) {
	r := newTestRouter(t)

	code, created := do(t, r, http.MethodPost, "/v1/estimates",
		`{"title":"욕실 리모델링","customer_name":"Kim","items":[{"name":"Tile","unit":"m2","quantity":"10","material_cost":"30,000","labor_cost":10000}]}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", code, created)
	}
	id, _ := created["estimate_id"].(string)
	if id == "" || created["status"] != "Draft" {
		t.Fatalf("unexpected created estimate: %v", created)
	}

	if code, _ := do(t, r, http.MethodPost, "/v1/payments/"+id+"?installment=contract", "{}"); code != http.StatusConflict {
		t.Fatalf("expected draft payment to be rejected with 409, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPatch, "/v1/estimates/"+id+"/complete", ""); code != http.StatusConflict {
		t.Fatalf("expected Draft -> Completed to be rejected, got %d", code)
	}

	code, sent := do(t, r, http.MethodPatch, "/v1/estimates/"+id+"/send", "")
	if code != http.StatusOK || sent["status"] != "Sent" {
		t.Fatalf("expected Sent, got %d %v", code, sent)
	}

	for _, installment := range []string{"contract", "middle", "balance"} {
		code, paid := do(t, r, http.MethodPost, "/v1/payments/"+id, `{"installment":"`+installment+`"}`)
		if code != http.StatusOK || paid["installment"] != installment {
			t.Fatalf("paying %s: got %d %v", installment, code, paid)
		}
		// answered by the gateway running in mock mode
		if provider, _ := paid["provider_payload"].(map[string]any); provider["status_detail"] != "accredited" {
			t.Fatalf("expected the gateway mock response, got %v", paid)
		}
	}
	if code, _ := do(t, r, http.MethodPost, "/v1/payments/"+id, `{"installment":"balance"}`); code != http.StatusConflict {
		t.Fatalf("expected duplicate installment to be rejected, got %d", code)
	}

	code, schedule := do(t, r, http.MethodGet, "/v1/payments/"+id, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if outstanding, _ := schedule["outstanding"].([]any); len(outstanding) != 0 {
		t.Fatalf("expected nothing outstanding, got %v", schedule)
	}

	code, final := do(t, r, http.MethodGet, "/v1/estimates/"+id, "")
	if code != http.StatusOK || final["status"] != "Completed" {
		t.Fatalf("expected Completed after the balance, got %d %v", code, final)
	}
}

func TestDocumentRoutes(t *testing.T) {
	r := newTestRouter(t)

	code, formats := do(t, r, http.MethodGet, "/v1/documents/formats", "")
	if code != http.StatusOK || len(formats["formats"].([]any)) != 2 {
		t.Fatalf("unexpected formats %d %v", code, formats)
	}

	_, created := do(t, r, http.MethodPost, "/v1/estimates", `{"title":"주방","customer_name":"Park","items":[{"name":"Sink","quantity":1,"material_cost":200000}]}`)
	id := created["estimate_id"].(string)

	code, doc := do(t, r, http.MethodGet, "/v1/estimates/"+id+"/document?layout=C", "")
	if code != http.StatusOK || doc["layout"] != "boxed" {
		t.Fatalf("unexpected document %d %v", code, doc)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/"+id+"/export?format=xlsx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "PK") {
		t.Fatalf("expected an xlsx archive, got %d", w.Code)
	}
}

func TestCatalogAndSupplierRoutes(t *testing.T) {
	r := newTestRouter(t)

	if code, _ := do(t, r, http.MethodGet, "/v1/catalog/categories", ""); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/v1/templates", ""); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	code, _ := do(t, r, http.MethodPut, "/v1/supplier", `{"name":"유크래프트","rep":"Lee"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	code, draft := do(t, r, http.MethodGet, "/v1/drafts/new", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	supplier, _ := draft["supplier"].(map[string]any)
	if supplier["name"] != "유크래프트" {
		t.Fatalf("expected the saved supplier to prefill the draft, got %v", draft)
	}
}
