package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"bizhub/internal/domain"
	"bizhub/internal/http/handlers"
	applog "bizhub/internal/log"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
	"bizhub/internal/services"
)

func TestPOS_ProductsPaged(t *testing.T) {
	app, _ := newApp(t)

	var page services.Page[domain.Product]
	if code := call(t, app, "GET", "/api/v1/pos/products?page=2", nil, &page); code != 200 {
		t.Fatalf("want 200, got %d", code)
	}
	if len(page.Items) != 2 || page.TotalPages != 2 || page.Page != 2 {
		t.Fatalf("want 2 items on page 2 of 2, got %+v", page)
	}

	call(t, app, "GET", "/api/v1/pos/products?q=pg", nil, &page)
	if page.Matches != 1 || page.Items[0].Name != "Product G" {
		t.Fatalf("fuzzy search pg should find Product G, got %+v", page.Items)
	}
}

func TestPOS_OrderAndCheckout(t *testing.T) {
	app, db := newApp(t)

	var v services.OrderView
	for i := 0; i < 3; i++ {
		if code := call(t, app, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 7}, &v); code != 200 {
			t.Fatalf("add: want 200, got %d", code)
		}
	}
	if v.Items != 3 || !v.Total.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("want 3 items totalling 120, got %+v", v)
	}

	call(t, app, "PUT", "/api/v1/pos/order/items/7", map[string]any{"quantity": 50}, &v)
	if v.Lines[0].Quantity != 5 {
		t.Fatalf("quantity should clamp to stock 5, got %d", v.Lines[0].Quantity)
	}

	var short map[string]any
	if code := call(t, app, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "150.00"}, &short); code != fiber.StatusPaymentRequired {
		t.Fatalf("want 402, got %d (%v)", code, short)
	}
	call(t, app, "GET", "/api/v1/pos/order", nil, &v)
	if v.Items != 5 {
		t.Fatalf("order must survive short tender, got %+v", v)
	}

	var rc pos.Receipt
	if code := call(t, app, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": 250}, &rc); code != fiber.StatusCreated {
		t.Fatalf("want 201, got %d", code)
	}
	if !rc.ChangeDue.Equal(decimal.NewFromInt(50)) || rc.OrderID == "" {
		t.Fatalf("unexpected receipt %+v", rc)
	}

	p, err := repos.NewProductRepo(db).Get(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 0 {
		t.Fatalf("stock should be sold out, got %d", p.Quantity)
	}

	// sold-out product can no longer be added from the session snapshot
	call(t, app, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 7}, &v)
	if v.Items != 0 {
		t.Fatalf("sold-out product must not create a line, got %+v", v)
	}
}

func TestPOS_BadInput(t *testing.T) {
	app, _ := newApp(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing product id", "POST", "/api/v1/pos/order/items", map[string]any{}, 400},
		{"unknown product", "POST", "/api/v1/pos/order/items", map[string]any{"productId": 999}, 404},
		{"bad item id", "PUT", "/api/v1/pos/order/items/abc", map[string]any{"quantity": 1}, 400},
		{"missing quantity", "PUT", "/api/v1/pos/order/items/1", map[string]any{}, 400},
		{"negative tender", "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "-5"}, 400},
		{"empty order", "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "5"}, 400},
		{"text tender", "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "five"}, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code := call(t, app, tc.method, tc.path, tc.body, nil); code != tc.want {
				t.Fatalf("want %d, got %d", tc.want, code)
			}
		})
	}
}

type downSink struct{}

func (downSink) SubmitOrder(context.Context, pos.Submission) (string, error) {
	return "", errors.New("dial tcp: connection refused")
}

func TestPOS_RemoteFailureIs502(t *testing.T) {
	_, db := newApp(t)
	h := &handlers.RegisterHandler{
		Register: services.NewRegisterService(repos.NewProductRepo(db), downSink{}, 5),
	}
	app := fiber.New()
	app.Post("/api/v1/pos/order/items", h.AddItem)
	app.Post("/api/v1/pos/checkout", h.Checkout)

	call(t, app, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 1}, nil)

	var body map[string]string
	entries := captureLogs(t, func() {
		if code := call(t, app, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "10"}, &body); code != http.StatusBadGateway {
			t.Fatalf("want 502, got %d", code)
		}
	})
	e, ok := findLog(entries, "pos.checkout.remote")
	if !ok || e.Level != "error" {
		t.Fatalf("expected pos.checkout.remote error log, got %+v", entries)
	}
	if e.Status != http.StatusBadGateway {
		t.Fatalf("log entry should carry the reply status, got %d", e.Status)
	}
	if body["error"] == "" || body["error"] == e.Err {
		t.Fatalf("client must get a friendly message, got %q", body["error"])
	}
}

func TestPOS_CheckoutAuditLog(t *testing.T) {
	app, _ := newApp(t)
	call(t, app, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 1}, nil)

	entries := captureLogs(t, func() {
		call(t, app, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "10.00"}, nil)
	})
	e, ok := findLog(entries, "pos.checkout")
	if !ok {
		t.Fatal("expected pos.checkout audit entry")
	}
	if e.Status != fiber.StatusCreated {
		t.Fatalf("audit entry should carry 201, got %d", e.Status)
	}
	if e.Fields["order_id"] == "" || e.Fields["change_due"] != "0" {
		t.Fatalf("unexpected audit fields %+v", e.Fields)
	}
}

func TestPOS_StockTakenByOtherSession(t *testing.T) {
	app, db := newApp(t)
	const otherSID = "0b6c6f3e-2f0e-4f61-8d0c-6a1d7f0b2c44"

	// both cashiers load the catalog while Product G still has 5 in stock
	for _, sid := range []string{testSID, otherSID} {
		var v services.OrderView
		callAs(t, app, sid, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 7}, nil)
		callAs(t, app, sid, "PUT", "/api/v1/pos/order/items/7", map[string]any{"quantity": 5}, &v)
		if v.Items != 5 {
			t.Fatalf("session %s: want 5 items, got %+v", sid, v)
		}
	}

	if code := callAs(t, app, testSID, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "200"}, nil); code != fiber.StatusCreated {
		t.Fatalf("first checkout: want 201, got %d", code)
	}

	var body map[string]string
	entries := captureLogs(t, func() {
		if code := callAs(t, app, otherSID, "POST", "/api/v1/pos/checkout", map[string]any{"tendered": "200"}, &body); code != fiber.StatusConflict {
			t.Fatalf("second checkout: want 409, got %d (%v)", code, body)
		}
	})
	if body["error"] == "" {
		t.Fatal("conflict should explain itself")
	}
	e, ok := findLog(entries, "pos.checkout.stock")
	if !ok || e.Level != "warn" || e.Status != fiber.StatusConflict {
		t.Fatalf("expected pos.checkout.stock warn with 409, got %+v", entries)
	}

	var v services.OrderView
	callAs(t, app, otherSID, "GET", "/api/v1/pos/order", nil, &v)
	if v.Items != 0 {
		t.Fatalf("sold-out line should be gone from the losing order, got %+v", v)
	}
	var page services.Page[domain.Product]
	callAs(t, app, otherSID, "GET", "/api/v1/pos/products?q=pg", nil, &page)
	if len(page.Items) == 0 || page.Items[0].Quantity != 0 {
		t.Fatalf("catalog should show Product G sold out, got %+v", page.Items)
	}

	p, err := repos.NewProductRepo(db).Get(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 0 {
		t.Fatalf("stock must only be taken once, got %d", p.Quantity)
	}
}

func TestPOS_EndSession(t *testing.T) {
	app, _ := newApp(t)
	call(t, app, "POST", "/api/v1/pos/order/items", map[string]any{"productId": 1}, nil)

	if code := call(t, app, "DELETE", "/api/v1/pos/session", nil, nil); code != fiber.StatusNoContent {
		t.Fatalf("want 204, got %d", code)
	}
	var v services.OrderView
	call(t, app, "GET", "/api/v1/pos/order", nil, &v)
	if v.Items != 0 {
		t.Fatalf("ended session should start empty, got %+v", v)
	}
}

func TestPOS_ProductsDebugLog(t *testing.T) {
	app, _ := newApp(t)
	applog.SetLevel("debug")
	t.Cleanup(func() { applog.SetLevel("info") })

	entries := captureLogs(t, func() {
		call(t, app, "GET", "/api/v1/pos/products?q=pg", nil, nil)
	})
	e, ok := findLog(entries, "pos.products")
	if !ok || e.Level != "debug" {
		t.Fatalf("expected pos.products debug entry, got %+v", entries)
	}
	if e.Fields["q"] != "pg" {
		t.Fatalf("unexpected debug fields %+v", e.Fields)
	}
}

func TestPOS_PageRenders(t *testing.T) {
	app, _ := newApp(t)
	req := httptest.NewRequest("GET", "/pos?q=product&page=2", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var issued bool
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" && ck.Value != "" {
			issued = true
		}
	}
	if !issued {
		t.Fatal("first visit should issue a sid cookie")
	}
}
