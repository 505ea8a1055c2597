package handlers_test

import (
	"testing"

	"bizhub/internal/domain"
	"bizhub/internal/pos"
	"bizhub/internal/services"
)

func TestRestaurant_MenuAndCheckout(t *testing.T) {
	app, _ := newApp(t)

	var mv services.MenuView
	call(t, app, "GET", "/api/v1/restaurant/menu?category=Drinks", nil, &mv)
	if len(mv.Items) != 1 || mv.Items[0].Name != "Lemonade" {
		t.Fatalf("want only Lemonade, got %+v", mv.Items)
	}

	var v services.OrderView
	call(t, app, "POST", "/api/v1/restaurant/order/items", map[string]any{"productId": mv.Items[0].ID}, &v)
	call(t, app, "PUT", "/api/v1/restaurant/order/items/"+itoa(mv.Items[0].ID), map[string]any{"quantity": 4}, &v)
	if v.Items != 4 {
		t.Fatalf("want 4 lemonades, got %+v", v)
	}

	if code := call(t, app, "POST", "/api/v1/restaurant/checkout", map[string]any{"tendered": "20"}, nil); code != 400 {
		t.Fatalf("checkout without table: want 400, got %d", code)
	}

	var rc pos.Receipt
	if code := call(t, app, "POST", "/api/v1/restaurant/checkout", map[string]any{"tendered": "20", "table": "Table 2"}, &rc); code != 201 {
		t.Fatalf("want 201, got %d", code)
	}
	if rc.ChangeDue.String() != "6" {
		t.Fatalf("want change 6, got %s", rc.ChangeDue)
	}
}

func TestRestaurant_TableStatus(t *testing.T) {
	app, _ := newApp(t)

	if code := call(t, app, "PUT", "/api/v1/restaurant/tables/1", map[string]any{"status": "occupied"}, nil); code != 204 {
		t.Fatalf("want 204, got %d", code)
	}
	if code := call(t, app, "PUT", "/api/v1/restaurant/tables/1", map[string]any{"status": "closed"}, nil); code != 400 {
		t.Fatalf("want 400, got %d", code)
	}
	if code := call(t, app, "PUT", "/api/v1/restaurant/tables/77", map[string]any{"status": "reserved"}, nil); code != 404 {
		t.Fatalf("want 404, got %d", code)
	}

	var tables []domain.Table
	call(t, app, "GET", "/api/v1/restaurant/tables", nil, &tables)
	if len(tables) != 4 || tables[0].Status != domain.TableOccupied {
		t.Fatalf("unexpected tables %+v", tables)
	}
}

func TestRestaurant_CheckoutTableNotFreed(t *testing.T) {
	app, db := newApp(t)
	var mv services.MenuView
	call(t, app, "GET", "/api/v1/restaurant/menu?category=Drinks", nil, &mv)
	call(t, app, "POST", "/api/v1/restaurant/order/items", map[string]any{"productId": mv.Items[0].ID}, nil)
	if _, err := db.Exec(`CREATE TRIGGER lock_tables BEFORE UPDATE ON restaurant_tables
		BEGIN SELECT RAISE(ABORT, 'locked'); END`); err != nil {
		t.Fatal(err)
	}

	var rc pos.Receipt
	entries := captureLogs(t, func() {
		if code := call(t, app, "POST", "/api/v1/restaurant/checkout", map[string]any{"tendered": "5", "table": "Table 1"}, &rc); code != 201 {
			t.Fatalf("sale went through: want 201, got %d", code)
		}
	})
	if rc.OrderID == "" {
		t.Fatalf("receipt expected, got %+v", rc)
	}
	e, ok := findLog(entries, "restaurant.table.free.fail")
	if !ok || e.Level != "error" || e.Err == "" {
		t.Fatalf("expected restaurant.table.free.fail error log, got %+v", entries)
	}
	if _, ok := findLog(entries, "restaurant.checkout"); !ok {
		t.Fatal("the sale should still be audited")
	}
}

func TestRestaurant_EndSession(t *testing.T) {
	app, _ := newApp(t)
	var mv services.MenuView
	call(t, app, "GET", "/api/v1/restaurant/menu", nil, &mv)
	call(t, app, "POST", "/api/v1/restaurant/order/items", map[string]any{"productId": mv.Items[0].ID}, nil)

	if code := call(t, app, "DELETE", "/api/v1/restaurant/session", nil, nil); code != 204 {
		t.Fatalf("want 204, got %d", code)
	}
	var v services.OrderView
	call(t, app, "GET", "/api/v1/restaurant/order", nil, &v)
	if v.Items != 0 {
		t.Fatalf("ended session should start empty, got %+v", v)
	}
}
