package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bizhub/internal/pos"
)

type widget struct {
	id    int64
	name  string
	price decimal.Decimal
	avail int
}

func (w widget) ItemID() int64 { return w.id }
func (w widget) ItemName() string { return w.name }
func (w widget) UnitPrice() decimal.Decimal { return w.price }
func (w widget) AvailableQuantity() int { return w.avail }

func item(id int64, price string, avail int) widget {
	return widget{id: id, name: "Item", price: decimal.RequireFromString(price), avail: avail}
}

func TestClamp(t *testing.T) {
	cases := []struct{ req, avail, want int }{
		{3, 5, 3},
		{7, 5, 5},
		{-2, 5, 0},
		{0, 5, 0},
		{4, 0, 0},
		{4, -1, 0},
	}
	for _, c := range cases {
		if got := pos.Clamp(c.req, c.avail); got != c.want {
			t.Fatalf("Clamp(%d,%d) = %d, want %d", c.req, c.avail, got, c.want)
		}
	}
}

func TestAddItem_OutOfStockNeverCreatesLine(t *testing.T) {
	o := pos.NewOrder[widget]()
	if q := o.AddItem(item(1, "10.00", 0)); q != 0 {
		t.Fatalf("want 0, got %d", q)
	}
	if o.Len() != 0 {
		t.Fatalf("out of stock item created a line: %+v", o.Lines())
	}
}

func TestAddItem_IncrementsAndClamps(t *testing.T) {
	w := widget{id: 1, name: "Widget", price: decimal.RequireFromString("10.00"), avail: 2}
	o := pos.NewOrder[widget]()
	o.AddItem(w)
	o.AddItem(w)
	if l, _ := o.Line(1); l.Quantity != 2 {
		t.Fatalf("want qty 2, got %d", l.Quantity)
	}
	o.AddItem(w)
	if l, _ := o.Line(1); l.Quantity != 2 {
		t.Fatalf("third add should stay clamped at 2, got %d", l.Quantity)
	}
	if o.Len() != 1 {
		t.Fatalf("repeated add duplicated the line: %d lines", o.Len())
	}
	if !o.Total().Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("want total 20.00, got %s", o.Total())
	}
}

func TestUpdateQuantity(t *testing.T) {
	o := pos.NewOrder[widget]()
	o.AddItem(item(1, "2.50", 4))
	o.AddItem(item(2, "1.00", 10))

	if q := o.UpdateQuantity(1, 9); q != 4 {
		t.Fatalf("want clamp to 4, got %d", q)
	}
	if q := o.UpdateQuantity(2, 3); q != 3 {
		t.Fatalf("want 3, got %d", q)
	}
	if q := o.UpdateQuantity(99, 3); q != 0 || o.Len() != 2 {
		t.Fatalf("unknown id should be a no-op")
	}
	o.UpdateQuantity(1, -5)
	if _, ok := o.Line(1); ok {
		t.Fatal("quantity clamped to zero should remove the line")
	}
	if !o.Total().Equal(decimal.RequireFromString("3")) {
		t.Fatalf("want total 3, got %s", o.Total())
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	o := pos.NewOrder[widget]()
	o.AddItem(item(1, "1", 1))
	o.AddItem(item(2, "1", 1))
	o.AddItem(item(3, "1", 1))
	o.RemoveItem(2)
	o.RemoveItem(42)
	lines := o.Lines()
	if len(lines) != 2 || lines[0].Item.id != 1 || lines[1].Item.id != 3 {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}
	o.Clear()
	if o.Len() != 0 || !o.Total().IsZero() {
		t.Fatalf("clear left state behind")
	}
}

func TestQuantitiesStayInRange(t *testing.T) {
	stock := []widget{item(1, "1.10", 3), item(2, "0.35", 1), item(3, "9.99", 0)}
	o := pos.NewOrder[widget]()
	ops := []int{5, -3, 2, 100, 0, 1, 7, -1}
	for step, n := range ops {
		for _, w := range stock {
			o.AddItem(w)
			o.UpdateQuantity(w.id, n+step)
		}
		for _, l := range o.Lines() {
			if l.Quantity < 1 || l.Quantity > l.Item.avail {
				t.Fatalf("step %d: line %d quantity %d outside [1,%d]", step, l.Item.id, l.Quantity, l.Item.avail)
			}
		}
	}
}

func TestTotalIsExactSum(t *testing.T) {
	o := pos.NewOrder[widget]()
	o.AddItem(item(1, "0.10", 10))
	o.AddItem(item(2, "0.20", 10))
	o.UpdateQuantity(1, 3)
	// 3*0.10 + 0.20 = 0.50 exactly
	if !o.Total().Equal(decimal.RequireFromString("0.50")) {
		t.Fatalf("want 0.50, got %s", o.Total())
	}
	if !pos.NewOrder[widget]().Total().IsZero() {
		t.Fatal("empty order total should be zero")
	}
}

func TestSyncReclampsAfterRefresh(t *testing.T) {
	o := pos.NewOrder[widget]()
	w := item(1, "4.00", 5)
	for i := 0; i < 4; i++ {
		o.AddItem(w)
	}
	w.avail = 2
	w.price = decimal.RequireFromString("5.00")
	if q := o.Sync(w); q != 2 {
		t.Fatalf("want 2 after sync, got %d", q)
	}
	if !o.Total().Equal(decimal.RequireFromString("10")) {
		t.Fatalf("sync should reprice, total %s", o.Total())
	}
	w.avail = 0
	o.Sync(w)
	if o.Len() != 0 {
		t.Fatal("sold-out item should drop out of the order")
	}
}
