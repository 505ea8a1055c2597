package pos

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// SubmittedLine is a sold line as handed to the order sink.
type SubmittedLine struct {
	ItemID    int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Submission is a validated sale ready to be persisted.
type Submission struct {
	Channel   string // retail | restaurant
	Table     string
	Stocked   bool // sink must decrement stored quantities
	Lines     []SubmittedLine
	Total     decimal.Decimal
	Tendered  decimal.Decimal
	ChangeDue decimal.Decimal
}

// OrderSink persists a completed sale and returns its id.
type OrderSink interface {
	SubmitOrder(ctx context.Context, s Submission) (string, error)
}

// StockLedger is the in-session catalog that is decremented after a sale.
type StockLedger interface {
	Decrement(id int64, by int)
}

type CheckoutOptions struct {
	Channel string
	Table   string
	// Ledger is nil for sales that do not track stock.
	Ledger StockLedger
}

// Receipt is the result of a successful checkout.
type Receipt struct {
	OrderID   string          `json:"orderId"`
	Total     decimal.Decimal `json:"total"`
	Tendered  decimal.Decimal `json:"tendered"`
	ChangeDue decimal.Decimal `json:"changeDue"`
	Items     int             `json:"items"`
}

// ParseTender parses a cash amount entered by the cashier.
func ParseTender(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &ValidationError{Field: "tendered", Reason: "amount is required"}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "tendered", Reason: "not a number"}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "tendered", Reason: "must not be negative"}
	}
	return d, nil
}

// Checkout validates tendered against the order total, submits the sale and,
// on success, clears the order and decrements the ledger. On any error the
// order is left untouched.
func Checkout[T Item](ctx context.Context, order *Order[T], tendered decimal.Decimal, sink OrderSink, opts CheckoutOptions) (Receipt, error) {
	if tendered.IsNegative() {
		return Receipt{}, &ValidationError{Field: "tendered", Reason: "must not be negative"}
	}
	if order.Len() == 0 {
		return Receipt{}, &ValidationError{Field: "order", Reason: "no items"}
	}
	total := order.Total()
	if tendered.LessThan(total) {
		return Receipt{}, &InsufficientTenderError{Total: total, Tendered: tendered}
	}

	lines := order.Lines()
	sub := Submission{
		Channel:   opts.Channel,
		Table:     opts.Table,
		Stocked:   opts.Ledger != nil,
		Lines:     make([]SubmittedLine, 0, len(lines)),
		Total:     total,
		Tendered:  tendered,
		ChangeDue: tendered.Sub(total),
	}
	for _, l := range lines {
		sl := SubmittedLine{ItemID: l.Item.ItemID(), Quantity: l.Quantity, UnitPrice: l.Item.UnitPrice()}
		if n, ok := any(l.Item).(interface{ ItemName() string }); ok {
			sl.Name = n.ItemName()
		}
		sub.Lines = append(sub.Lines, sl)
	}

	id, err := sink.SubmitOrder(ctx, sub)
	if err != nil {
		return Receipt{}, &RemoteError{Op: "submit order", Err: err}
	}

	if opts.Ledger != nil {
		for _, l := range lines {
			opts.Ledger.Decrement(l.Item.ItemID(), l.Quantity)
		}
	}
	order.Clear()

	return Receipt{
		OrderID:   id,
		Total:     total,
		Tendered:  tendered,
		ChangeDue: sub.ChangeDue,
		Items:     len(lines),
	}, nil
}
