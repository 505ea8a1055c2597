package pos

import "github.com/shopspring/decimal"

// Item is anything that can be sold through an Order.
type Item interface {
	ItemID() int64
	UnitPrice() decimal.Decimal
	AvailableQuantity() int
}

// Line is one order line: the item as it was when added plus the chosen quantity.
type Line[T Item] struct {
	Item     T   `json:"item"`
	Quantity int `json:"quantity"`
}

// Subtotal returns quantity × unit price.
func (l Line[T]) Subtotal() decimal.Decimal {
	return l.Item.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an in-memory, insertion-ordered set of lines keyed by item id.
// It is not safe for concurrent use; one session edits it at a time.
type Order[T Item] struct {
	lines []Line[T]
}

func NewOrder[T Item]() *Order[T] { return &Order[T]{} }

func (o *Order[T]) index(id int64) int {
	for i := range o.lines {
		if o.lines[i].Item.ItemID() == id {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of item. An existing line is incremented and clamped
// to the item's availability; a new line is only created when stock exists.
// It returns the resulting line quantity (0 when nothing was added).
func (o *Order[T]) AddItem(item T) int {
	if i := o.index(item.ItemID()); i >= 0 {
		o.lines[i].Item = item
		o.lines[i].Quantity = Clamp(o.lines[i].Quantity+1, item.AvailableQuantity())
		if o.lines[i].Quantity == 0 {
			o.removeAt(i)
			return 0
		}
		return o.lines[i].Quantity
	}
	if item.AvailableQuantity() <= 0 {
		return 0
	}
	o.lines = append(o.lines, Line[T]{Item: item, Quantity: 1})
	return 1
}

// RemoveItem deletes the line for id; absent ids are ignored.
func (o *Order[T]) RemoveItem(id int64) {
	if i := o.index(id); i >= 0 {
		o.removeAt(i)
	}
}

func (o *Order[T]) removeAt(i int) {
	o.lines = append(o.lines[:i], o.lines[i+1:]...)
}

// UpdateQuantity sets the line quantity, clamped to the item's availability.
// A quantity that clamps to zero removes the line. Unknown ids are ignored.
func (o *Order[T]) UpdateQuantity(id int64, quantity int) int {
	i := o.index(id)
	if i < 0 {
		return 0
	}
	q := Clamp(quantity, o.lines[i].Item.AvailableQuantity())
	if q == 0 {
		o.removeAt(i)
		return 0
	}
	o.lines[i].Quantity = q
	return q
}

// Sync replaces the stored item of an existing line with a fresh copy (after
// a catalog refresh) and re-clamps the quantity to the new availability.
func (o *Order[T]) Sync(item T) int {
	i := o.index(item.ItemID())
	if i < 0 {
		return 0
	}
	o.lines[i].Item = item
	q := Clamp(o.lines[i].Quantity, item.AvailableQuantity())
	if q == 0 {
		o.removeAt(i)
		return 0
	}
	o.lines[i].Quantity = q
	return q
}

// Total is the sum of quantity × unit price over all lines.
func (o *Order[T]) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Line returns the line for id, if present.
func (o *Order[T]) Line(id int64) (Line[T], bool) {
	if i := o.index(id); i >= 0 {
		return o.lines[i], true
	}
	return Line[T]{}, false
}

// Lines returns a copy of the lines in insertion order.
func (o *Order[T]) Lines() []Line[T] {
	out := make([]Line[T], len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order[T]) Len() int { return len(o.lines) }

func (o *Order[T]) Clear() { o.lines = nil }
