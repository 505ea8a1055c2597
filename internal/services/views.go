package services

import (
	"bizhub/internal/pos"

	"github.com/shopspring/decimal"
)

type LineView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Available int             `json:"available,omitempty"`
}

type OrderView struct {
	Lines []LineView      `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Items int             `json:"items"`
}

type named interface{ ItemName() string }

func viewOf[T pos.Item](o *pos.Order[T], showStock bool) OrderView {
	v := OrderView{Lines: []LineView{}, Total: o.Total()}
	for _, l := range o.Lines() {
		lv := LineView{
			ID:        l.Item.ItemID(),
			Quantity:  l.Quantity,
			UnitPrice: l.Item.UnitPrice(),
			Subtotal:  l.Subtotal(),
		}
		if n, ok := any(l.Item).(named); ok {
			lv.Name = n.ItemName()
		}
		if showStock {
			lv.Available = l.Item.AvailableQuantity()
		}
		v.Lines = append(v.Lines, lv)
		v.Items += l.Quantity
	}
	return v
}

// Page is one page of a filtered listing plus pager data.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Matches    int   `json:"matches"`
	Window     []int `json:"pages"`
}

func pageOf[T any](items []T, page, size int) Page[T] {
	total := pos.TotalPages(len(items), size)
	page = max(1, min(page, total))
	return Page[T]{
		Items:      pos.Paginate(items, page, size),
		Page:       page,
		TotalPages: total,
		Matches:    len(items),
		Window:     pos.PageWindow(page, total, pos.MaxVisiblePages),
	}
}
