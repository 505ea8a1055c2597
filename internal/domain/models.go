package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Product is a stocked catalog item sold at the counter and managed from the
// inventory module.
type Product struct {
	ID         int64           `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	SKU        string          `db:"sku" json:"sku"`
	Price      decimal.Decimal `db:"price" json:"price"`
	Quantity   int             `db:"quantity" json:"quantity"`
	ImagesJSON string          `db:"images_json" json:"-"`
	CreatedAt  string          `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt  string          `db:"updated_at" json:"updatedAt,omitempty"`
}

func (p Product) ItemID() int64 { return p.ID }
func (p Product) ItemName() string { return p.Name }
func (p Product) UnitPrice() decimal.Decimal { return p.Price }
func (p Product) AvailableQuantity() int { return p.Quantity }

// MenuItem is a restaurant dish. Menu items are not stock-tracked.
type MenuItem struct {
	ID       int64           `db:"id" json:"id"`
	Name     string          `db:"name" json:"name"`
	Price    decimal.Decimal `db:"price" json:"price"`
	Category string          `db:"category" json:"category"`
	Image    string          `db:"image" json:"image"`
}

func (m MenuItem) ItemID() int64 { return m.ID }
func (m MenuItem) ItemName() string { return m.Name }
func (m MenuItem) UnitPrice() decimal.Decimal { return m.Price }
func (m MenuItem) AvailableQuantity() int { return math.MaxInt32 }

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Seats  int    `db:"seats" json:"seats"`
	Status string `db:"status" json:"status"` // available | occupied | reserved
}

// SaleSummary is a persisted completed order.
type SaleSummary struct {
	ID        string          `db:"id" json:"id"`
	Channel   string          `db:"channel" json:"channel"`
	TableName string          `db:"table_name" json:"table,omitempty"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Tendered  decimal.Decimal `db:"tendered" json:"tendered"`
	ChangeDue decimal.Decimal `db:"change_due" json:"changeDue"`
	CreatedAt string          `db:"created_at" json:"createdAt"`
}

// StockEntry is a warehouse quantity held at a named location.
type StockEntry struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Location  string `db:"location" json:"location"`
	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
}

type FAQ struct {
	ID       int64  `db:"id" json:"id"`
	Question string `db:"question" json:"question"`
	Answer   string `db:"answer" json:"answer"`
}

// Widget is a dashboard tile placed in one of up to three columns.
type Widget struct {
	ID     int64  `db:"id" json:"id"`
	Type   string `db:"type" json:"type"`
	Column int    `db:"col" json:"column"`
}
