package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizhub/internal/domain"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
)

// RestaurantService is the table-service point of sale. Menu items carry no
// stock, so quantities are only bounded below.
type RestaurantService struct {
	Menu  *repos.MenuRepo
	Sales pos.OrderSink

	sessions counters[domain.MenuItem]
}

func NewRestaurantService(menu *repos.MenuRepo, sales pos.OrderSink) *RestaurantService {
	return &RestaurantService{Menu: menu, Sales: sales}
}

type MenuView struct {
	Items      []domain.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
	Selected   string            `json:"selected,omitempty"`
}

// MenuItems lists the menu, narrowed to one category when given.
func (r *RestaurantService) MenuItems(category string) (MenuView, error) {
	items, err := r.Menu.Items()
	if err != nil {
		return MenuView{}, err
	}
	cats, err := r.Menu.Categories()
	if err != nil {
		return MenuView{}, err
	}
	if category != "" {
		kept := items[:0]
		for _, it := range items {
			if it.Category == category {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	return MenuView{Items: items, Categories: cats, Selected: category}, nil
}

func (r *RestaurantService) Tables() ([]domain.Table, error) { return r.Menu.Tables() }

func (r *RestaurantService) SetTableStatus(id int64, status string) error {
	switch status {
	case domain.TableAvailable, domain.TableOccupied, domain.TableReserved:
	default:
		return invalid("status must be available, occupied or reserved")
	}
	if err := r.Menu.SetTableStatus(id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *RestaurantService) Add(sid string, itemID int64) (OrderView, error) {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		items, err := r.Menu.Items()
		if err != nil {
			return OrderView{}, &pos.RemoteError{Op: "list menu items", Err: err}
		}
		s.catalog, s.loaded = items, true
	}
	it, ok := s.find(itemID)
	if !ok {
		return OrderView{}, fmt.Errorf("menu item %d: %w", itemID, ErrUnknownProduct)
	}
	s.order.AddItem(it)
	return viewOf(s.order, false), nil
}

func (r *RestaurantService) Remove(sid string, itemID int64) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.RemoveItem(itemID)
	return viewOf(s.order, false)
}

func (r *RestaurantService) Update(sid string, itemID int64, quantity int) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.UpdateQuantity(itemID, quantity)
	return viewOf(s.order, false)
}

func (r *RestaurantService) Order(sid string) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s.order, false)
}

// Checkout completes the order for a table and frees the table.
func (r *RestaurantService) Checkout(ctx context.Context, sid, tendered, table string) (pos.Receipt, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return pos.Receipt{}, &pos.ValidationError{Field: "table", Reason: "table number is required"}
	}
	amount, err := pos.ParseTender(tendered)
	if err != nil {
		return pos.Receipt{}, err
	}
	t, err := r.Menu.TableByName(table)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pos.Receipt{}, &pos.ValidationError{Field: "table", Reason: "unknown table"}
		}
		return pos.Receipt{}, &pos.RemoteError{Op: "find table", Err: err}
	}

	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	rc, err := pos.Checkout(ctx, s.order, amount, r.Sales, pos.CheckoutOptions{Channel: "restaurant", Table: t.Name})
	if err != nil {
		return pos.Receipt{}, err
	}
	// the sale is stored either way; the receipt stands
	if err := r.Menu.SetTableStatus(t.ID, domain.TableAvailable); err != nil {
		return rc, fmt.Errorf("%s: %w: %w", t.Name, ErrTableNotFreed, err)
	}
	return rc, nil
}

// End discards the session's order.
func (r *RestaurantService) End(sid string) { r.sessions.drop(sid) }

// ExpireIdle ends every session not used since cutoff.
func (r *RestaurantService) ExpireIdle(cutoff time.Time) int { return r.sessions.expire(cutoff) }

func (r *RestaurantService) Sessions() int { return r.sessions.len() }
