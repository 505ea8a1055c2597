package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizhub/internal/domain"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
)

// RegisterService runs the retail point of sale: a per-session catalog
// snapshot fetched once, a per-session order, and checkout against the
// sale repository.
type RegisterService struct {
	Prods    *repos.ProductRepo
	Sales    pos.OrderSink
	PageSize int

	sessions counters[domain.Product]
}

func NewRegisterService(prods *repos.ProductRepo, sales pos.OrderSink, pageSize int) *RegisterService {
	if pageSize <= 0 {
		pageSize = pos.DefaultPageSize
	}
	return &RegisterService{Prods: prods, Sales: sales, PageSize: pageSize}
}

// snapshot is the session's catalog; it doubles as the checkout stock ledger.
type snapshot struct{ s *counter[domain.Product] }

func (l snapshot) Decrement(id int64, by int) {
	for i := range l.s.catalog {
		if l.s.catalog[i].ID == id {
			l.s.catalog[i].Quantity = max(0, l.s.catalog[i].Quantity-by)
		}
	}
}

// load fetches the catalog on first use. Caller holds s.mu.
func (r *RegisterService) load(ctx context.Context, s *counter[domain.Product]) error {
	if s.loaded {
		return nil
	}
	items, err := r.Prods.List(ctx)
	if err != nil {
		return &pos.RemoteError{Op: "list products", Err: err}
	}
	s.catalog = items
	s.loaded = true
	return nil
}

// Catalog returns a page of the session catalog fuzzily matching term.
func (r *RegisterService) Catalog(ctx context.Context, sid, term string, page int) (Page[domain.Product], error) {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := r.load(ctx, s); err != nil {
		return Page[domain.Product]{}, err
	}
	matches := pos.FilterFuzzy(s.catalog, term, func(p domain.Product) string { return p.Name })
	out := pageOf(matches, page, r.PageSize)
	// copy so callers never see later ledger updates
	out.Items = append([]domain.Product(nil), out.Items...)
	return out, nil
}

// Refresh reloads the session catalog and re-syncs the open order against it.
func (r *RegisterService) Refresh(ctx context.Context, sid string) (int, error) {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.reload(ctx, s)
}

// reload replaces the snapshot and re-clamps every line; lines for products
// that no longer exist are dropped. Caller holds s.mu.
func (r *RegisterService) reload(ctx context.Context, s *counter[domain.Product]) (int, error) {
	items, err := r.Prods.List(ctx)
	if err != nil {
		return 0, &pos.RemoteError{Op: "list products", Err: err}
	}
	s.catalog = items
	s.loaded = true
	for _, l := range s.order.Lines() {
		if p, ok := s.find(l.Item.ID); ok {
			s.order.Sync(p)
		} else {
			s.order.RemoveItem(l.Item.ID)
		}
	}
	return len(items), nil
}

func (r *RegisterService) Add(ctx context.Context, sid string, productID int64) (OrderView, error) {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := r.load(ctx, s); err != nil {
		return OrderView{}, err
	}
	p, ok := s.find(productID)
	if !ok {
		return OrderView{}, fmt.Errorf("product %d: %w", productID, ErrUnknownProduct)
	}
	s.order.AddItem(p)
	return viewOf(s.order, true), nil
}

func (r *RegisterService) Remove(sid string, productID int64) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.RemoveItem(productID)
	return viewOf(s.order, true)
}

func (r *RegisterService) Update(sid string, productID int64, quantity int) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.UpdateQuantity(productID, quantity)
	return viewOf(s.order, true)
}

func (r *RegisterService) Order(sid string) OrderView {
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s.order, true)
}

// Checkout validates the cash tendered and completes the sale.
func (r *RegisterService) Checkout(ctx context.Context, sid, tendered string) (pos.Receipt, error) {
	amount, err := pos.ParseTender(tendered)
	if err != nil {
		return pos.Receipt{}, err
	}
	s := r.sessions.get(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	rc, err := pos.Checkout(ctx, s.order, amount, r.Sales, pos.CheckoutOptions{
		Channel: "retail",
		Ledger:  snapshot{s: s},
	})
	if errors.Is(err, repos.ErrInsufficientStock) {
		// another session sold the stock first; bring this order back in line
		// so the cashier sees what is left
		_, _ = r.reload(ctx, s)
	}
	return rc, err
}

// End discards the session's order and catalog snapshot.
func (r *RegisterService) End(sid string) { r.sessions.drop(sid) }

// ExpireIdle ends every session not used since cutoff.
func (r *RegisterService) ExpireIdle(cutoff time.Time) int { return r.sessions.expire(cutoff) }

// Sessions is the number of open sessions.
func (r *RegisterService) Sessions() int { return r.sessions.len() }
