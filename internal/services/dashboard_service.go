package services

import (
	"context"

	"bizhub/internal/domain"
	"bizhub/internal/repos"
)

const maxColumns = 3

var widgetTypes = map[string]bool{"sales": true, "inventory": true, "orders": true}

type DashboardService struct {
	Widgets *repos.WidgetRepo
	Sales   *repos.SaleRepo
}

func NewDashboardService(widgets *repos.WidgetRepo, sales *repos.SaleRepo) *DashboardService {
	return &DashboardService{Widgets: widgets, Sales: sales}
}

func (s *DashboardService) List() ([]domain.Widget, error) { return s.Widgets.List() }

func (s *DashboardService) Add(typ string, col int) (domain.Widget, error) {
	if !widgetTypes[typ] {
		return domain.Widget{}, invalid("widget type must be sales, inventory or orders")
	}
	if col < 1 || col > maxColumns {
		return domain.Widget{}, invalid("column must be 1, 2 or 3")
	}
	return s.Widgets.Add(typ, col)
}

func (s *DashboardService) Remove(id int64) error { return notFound(s.Widgets.Remove(id)) }

// Move shifts a widget left or right, staying inside the board.
func (s *DashboardService) Move(id int64, delta int) (domain.Widget, error) {
	w, err := s.Widgets.Get(id)
	if err != nil {
		return domain.Widget{}, notFound(err)
	}
	w.Column = max(1, min(maxColumns, w.Column+delta))
	if err := s.Widgets.SetColumn(id, w.Column); err != nil {
		return domain.Widget{}, notFound(err)
	}
	return w, nil
}

// Recent feeds the orders widget.
func (s *DashboardService) Recent(ctx context.Context, n int) ([]domain.SaleSummary, error) {
	return s.Sales.ListLatest(ctx, n)
}
