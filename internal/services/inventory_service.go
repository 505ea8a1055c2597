package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"bizhub/internal/domain"
	"bizhub/internal/pos"
	"bizhub/internal/repos"
	"bizhub/internal/validate"

	"github.com/shopspring/decimal"
)

type InventoryService struct {
	Prods    *repos.ProductRepo
	PageSize int
}

func NewInventoryService(prods *repos.ProductRepo, pageSize int) *InventoryService {
	if pageSize <= 0 {
		pageSize = pos.DefaultPageSize
	}
	return &InventoryService{Prods: prods, PageSize: pageSize}
}

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Images   []string        `json:"images"`
}

func (in ProductInput) product() (domain.Product, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return domain.Product{}, invalid("product name is required")
	}
	sku, ok := validate.SKU(in.SKU)
	if !ok {
		return domain.Product{}, invalid("sku may only contain letters, digits, dash and underscore")
	}
	if in.Price.IsNegative() {
		return domain.Product{}, invalid("price must not be negative")
	}
	if in.Quantity < 0 {
		return domain.Product{}, invalid("quantity must not be negative")
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{Name: name, SKU: sku, Price: in.Price, Quantity: in.Quantity, ImagesJSON: string(raw)}, nil
}

// List filters the catalog by name or sku and returns one page.
func (s *InventoryService) List(ctx context.Context, term string, page int) (Page[domain.Product], error) {
	all, err := s.Prods.List(ctx)
	if err != nil {
		return Page[domain.Product]{}, err
	}
	matches := pos.FilterSubstring(all, term, func(p domain.Product) []string { return []string{p.Name, p.SKU} })
	return pageOf(matches, page, s.PageSize), nil
}

func (s *InventoryService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Prods.Get(ctx, id)
	return p, notFound(err)
}

func (s *InventoryService) Create(ctx context.Context, in ProductInput) (domain.Product, error) {
	p, err := in.product()
	if err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Create(ctx, p)
}

func (s *InventoryService) Update(ctx context.Context, id int64, in ProductInput) (domain.Product, error) {
	p, err := in.product()
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	p, err = s.Prods.Update(ctx, p)
	return p, notFound(err)
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return notFound(s.Prods.Delete(ctx, id))
}

// notFound maps a missing row to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
