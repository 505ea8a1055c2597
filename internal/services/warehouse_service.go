package services

import (
	"strconv"
	"strings"

	"bizhub/internal/domain"
	"bizhub/internal/repos"

	"github.com/google/uuid"
)

type WarehouseService struct{ Repo *repos.WarehouseRepo }

func NewWarehouseService(repo *repos.WarehouseRepo) *WarehouseService {
	return &WarehouseService{Repo: repo}
}

func (s *WarehouseService) Stock() ([]domain.StockEntry, error) { return s.Repo.List() }

// Add records a quantity of a product held at a location. The quantity
// arrives as typed text and must be a whole number.
func (s *WarehouseService) Add(name, quantity, location string) (domain.StockEntry, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return domain.StockEntry{}, invalid("product name and location are required")
	}
	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil || q < 0 {
		return domain.StockEntry{}, invalid("quantity must be a whole number")
	}
	e := domain.StockEntry{ID: uuid.NewString(), Name: name, Quantity: q, Location: location}
	if err := s.Repo.Add(e); err != nil {
		return domain.StockEntry{}, err
	}
	return e, nil
}
