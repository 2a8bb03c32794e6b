package service

import (
	"context"
	"strings"

	"restaurant-pos/order-svc/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
	qr   QRGenerator
}

func NewCatalogService(repo CatalogRepository, qr QRGenerator) *CatalogService {
	return &CatalogService{repo: repo, qr: qr}
}

func (s *CatalogService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *CatalogService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *CatalogService) UpdateItemImage(ctx context.Context, id int, imageURL string) error {
	return s.repo.UpdateItemImage(ctx, id, imageURL)
}

func (s *CatalogService) DeleteItem(ctx context.Context, id int) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *CatalogService) CreateAddOn(ctx context.Context, addon *domain.AddOn) error {
	if err := validateAddOn(addon); err != nil {
		return err
	}
	return s.repo.CreateAddOn(ctx, addon)
}

func (s *CatalogService) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	return s.repo.ListAddOns(ctx)
}

func (s *CatalogService) UpdateAddOn(ctx context.Context, addon *domain.AddOn) error {
	if err := validateAddOn(addon); err != nil {
		return err
	}
	return s.repo.UpdateAddOn(ctx, addon)
}

func (s *CatalogService) DeleteAddOn(ctx context.Context, id int) error {
	return s.repo.DeleteAddOn(ctx, id)
}

func (s *CatalogService) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	return s.repo.CreateEmployee(ctx, e)
}

func (s *CatalogService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *CatalogService) CreateTable(ctx context.Context, t *domain.DiningTable) error {
	if t.Number <= 0 {
		return domain.NewValidationError("number", "table number must be positive")
	}
	return s.repo.CreateTable(ctx, t)
}

func (s *CatalogService) ListTables(ctx context.Context) ([]domain.DiningTable, error) {
	return s.repo.ListTables(ctx)
}

// TableQRCode renders the PNG guests scan to open the menu for a table.
func (s *CatalogService) TableQRCode(ctx context.Context, id int) ([]byte, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(table.Number)
}

func validateItem(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if item.Price.IsNegative() {
		return domain.NewValidationError("price", "price must not be negative")
	}
	switch item.Category {
	case domain.CategoryDish, domain.CategoryDrink:
	default:
		return domain.NewValidationError("category", "category must be %q or %q", domain.CategoryDish, domain.CategoryDrink)
	}
	return nil
}

func validateAddOn(addon *domain.AddOn) error {
	addon.Name = strings.TrimSpace(addon.Name)
	if addon.Name == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if addon.Price.IsNegative() {
		return domain.NewValidationError("price", "price must not be negative")
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
