// Package catalogservice cuida do catálogo de cada unidade: categorias, serviços e produtos (com estoque).
package catalogservice

import (
	"context"

	"github.com/shopspring/decimal"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// CatalogRepository define o contrato que o serviço espera da camada de persistência do catálogo.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, c domain.ServiceCategory) (domain.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	GetCategory(ctx context.Context, id string) (domain.ServiceCategory, error)
	UpdateCategory(ctx context.Context, c domain.ServiceCategory) error
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, s domain.Service) (domain.Service, error)
	ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (domain.Service, error)
	UpdateService(ctx context.Context, s domain.Service) error
	DeactivateService(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeactivateProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}

type Service struct {
	repo   CatalogRepository
	logger logger.Logger
}

func NewService(repo CatalogRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// requirePositivePrice vale para serviços e produtos.
func requirePositivePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return apperror.NewValidationError("O preço deve ser maior que zero.")
	}
	return nil
}

func activeOrDefault(active *bool, def bool) bool {
	if active == nil {
		return def
	}
	return *active
}
