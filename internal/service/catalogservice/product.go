package catalogservice

import (
	"context"
	"strings"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
)

func (s *Service) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Product{}, apperror.NewValidationError("O nome do produto é obrigatório.")
	}
	if err := requirePositivePrice(in.Price); err != nil {
		return domain.Product{}, err
	}
	if in.Stock < 0 {
		return domain.Product{}, apperror.NewValidationError("O estoque inicial não pode ser negativo.")
	}

	created, err := s.repo.CreateProduct(ctx, domain.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		UnitID:      in.UnitID,
		Active:      activeOrDefault(in.Active, true),
	})
	if err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("Produto criado.", map[string]interface{}{"produto_id": created.ID, "estoque": created.Stock})
	return created, nil
}

func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// UpdateProduct altera os dados cadastrais; o campo estoque do payload é ignorado
// (use AdjustStock para movimentar o saldo).
func (s *Service) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Product{}, apperror.NewValidationError("O nome do produto é obrigatório.")
	}
	if err := requirePositivePrice(in.Price); err != nil {
		return domain.Product{}, err
	}

	current, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	p := current
	p.Name = name
	p.Description = in.Description
	p.Price = in.Price
	p.UnitID = in.UnitID
	p.Active = activeOrDefault(in.Active, current.Active)

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) DeactivateProduct(ctx context.Context, id string) error {
	return s.repo.DeactivateProduct(ctx, id)
}

// AdjustStock soma a quantidade (positiva ou negativa) ao estoque e devolve o produto atualizado.
func (s *Service) AdjustStock(ctx context.Context, id string, adj domain.StockAdjustment) (domain.Product, error) {
	if adj.Quantity == nil || *adj.Quantity == 0 {
		return domain.Product{}, apperror.NewValidationError("O ajuste de estoque (quantidade) não pode ser zero.")
	}

	stock, err := s.repo.AdjustStock(ctx, id, *adj.Quantity)
	if err != nil {
		return domain.Product{}, err
	}

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	p.Stock = stock
	return p, nil
}
