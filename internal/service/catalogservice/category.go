package catalogservice

import (
	"context"
	"strings"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
)

func (s *Service) CreateCategory(ctx context.Context, in domain.ServiceCategoryInput) (domain.ServiceCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ServiceCategory{}, apperror.NewValidationError("O nome da categoria é obrigatório.")
	}
	return s.repo.CreateCategory(ctx, domain.ServiceCategory{Name: name, Description: in.Description})
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id string) (domain.ServiceCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in domain.ServiceCategoryInput) (domain.ServiceCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ServiceCategory{}, apperror.NewValidationError("O nome da categoria é obrigatório.")
	}
	c := domain.ServiceCategory{ID: id, Name: name, Description: in.Description}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return domain.ServiceCategory{}, err
	}
	return c, nil
}

// DeleteCategory remove a categoria. Categorias ainda usadas por serviços não podem ser removidas.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}
