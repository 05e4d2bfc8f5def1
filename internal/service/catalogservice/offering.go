package catalogservice

import (
	"context"
	"strings"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
)

func (s *Service) serviceFromInput(in domain.ServiceInput) (domain.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Service{}, apperror.NewValidationError("O nome do serviço é obrigatório.")
	}
	if err := requirePositivePrice(in.Price); err != nil {
		return domain.Service{}, err
	}
	if in.DurationMinutes <= 0 {
		return domain.Service{}, apperror.NewValidationError("A duração deve ser maior que zero.")
	}

	categoryID := in.CategoryID
	if categoryID != nil && *categoryID == "" {
		categoryID = nil
	}
	return domain.Service{
		Name:            name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		CategoryID:      categoryID,
		UnitID:          in.UnitID,
		Active:          activeOrDefault(in.Active, true),
	}, nil
}

func (s *Service) CreateService(ctx context.Context, in domain.ServiceInput) (domain.Service, error) {
	svc, err := s.serviceFromInput(in)
	if err != nil {
		return domain.Service{}, err
	}
	created, err := s.repo.CreateService(ctx, svc)
	if err != nil {
		return domain.Service{}, err
	}
	s.logger.Info("Serviço criado.", map[string]interface{}{"servico_id": created.ID, "unidade_id": created.UnitID})
	return created, nil
}

func (s *Service) ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	return s.repo.ListServices(ctx, filter)
}

func (s *Service) GetService(ctx context.Context, id string) (domain.Service, error) {
	return s.repo.GetService(ctx, id)
}

func (s *Service) UpdateService(ctx context.Context, id string, in domain.ServiceInput) (domain.Service, error) {
	current, err := s.repo.GetService(ctx, id)
	if err != nil {
		return domain.Service{}, err
	}
	svc, err := s.serviceFromInput(in)
	if err != nil {
		return domain.Service{}, err
	}
	svc.ID = id
	svc.Active = activeOrDefault(in.Active, current.Active)

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return domain.Service{}, err
	}
	return s.repo.GetService(ctx, id)
}

// DeactivateService inativa o serviço; vendas e agendamentos antigos continuam apontando para ele.
func (s *Service) DeactivateService(ctx context.Context, id string) error {
	return s.repo.DeactivateService(ctx, id)
}
