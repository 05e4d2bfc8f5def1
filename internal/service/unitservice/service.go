package unitservice

import (
	"context"
	"strings"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// UnitRepository define o contrato de persistência das unidades.
type UnitRepository interface {
	Create(ctx context.Context, u domain.Unit) (domain.Unit, error)
	List(ctx context.Context, active *bool) ([]domain.Unit, error)
	GetByID(ctx context.Context, id string) (domain.Unit, error)
	Update(ctx context.Context, u domain.Unit) error
	Deactivate(ctx context.Context, id string) error
}

type Service struct {
	repo   UnitRepository
	logger logger.Logger
}

func NewService(repo UnitRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func fromInput(in domain.UnitInput) (domain.Unit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Unit{}, apperror.NewValidationError("O nome da unidade é obrigatório.")
	}
	u := domain.Unit{Name: name, Address: in.Address, Phone: in.Phone, Active: true}
	if in.Active != nil {
		u.Active = *in.Active
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, in domain.UnitInput) (domain.Unit, error) {
	u, err := fromInput(in)
	if err != nil {
		return domain.Unit{}, err
	}
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.Unit{}, err
	}
	s.logger.Info("Unidade criada.", map[string]interface{}{"unidade_id": created.ID})
	return created, nil
}

func (s *Service) List(ctx context.Context, active *bool) ([]domain.Unit, error) {
	return s.repo.List(ctx, active)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Unit, error) {
	return s.repo.GetByID(ctx, id)
}

// Update substitui os dados da unidade; ativo ausente mantém o valor atual.
func (s *Service) Update(ctx context.Context, id string, in domain.UnitInput) (domain.Unit, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Unit{}, err
	}
	u, err := fromInput(in)
	if err != nil {
		return domain.Unit{}, err
	}
	u.ID = id
	if in.Active == nil {
		u.Active = current.Active
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return domain.Unit{}, err
	}
	return u, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Unidade inativada.", map[string]interface{}{"unidade_id": id})
	return nil
}
