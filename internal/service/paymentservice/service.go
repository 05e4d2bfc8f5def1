package paymentservice

import (
	"context"
	"strings"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// PaymentRepository define o contrato de persistência de pagamentos.
type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	GetByID(ctx context.Context, id string) (domain.Payment, error)
	Update(ctx context.Context, id string, u domain.PaymentUpdate) error
}

type Service struct {
	repo   PaymentRepository
	logger logger.Logger
}

func NewService(repo PaymentRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create registra um pagamento avulso de agendamento ou venda. Status padrão: pendente.
func (s *Service) Create(ctx context.Context, in domain.PaymentInput) (domain.Payment, error) {
	if !in.Amount.IsPositive() {
		return domain.Payment{}, apperror.NewValidationError("O valor deve ser maior que zero.")
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		return domain.Payment{}, apperror.NewValidationError("A forma de pagamento é obrigatória.")
	}
	status := in.Status
	if status == "" {
		status = domain.PaymentPending
	}
	if !status.Valid() {
		return domain.Payment{}, apperror.NewValidationError("Status de pagamento inválido.")
	}

	p, err := s.repo.Create(ctx, domain.Payment{
		AppointmentID:   emptyToNil(in.AppointmentID),
		SaleID:          emptyToNil(in.SaleID),
		Method:          method,
		Amount:          in.Amount,
		Status:          status,
		TransactionCode: in.TransactionCode,
		PaidAt:          in.PaidAt,
	})
	if err != nil {
		return domain.Payment{}, err
	}
	s.logger.Info("Pagamento registrado.", map[string]interface{}{"pagamento_id": p.ID, "status": p.Status})
	return p, nil
}

func (s *Service) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.NewValidationError("Status de pagamento inválido.")
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update altera apenas os campos enviados e devolve o pagamento atualizado.
func (s *Service) Update(ctx context.Context, id string, u domain.PaymentUpdate) (domain.Payment, error) {
	if u.Empty() {
		return domain.Payment{}, apperror.NewValidationError("Nenhum campo para atualizar.")
	}
	if u.Amount != nil && !u.Amount.IsPositive() {
		return domain.Payment{}, apperror.NewValidationError("O valor deve ser maior que zero.")
	}
	if u.Status != nil && !u.Status.Valid() {
		return domain.Payment{}, apperror.NewValidationError("Status de pagamento inválido.")
	}
	if u.Method != nil && strings.TrimSpace(*u.Method) == "" {
		return domain.Payment{}, apperror.NewValidationError("A forma de pagamento é obrigatória.")
	}

	if err := s.repo.Update(ctx, id, u); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
