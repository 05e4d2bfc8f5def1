package reportservice

import (
	"context"
	"time"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// ReportRepository executa as consultas agregadas.
type ReportRepository interface {
	SalesByDay(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error)
	AppointmentsByStatus(ctx context.Context, dr domain.DateRange) ([]domain.AppointmentsByStatus, error)
	Commissions(ctx context.Context, dr domain.DateRange) ([]domain.BarberCommission, error)
}

type Service struct {
	repo   ReportRepository
	logger logger.Logger
}

func NewService(repo ReportRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// checkRange aceita pontas vazias; quando informadas precisam ser datas AAAA-MM-DD em ordem.
func checkRange(dr domain.DateRange) error {
	var from, to time.Time
	var err error
	if dr.From != "" {
		if from, err = time.Parse(domain.DateLayout, dr.From); err != nil {
			return apperror.NewValidationError("data_inicio inválida, use AAAA-MM-DD.")
		}
	}
	if dr.To != "" {
		if to, err = time.Parse(domain.DateLayout, dr.To); err != nil {
			return apperror.NewValidationError("data_fim inválida, use AAAA-MM-DD.")
		}
	}
	if dr.Set() && to.Before(from) {
		return apperror.NewValidationError("data_fim deve ser igual ou posterior a data_inicio.")
	}
	return nil
}

// Sales soma as vendas por dia.
func (s *Service) Sales(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error) {
	if err := checkRange(dr); err != nil {
		return nil, err
	}
	return s.repo.SalesByDay(ctx, dr)
}

func (s *Service) Appointments(ctx context.Context, dr domain.DateRange) ([]domain.AppointmentsByStatus, error) {
	if err := checkRange(dr); err != nil {
		return nil, err
	}
	return s.repo.AppointmentsByStatus(ctx, dr)
}

// Commissions considera apenas agendamentos concluídos: preço do serviço × percentual do barbeiro.
func (s *Service) Commissions(ctx context.Context, dr domain.DateRange) ([]domain.BarberCommission, error) {
	if err := checkRange(dr); err != nil {
		return nil, err
	}
	return s.repo.Commissions(ctx, dr)
}
