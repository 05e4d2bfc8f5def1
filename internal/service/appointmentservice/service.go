package appointmentservice

import (
	"context"
	"time"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// AppointmentRepository define o contrato que o serviço espera da camada de persistência.
type AppointmentRepository interface {
	Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	GetDetail(ctx context.Context, id string) (domain.AppointmentDetail, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, next domain.AppointmentStatus, now time.Time) (domain.StatusHistory, error)
	History(ctx context.Context, id string) ([]domain.StatusHistory, error)
}

// ServiceReader lê o serviço agendado (preço, duração, unidade).
type ServiceReader interface {
	GetService(ctx context.Context, id string) (domain.Service, error)
}

// Notifier avisa cliente e barbeiro sobre um novo agendamento.
type Notifier interface {
	NewAppointment(ctx context.Context, d domain.AppointmentDetail) error
}

type Service struct {
	repo     AppointmentRepository
	services ServiceReader
	notifier Notifier
	now      func() time.Time
	logger   logger.Logger
}

func NewService(repo AppointmentRepository, services ServiceReader, notifier Notifier, logger logger.Logger) *Service {
	return &Service{repo: repo, services: services, notifier: notifier, now: time.Now, logger: logger}
}

// Create agenda um horário. Clientes só agendam para si mesmos; para as demais contas o cliente é obrigatório.
// Sem hora_fim, o término é calculado pela duração do serviço.
func (s *Service) Create(ctx context.Context, session domain.Session, in domain.AppointmentInput) (domain.Appointment, error) {
	// 1. Quem é o cliente
	switch {
	case session.Kind == domain.KindClient && in.ClientID != "" && in.ClientID != session.AccountID:
		return domain.Appointment{}, apperror.NewForbiddenError("Clientes só podem agendar para si mesmos.")
	case session.Kind == domain.KindClient:
		in.ClientID = session.AccountID
	case in.ClientID == "":
		return domain.Appointment{}, apperror.NewValidationError("O cliente é obrigatório.")
	}

	// 2. Data e horários
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return domain.Appointment{}, apperror.NewValidationError("Data inválida, use AAAA-MM-DD.")
	}
	start, err := time.Parse(domain.TimeLayout, in.StartTime)
	if err != nil {
		return domain.Appointment{}, apperror.NewValidationError("Horário de início inválido, use HH:MM.")
	}

	// 3. Serviço
	svc, err := s.services.GetService(ctx, in.ServiceID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if !svc.Active {
		return domain.Appointment{}, apperror.NewValidationError("Serviço inativo.")
	}
	if svc.UnitID != in.UnitID {
		return domain.Appointment{}, apperror.NewValidationError("O serviço não é oferecido nesta unidade.")
	}

	end := in.EndTime
	if end == "" {
		endTime := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
		if endTime.Day() != start.Day() {
			return domain.Appointment{}, apperror.NewValidationError("O atendimento terminaria após a meia-noite.")
		}
		end = endTime.Format(domain.TimeLayout)
	} else {
		endTime, err := time.Parse(domain.TimeLayout, end)
		if err != nil {
			return domain.Appointment{}, apperror.NewValidationError("Horário de término inválido, use HH:MM.")
		}
		if !endTime.After(start) {
			return domain.Appointment{}, apperror.NewValidationError("O horário de término deve ser depois do início.")
		}
		end = endTime.Format(domain.TimeLayout)
	}

	// 4. Persistência
	created, err := s.repo.Create(ctx, domain.Appointment{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		UnitID:    in.UnitID,
		Date:      in.Date,
		// HH:MM com zero à esquerda: a janela dos lembretes e o ORDER BY comparam texto
		StartTime: start.Format(domain.TimeLayout),
		EndTime:   end,
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	// 5. Notificação (melhor esforço)
	detail, err := s.repo.GetDetail(ctx, created.ID)
	if err != nil {
		s.logger.Warn("Agendamento criado, mas não foi possível carregar os dados para notificação.", map[string]interface{}{"agendamento_id": created.ID, "erro": err.Error()})
		return created, nil
	}
	if err := s.notifier.NewAppointment(ctx, detail); err != nil {
		s.logger.Warn("Falha ao notificar novo agendamento.", map[string]interface{}{"agendamento_id": created.ID, "erro": err.Error()})
	}
	return detail.Appointment, nil
}

// List aplica o escopo da sessão: clientes veem os próprios agendamentos e barbeiros os seus.
func (s *Service) List(ctx context.Context, session domain.Session, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.NewValidationError("Status de agendamento inválido.")
	}
	switch session.Kind {
	case domain.KindClient:
		filter.ClientID = session.AccountID
	case domain.KindBarber:
		filter.BarberID = session.AccountID
	}
	return s.repo.List(ctx, filter)
}

// authorize confere se a sessão enxerga o agendamento. Fora do escopo responde 404.
func (s *Service) authorize(ctx context.Context, session domain.Session, id string) (domain.AppointmentDetail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return domain.AppointmentDetail{}, err
	}
	if (session.Kind == domain.KindClient && d.ClientID != session.AccountID) ||
		(session.Kind == domain.KindBarber && d.BarberID != session.AccountID) {
		return domain.AppointmentDetail{}, apperror.NewNotFoundError("Agendamento não encontrado.")
	}
	return d, nil
}

// UpdateStatus muda o status e registra a transição no histórico. Clientes só podem cancelar.
func (s *Service) UpdateStatus(ctx context.Context, session domain.Session, id string, change domain.StatusChange) (domain.StatusHistory, error) {
	if !change.NewStatus.Valid() {
		return domain.StatusHistory{}, apperror.NewValidationError("Status de agendamento inválido.")
	}
	if session.Kind == domain.KindClient && change.NewStatus != domain.StatusCanceled {
		return domain.StatusHistory{}, apperror.NewForbiddenError("Clientes só podem cancelar agendamentos.")
	}
	if _, err := s.authorize(ctx, session, id); err != nil {
		return domain.StatusHistory{}, err
	}

	h, err := s.repo.UpdateStatus(ctx, id, change.NewStatus, s.now())
	if err != nil {
		return domain.StatusHistory{}, err
	}

	s.logger.Info("Status de agendamento alterado.", map[string]interface{}{
		"agendamento_id": id, "de": h.PreviousStatus, "para": h.NewStatus, "por": session.AccountID,
	})
	return h, nil
}

func (s *Service) History(ctx context.Context, session domain.Session, id string) ([]domain.StatusHistory, error) {
	if _, err := s.authorize(ctx, session, id); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, id)
}
