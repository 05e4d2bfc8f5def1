// Package notificationservice entrega as mensagens de WhatsApp e mantém a caixa de entrada in-app.
//
// Todos os métodos de evento são de melhor esforço: devolvem o erro de entrega para que o chamador
// registre em log, mas nenhuma operação de negócio deve falhar por causa deles.
package notificationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/cpf"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/whatsapp"
)

// InboxRepository é o contrato da persistência da caixa de entrada.
type InboxRepository interface {
	Create(ctx context.Context, n domain.Notification) (domain.Notification, error)
	List(ctx context.Context, kind domain.AccountKind, accountID string, filter domain.NotificationFilter) ([]domain.Notification, error)
	CountUnread(ctx context.Context, kind domain.AccountKind, accountID string) (int, error)
	MarkRead(ctx context.Context, kind domain.AccountKind, accountID, id string) error
}

// StaffDirectory lista os administradores que recebem o aviso de novo barbeiro.
type StaffDirectory interface {
	ListActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.Account, error)
}

// Service é o despachante de notificações.
type Service struct {
	sender  whatsapp.Sender
	inbox   InboxRepository
	staff   StaffDirectory
	timeout time.Duration
	logger  logger.Logger
}

// NewService cria o despachante. timeout limita cada chamada ao provedor de WhatsApp.
func NewService(sender whatsapp.Sender, inbox InboxRepository, staff StaffDirectory, timeout time.Duration, logger logger.Logger) *Service {
	return &Service{
		sender:  sender,
		inbox:   inbox,
		staff:   staff,
		timeout: timeout,
		logger:  logger,
	}
}

// send normaliza o número e entrega a mensagem com prazo limitado.
func (s *Service) send(ctx context.Context, phone, text string, metadata map[string]interface{}) error {
	number := whatsapp.FormatNumber(phone)
	if number == "" {
		return whatsapp.ErrEmptyNumber
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sender.Send(ctxTimeout, whatsapp.Message{To: number, Text: text, Metadata: metadata}); err != nil {
		s.logger.Warn("Falha ao enviar WhatsApp.", map[string]interface{}{"numero": number, "tipo": metadata["tipo"], "erro": err.Error()})
		return err
	}

	s.logger.Info("WhatsApp enviado.", map[string]interface{}{"numero": number, "tipo": metadata["tipo"]})
	return nil
}

// sendIfPhone ignora silenciosamente contas sem telefone.
func (s *Service) sendIfPhone(ctx context.Context, phone, text string, metadata map[string]interface{}) error {
	if whatsapp.FormatNumber(phone) == "" {
		return nil
	}
	return s.send(ctx, phone, text, metadata)
}

func (s *Service) record(ctx context.Context, kind domain.AccountKind, accountID, typ, title, message string) error {
	_, err := s.inbox.Create(ctx, domain.Notification{
		AccountID:   accountID,
		AccountKind: kind,
		Type:        typ,
		Title:       title,
		Message:     message,
	})
	if err != nil {
		s.logger.Warn("Falha ao registrar notificação.", map[string]interface{}{"conta_id": accountID, "tipo": typ, "erro": err.Error()})
	}
	return err
}

// NewAppointment avisa cliente e barbeiro sobre um agendamento recém-criado.
func (s *Service) NewAppointment(ctx context.Context, d domain.AppointmentDetail) error {
	toClient, err := render(tmplAppointmentClient, d)
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}
	toBarber, err := render(tmplAppointmentBarber, d)
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}

	meta := map[string]interface{}{"tipo": "agendamento_criado", "agendamento_id": d.ID}
	return errors.Join(
		s.record(ctx, domain.KindClient, d.ClientID, domain.NotificationNewAppointment, "Agendamento confirmado", toClient),
		s.record(ctx, domain.KindBarber, d.BarberID, domain.NotificationNewAppointment, "Novo agendamento", toBarber),
		s.sendIfPhone(ctx, d.ClientPhone, toClient, meta),
		s.sendIfPhone(ctx, d.BarberPhone, toBarber, meta),
	)
}

// WelcomeClient envia as boas-vindas a um cliente recém-cadastrado.
func (s *Service) WelcomeClient(ctx context.Context, acc domain.Account) error {
	text, err := render(tmplWelcomeClient, acc)
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}
	return errors.Join(
		s.record(ctx, domain.KindClient, acc.ID, domain.NotificationWelcome, "Bem-vindo à Barbearia!", text),
		s.sendIfPhone(ctx, acc.Phone, text, map[string]interface{}{"tipo": "novo_cliente", "cliente_id": acc.ID}),
	)
}

// WelcomeBarber envia as boas-vindas ao barbeiro e avisa todos os administradores ativos.
func (s *Service) WelcomeBarber(ctx context.Context, acc domain.Account, unitName string) error {
	data := barberData{Account: acc, UnitName: unitName, FormattedCPF: cpf.Format(acc.CPF)}
	toBarber, err := render(tmplWelcomeBarber, data)
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}
	toAdmin, err := render(tmplNewBarberAdmin, data)
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}

	errs := []error{
		s.record(ctx, domain.KindBarber, acc.ID, domain.NotificationWelcome, "Bem-vindo à Equipe!", toBarber),
		s.sendIfPhone(ctx, acc.Phone, toBarber, map[string]interface{}{"tipo": "novo_barbeiro", "barbeiro_id": acc.ID}),
	}

	admins, err := s.staff.ListActiveStaffByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	for _, admin := range admins {
		errs = append(errs,
			s.record(ctx, domain.KindStaff, admin.ID, domain.NotificationNewBarber, "Novo barbeiro cadastrado", toAdmin),
			s.sendIfPhone(ctx, admin.Phone, toAdmin, map[string]interface{}{"tipo": "novo_barbeiro_admin", "barbeiro_id": acc.ID}),
		)
	}
	return errors.Join(errs...)
}

// RecoveryCode envia o código de recuperação. Diferente dos demais eventos, exige telefone.
func (s *Service) RecoveryCode(ctx context.Context, acc domain.Account, code string, ttl time.Duration) error {
	text, err := render(tmplRecoveryCode, recoveryData{Name: acc.Name, Code: code, Minutes: int(ttl.Minutes())})
	if err != nil {
		return fmt.Errorf("falha ao montar mensagem: %w", err)
	}
	return s.send(ctx, acc.Phone, text, map[string]interface{}{"tipo": "recuperacao_senha", "cpf": acc.CPF})
}

// SendTest envia uma mensagem livre, usada pelo administrador para testar a integração.
// Aqui a falha de entrega é o próprio resultado esperado pelo chamador.
func (s *Service) SendTest(ctx context.Context, req domain.WebhookTest) error {
	if err := s.send(ctx, req.Phone, req.Message, map[string]interface{}{"tipo": "teste"}); err != nil {
		if errors.Is(err, whatsapp.ErrEmptyNumber) {
			return apperror.NewValidationError("Telefone inválido.")
		}
		return apperror.NewInternalError("Falha ao enviar mensagem de teste.", err)
	}
	return nil
}
