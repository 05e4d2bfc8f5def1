package accountservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/cpf"
	"barbearia/internal/pkg/logger"
)

// minPasswordLength vale para cadastro, troca e recuperação de senha.
const minPasswordLength = 6

// AccountRepository define o contrato que o serviço espera da camada de persistência de contas.
type AccountRepository interface {
	CPFExists(ctx context.Context, cpf string) (bool, error)
	Create(ctx context.Context, acc domain.Account) (domain.Account, error)
	FindByID(ctx context.Context, kind domain.AccountKind, id string) (domain.Account, error)
	UpdateProfile(ctx context.Context, kind domain.AccountKind, id string, p domain.ProfileUpdate) error
	Deactivate(ctx context.Context, kind domain.AccountKind, id string) error
	List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error)
}

// UnitReader resolve a unidade informada no cadastro de barbeiro.
type UnitReader interface {
	GetByID(ctx context.Context, id string) (domain.Unit, error)
}

// Notifier envia as mensagens de boas-vindas. Falhas são apenas registradas em log.
type Notifier interface {
	WelcomeClient(ctx context.Context, acc domain.Account) error
	WelcomeBarber(ctx context.Context, acc domain.Account, unitName string) error
}

// Service concentra cadastro, perfil e listagem das três categorias de conta.
type Service struct {
	repo     AccountRepository
	units    UnitReader
	notifier Notifier
	logger   logger.Logger
}

func NewService(repo AccountRepository, units UnitReader, notifier Notifier, logger logger.Logger) *Service {
	return &Service{repo: repo, units: units, notifier: notifier, logger: logger}
}

// prepare valida CPF e senha, confere a unicidade do CPF nas três tabelas e gera o hash.
func (s *Service) prepare(ctx context.Context, rawCPF, password string) (string, string, error) {
	digits := cpf.Normalize(rawCPF)
	if !cpf.IsValid(digits) {
		return "", "", apperror.NewInvalidIdentifierError()
	}
	if len(password) < minPasswordLength {
		return "", "", apperror.NewValidationError("A senha deve ter no mínimo 6 caracteres.")
	}

	exists, err := s.repo.CPFExists(ctx, digits)
	if err != nil {
		return "", "", err
	}
	if exists {
		return "", "", apperror.NewConflictError("CPF já cadastrado.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return digits, string(hash), nil
}

// RegisterStaff cadastra um usuário da equipe (admin, gerente ou funcionário).
func (s *Service) RegisterStaff(ctx context.Context, reg domain.StaffRegistration) (domain.Account, error) {
	if !reg.Role.Valid() {
		return domain.Account{}, apperror.NewValidationError("Tipo de usuário inválido.")
	}
	digits, hash, err := s.prepare(ctx, reg.CPF, reg.Password)
	if err != nil {
		return domain.Account{}, err
	}

	unitID := reg.UnitID
	if unitID != nil && *unitID == "" {
		unitID = nil
	}

	return s.repo.Create(ctx, domain.Account{
		Kind:         domain.KindStaff,
		Name:         strings.TrimSpace(reg.Name),
		CPF:          digits,
		Email:        reg.Email,
		Phone:        reg.Phone,
		PasswordHash: hash,
		Role:         reg.Role,
		UnitID:       unitID,
	})
}

// RegisterBarber cadastra um barbeiro numa unidade e dispara as boas-vindas (barbeiro e admins).
func (s *Service) RegisterBarber(ctx context.Context, reg domain.BarberRegistration) (domain.Account, error) {
	if reg.CommissionPercent.LessThan(decimal.Zero) || reg.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return domain.Account{}, apperror.NewValidationError("O percentual de comissão deve estar entre 0 e 100.")
	}

	unit, err := s.units.GetByID(ctx, reg.UnitID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.Account{}, apperror.NewValidationError("Unidade não encontrada.")
		}
		return domain.Account{}, err
	}

	digits, hash, err := s.prepare(ctx, reg.CPF, reg.Password)
	if err != nil {
		return domain.Account{}, err
	}

	commission := reg.CommissionPercent
	acc, err := s.repo.Create(ctx, domain.Account{
		Kind:              domain.KindBarber,
		Name:              strings.TrimSpace(reg.Name),
		CPF:               digits,
		Email:             reg.Email,
		Phone:             reg.Phone,
		PasswordHash:      hash,
		UnitID:            &unit.ID,
		PhotoBase64:       reg.PhotoBase64,
		CommissionPercent: &commission,
	})
	if err != nil {
		return domain.Account{}, err
	}

	if err := s.notifier.WelcomeBarber(ctx, acc, unit.Name); err != nil {
		s.logger.Warn("Falha ao notificar cadastro de barbeiro.", map[string]interface{}{"barbeiro_id": acc.ID, "erro": err.Error()})
	}
	return acc, nil
}

// RegisterClient é o auto-cadastro público de cliente.
func (s *Service) RegisterClient(ctx context.Context, reg domain.ClientRegistration) (domain.Account, error) {
	digits, hash, err := s.prepare(ctx, reg.CPF, reg.Password)
	if err != nil {
		return domain.Account{}, err
	}

	acc, err := s.repo.Create(ctx, domain.Account{
		Kind:         domain.KindClient,
		Name:         strings.TrimSpace(reg.Name),
		CPF:          digits,
		Email:        reg.Email,
		Phone:        reg.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.Account{}, err
	}

	if err := s.notifier.WelcomeClient(ctx, acc); err != nil {
		s.logger.Warn("Falha ao notificar cadastro de cliente.", map[string]interface{}{"cliente_id": acc.ID, "erro": err.Error()})
	}
	return acc, nil
}

// Profile devolve a conta da sessão.
func (s *Service) Profile(ctx context.Context, session domain.Session) (domain.Account, error) {
	return s.repo.FindByID(ctx, session.Kind, session.AccountID)
}

// UpdateProfile altera nome e contatos da conta da sessão. Somente barbeiros têm foto.
func (s *Service) UpdateProfile(ctx context.Context, session domain.Session, upd domain.ProfileUpdate) (domain.Account, error) {
	upd.Name = strings.TrimSpace(upd.Name)
	if upd.Name == "" {
		return domain.Account{}, apperror.NewValidationError("O nome é obrigatório.")
	}
	if session.Kind != domain.KindBarber {
		upd.PhotoBase64 = ""
	}

	if err := s.repo.UpdateProfile(ctx, session.Kind, session.AccountID, upd); err != nil {
		return domain.Account{}, err
	}
	return s.repo.FindByID(ctx, session.Kind, session.AccountID)
}

// Deactivate desativa um usuário da equipe ou um barbeiro. Ninguém desativa a própria conta.
func (s *Service) Deactivate(ctx context.Context, session domain.Session, kind domain.AccountKind, id string) error {
	if kind == domain.KindClient {
		return apperror.NewValidationError("Clientes não podem ser desativados por esta rota.")
	}
	if kind == session.Kind && id == session.AccountID {
		return apperror.NewValidationError("Não é possível desativar a própria conta.")
	}
	if err := s.repo.Deactivate(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info("Conta desativada pela gestão.", map[string]interface{}{"conta_id": id, "tipo_conta": kind, "por": session.AccountID})
	return nil
}

// ListBarbers lista barbeiros. Fora da gestão, apenas os ativos aparecem.
func (s *Service) ListBarbers(ctx context.Context, session domain.Session, filter domain.AccountFilter) ([]domain.Account, error) {
	if !session.IsManagement() {
		active := true
		filter.Active = &active
	}
	filter.CPF = cpf.Normalize(filter.CPF)
	return s.repo.List(ctx, domain.KindBarber, filter)
}

func (s *Service) GetBarber(ctx context.Context, session domain.Session, id string) (domain.Account, error) {
	acc, err := s.repo.FindByID(ctx, domain.KindBarber, id)
	if err != nil {
		return domain.Account{}, err
	}
	if !acc.Active && !session.IsManagement() {
		return domain.Account{}, apperror.NewNotFoundError("Barbeiro não encontrado.")
	}
	return acc, nil
}

func (s *Service) ListClients(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	filter.CPF = cpf.Normalize(filter.CPF)
	return s.repo.List(ctx, domain.KindClient, filter)
}

func (s *Service) GetClient(ctx context.Context, id string) (domain.Account, error) {
	return s.repo.FindByID(ctx, domain.KindClient, id)
}
