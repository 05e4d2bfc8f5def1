package authservice

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/cpf"
	"barbearia/internal/pkg/logger"
)

// AccountResolver encontra a conta ativa de um CPF na ordem equipe, barbeiro, cliente.
type AccountResolver interface {
	Resolve(ctx context.Context, cpf string) (domain.Account, error)
}

// AccountRepository é o contrato da persistência usado na troca de senha.
type AccountRepository interface {
	FindByID(ctx context.Context, kind domain.AccountKind, id string) (domain.Account, error)
	SetPassword(ctx context.Context, kind domain.AccountKind, id, hash string) error
}

// TokenService é o contrato da camada de token (internal/pkg/token)
type TokenService interface {
	GenerateToken(session domain.Session) (string, error)
}

// Service autentica as três categorias de conta.
type Service struct {
	resolver AccountResolver
	accounts AccountRepository
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria o serviço de autenticação com suas dependências injetadas.
func NewService(resolver AccountResolver, accounts AccountRepository, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{
		resolver: resolver,
		accounts: accounts,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// compareDummy gasta o mesmo tempo de um bcrypt real quando o CPF não existe.
func compareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("barbearia-senha-inexistente"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login valida o CPF, resolve a conta e devolve o JWT junto com a conta autenticada.
// CPF desconhecido e senha errada produzem exatamente o mesmo erro.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	// 1. Validação do identificador
	digits := cpf.Normalize(req.CPF)
	if !cpf.IsValid(digits) {
		return domain.LoginResponse{}, apperror.NewInvalidIdentifierError()
	}
	if req.Password == "" {
		return domain.LoginResponse{}, apperror.NewValidationError("A senha é obrigatória.")
	}

	// 2. Busca nas três categorias
	acc, err := s.resolver.Resolve(ctx, digits)
	if err != nil {
		if apperror.IsNotFound(err) {
			compareDummy(req.Password)
			s.logger.Info("Tentativa de login com CPF desconhecido.", nil)
			return domain.LoginResponse{}, apperror.NewInvalidCredentialsError()
		}
		return domain.LoginResponse{}, err
	}

	// 3. Comparação da senha
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("Tentativa de login com senha incorreta.", map[string]interface{}{"conta_id": acc.ID, "tipo_conta": acc.Kind})
		return domain.LoginResponse{}, apperror.NewInvalidCredentialsError()
	}

	// 4. Emissão do token
	tokenString, err := s.tokenSvc.GenerateToken(domain.NewSession(acc))
	if err != nil {
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"conta_id": acc.ID, "tipo_conta": acc.Kind})
	return domain.LoginResponse{Token: tokenString, Account: acc}, nil
}

// ChangePassword troca a senha da conta da sessão, exigindo a senha atual.
func (s *Service) ChangePassword(ctx context.Context, session domain.Session, req domain.PasswordChange) error {
	if len(req.NewPassword) < 6 {
		return apperror.NewValidationError("A nova senha deve ter no mínimo 6 caracteres.")
	}

	acc, err := s.accounts.FindByID(ctx, session.Kind, session.AccountID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.NewUnauthorizedError("Senha atual incorreta.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	if err := s.accounts.SetPassword(ctx, session.Kind, session.AccountID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("Senha alterada.", map[string]interface{}{"conta_id": session.AccountID, "tipo_conta": session.Kind})
	return nil
}
