package recoveryservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/cpf"
	"barbearia/internal/pkg/logger"
)

// codeBytes gera códigos de 6 caracteres hexadecimais.
const codeBytes = 3

// AccountResolver encontra a conta ativa de um CPF na ordem equipe, barbeiro, cliente.
type AccountResolver interface {
	Resolve(ctx context.Context, cpf string) (domain.Account, error)
}

// TokenRepository grava e consome códigos de recuperação.
type TokenRepository interface {
	Create(ctx context.Context, t domain.RecoveryToken) (domain.RecoveryToken, error)
	Redeem(ctx context.Context, cpf, code string, now time.Time, newHash string) (domain.RecoveryToken, error)
}

// CodeNotifier entrega o código ao telefone da conta.
type CodeNotifier interface {
	RecoveryCode(ctx context.Context, acc domain.Account, code string, ttl time.Duration) error
}

// Service implementa a recuperação de senha em duas etapas (solicitar e confirmar).
type Service struct {
	resolver AccountResolver
	tokens   TokenRepository
	notifier CodeNotifier
	ttl      time.Duration
	now      func() time.Time
	random   io.Reader
	logger   logger.Logger
}

func NewService(resolver AccountResolver, tokens TokenRepository, notifier CodeNotifier, ttl time.Duration, logger logger.Logger) *Service {
	return &Service{
		resolver: resolver,
		tokens:   tokens,
		notifier: notifier,
		ttl:      ttl,
		now:      time.Now,
		random:   rand.Reader,
		logger:   logger,
	}
}

// RequestRecovery gera e envia um código para a conta dona do CPF.
// CPF desconhecido não gera erro, para não revelar quais CPFs estão cadastrados.
func (s *Service) RequestRecovery(ctx context.Context, req domain.RecoveryRequest) error {
	digits := cpf.Normalize(req.CPF)
	if !cpf.IsValid(digits) {
		return apperror.NewInvalidIdentifierError()
	}

	acc, err := s.resolver.Resolve(ctx, digits)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.logger.Info("Recuperação solicitada para CPF desconhecido.", nil)
			return nil
		}
		return err
	}

	if strings.TrimSpace(acc.Phone) == "" {
		return apperror.NewNoContactOnFileError()
	}

	code, err := s.newCode()
	if err != nil {
		return apperror.NewInternalError("Falha ao gerar código de recuperação.", err)
	}

	_, err = s.tokens.Create(ctx, domain.RecoveryToken{
		AccountID:   acc.ID,
		AccountKind: acc.Kind,
		CPF:         digits,
		Code:        code,
		ExpiresAt:   s.now().Add(s.ttl),
	})
	if err != nil {
		return err
	}

	if err := s.notifier.RecoveryCode(ctx, acc, code, s.ttl); err != nil {
		s.logger.Warn("Código de recuperação gravado, mas o envio falhou.", map[string]interface{}{"conta_id": acc.ID, "erro": err.Error()})
	}

	s.logger.Info("Código de recuperação emitido.", map[string]interface{}{"conta_id": acc.ID, "tipo_conta": acc.Kind})
	return nil
}

// ConfirmRecovery troca a senha se o código for válido, não usado e não expirado.
// A comparação ignora maiúsculas/minúsculas.
func (s *Service) ConfirmRecovery(ctx context.Context, req domain.RecoveryConfirm) error {
	digits := cpf.Normalize(req.CPF)
	if !cpf.IsValid(digits) {
		return apperror.NewInvalidIdentifierError()
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return apperror.NewInvalidOrExpiredTokenError()
	}
	if len(req.NewPassword) < 6 {
		return apperror.NewValidationError("A nova senha deve ter no mínimo 6 caracteres.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	t, err := s.tokens.Redeem(ctx, digits, code, s.now(), string(hash))
	if err != nil {
		return err
	}

	s.logger.Info("Senha redefinida por código de recuperação.", map[string]interface{}{"conta_id": t.AccountID, "tipo_conta": t.AccountKind})
	return nil
}

func (s *Service) newCode() (string, error) {
	b := make([]byte, codeBytes)
	if _, err := io.ReadFull(s.random, b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
