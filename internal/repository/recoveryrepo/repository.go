package recoveryrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/repository/accountrepo"
)

// PasswordWriter grava a nova senha na tabela do tipo de conta, dentro da transação recebida.
type PasswordWriter interface {
	UpdatePassword(ctx context.Context, q database.Querier, kind domain.AccountKind, id, hash string) error
}

// RecoveryRepository persiste e consome os códigos de recuperação de senha.
type RecoveryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	passwords PasswordWriter
	logger    logger.Logger
}

func NewRecoveryRepository(db *sql.DB, dbTimeout time.Duration, passwords PasswordWriter, logger logger.Logger) *RecoveryRepository {
	return &RecoveryRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		passwords: passwords,
		logger:    logger,
	}
}

// Create grava o código ligado à conta pela FK do seu tipo.
func (r *RecoveryRepository) Create(ctx context.Context, t domain.RecoveryToken) (domain.RecoveryToken, error) {
	col, err := accountrepo.OwnerColumn(t.AccountKind)
	if err != nil {
		return domain.RecoveryToken{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()

	query := fmt.Sprintf(`INSERT INTO tokens_recuperacao (id, %s, cpf, token, tipo_conta, usado, expira_em, criado_em)
                          VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7)`, col)

	if _, err := r.DB.ExecContext(ctxTimeout, query, t.ID, t.AccountID, t.CPF, t.Code, t.AccountKind, t.ExpiresAt, t.CreatedAt); err != nil {
		r.logger.Error("Falha ao gravar código de recuperação.", err)
		return domain.RecoveryToken{}, database.MapError("Falha ao gravar código de recuperação", err)
	}
	return t, nil
}

// Redeem consome o código e troca a senha numa única transação.
// O token é travado com FOR UPDATE; dois resgates simultâneos do mesmo código não passam os dois.
// Qualquer falha desfaz a troca de senha e a marcação de uso.
func (r *RecoveryRepository) Redeem(ctx context.Context, cpf, code string, now time.Time, newHash string) (domain.RecoveryToken, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var t domain.RecoveryToken
	err := database.WithTx(ctxTimeout, r.DB, func(tx *sql.Tx) error {
		query := `
            SELECT id, COALESCE(usuario_id, barbeiro_id, cliente_id), tipo_conta, cpf, token, expira_em, criado_em
            FROM tokens_recuperacao
            WHERE cpf = $1 AND token = $2 AND usado = FALSE AND expira_em > $3
            FOR UPDATE`

		err := tx.QueryRowContext(ctxTimeout, query, cpf, code, now).Scan(
			&t.ID, &t.AccountID, &t.AccountKind, &t.CPF, &t.Code, &t.ExpiresAt, &t.CreatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewInvalidOrExpiredTokenError()
		}
		if err != nil {
			return apperror.NewDBError("Falha ao buscar código de recuperação", err)
		}

		if err := r.passwords.UpdatePassword(ctxTimeout, tx, t.AccountKind, t.AccountID, newHash); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctxTimeout, "UPDATE tokens_recuperacao SET usado = TRUE WHERE id = $1 AND usado = FALSE", t.ID)
		if err != nil {
			return apperror.NewDBError("Falha ao marcar código como usado", err)
		}
		if n, err := res.RowsAffected(); err != nil || n != 1 {
			return apperror.NewInvalidOrExpiredTokenError()
		}
		t.Used = true
		return nil
	})
	if err != nil {
		if !apperror.IsAppError(err) {
			r.logger.Error("Falha na transação de recuperação de senha.", err)
			return domain.RecoveryToken{}, apperror.NewDBError("Falha ao redefinir senha", err)
		}
		return domain.RecoveryToken{}, err
	}

	r.logger.Info("Código de recuperação consumido.", map[string]interface{}{"token_id": t.ID, "tipo_conta": t.AccountKind})
	return t, nil
}
