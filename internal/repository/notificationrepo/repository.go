package notificationrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/repository/accountrepo"
)

// NotificationRepository guarda a caixa de entrada das contas.
type NotificationRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewNotificationRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *NotificationRepository {
	return &NotificationRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// DefaultLimit é o tamanho padrão da listagem.
const DefaultLimit = 50

func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	col, err := accountrepo.OwnerColumn(n.AccountKind)
	if err != nil {
		return domain.Notification{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	query := fmt.Sprintf(`INSERT INTO notificacoes (id, %s, tipo, titulo, mensagem, lida, criado_em)
                          VALUES ($1, $2, $3, $4, $5, FALSE, $6)`, col)
	if _, err := r.DB.ExecContext(ctxTimeout, query, n.ID, n.AccountID, n.Type, n.Title, n.Message, n.CreatedAt); err != nil {
		r.logger.Error("Falha ao inserir notificação no DB.", err)
		return domain.Notification{}, database.MapError("Falha ao registrar notificação", err)
	}
	return n, nil
}

// List devolve as notificações da conta, mais recentes primeiro.
func (r *NotificationRepository) List(ctx context.Context, kind domain.AccountKind, accountID string, filter domain.NotificationFilter) ([]domain.Notification, error) {
	col, err := accountrepo.OwnerColumn(kind)
	if err != nil {
		return nil, err
	}

	var f database.Filter
	f.Add(col+" = ?", accountID)
	if filter.Read != nil {
		f.Add("lida = ?", *filter.Read)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limitArg := f.Arg(limit)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		"SELECT id, tipo, titulo, mensagem, lida, criado_em FROM notificacoes"+f.Where()+" ORDER BY criado_em DESC LIMIT "+limitArg,
		f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar notificações no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar notificações", err)
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		n := domain.Notification{AccountID: accountID, AccountKind: kind}
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, apperror.NewDBError("Falha ao ler notificação", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar notificações", err)
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, kind domain.AccountKind, accountID string) (int, error) {
	col, err := accountrepo.OwnerColumn(kind)
	if err != nil {
		return 0, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	query := fmt.Sprintf("SELECT COUNT(*) FROM notificacoes WHERE %s = $1 AND lida = FALSE", col)
	if err := r.DB.QueryRowContext(ctxTimeout, query, accountID).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar notificações no DB.", err)
		return 0, apperror.NewDBError("Falha ao contar notificações", err)
	}
	return total, nil
}

// MarkRead marca como lida apenas se a notificação pertencer à conta; caso contrário NotFound.
func (r *NotificationRepository) MarkRead(ctx context.Context, kind domain.AccountKind, accountID, id string) error {
	col, err := accountrepo.OwnerColumn(kind)
	if err != nil {
		return err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf("UPDATE notificacoes SET lida = TRUE WHERE id = $1 AND %s = $2", col)
	res, err := r.DB.ExecContext(ctxTimeout, query, id, accountID)
	if err != nil {
		r.logger.Error("Falha ao marcar notificação no DB.", err)
		return apperror.NewDBError("Falha ao marcar notificação como lida", err)
	}
	return database.RequireRow(res, "Notificação não encontrada.")
}
