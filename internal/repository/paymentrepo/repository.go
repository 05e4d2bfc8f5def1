package paymentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// PaymentRepository implementa o armazenamento de pagamentos avulsos.
type PaymentRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewPaymentRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PaymentRepository {
	return &PaymentRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

const paymentColumns = "id, agendamento_id, venda_id, forma_pagamento, valor, status_pagamento, codigo_transacao, data_pagamento"

func scanPayment(row interface{ Scan(...interface{}) error }) (domain.Payment, error) {
	var (
		p                                      domain.Payment
		appointmentID, saleID, transactionCode sql.NullString
		paidAt                                 sql.NullTime
	)
	if err := row.Scan(&p.ID, &appointmentID, &saleID, &p.Method, &p.Amount, &p.Status, &transactionCode, &paidAt); err != nil {
		return domain.Payment{}, err
	}
	if appointmentID.Valid {
		p.AppointmentID = &appointmentID.String
	}
	if saleID.Valid {
		p.SaleID = &saleID.String
	}
	if transactionCode.Valid {
		p.TransactionCode = &transactionCode.String
	}
	if paidAt.Valid {
		p.PaidAt = &paidAt.Time
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO pagamentos (`+paymentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.AppointmentID, p.SaleID, p.Method, p.Amount, p.Status, p.TransactionCode, p.PaidAt)
	if err != nil {
		r.logger.Error("Falha ao inserir pagamento no DB.", err)
		return domain.Payment{}, database.MapError("Falha ao criar pagamento", err)
	}
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	var f database.Filter
	if filter.Status != "" {
		f.Add("status_pagamento = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		f.Add("data_pagamento::date >= ?::date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		f.Add("data_pagamento::date <= ?::date", filter.DateTo)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		"SELECT "+paymentColumns+" FROM pagamentos"+f.Where()+" ORDER BY data_pagamento DESC NULLS LAST", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar pagamentos no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar pagamentos", err)
	}
	defer rows.Close()

	out := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler pagamento", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar pagamentos", err)
	}
	return out, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p, err := scanPayment(r.DB.QueryRowContext(ctxTimeout, "SELECT "+paymentColumns+" FROM pagamentos WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Payment{}, apperror.NewNotFoundError("Pagamento não encontrado.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar pagamento no DB.", err)
		return domain.Payment{}, apperror.NewDBError("Falha ao obter pagamento", err)
	}
	return p, nil
}

// Update grava somente os campos presentes em u. As colunas vêm de uma lista fixa.
func (r *PaymentRepository) Update(ctx context.Context, id string, u domain.PaymentUpdate) error {
	var (
		sets []string
		args []interface{}
	)
	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.Status != nil {
		set("status_pagamento", *u.Status)
	}
	if u.TransactionCode != nil {
		set("codigo_transacao", *u.TransactionCode)
	}
	if u.PaidAt != nil {
		set("data_pagamento", *u.PaidAt)
	}
	if u.Method != nil {
		set("forma_pagamento", *u.Method)
	}
	if u.Amount != nil {
		set("valor", *u.Amount)
	}
	if len(sets) == 0 {
		return apperror.NewValidationError("Nenhum campo para atualizar.")
	}
	args = append(args, id)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf("UPDATE pagamentos SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.DB.ExecContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao atualizar pagamento no DB.", err)
		return database.MapError("Falha ao atualizar pagamento", err)
	}
	return database.RequireRow(res, "Pagamento não encontrado.")
}
