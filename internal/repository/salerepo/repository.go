package salerepo

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// SaleRepository persiste vendas, itens, baixa de estoque e pagamento.
type SaleRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewSaleRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *SaleRepository {
	return &SaleRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Commit grava a venda inteira numa transação: venda, itens com o preço capturado,
// baixa condicional de estoque e, se houver, o pagamento com a referência de volta na venda.
// Se qualquer passo falhar nada é gravado.
func (r *SaleRepository) Commit(ctx context.Context, rec domain.SaleRecord) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	err := database.WithTx(ctxTimeout, r.DB, func(tx *sql.Tx) error {
		s := rec.Sale
		if _, err := tx.ExecContext(ctxTimeout,
			`INSERT INTO vendas (id, cliente_id, unidade_id, total, criado_em) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.ClientID, s.UnitID, s.Total, s.CreatedAt); err != nil {
			return database.MapError("Falha ao registrar venda", err)
		}

		decrements := map[string]int{}
		for _, it := range rec.Items {
			if _, err := tx.ExecContext(ctxTimeout,
				`INSERT INTO venda_itens (id, venda_id, produto_id, servico_id, quantidade, valor_unitario)
                 VALUES ($1, $2, $3, $4, $5, $6)`,
				it.ID, s.ID, it.ProductID, it.ServiceID, it.Quantity, it.UnitPrice); err != nil {
				return database.MapError("Falha ao registrar item da venda", err)
			}
			if it.ProductID != nil {
				decrements[*it.ProductID] += it.Quantity
			}
		}

		// Ordem fixa de produtos evita deadlock entre vendas concorrentes com os mesmos itens.
		productIDs := make([]string, 0, len(decrements))
		for id := range decrements {
			productIDs = append(productIDs, id)
		}
		sort.Strings(productIDs)

		for _, id := range productIDs {
			res, err := tx.ExecContext(ctxTimeout,
				`UPDATE produtos SET estoque = estoque - $1 WHERE id = $2 AND ativo = TRUE AND estoque >= $1`,
				decrements[id], id)
			if err != nil {
				return database.MapError("Falha ao baixar estoque", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return apperror.NewDBError("Falha ao verificar baixa de estoque", err)
			}
			if n == 0 {
				return apperror.NewInsufficientStockError(id)
			}
		}

		if p := rec.Payment; p != nil {
			if _, err := tx.ExecContext(ctxTimeout,
				`INSERT INTO pagamentos (id, venda_id, forma_pagamento, valor, status_pagamento, data_pagamento)
                 VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, s.ID, p.Method, p.Amount, p.Status, p.PaidAt); err != nil {
				return database.MapError("Falha ao registrar pagamento da venda", err)
			}
			if _, err := tx.ExecContext(ctxTimeout,
				`UPDATE vendas SET pagamento_id = $1 WHERE id = $2`, p.ID, s.ID); err != nil {
				return apperror.NewDBError("Falha ao vincular pagamento à venda", err)
			}
		}
		return nil
	})
	if err != nil {
		if !apperror.IsAppError(err) {
			r.logger.Error("Falha na transação de venda.", err)
			return apperror.NewDBError("Falha ao registrar venda", err)
		}
		r.logger.Warn("Venda revertida.", map[string]interface{}{"venda_id": rec.Sale.ID, "motivo": err.Error()})
		return err
	}

	r.logger.Info("Venda registrada.", map[string]interface{}{
		"venda_id": rec.Sale.ID,
		"itens":    len(rec.Items),
		"total":    rec.Sale.Total.StringFixed(2),
	})
	return nil
}

const saleColumns = "id, cliente_id, unidade_id, total, pagamento_id, criado_em"

func scanSale(row interface{ Scan(...interface{}) error }) (domain.Sale, error) {
	var (
		s                   domain.Sale
		clientID, paymentID sql.NullString
	)
	if err := row.Scan(&s.ID, &clientID, &s.UnitID, &s.Total, &paymentID, &s.CreatedAt); err != nil {
		return domain.Sale{}, err
	}
	if clientID.Valid {
		s.ClientID = &clientID.String
	}
	if paymentID.Valid {
		s.PaymentID = &paymentID.String
	}
	return s, nil
}

func (r *SaleRepository) List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	var f database.Filter
	if filter.DateFrom != "" {
		f.Add("criado_em::date >= ?::date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		f.Add("criado_em::date <= ?::date", filter.DateTo)
	}
	if filter.ClientID != "" {
		f.Add("cliente_id = ?", filter.ClientID)
	}
	if filter.UnitID != "" {
		f.Add("unidade_id = ?", filter.UnitID)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, "SELECT "+saleColumns+" FROM vendas"+f.Where()+" ORDER BY criado_em DESC", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar vendas no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar vendas", err)
	}
	defer rows.Close()

	out := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler venda", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar vendas", err)
	}
	return out, nil
}

// GetByID devolve a venda com seus itens.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	s, err := scanSale(r.DB.QueryRowContext(ctxTimeout, "SELECT "+saleColumns+" FROM vendas WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, apperror.NewNotFoundError("Venda não encontrada.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar venda no DB.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao obter venda", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT id, venda_id, produto_id, servico_id, quantidade, valor_unitario FROM venda_itens WHERE venda_id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao buscar itens da venda no DB.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao obter itens da venda", err)
	}
	defer rows.Close()

	s.Items = []domain.SaleItem{}
	for rows.Next() {
		var (
			it                   domain.SaleItem
			productID, serviceID sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.SaleID, &productID, &serviceID, &it.Quantity, &it.UnitPrice); err != nil {
			return domain.Sale{}, apperror.NewDBError("Falha ao ler item da venda", err)
		}
		if productID.Valid {
			it.ProductID = &productID.String
		}
		if serviceID.Valid {
			it.ServiceID = &serviceID.String
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.Sale{}, apperror.NewDBError("Falha ao iterar itens da venda", err)
	}
	return s, nil
}
