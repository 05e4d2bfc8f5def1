package catalogrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
)

const productColumns = "id, nome, descricao, preco, estoque, unidade_id, ativo"

func scanProduct(row interface{ Scan(...interface{}) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.UnitID, &p.Active)
	return p, err
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO produtos (id, nome, descricao, preco, estoque, unidade_id, ativo) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.UnitID, p.Active)
	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, database.MapError("Falha ao criar produto", err)
	}
	return p, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var f database.Filter
	if filter.UnitID != "" {
		f.Add("unidade_id = ?", filter.UnitID)
	}
	if filter.Active != nil {
		f.Add("ativo = ?", *filter.Active)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, "SELECT "+productColumns+" FROM produtos"+f.Where()+" ORDER BY nome", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar produtos", err)
	}
	defer rows.Close()

	out := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler produto", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar produtos", err)
	}
	return out, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p, err := scanProduct(r.DB.QueryRowContext(ctxTimeout, "SELECT "+productColumns+" FROM produtos WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError("Produto não encontrado.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto", err)
	}
	return p, nil
}

// UpdateProduct altera os dados cadastrais. O estoque só muda por AdjustStock ou por venda.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE produtos SET nome = $1, descricao = $2, preco = $3, unidade_id = $4, ativo = $5 WHERE id = $6`,
		p.Name, p.Description, p.Price, p.UnitID, p.Active, p.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return database.MapError("Falha ao atualizar produto", err)
	}
	return database.RequireRow(res, "Produto não encontrado.")
}

func (r *CatalogRepository) DeactivateProduct(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, "UPDATE produtos SET ativo = FALSE WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Falha ao inativar produto no DB.", err)
		return apperror.NewDBError("Falha ao inativar produto", err)
	}
	return database.RequireRow(res, "Produto não encontrado.")
}

// AdjustStock soma delta ao estoque num único UPDATE condicional e devolve o novo saldo.
// Um ajuste que deixaria o estoque negativo não altera nada e vira ValidationError.
func (r *CatalogRepository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var stock int
	err := r.DB.QueryRowContext(ctxTimeout,
		"UPDATE produtos SET estoque = estoque + $1 WHERE id = $2 AND estoque + $1 >= 0 RETURNING estoque", delta, id).
		Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		// Distingue produto inexistente de saldo insuficiente
		if _, getErr := r.GetProduct(ctx, id); getErr != nil {
			return 0, getErr
		}
		r.logger.Warn("Ajuste resultaria em estoque negativo.", map[string]interface{}{"produto_id": id, "delta": delta})
		return 0, apperror.NewValidationError("Ajuste resultaria em quantidade de estoque negativa.")
	}
	if err != nil {
		r.logger.Error("Falha ao ajustar estoque no DB.", err)
		return 0, apperror.NewDBError("Falha ao ajustar estoque", err)
	}

	r.logger.Info("Estoque ajustado.", map[string]interface{}{"produto_id": id, "delta": delta, "estoque": stock})
	return stock, nil
}

// ProductPrice lê preço e estoque atuais de um produto ativo para a venda.
func (r *CatalogRepository) ProductPrice(ctx context.Context, id string) (domain.PricedItem, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	item := domain.PricedItem{ID: id, Active: true}
	err := r.DB.QueryRowContext(ctxTimeout, "SELECT nome, preco, estoque FROM produtos WHERE id = $1 AND ativo = TRUE", id).
		Scan(&item.Name, &item.Price, &item.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PricedItem{}, apperror.NewNotFoundError("Produto " + id + " não encontrado ou inativo.")
	}
	if err != nil {
		r.logger.Error("Falha ao ler preço do produto.", err)
		return domain.PricedItem{}, apperror.NewDBError("Falha ao ler preço do produto", err)
	}
	return item, nil
}
