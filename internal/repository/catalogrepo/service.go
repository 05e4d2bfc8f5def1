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

const serviceColumns = `s.id, s.nome, s.descricao, s.preco, s.duracao_minutos, s.categoria_id, c.nome, s.unidade_id, s.ativo`

const serviceFrom = ` FROM servicos s LEFT JOIN categorias_servicos c ON s.categoria_id = c.id`

func scanService(row interface{ Scan(...interface{}) error }) (domain.Service, error) {
	var (
		s            domain.Service
		categoryID   sql.NullString
		categoryName sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &categoryID, &categoryName, &s.UnitID, &s.Active); err != nil {
		return domain.Service{}, err
	}
	if categoryID.Valid {
		s.CategoryID = &categoryID.String
	}
	if categoryName.Valid {
		s.CategoryName = &categoryName.String
	}
	return s, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s domain.Service) (domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	s.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO servicos (id, nome, descricao, preco, duracao_minutos, categoria_id, unidade_id, ativo)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.CategoryID, s.UnitID, s.Active)
	if err != nil {
		r.logger.Error("Falha ao inserir serviço no DB.", err)
		return domain.Service{}, database.MapError("Falha ao criar serviço", err)
	}
	return s, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	var f database.Filter
	if filter.UnitID != "" {
		f.Add("s.unidade_id = ?", filter.UnitID)
	}
	if filter.CategoryID != "" {
		f.Add("s.categoria_id = ?", filter.CategoryID)
	}
	if filter.Active != nil {
		f.Add("s.ativo = ?", *filter.Active)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, "SELECT "+serviceColumns+serviceFrom+f.Where()+" ORDER BY s.nome", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar serviços no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar serviços", err)
	}
	defer rows.Close()

	out := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler serviço", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar serviços", err)
	}
	return out, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, id string) (domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	s, err := scanService(r.DB.QueryRowContext(ctxTimeout, "SELECT "+serviceColumns+serviceFrom+" WHERE s.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Service{}, apperror.NewNotFoundError("Serviço não encontrado.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar serviço no DB.", err)
		return domain.Service{}, apperror.NewDBError("Falha ao buscar serviço", err)
	}
	return s, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s domain.Service) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE servicos SET nome = $1, descricao = $2, preco = $3, duracao_minutos = $4, categoria_id = $5, unidade_id = $6, ativo = $7
         WHERE id = $8`,
		s.Name, s.Description, s.Price, s.DurationMinutes, s.CategoryID, s.UnitID, s.Active, s.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar serviço no DB.", err)
		return database.MapError("Falha ao atualizar serviço", err)
	}
	return database.RequireRow(res, "Serviço não encontrado.")
}

func (r *CatalogRepository) DeactivateService(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, "UPDATE servicos SET ativo = FALSE WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Falha ao inativar serviço no DB.", err)
		return apperror.NewDBError("Falha ao inativar serviço", err)
	}
	return database.RequireRow(res, "Serviço não encontrado.")
}

// ServicePrice lê o preço atual de um serviço ativo para a venda.
func (r *CatalogRepository) ServicePrice(ctx context.Context, id string) (domain.PricedItem, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	item := domain.PricedItem{ID: id, Active: true}
	err := r.DB.QueryRowContext(ctxTimeout, "SELECT nome, preco FROM servicos WHERE id = $1 AND ativo = TRUE", id).
		Scan(&item.Name, &item.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PricedItem{}, apperror.NewNotFoundError("Serviço " + id + " não encontrado ou inativo.")
	}
	if err != nil {
		r.logger.Error("Falha ao ler preço do serviço.", err)
		return domain.PricedItem{}, apperror.NewDBError("Falha ao ler preço do serviço", err)
	}
	return item, nil
}
