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

func (r *CatalogRepository) CreateCategory(ctx context.Context, c domain.ServiceCategory) (domain.ServiceCategory, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	c.ID = uuid.NewString()
	if _, err := r.DB.ExecContext(ctxTimeout,
		"INSERT INTO categorias_servicos (id, nome, descricao) VALUES ($1, $2, $3)", c.ID, c.Name, c.Description); err != nil {
		r.logger.Error("Falha ao inserir categoria no DB.", err)
		return domain.ServiceCategory{}, database.MapError("Falha ao criar categoria", err)
	}
	return c, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, "SELECT id, nome, descricao FROM categorias_servicos ORDER BY nome")
	if err != nil {
		r.logger.Error("Falha ao listar categorias no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar categorias", err)
	}
	defer rows.Close()

	out := []domain.ServiceCategory{}
	for rows.Next() {
		var c domain.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, apperror.NewDBError("Falha ao ler categoria", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar categorias", err)
	}
	return out, nil
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (domain.ServiceCategory, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var c domain.ServiceCategory
	err := r.DB.QueryRowContext(ctxTimeout, "SELECT id, nome, descricao FROM categorias_servicos WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ServiceCategory{}, apperror.NewNotFoundError("Categoria não encontrada.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar categoria no DB.", err)
		return domain.ServiceCategory{}, apperror.NewDBError("Falha ao buscar categoria", err)
	}
	return c, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c domain.ServiceCategory) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		"UPDATE categorias_servicos SET nome = $1, descricao = $2 WHERE id = $3", c.Name, c.Description, c.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar categoria no DB.", err)
		return database.MapError("Falha ao atualizar categoria", err)
	}
	return database.RequireRow(res, "Categoria não encontrada.")
}

// DeleteCategory apaga a categoria; se algum serviço ainda a usa, a FK devolve ValidationError.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, "DELETE FROM categorias_servicos WHERE id = $1", id)
	if err != nil {
		r.logger.Warn("Falha ao excluir categoria.", map[string]interface{}{"categoria_id": id, "erro": err.Error()})
		return database.MapError("Falha ao excluir categoria", err)
	}
	return database.RequireRow(res, "Categoria não encontrada.")
}
