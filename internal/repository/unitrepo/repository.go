package unitrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// UnitRepository implementa o armazenamento de unidades.
type UnitRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewUnitRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UnitRepository {
	return &UnitRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func (r *UnitRepository) Create(ctx context.Context, u domain.Unit) (domain.Unit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	u.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctxTimeout,
		"INSERT INTO unidades (id, nome, endereco, telefone, ativo) VALUES ($1, $2, $3, $4, $5)",
		u.ID, u.Name, u.Address, u.Phone, u.Active)
	if err != nil {
		r.logger.Error("Falha ao inserir unidade no DB.", err)
		return domain.Unit{}, database.MapError("Falha ao criar unidade", err)
	}
	return u, nil
}

func (r *UnitRepository) List(ctx context.Context, active *bool) ([]domain.Unit, error) {
	var f database.Filter
	if active != nil {
		f.Add("ativo = ?", *active)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, "SELECT id, nome, endereco, telefone, ativo FROM unidades"+f.Where()+" ORDER BY nome", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar unidades no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar unidades", err)
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Address, &u.Phone, &u.Active); err != nil {
			return nil, apperror.NewDBError("Falha ao ler unidade", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar unidades", err)
	}
	return units, nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id string) (domain.Unit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var u domain.Unit
	err := r.DB.QueryRowContext(ctxTimeout, "SELECT id, nome, endereco, telefone, ativo FROM unidades WHERE id = $1", id).
		Scan(&u.ID, &u.Name, &u.Address, &u.Phone, &u.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Unit{}, apperror.NewNotFoundError("Unidade não encontrada.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar unidade no DB.", err)
		return domain.Unit{}, apperror.NewDBError("Falha ao buscar unidade", err)
	}
	return u, nil
}

func (r *UnitRepository) Update(ctx context.Context, u domain.Unit) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		"UPDATE unidades SET nome = $1, endereco = $2, telefone = $3, ativo = $4 WHERE id = $5",
		u.Name, u.Address, u.Phone, u.Active, u.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar unidade no DB.", err)
		return database.MapError("Falha ao atualizar unidade", err)
	}
	return database.RequireRow(res, "Unidade não encontrada.")
}

// Deactivate inativa a unidade; registros ligados a ela continuam válidos.
func (r *UnitRepository) Deactivate(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, "UPDATE unidades SET ativo = FALSE WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Falha ao inativar unidade no DB.", err)
		return apperror.NewDBError("Falha ao inativar unidade", err)
	}
	return database.RequireRow(res, "Unidade não encontrada.")
}
