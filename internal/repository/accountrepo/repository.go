package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// commonColumns é o prefixo comum às três tabelas de conta; cada tipo acrescenta suas colunas.
const commonColumns = "id, nome, cpf, email, telefone, senha_hash, ativo, criado_em"

// kindSQL reúne tudo o que muda entre usuarios, barbeiros e clientes.
type kindSQL struct {
	table       string
	extra       string // colunas específicas, na ordem de scanExtra
	ownerColumn string // FK usada por notificacoes e tokens_recuperacao
	label       string
	scanExtra   func(a *domain.Account) []interface{}
}

// kinds é a tabela fixa tipo de conta -> projeção. Nenhum nome de tabela vem da requisição.
var kinds = map[domain.AccountKind]*kindSQL{
	domain.KindStaff: {
		table:       "usuarios",
		extra:       "tipo, unidade_id",
		ownerColumn: "usuario_id",
		label:       "Usuário",
		scanExtra: func(a *domain.Account) []interface{} {
			return []interface{}{&a.Role, &nullUnit{a}}
		},
	},
	domain.KindBarber: {
		table:       "barbeiros",
		extra:       "unidade_id, foto_base64, percentual_comissao",
		ownerColumn: "barbeiro_id",
		label:       "Barbeiro",
		scanExtra: func(a *domain.Account) []interface{} {
			a.CommissionPercent = &decimal.Decimal{}
			return []interface{}{&nullUnit{a}, &a.PhotoBase64, a.CommissionPercent}
		},
	},
	domain.KindClient: {
		table:       "clientes",
		extra:       "observacoes",
		ownerColumn: "cliente_id",
		label:       "Cliente",
		scanExtra: func(a *domain.Account) []interface{} {
			return []interface{}{&a.Notes}
		},
	},
}

// nullUnit converte unidade_id anulável para *string.
type nullUnit struct{ a *domain.Account }

func (n *nullUnit) Scan(src interface{}) error {
	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	if ns.Valid {
		v := ns.String
		n.a.UnitID = &v
	} else {
		n.a.UnitID = nil
	}
	return nil
}

func lookup(kind domain.AccountKind) (*kindSQL, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, apperror.NewValidationError(fmt.Sprintf("Tipo de conta desconhecido: %s", kind))
	}
	return k, nil
}

// OwnerColumn devolve a coluna de FK que aponta para uma conta do tipo informado.
func OwnerColumn(kind domain.AccountKind) (string, error) {
	k, err := lookup(kind)
	if err != nil {
		return "", err
	}
	return k.ownerColumn, nil
}

// AccountRepository implementa o armazenamento das três categorias de conta.
type AccountRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAccountRepository cria uma nova instância do AccountRepository, injetando o DB.
func NewAccountRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AccountRepository {
	return &AccountRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

func selectSQL(k *kindSQL) string {
	return fmt.Sprintf("SELECT %s, %s FROM %s", commonColumns, k.extra, k.table)
}

func scanAccount(row interface{ Scan(...interface{}) error }, kind domain.AccountKind, k *kindSQL) (domain.Account, error) {
	a := domain.Account{Kind: kind}
	dest := []interface{}{&a.ID, &a.Name, &a.CPF, &a.Email, &a.Phone, &a.PasswordHash, &a.Active, &a.CreatedAt}
	dest = append(dest, k.scanExtra(&a)...)
	if err := row.Scan(dest...); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

// FindActiveByCPF busca uma conta ativa do tipo informado. NotFound quando não existe.
func (r *AccountRepository) FindActiveByCPF(ctx context.Context, kind domain.AccountKind, cpf string) (domain.Account, error) {
	k, err := lookup(kind)
	if err != nil {
		return domain.Account{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := selectSQL(k) + " WHERE cpf = $1 AND ativo = TRUE"
	acc, err := scanAccount(r.DB.QueryRowContext(ctxTimeout, query, cpf), kind, k)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, apperror.NewNotFoundError(fmt.Sprintf("%s não encontrado.", k.label))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar conta por CPF no DB.", err)
		return domain.Account{}, apperror.NewDBError("Falha ao buscar conta", err)
	}
	return acc, nil
}

// FindByID busca uma conta (ativa ou não) pelo id.
func (r *AccountRepository) FindByID(ctx context.Context, kind domain.AccountKind, id string) (domain.Account, error) {
	k, err := lookup(kind)
	if err != nil {
		return domain.Account{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	acc, err := scanAccount(r.DB.QueryRowContext(ctxTimeout, selectSQL(k)+" WHERE id = $1", id), kind, k)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, apperror.NewNotFoundError(fmt.Sprintf("%s não encontrado.", k.label))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar conta por id no DB.", err)
		return domain.Account{}, apperror.NewDBError("Falha ao buscar conta", err)
	}
	return acc, nil
}

// CPFExists verifica o CPF nas três tabelas (ativas ou não).
func (r *AccountRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT EXISTS (
            SELECT 1 FROM usuarios WHERE cpf = $1
            UNION ALL SELECT 1 FROM barbeiros WHERE cpf = $1
            UNION ALL SELECT 1 FROM clientes WHERE cpf = $1
        )`

	var exists bool
	if err := r.DB.QueryRowContext(ctxTimeout, query, cpf).Scan(&exists); err != nil {
		r.logger.Error("Falha ao verificar CPF no DB.", err)
		return false, apperror.NewDBError("Falha ao verificar CPF", err)
	}
	return exists, nil
}

// Create insere a conta na tabela do seu tipo, gerando id e criado_em.
func (r *AccountRepository) Create(ctx context.Context, acc domain.Account) (domain.Account, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	acc.ID = uuid.NewString()
	acc.CreatedAt = time.Now()
	acc.Active = true

	var (
		query string
		args  []interface{}
	)
	switch acc.Kind {
	case domain.KindStaff:
		query = `INSERT INTO usuarios (id, nome, cpf, email, telefone, senha_hash, tipo, unidade_id, ativo, criado_em)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		args = []interface{}{acc.ID, acc.Name, acc.CPF, acc.Email, acc.Phone, acc.PasswordHash, acc.Role, acc.UnitID, acc.Active, acc.CreatedAt}
	case domain.KindBarber:
		commission := decimal.Zero
		if acc.CommissionPercent != nil {
			commission = *acc.CommissionPercent
		}
		query = `INSERT INTO barbeiros (id, nome, cpf, email, telefone, senha_hash, unidade_id, foto_base64, percentual_comissao, ativo, criado_em)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		args = []interface{}{acc.ID, acc.Name, acc.CPF, acc.Email, acc.Phone, acc.PasswordHash, acc.UnitID, acc.PhotoBase64, commission, acc.Active, acc.CreatedAt}
	case domain.KindClient:
		query = `INSERT INTO clientes (id, nome, cpf, email, telefone, senha_hash, observacoes, ativo, criado_em)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		args = []interface{}{acc.ID, acc.Name, acc.CPF, acc.Email, acc.Phone, acc.PasswordHash, acc.Notes, acc.Active, acc.CreatedAt}
	default:
		return domain.Account{}, apperror.NewValidationError(fmt.Sprintf("Tipo de conta desconhecido: %s", acc.Kind))
	}

	if _, err := r.DB.ExecContext(ctxTimeout, query, args...); err != nil {
		r.logger.Error("Falha ao inserir conta no DB.", err)
		return domain.Account{}, database.MapError("Falha ao cadastrar conta", err)
	}

	r.logger.Info("Conta cadastrada.", map[string]interface{}{"conta_id": acc.ID, "tipo_conta": acc.Kind})
	return acc, nil
}

// UpdatePassword troca o hash da senha. Recebe o Querier para poder participar de uma transação.
func (r *AccountRepository) UpdatePassword(ctx context.Context, q database.Querier, kind domain.AccountKind, id, hash string) error {
	k, err := lookup(kind)
	if err != nil {
		return err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := q.ExecContext(ctxTimeout, fmt.Sprintf("UPDATE %s SET senha_hash = $1 WHERE id = $2", k.table), hash, id)
	if err != nil {
		r.logger.Error("Falha ao atualizar senha no DB.", err)
		return apperror.NewDBError("Falha ao atualizar senha", err)
	}
	return database.RequireRow(res, fmt.Sprintf("%s não encontrado.", k.label))
}

// SetPassword troca a senha fora de transação (alteração pelo próprio usuário).
func (r *AccountRepository) SetPassword(ctx context.Context, kind domain.AccountKind, id, hash string) error {
	return r.UpdatePassword(ctx, r.DB, kind, id, hash)
}

// UpdateProfile altera nome e contatos; a foto só existe para barbeiros.
func (r *AccountRepository) UpdateProfile(ctx context.Context, kind domain.AccountKind, id string, p domain.ProfileUpdate) error {
	k, err := lookup(kind)
	if err != nil {
		return err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var res sql.Result
	if kind == domain.KindBarber && p.PhotoBase64 != "" {
		res, err = r.DB.ExecContext(ctxTimeout,
			"UPDATE barbeiros SET nome = $1, email = $2, telefone = $3, foto_base64 = $4 WHERE id = $5",
			p.Name, p.Email, p.Phone, p.PhotoBase64, id)
	} else {
		res, err = r.DB.ExecContext(ctxTimeout,
			fmt.Sprintf("UPDATE %s SET nome = $1, email = $2, telefone = $3 WHERE id = $4", k.table),
			p.Name, p.Email, p.Phone, id)
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar perfil no DB.", err)
		return database.MapError("Falha ao atualizar perfil", err)
	}
	return database.RequireRow(res, fmt.Sprintf("%s não encontrado.", k.label))
}

// Deactivate marca a conta como inativa; contas nunca são apagadas.
func (r *AccountRepository) Deactivate(ctx context.Context, kind domain.AccountKind, id string) error {
	k, err := lookup(kind)
	if err != nil {
		return err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, fmt.Sprintf("UPDATE %s SET ativo = FALSE WHERE id = $1", k.table), id)
	if err != nil {
		r.logger.Error("Falha ao desativar conta no DB.", err)
		return apperror.NewDBError("Falha ao desativar conta", err)
	}
	if err := database.RequireRow(res, fmt.Sprintf("%s não encontrado.", k.label)); err != nil {
		return err
	}

	r.logger.Info("Conta desativada.", map[string]interface{}{"conta_id": id, "tipo_conta": kind})
	return nil
}

// List lista contas do tipo informado com filtros opcionais, ordenadas por nome.
func (r *AccountRepository) List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	k, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	var f database.Filter
	if filter.UnitID != "" && kind != domain.KindClient {
		f.Add("unidade_id = ?", filter.UnitID)
	}
	if filter.Name != "" {
		f.Add("nome ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.CPF != "" {
		f.Add("cpf = ?", filter.CPF)
	}
	if filter.Active != nil {
		f.Add("ativo = ?", *filter.Active)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, selectSQL(k)+f.Where()+" ORDER BY nome", f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao listar contas no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar contas", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows, kind, k)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler conta", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar contas", err)
	}
	return accounts, nil
}

// ListActiveStaffByRole devolve a equipe ativa de um papel (usado no aviso aos administradores).
func (r *AccountRepository) ListActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.Account, error) {
	active := true
	accounts, err := r.List(ctx, domain.KindStaff, domain.AccountFilter{Active: &active})
	if err != nil {
		return nil, err
	}
	out := accounts[:0]
	for _, a := range accounts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}
