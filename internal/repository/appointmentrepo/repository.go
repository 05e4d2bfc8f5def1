package appointmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// AppointmentRepository implementa o armazenamento de agendamentos e do seu histórico de status.
type AppointmentRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewAppointmentRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AppointmentRepository {
	return &AppointmentRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

const detailSelect = `
    SELECT a.id, a.cliente_id, a.barbeiro_id, a.servico_id, a.unidade_id,
           to_char(a.data_agendamento, 'YYYY-MM-DD'), a.hora_inicio, a.hora_fim,
           a.status_agendamento, a.pagamento_id, a.criado_em,
           c.nome, b.nome, s.nome, s.preco, u.nome,
           c.telefone, b.telefone, u.endereco
    FROM agendamentos a
    JOIN clientes c ON a.cliente_id = c.id
    JOIN barbeiros b ON a.barbeiro_id = b.id
    JOIN servicos s ON a.servico_id = s.id
    JOIN unidades u ON a.unidade_id = u.id`

func scanDetail(row interface{ Scan(...interface{}) error }) (domain.AppointmentDetail, error) {
	var (
		d         domain.AppointmentDetail
		paymentID sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.ClientID, &d.BarberID, &d.ServiceID, &d.UnitID,
		&d.Date, &d.StartTime, &d.EndTime,
		&d.Status, &paymentID, &d.CreatedAt,
		&d.ClientName, &d.BarberName, &d.ServiceName, &d.ServicePrice, &d.UnitName,
		&d.ClientPhone, &d.BarberPhone, &d.UnitAddress,
	)
	if err != nil {
		return domain.AppointmentDetail{}, err
	}
	if paymentID.Valid {
		d.PaymentID = &paymentID.String
	}
	return d, nil
}

// Create insere o agendamento com status inicial "agendado".
func (r *AppointmentRepository) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	a.Status = domain.StatusScheduled
	a.CreatedAt = time.Now()

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO agendamentos (id, cliente_id, barbeiro_id, servico_id, unidade_id, data_agendamento, hora_inicio, hora_fim, status_agendamento, criado_em)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.ClientID, a.BarberID, a.ServiceID, a.UnitID, a.Date, a.StartTime, a.EndTime, a.Status, a.CreatedAt)
	if err != nil {
		r.logger.Error("Falha ao inserir agendamento no DB.", err)
		return domain.Appointment{}, database.MapError("Falha ao criar agendamento", err)
	}

	r.logger.Info("Agendamento criado.", map[string]interface{}{"agendamento_id": a.ID, "barbeiro_id": a.BarberID})
	return a, nil
}

// GetDetail devolve o agendamento com nomes e telefones usados nas notificações.
func (r *AppointmentRepository) GetDetail(ctx context.Context, id string) (domain.AppointmentDetail, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	d, err := scanDetail(r.DB.QueryRowContext(ctxTimeout, detailSelect+" WHERE a.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AppointmentDetail{}, apperror.NewNotFoundError("Agendamento não encontrado.")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar agendamento no DB.", err)
		return domain.AppointmentDetail{}, apperror.NewDBError("Falha ao buscar agendamento", err)
	}
	return d, nil
}

// List aplica os filtros e ordena do mais recente para o mais antigo.
func (r *AppointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var f database.Filter
	if filter.Status != "" {
		f.Add("a.status_agendamento = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		f.Add("a.data_agendamento >= ?::date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		f.Add("a.data_agendamento <= ?::date", filter.DateTo)
	}
	if filter.ClientID != "" {
		f.Add("a.cliente_id = ?", filter.ClientID)
	}
	if filter.BarberID != "" {
		f.Add("a.barbeiro_id = ?", filter.BarberID)
	}
	if filter.UnitID != "" {
		f.Add("a.unidade_id = ?", filter.UnitID)
	}

	details, err := r.query(ctx, detailSelect+f.Where()+" ORDER BY a.data_agendamento DESC, a.hora_inicio DESC", f.Args()...)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Appointment, 0, len(details))
	for _, d := range details {
		out = append(out, d.Appointment)
	}
	return out, nil
}

// ListForDay devolve os agendamentos do dia nos status informados, em ordem de horário.
func (r *AppointmentRepository) ListForDay(ctx context.Context, date string, statuses ...domain.AppointmentStatus) ([]domain.AppointmentDetail, error) {
	var f database.Filter
	f.Add("a.data_agendamento = ?::date", date)
	if len(statuses) > 0 {
		list := make([]string, len(statuses))
		for i, s := range statuses {
			list[i] = string(s)
		}
		f.Add("a.status_agendamento = ANY(?)", pq.Array(list))
	}
	return r.query(ctx, detailSelect+f.Where()+" ORDER BY a.hora_inicio", f.Args()...)
}

func (r *AppointmentRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.AppointmentDetail, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar agendamentos no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar agendamentos", err)
	}
	defer rows.Close()

	out := []domain.AppointmentDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler agendamento", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar agendamentos", err)
	}
	return out, nil
}

// UpdateStatus aplica a transição e grava exatamente uma linha de histórico na mesma transação.
// A linha do agendamento fica travada (FOR UPDATE) até o COMMIT.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, next domain.AppointmentStatus, now time.Time) (domain.StatusHistory, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var h domain.StatusHistory
	err := database.WithTx(ctxTimeout, r.DB, func(tx *sql.Tx) error {
		var current domain.AppointmentStatus
		err := tx.QueryRowContext(ctxTimeout,
			"SELECT status_agendamento FROM agendamentos WHERE id = $1 FOR UPDATE", id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFoundError("Agendamento não encontrado.")
		}
		if err != nil {
			return apperror.NewDBError("Falha ao buscar agendamento", err)
		}

		if current == next {
			return apperror.NewValidationError("O agendamento já está com esse status.")
		}
		if current.Terminal() {
			return apperror.NewValidationError(fmt.Sprintf("Agendamento %s não pode mudar de status.", current))
		}

		if _, err := tx.ExecContext(ctxTimeout,
			"UPDATE agendamentos SET status_agendamento = $1 WHERE id = $2", next, id); err != nil {
			return apperror.NewDBError("Falha ao atualizar status", err)
		}

		h = domain.StatusHistory{
			ID:             uuid.NewString(),
			AppointmentID:  id,
			PreviousStatus: current,
			NewStatus:      next,
			ChangedAt:      now,
		}
		if _, err := tx.ExecContext(ctxTimeout,
			`INSERT INTO historico_agendamentos (id, agendamento_id, status_anterior, status_novo, data_alteracao)
             VALUES ($1, $2, $3, $4, $5)`,
			h.ID, h.AppointmentID, h.PreviousStatus, h.NewStatus, h.ChangedAt); err != nil {
			return apperror.NewDBError("Falha ao gravar histórico", err)
		}
		return nil
	})
	if err != nil {
		if !apperror.IsAppError(err) {
			r.logger.Error("Falha na transação de status do agendamento.", err)
			return domain.StatusHistory{}, apperror.NewDBError("Falha ao atualizar status", err)
		}
		return domain.StatusHistory{}, err
	}

	r.logger.Info("Status do agendamento alterado.", map[string]interface{}{
		"agendamento_id": id,
		"de":             h.PreviousStatus,
		"para":           h.NewStatus,
	})
	return h, nil
}

// History lista as transições em ordem cronológica.
func (r *AppointmentRepository) History(ctx context.Context, id string) ([]domain.StatusHistory, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT id, agendamento_id, status_anterior, status_novo, data_alteracao
         FROM historico_agendamentos WHERE agendamento_id = $1 ORDER BY data_alteracao ASC`, id)
	if err != nil {
		r.logger.Error("Falha ao buscar histórico no DB.", err)
		return nil, apperror.NewDBError("Falha ao obter histórico", err)
	}
	defer rows.Close()

	out := []domain.StatusHistory{}
	for rows.Next() {
		var h domain.StatusHistory
		if err := rows.Scan(&h.ID, &h.AppointmentID, &h.PreviousStatus, &h.NewStatus, &h.ChangedAt); err != nil {
			return nil, apperror.NewDBError("Falha ao ler histórico", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar histórico", err)
	}
	return out, nil
}
