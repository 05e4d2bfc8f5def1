package reportrepo

import (
	"context"
	"database/sql"
	"time"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
)

// ReportRepository executa as consultas agregadas dos relatórios gerenciais.
type ReportRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewReportRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ReportRepository {
	return &ReportRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func rangeFilter(f *database.Filter, column string, dr domain.DateRange) {
	if dr.Set() {
		f.Add(column+" >= ?::date", dr.From)
		f.Add(column+" <= ?::date", dr.To)
	}
}

// SalesByDay soma as vendas por dia.
func (r *ReportRepository) SalesByDay(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error) {
	var f database.Filter
	rangeFilter(&f, "criado_em::date", dr)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `
        SELECT to_char(criado_em::date, 'YYYY-MM-DD') AS data, COALESCE(SUM(total), 0), COUNT(*)
        FROM vendas`+f.Where()+`
        GROUP BY criado_em::date
        ORDER BY criado_em::date ASC`, f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao gerar relatório de vendas.", err)
		return nil, apperror.NewDBError("Erro ao gerar relatório de vendas", err)
	}
	defer rows.Close()

	out := []domain.DailySales{}
	for rows.Next() {
		var d domain.DailySales
		if err := rows.Scan(&d.Date, &d.Total, &d.Quantity); err != nil {
			return nil, apperror.NewDBError("Falha ao ler relatório de vendas", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar relatório de vendas", err)
	}
	return out, nil
}

// AppointmentsByStatus conta agendamentos por status.
func (r *ReportRepository) AppointmentsByStatus(ctx context.Context, dr domain.DateRange) ([]domain.AppointmentsByStatus, error) {
	var f database.Filter
	rangeFilter(&f, "data_agendamento", dr)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `
        SELECT status_agendamento, COUNT(*)
        FROM agendamentos`+f.Where()+`
        GROUP BY status_agendamento
        ORDER BY status_agendamento`, f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao gerar relatório de agendamentos.", err)
		return nil, apperror.NewDBError("Erro ao gerar relatório de agendamentos", err)
	}
	defer rows.Close()

	out := []domain.AppointmentsByStatus{}
	for rows.Next() {
		var a domain.AppointmentsByStatus
		if err := rows.Scan(&a.Status, &a.Quantity); err != nil {
			return nil, apperror.NewDBError("Falha ao ler relatório de agendamentos", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar relatório de agendamentos", err)
	}
	return out, nil
}

// Commissions calcula preço do serviço x percentual do barbeiro sobre os agendamentos concluídos.
func (r *ReportRepository) Commissions(ctx context.Context, dr domain.DateRange) ([]domain.BarberCommission, error) {
	var f database.Filter
	f.Add("a.status_agendamento = ?", domain.StatusCompleted)
	rangeFilter(&f, "a.data_agendamento", dr)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `
        SELECT b.id, b.nome, ROUND(SUM(s.preco * b.percentual_comissao / 100.0), 2)
        FROM agendamentos a
        JOIN barbeiros b ON a.barbeiro_id = b.id
        JOIN servicos s ON a.servico_id = s.id`+f.Where()+`
        GROUP BY b.id, b.nome
        ORDER BY b.nome`, f.Args()...)
	if err != nil {
		r.logger.Error("Falha ao gerar relatório de comissões.", err)
		return nil, apperror.NewDBError("Erro ao gerar relatório de comissões", err)
	}
	defer rows.Close()

	out := []domain.BarberCommission{}
	for rows.Next() {
		var c domain.BarberCommission
		if err := rows.Scan(&c.BarberID, &c.BarberName, &c.Total); err != nil {
			return nil, apperror.NewDBError("Falha ao ler relatório de comissões", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar relatório de comissões", err)
	}
	return out, nil
}
