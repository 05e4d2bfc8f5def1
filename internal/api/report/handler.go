package report

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
)

// ReportService define os relatórios gerenciais.
type ReportService interface {
	Sales(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error)
	Appointments(ctx context.Context, dr domain.DateRange) ([]domain.AppointmentsByStatus, error)
	Commissions(ctx context.Context, dr domain.DateRange) ([]domain.BarberCommission, error)
}

type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// O formato das datas é validado pelo serviço.
func dateRange(r *http.Request) domain.DateRange {
	return domain.DateRange{
		From: respond.Query(r, "data_inicio"),
		To:   respond.Query(r, "data_fim"),
	}
}

// SalesReportHandler lida com a requisição GET /api/relatorios/vendas.
// @Summary Vendas por dia
// @Tags relatorios
// @Produce json
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Success 200 {array} domain.DailySales
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Security ApiKeyAuth
// @Router /relatorios/vendas [get]
func (h *Handler) SalesReportHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Sales(r.Context(), dateRange(r))
	respond.Write(w, r, h.Logger, rows, err, http.StatusOK)
}

// AppointmentsReportHandler lida com a requisição GET /api/relatorios/agendamentos.
// @Summary Agendamentos por status
// @Tags relatorios
// @Produce json
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Success 200 {array} domain.AppointmentsByStatus
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Security ApiKeyAuth
// @Router /relatorios/agendamentos [get]
func (h *Handler) AppointmentsReportHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Appointments(r.Context(), dateRange(r))
	respond.Write(w, r, h.Logger, rows, err, http.StatusOK)
}

// CommissionsReportHandler lida com a requisição GET /api/relatorios/comissoes.
// @Summary Comissões por barbeiro
// @Description Soma os serviços de agendamentos concluídos no período e aplica o percentual de cada barbeiro.
// @Tags relatorios
// @Produce json
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Success 200 {array} domain.BarberCommission
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Security ApiKeyAuth
// @Router /relatorios/comissoes [get]
func (h *Handler) CommissionsReportHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Commissions(r.Context(), dateRange(r))
	respond.Write(w, r, h.Logger, rows, err, http.StatusOK)
}
