package appointment

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// AppointmentService define o contrato que o Handler espera da camada de Serviço.
type AppointmentService interface {
	Create(ctx context.Context, session domain.Session, in domain.AppointmentInput) (domain.Appointment, error)
	List(ctx context.Context, session domain.Session, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, session domain.Session, id string, change domain.StatusChange) (domain.StatusHistory, error)
	History(ctx context.Context, session domain.Session, id string) ([]domain.StatusHistory, error)
}

// Handler agrupa os endpoints de agendamento.
type Handler struct {
	Service AppointmentService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AppointmentService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateAppointmentHandler lida com a requisição POST /api/agendamentos.
// @Summary Cria um agendamento
// @Description Sem hora_fim, o término é calculado pela duração do serviço. Cliente e barbeiro são avisados por WhatsApp.
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param agendamento body domain.AppointmentInput true "Dados do agendamento"
// @Success 201 {object} domain.Appointment
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 403 {object} domain.ErrorResponse "Cliente agendando para outra pessoa"
// @Security ApiKeyAuth
// @Router /agendamentos [post]
func (h *Handler) CreateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.AppointmentInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	a, err := h.Service.Create(r.Context(), session, in)
	respond.Write(w, r, h.Logger, a, err, http.StatusCreated)
}

// ListAppointmentsHandler lida com a requisição GET /api/agendamentos.
// @Summary Lista agendamentos
// @Description Clientes veem apenas os próprios; barbeiros apenas os seus.
// @Tags agendamentos
// @Produce json
// @Param status query string false "agendado, confirmado, cancelado ou concluido"
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Param cliente_id query string false "Filtra por cliente"
// @Param barbeiro_id query string false "Filtra por barbeiro"
// @Param unidade_id query string false "Filtra por unidade"
// @Success 200 {array} domain.Appointment
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Security ApiKeyAuth
// @Router /agendamentos [get]
func (h *Handler) ListAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	from, err := respond.QueryDate(r, "data_inicio")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	to, err := respond.QueryDate(r, "data_fim")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.List(r.Context(), session, domain.AppointmentFilter{
		Status:   domain.AppointmentStatus(respond.Query(r, "status")),
		DateFrom: from,
		DateTo:   to,
		ClientID: respond.Query(r, "cliente_id"),
		BarberID: respond.Query(r, "barbeiro_id"),
		UnitID:   respond.Query(r, "unidade_id"),
	})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// UpdateStatusHandler lida com a requisição PUT /api/agendamentos/{id}/status.
// @Summary Altera o status de um agendamento
// @Description Cada mudança gera uma linha no histórico. Status finais (cancelado, concluido) não mudam mais.
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param id path string true "ID do agendamento"
// @Param status body domain.StatusChange true "Novo status"
// @Success 200 {object} domain.StatusHistory
// @Failure 400 {object} domain.ErrorResponse "Transição inválida"
// @Failure 403 {object} domain.ErrorResponse "Clientes só podem cancelar"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /agendamentos/{id}/status [put]
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var change domain.StatusChange
	if err := respond.Decode(r, &change); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	hist, err := h.Service.UpdateStatus(r.Context(), session, id, change)
	respond.Write(w, r, h.Logger, hist, err, http.StatusOK)
}

// HistoryHandler lida com a requisição GET /api/agendamentos/{id}/historico.
// @Summary Histórico de status de um agendamento
// @Tags agendamentos
// @Produce json
// @Param id path string true "ID do agendamento"
// @Success 200 {array} domain.StatusHistory
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Security ApiKeyAuth
// @Router /agendamentos/{id}/historico [get]
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.History(r.Context(), session, id)
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}
