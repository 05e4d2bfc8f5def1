package payment

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
)

// PaymentService define o contrato que o Handler espera da camada de Serviço.
type PaymentService interface {
	Create(ctx context.Context, in domain.PaymentInput) (domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	Get(ctx context.Context, id string) (domain.Payment, error)
	Update(ctx context.Context, id string, u domain.PaymentUpdate) (domain.Payment, error)
}

// Handler agrupa os endpoints de pagamento.
type Handler struct {
	Service PaymentService
	Logger  logger.Logger
}

func NewHandler(svc PaymentService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreatePaymentHandler lida com a requisição POST /api/pagamentos.
// @Summary Registra um pagamento
// @Tags pagamentos
// @Accept json
// @Produce json
// @Param pagamento body domain.PaymentInput true "Dados do pagamento"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} domain.ErrorResponse "Valor ou forma de pagamento inválidos"
// @Security ApiKeyAuth
// @Router /pagamentos [post]
func (h *Handler) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.PaymentInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.Create(r.Context(), in)
	respond.Write(w, r, h.Logger, p, err, http.StatusCreated)
}

// ListPaymentsHandler lida com a requisição GET /api/pagamentos.
// @Summary Lista pagamentos
// @Tags pagamentos
// @Produce json
// @Param status query string false "pendente, pago, cancelado ou estornado"
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Success 200 {array} domain.Payment
// @Security ApiKeyAuth
// @Router /pagamentos [get]
func (h *Handler) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Service.List(r.Context(), domain.PaymentFilter{
		Status:   domain.PaymentStatus(respond.Query(r, "status")),
		DateFrom: from,
		DateTo:   to,
	})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetPaymentHandler lida com a requisição GET /api/pagamentos/{id}.
// @Summary Obtém um pagamento
// @Tags pagamentos
// @Produce json
// @Param id path string true "ID do pagamento"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} domain.ErrorResponse "Pagamento não encontrado"
// @Security ApiKeyAuth
// @Router /pagamentos/{id} [get]
func (h *Handler) GetPaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.Get(r.Context(), id)
	respond.Write(w, r, h.Logger, p, err, http.StatusOK)
}

// UpdatePaymentHandler lida com a requisição PUT /api/pagamentos/{id}.
// @Summary Atualiza um pagamento
// @Description Atualização parcial: apenas os campos enviados mudam.
// @Tags pagamentos
// @Accept json
// @Produce json
// @Param id path string true "ID do pagamento"
// @Param pagamento body domain.PaymentUpdate true "Campos a alterar"
// @Success 200 {object} domain.Payment
// @Failure 400 {object} domain.ErrorResponse "Nenhum campo informado"
// @Failure 404 {object} domain.ErrorResponse "Pagamento não encontrado"
// @Security ApiKeyAuth
// @Router /pagamentos/{id} [put]
func (h *Handler) UpdatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var u domain.PaymentUpdate
	if err := respond.Decode(r, &u); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.Update(r.Context(), id, u)
	respond.Write(w, r, h.Logger, p, err, http.StatusOK)
}
