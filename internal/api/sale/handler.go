package sale

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// SaleService define o contrato que o Handler espera da camada de Serviço.
type SaleService interface {
	Create(ctx context.Context, session domain.Session, in domain.SaleInput) (domain.SaleResult, error)
	List(ctx context.Context, session domain.Session, filter domain.SaleFilter) ([]domain.Sale, error)
	Get(ctx context.Context, session domain.Session, id string) (domain.Sale, error)
}

// Handler agrupa os endpoints de venda.
type Handler struct {
	Service SaleService
	Logger  logger.Logger
}

func NewHandler(svc SaleService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateSaleHandler lida com a requisição POST /api/vendas.
// @Summary Registra uma venda
// @Description Itens, baixa de estoque e pagamento opcional são gravados numa única transação.
// @Tags vendas
// @Accept json
// @Produce json
// @Param venda body domain.SaleInput true "Itens e forma de pagamento"
// @Success 201 {object} domain.SaleResult
// @Failure 400 {object} domain.ErrorResponse "Item inválido ou estoque insuficiente"
// @Failure 404 {object} domain.ErrorResponse "Produto ou serviço não encontrado"
// @Security ApiKeyAuth
// @Router /vendas [post]
func (h *Handler) CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.SaleInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	res, err := h.Service.Create(r.Context(), session, in)
	respond.Write(w, r, h.Logger, res, err, http.StatusCreated)
}

// ListSalesHandler lida com a requisição GET /api/vendas.
// @Summary Lista vendas
// @Description Clientes veem apenas as próprias compras.
// @Tags vendas
// @Produce json
// @Param data_inicio query string false "AAAA-MM-DD"
// @Param data_fim query string false "AAAA-MM-DD"
// @Param cliente_id query string false "Filtra por cliente"
// @Param unidade_id query string false "Filtra por unidade"
// @Success 200 {array} domain.Sale
// @Security ApiKeyAuth
// @Router /vendas [get]
func (h *Handler) ListSalesHandler(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Service.List(r.Context(), session, domain.SaleFilter{
		DateFrom: from,
		DateTo:   to,
		ClientID: respond.Query(r, "cliente_id"),
		UnitID:   respond.Query(r, "unidade_id"),
	})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetSaleHandler lida com a requisição GET /api/vendas/{id}.
// @Summary Obtém uma venda com seus itens
// @Tags vendas
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} domain.Sale
// @Failure 404 {object} domain.ErrorResponse "Venda não encontrada"
// @Security ApiKeyAuth
// @Router /vendas/{id} [get]
func (h *Handler) GetSaleHandler(w http.ResponseWriter, r *http.Request) {
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

	s, err := h.Service.Get(r.Context(), session, id)
	respond.Write(w, r, h.Logger, s, err, http.StatusOK)
}
