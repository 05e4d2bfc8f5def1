package unit

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
)

// UnitService define o contrato que o Handler espera da camada de Serviço.
type UnitService interface {
	Create(ctx context.Context, in domain.UnitInput) (domain.Unit, error)
	List(ctx context.Context, active *bool) ([]domain.Unit, error)
	Get(ctx context.Context, id string) (domain.Unit, error)
	Update(ctx context.Context, id string, in domain.UnitInput) (domain.Unit, error)
	Deactivate(ctx context.Context, id string) error
}

// Handler agrupa os endpoints de unidades.
type Handler struct {
	Service UnitService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UnitService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateUnitHandler lida com a requisição POST /api/unidades.
// @Summary Cria uma unidade
// @Tags unidades
// @Accept json
// @Produce json
// @Param unidade body domain.UnitInput true "Dados da unidade"
// @Success 201 {object} domain.Unit "Unidade criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /unidades [post]
func (h *Handler) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.UnitInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	u, err := h.Service.Create(r.Context(), in)
	respond.Write(w, r, h.Logger, u, err, http.StatusCreated)
}

// ListUnitsHandler lida com a requisição GET /api/unidades.
// @Summary Lista as unidades
// @Tags unidades
// @Produce json
// @Param ativo query bool false "Filtra por situação"
// @Success 200 {array} domain.Unit "Lista de unidades"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /unidades [get]
func (h *Handler) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	active, err := respond.QueryBool(r, "ativo")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	units, err := h.Service.List(r.Context(), active)
	respond.Write(w, r, h.Logger, units, err, http.StatusOK)
}

// GetUnitHandler lida com a requisição GET /api/unidades/{id}.
// @Summary Obtém uma unidade por ID
// @Tags unidades
// @Produce json
// @Param id path string true "ID da unidade"
// @Success 200 {object} domain.Unit "Unidade encontrada"
// @Failure 404 {object} domain.ErrorResponse "Unidade não encontrada"
// @Security ApiKeyAuth
// @Router /unidades/{id} [get]
func (h *Handler) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	u, err := h.Service.Get(r.Context(), id)
	respond.Write(w, r, h.Logger, u, err, http.StatusOK)
}

// UpdateUnitHandler lida com a requisição PUT /api/unidades/{id}.
// @Summary Atualiza uma unidade
// @Tags unidades
// @Accept json
// @Produce json
// @Param id path string true "ID da unidade"
// @Param unidade body domain.UnitInput true "Novos dados"
// @Success 200 {object} domain.Unit "Unidade atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Unidade não encontrada"
// @Security ApiKeyAuth
// @Router /unidades/{id} [put]
func (h *Handler) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.UnitInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	u, err := h.Service.Update(r.Context(), id, in)
	respond.Write(w, r, h.Logger, u, err, http.StatusOK)
}

// DeactivateUnitHandler lida com a requisição DELETE /api/unidades/{id}.
// @Summary Desativa uma unidade
// @Tags unidades
// @Produce json
// @Param id path string true "ID da unidade"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Unidade não encontrada"
// @Security ApiKeyAuth
// @Router /unidades/{id} [delete]
func (h *Handler) DeactivateUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Deactivate(r.Context(), id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Unidade desativada com sucesso."}, err, http.StatusOK)
}
