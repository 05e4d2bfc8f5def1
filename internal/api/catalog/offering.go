package catalog

import (
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
)

// CreateServiceHandler lida com a requisição POST /api/servicos.
// @Summary Cria um serviço
// @Tags catalogo
// @Accept json
// @Produce json
// @Param servico body domain.ServiceInput true "Dados do serviço"
// @Success 201 {object} domain.Service
// @Failure 400 {object} domain.ErrorResponse "Preço ou duração inválidos"
// @Security ApiKeyAuth
// @Router /servicos [post]
func (h *Handler) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	svc, err := h.Service.CreateService(r.Context(), in)
	respond.Write(w, r, h.Logger, svc, err, http.StatusCreated)
}

// ListServicesHandler lida com a requisição GET /api/servicos.
// @Summary Lista serviços
// @Tags catalogo
// @Produce json
// @Param unidade_id query string false "Filtra por unidade"
// @Param categoria_id query string false "Filtra por categoria"
// @Param ativo query bool false "Filtra por situação"
// @Success 200 {array} domain.Service
// @Security ApiKeyAuth
// @Router /servicos [get]
func (h *Handler) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	active, err := respond.QueryBool(r, "ativo")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.ListServices(r.Context(), domain.ServiceFilter{
		UnitID:     respond.Query(r, "unidade_id"),
		CategoryID: respond.Query(r, "categoria_id"),
		Active:     active,
	})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetServiceHandler lida com a requisição GET /api/servicos/{id}.
// @Summary Obtém um serviço
// @Tags catalogo
// @Produce json
// @Param id path string true "ID do serviço"
// @Success 200 {object} domain.Service
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Security ApiKeyAuth
// @Router /servicos/{id} [get]
func (h *Handler) GetServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	svc, err := h.Service.GetService(r.Context(), id)
	respond.Write(w, r, h.Logger, svc, err, http.StatusOK)
}

// UpdateServiceHandler lida com a requisição PUT /api/servicos/{id}.
// @Summary Atualiza um serviço
// @Tags catalogo
// @Accept json
// @Produce json
// @Param id path string true "ID do serviço"
// @Param servico body domain.ServiceInput true "Novos dados"
// @Success 200 {object} domain.Service
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Security ApiKeyAuth
// @Router /servicos/{id} [put]
func (h *Handler) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.ServiceInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	svc, err := h.Service.UpdateService(r.Context(), id, in)
	respond.Write(w, r, h.Logger, svc, err, http.StatusOK)
}

// DeactivateServiceHandler lida com a requisição DELETE /api/servicos/{id}.
// @Summary Desativa um serviço
// @Tags catalogo
// @Produce json
// @Param id path string true "ID do serviço"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Serviço não encontrado"
// @Security ApiKeyAuth
// @Router /servicos/{id} [delete]
func (h *Handler) DeactivateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeactivateService(r.Context(), id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Serviço desativado com sucesso."}, err, http.StatusOK)
}
