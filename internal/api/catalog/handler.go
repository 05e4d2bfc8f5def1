// Package catalog expõe categorias de serviço, serviços e produtos.
package catalog

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	CreateCategory(ctx context.Context, in domain.ServiceCategoryInput) (domain.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	GetCategory(ctx context.Context, id string) (domain.ServiceCategory, error)
	UpdateCategory(ctx context.Context, id string, in domain.ServiceCategoryInput) (domain.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, in domain.ServiceInput) (domain.Service, error)
	ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (domain.Service, error)
	UpdateService(ctx context.Context, id string, in domain.ServiceInput) (domain.Service, error)
	DeactivateService(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error)
	DeactivateProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, adj domain.StockAdjustment) (domain.Product, error)
}

// Handler agrupa os endpoints do catálogo.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// --- Categorias ---

// CreateCategoryHandler lida com a requisição POST /api/categorias-servicos.
// @Summary Cria uma categoria de serviço
// @Tags catalogo
// @Accept json
// @Produce json
// @Param categoria body domain.ServiceCategoryInput true "Dados da categoria"
// @Success 201 {object} domain.ServiceCategory
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou nome repetido"
// @Security ApiKeyAuth
// @Router /categorias-servicos [post]
func (h *Handler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceCategoryInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	c, err := h.Service.CreateCategory(r.Context(), in)
	respond.Write(w, r, h.Logger, c, err, http.StatusCreated)
}

// ListCategoriesHandler lida com a requisição GET /api/categorias-servicos.
// @Summary Lista categorias de serviço
// @Tags catalogo
// @Produce json
// @Success 200 {array} domain.ServiceCategory
// @Security ApiKeyAuth
// @Router /categorias-servicos [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListCategories(r.Context())
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetCategoryHandler lida com a requisição GET /api/categorias-servicos/{id}.
// @Summary Obtém uma categoria
// @Tags catalogo
// @Produce json
// @Param id path string true "ID da categoria"
// @Success 200 {object} domain.ServiceCategory
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Security ApiKeyAuth
// @Router /categorias-servicos/{id} [get]
func (h *Handler) GetCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	c, err := h.Service.GetCategory(r.Context(), id)
	respond.Write(w, r, h.Logger, c, err, http.StatusOK)
}

// UpdateCategoryHandler lida com a requisição PUT /api/categorias-servicos/{id}.
// @Summary Atualiza uma categoria
// @Tags catalogo
// @Accept json
// @Produce json
// @Param id path string true "ID da categoria"
// @Param categoria body domain.ServiceCategoryInput true "Novos dados"
// @Success 200 {object} domain.ServiceCategory
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Security ApiKeyAuth
// @Router /categorias-servicos/{id} [put]
func (h *Handler) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.ServiceCategoryInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	c, err := h.Service.UpdateCategory(r.Context(), id, in)
	respond.Write(w, r, h.Logger, c, err, http.StatusOK)
}

// DeleteCategoryHandler lida com a requisição DELETE /api/categorias-servicos/{id}.
// @Summary Remove uma categoria
// @Description Categorias ainda usadas por algum serviço não podem ser removidas.
// @Tags catalogo
// @Produce json
// @Param id path string true "ID da categoria"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Security ApiKeyAuth
// @Router /categorias-servicos/{id} [delete]
func (h *Handler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeleteCategory(r.Context(), id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Categoria removida com sucesso."}, err, http.StatusOK)
}
