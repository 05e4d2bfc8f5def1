package catalog

import (
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
)

// CreateProductHandler lida com a requisição POST /api/produtos.
// @Summary Cria um produto
// @Tags catalogo
// @Accept json
// @Produce json
// @Param produto body domain.ProductInput true "Dados do produto"
// @Success 201 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Preço ou estoque inválidos"
// @Security ApiKeyAuth
// @Router /produtos [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.CreateProduct(r.Context(), in)
	respond.Write(w, r, h.Logger, p, err, http.StatusCreated)
}

// ListProductsHandler lida com a requisição GET /api/produtos.
// @Summary Lista produtos
// @Tags catalogo
// @Produce json
// @Param unidade_id query string false "Filtra por unidade"
// @Param ativo query bool false "Filtra por situação"
// @Success 200 {array} domain.Product
// @Security ApiKeyAuth
// @Router /produtos [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	active, err := respond.QueryBool(r, "ativo")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.ListProducts(r.Context(), domain.ProductFilter{
		UnitID: respond.Query(r, "unidade_id"),
		Active: active,
	})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetProductHandler lida com a requisição GET /api/produtos/{id}.
// @Summary Obtém um produto
// @Tags catalogo
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /produtos/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.GetProduct(r.Context(), id)
	respond.Write(w, r, h.Logger, p, err, http.StatusOK)
}

// UpdateProductHandler lida com a requisição PUT /api/produtos/{id}.
// @Summary Atualiza um produto
// @Description O estoque não é alterado aqui; use ajustar-estoque.
// @Tags catalogo
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param produto body domain.ProductInput true "Novos dados"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /produtos/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var in domain.ProductInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.UpdateProduct(r.Context(), id, in)
	respond.Write(w, r, h.Logger, p, err, http.StatusOK)
}

// DeactivateProductHandler lida com a requisição DELETE /api/produtos/{id}.
// @Summary Desativa um produto
// @Tags catalogo
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /produtos/{id} [delete]
func (h *Handler) DeactivateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeactivateProduct(r.Context(), id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Produto desativado com sucesso."}, err, http.StatusOK)
}

// AdjustStockHandler lida com a requisição POST /api/produtos/{id}/ajustar-estoque.
// @Summary Ajusta o estoque de um produto
// @Description Soma a quantidade informada (negativa para baixa). O estoque nunca fica negativo.
// @Tags catalogo
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param ajuste body domain.StockAdjustment true "Quantidade"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Estoque insuficiente"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /produtos/{id}/ajustar-estoque [post]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var adj domain.StockAdjustment
	if err := respond.Decode(r, &adj); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.AdjustStock(r.Context(), id, adj)
	respond.Write(w, r, h.Logger, p, err, http.StatusOK)
}
