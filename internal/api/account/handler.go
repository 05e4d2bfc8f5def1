package account

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// AccountService define o contrato de cadastro, perfil e listagem de contas.
type AccountService interface {
	RegisterStaff(ctx context.Context, reg domain.StaffRegistration) (domain.Account, error)
	RegisterBarber(ctx context.Context, reg domain.BarberRegistration) (domain.Account, error)
	RegisterClient(ctx context.Context, reg domain.ClientRegistration) (domain.Account, error)
	Profile(ctx context.Context, session domain.Session) (domain.Account, error)
	UpdateProfile(ctx context.Context, session domain.Session, upd domain.ProfileUpdate) (domain.Account, error)
	Deactivate(ctx context.Context, session domain.Session, kind domain.AccountKind, id string) error
	ListBarbers(ctx context.Context, session domain.Session, filter domain.AccountFilter) ([]domain.Account, error)
	GetBarber(ctx context.Context, session domain.Session, id string) (domain.Account, error)
	ListClients(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
	GetClient(ctx context.Context, id string) (domain.Account, error)
}

// Handler agrupa os endpoints de contas.
type Handler struct {
	Service AccountService
	Logger  logger.Logger
}

func NewHandler(svc AccountService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterStaffHandler lida com a requisição POST /api/auth/usuarios/registrar.
// @Summary Cadastra um usuário da equipe
// @Tags contas
// @Accept json
// @Produce json
// @Param registro body domain.StaffRegistration true "Dados do usuário"
// @Success 201 {object} domain.Account
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou CPF já cadastrado"
// @Failure 403 {object} domain.ErrorResponse "Apenas administradores"
// @Security ApiKeyAuth
// @Router /auth/usuarios/registrar [post]
func (h *Handler) RegisterStaffHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.StaffRegistration
	if err := respond.Decode(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.RegisterStaff(r.Context(), reg)
	respond.Write(w, r, h.Logger, acc, err, http.StatusCreated)
}

// RegisterBarberHandler lida com a requisição POST /api/auth/barbeiros/registrar.
// @Summary Cadastra um barbeiro
// @Description Cria o barbeiro e dispara as boas-vindas por WhatsApp para ele e para os administradores.
// @Tags contas
// @Accept json
// @Produce json
// @Param registro body domain.BarberRegistration true "Dados do barbeiro"
// @Success 201 {object} domain.Account
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou CPF já cadastrado"
// @Failure 403 {object} domain.ErrorResponse "Apenas administradores e gerentes"
// @Security ApiKeyAuth
// @Router /auth/barbeiros/registrar [post]
func (h *Handler) RegisterBarberHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.BarberRegistration
	if err := respond.Decode(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.RegisterBarber(r.Context(), reg)
	respond.Write(w, r, h.Logger, acc, err, http.StatusCreated)
}

// RegisterClientHandler lida com a requisição POST /api/auth/clientes/registrar.
// @Summary Auto-cadastro de cliente
// @Tags contas
// @Accept json
// @Produce json
// @Param registro body domain.ClientRegistration true "Dados do cliente"
// @Success 201 {object} domain.Account
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou CPF já cadastrado"
// @Router /auth/clientes/registrar [post]
func (h *Handler) RegisterClientHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.ClientRegistration
	if err := respond.Decode(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.RegisterClient(r.Context(), reg)
	respond.Write(w, r, h.Logger, acc, err, http.StatusCreated)
}

// ProfileHandler lida com a requisição GET /api/perfil.
// @Summary Perfil da conta autenticada
// @Tags contas
// @Produce json
// @Success 200 {object} domain.Account
// @Security ApiKeyAuth
// @Router /perfil [get]
func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.Profile(r.Context(), session)
	respond.Write(w, r, h.Logger, acc, err, http.StatusOK)
}

// UpdateProfileHandler lida com a requisição PUT /api/perfil.
// @Summary Atualiza o perfil da conta autenticada
// @Description foto_base64 só é considerada para barbeiros.
// @Tags contas
// @Accept json
// @Produce json
// @Param perfil body domain.ProfileUpdate true "Novos dados"
// @Success 200 {object} domain.Account
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /perfil [put]
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var upd domain.ProfileUpdate
	if err := respond.Decode(r, &upd); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.UpdateProfile(r.Context(), session, upd)
	respond.Write(w, r, h.Logger, acc, err, http.StatusOK)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request, kind domain.AccountKind) {
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

	err = h.Service.Deactivate(r.Context(), session, kind, id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Conta desativada com sucesso."}, err, http.StatusOK)
}

// DeactivateStaffHandler lida com a requisição DELETE /api/usuarios/{id}.
// @Summary Desativa um usuário da equipe
// @Tags contas
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "Não é possível desativar a própria conta"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /usuarios/{id} [delete]
func (h *Handler) DeactivateStaffHandler(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, domain.KindStaff)
}

// DeactivateBarberHandler lida com a requisição DELETE /api/barbeiros/{id}.
// @Summary Desativa um barbeiro
// @Tags contas
// @Produce json
// @Param id path string true "ID do barbeiro"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Barbeiro não encontrado"
// @Security ApiKeyAuth
// @Router /barbeiros/{id} [delete]
func (h *Handler) DeactivateBarberHandler(w http.ResponseWriter, r *http.Request) {
	h.deactivate(w, r, domain.KindBarber)
}

func accountFilter(r *http.Request) (domain.AccountFilter, error) {
	active, err := respond.QueryBool(r, "ativo")
	if err != nil {
		return domain.AccountFilter{}, err
	}
	return domain.AccountFilter{
		UnitID: respond.Query(r, "unidade_id"),
		Name:   respond.Query(r, "nome"),
		CPF:    respond.Query(r, "cpf"),
		Active: active,
	}, nil
}

// ListBarbersHandler lida com a requisição GET /api/barbeiros.
// @Summary Lista barbeiros
// @Description Quem não é da gerência vê apenas barbeiros ativos.
// @Tags contas
// @Produce json
// @Param unidade_id query string false "Filtra por unidade"
// @Param nome query string false "Filtra por parte do nome"
// @Param ativo query bool false "Filtra por situação"
// @Success 200 {array} domain.Account
// @Security ApiKeyAuth
// @Router /barbeiros [get]
func (h *Handler) ListBarbersHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	filter, err := accountFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.ListBarbers(r.Context(), session, filter)
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetBarberHandler lida com a requisição GET /api/barbeiros/{id}.
// @Summary Obtém um barbeiro
// @Tags contas
// @Produce json
// @Param id path string true "ID do barbeiro"
// @Success 200 {object} domain.Account
// @Failure 404 {object} domain.ErrorResponse "Barbeiro não encontrado"
// @Security ApiKeyAuth
// @Router /barbeiros/{id} [get]
func (h *Handler) GetBarberHandler(w http.ResponseWriter, r *http.Request) {
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

	acc, err := h.Service.GetBarber(r.Context(), session, id)
	respond.Write(w, r, h.Logger, acc, err, http.StatusOK)
}

// ListClientsHandler lida com a requisição GET /api/clientes.
// @Summary Lista clientes
// @Tags contas
// @Produce json
// @Param nome query string false "Filtra por parte do nome"
// @Param cpf query string false "Filtra por CPF"
// @Param ativo query bool false "Filtra por situação"
// @Success 200 {array} domain.Account
// @Security ApiKeyAuth
// @Router /clientes [get]
func (h *Handler) ListClientsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := accountFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.ListClients(r.Context(), filter)
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// GetClientHandler lida com a requisição GET /api/clientes/{id}.
// @Summary Obtém um cliente
// @Tags contas
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} domain.Account
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Security ApiKeyAuth
// @Router /clientes/{id} [get]
func (h *Handler) GetClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	acc, err := h.Service.GetClient(r.Context(), id)
	respond.Write(w, r, h.Logger, acc, err, http.StatusOK)
}
