package auth

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// AuthService define o contrato de login e troca de senha.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	ChangePassword(ctx context.Context, session domain.Session, req domain.PasswordChange) error
}

// RecoveryService define o contrato da recuperação de senha por WhatsApp.
type RecoveryService interface {
	RequestRecovery(ctx context.Context, req domain.RecoveryRequest) error
	ConfirmRecovery(ctx context.Context, req domain.RecoveryConfirm) error
}

// VerifyResponse é a resposta de GET /api/auth/verificar.
type VerifyResponse struct {
	Valid   bool           `json:"valido"`
	Session domain.Session `json:"usuario"`
}

// Handler agrupa os endpoints de autenticação.
type Handler struct {
	Service  AuthService
	Recovery RecoveryService
	Logger   logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando os serviços e o Logger.
func NewHandler(svc AuthService, recovery RecoveryService, log logger.Logger) *Handler {
	return &Handler{
		Service:  svc,
		Recovery: recovery,
		Logger:   log,
	}
}

// LoginHandler lida com a requisição POST /api/auth/login.
// @Summary Autentica por CPF e senha
// @Description Procura a conta ativa do CPF entre equipe, barbeiros e clientes, nessa ordem, e emite um JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "CPF e senha"
// @Success 200 {object} domain.LoginResponse "Token emitido"
// @Failure 400 {object} domain.ErrorResponse "CPF inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 429 {object} domain.ErrorResponse "Muitas tentativas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	respond.Write(w, r, h.Logger, resp, err, http.StatusOK)
}

// VerifyHandler lida com a requisição GET /api/auth/verificar.
// @Summary Verifica o token
// @Tags auth
// @Produce json
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} domain.ErrorResponse "Token inválido ou expirado"
// @Security ApiKeyAuth
// @Router /auth/verificar [get]
func (h *Handler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, VerifyResponse{Valid: true, Session: session})
}

// ChangePasswordHandler lida com a requisição PUT /api/auth/alterar-senha.
// @Summary Altera a senha da conta autenticada
// @Tags auth
// @Accept json
// @Produce json
// @Param troca body domain.PasswordChange true "Senha atual e nova senha"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "Nova senha inválida"
// @Failure 401 {object} domain.ErrorResponse "Senha atual incorreta"
// @Security ApiKeyAuth
// @Router /auth/alterar-senha [put]
func (h *Handler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var req domain.PasswordChange
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.ChangePassword(r.Context(), session, req)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Senha alterada com sucesso."}, err, http.StatusOK)
}

// RequestRecoveryHandler lida com a requisição POST /api/auth/recuperar-senha/solicitar.
// @Summary Solicita código de recuperação
// @Description Envia um código de uso único por WhatsApp. CPF desconhecido recebe a mesma resposta de sucesso.
// @Tags auth
// @Accept json
// @Produce json
// @Param pedido body domain.RecoveryRequest true "CPF"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "CPF inválido ou conta sem telefone"
// @Failure 429 {object} domain.ErrorResponse "Muitas tentativas"
// @Router /auth/recuperar-senha/solicitar [post]
func (h *Handler) RequestRecoveryHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RecoveryRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err := h.Recovery.RequestRecovery(r.Context(), req)
	respond.Write(w, r, h.Logger,
		domain.MessageResponse{Message: "Se o CPF estiver cadastrado, você receberá um código no WhatsApp."}, err, http.StatusOK)
}

// ConfirmRecoveryHandler lida com a requisição POST /api/auth/recuperar-senha/confirmar.
// @Summary Redefine a senha com o código recebido
// @Tags auth
// @Accept json
// @Produce json
// @Param confirmacao body domain.RecoveryConfirm true "CPF, código e nova senha"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "Código inválido, expirado ou já utilizado"
// @Failure 429 {object} domain.ErrorResponse "Muitas tentativas"
// @Router /auth/recuperar-senha/confirmar [post]
func (h *Handler) ConfirmRecoveryHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RecoveryConfirm
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err := h.Recovery.ConfirmRecovery(r.Context(), req)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Senha redefinida com sucesso."}, err, http.StatusOK)
}
