package notification

import (
	"context"
	"net/http"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// NotificationService define a caixa de entrada e o envio de teste.
type NotificationService interface {
	List(ctx context.Context, session domain.Session, filter domain.NotificationFilter) ([]domain.Notification, error)
	CountUnread(ctx context.Context, session domain.Session) (domain.UnreadCount, error)
	MarkRead(ctx context.Context, session domain.Session, id string) error
	SendTest(ctx context.Context, req domain.WebhookTest) error
}

// Handler agrupa os endpoints de notificações.
type Handler struct {
	Service NotificationService
	Logger  logger.Logger
}

func NewHandler(svc NotificationService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListNotificationsHandler lida com a requisição GET /api/notificacoes.
// @Summary Caixa de entrada da conta autenticada
// @Tags notificacoes
// @Produce json
// @Param lida query bool false "Filtra por lidas ou não lidas"
// @Param limit query int false "Máximo de itens (até 200)"
// @Success 200 {array} domain.Notification
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Security ApiKeyAuth
// @Router /notificacoes [get]
func (h *Handler) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	read, err := respond.QueryBool(r, "lida")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	limit, err := respond.QueryInt(r, "limit")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	list, err := h.Service.List(r.Context(), session, domain.NotificationFilter{Read: read, Limit: limit})
	respond.Write(w, r, h.Logger, list, err, http.StatusOK)
}

// CountUnreadHandler lida com a requisição GET /api/notificacoes/nao-lidas/count.
// @Summary Quantidade de notificações não lidas
// @Tags notificacoes
// @Produce json
// @Success 200 {object} domain.UnreadCount
// @Security ApiKeyAuth
// @Router /notificacoes/nao-lidas/count [get]
func (h *Handler) CountUnreadHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.MustSession(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	count, err := h.Service.CountUnread(r.Context(), session)
	respond.Write(w, r, h.Logger, count, err, http.StatusOK)
}

// MarkReadHandler lida com a requisição PUT /api/notificacoes/{id}/marcar-lida.
// @Summary Marca uma notificação como lida
// @Tags notificacoes
// @Produce json
// @Param id path string true "ID da notificação"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse "Notificação não encontrada"
// @Security ApiKeyAuth
// @Router /notificacoes/{id}/marcar-lida [put]
func (h *Handler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
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

	err = h.Service.MarkRead(r.Context(), session, id)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Notificação marcada como lida."}, err, http.StatusOK)
}

// SendTestHandler lida com a requisição POST /api/webhook/teste.
// @Summary Envia uma mensagem de teste por WhatsApp
// @Tags notificacoes
// @Accept json
// @Produce json
// @Param teste body domain.WebhookTest true "Telefone e mensagem"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "Telefone inválido"
// @Failure 500 {object} domain.ErrorResponse "Falha no provedor"
// @Security ApiKeyAuth
// @Router /webhook/teste [post]
func (h *Handler) SendTestHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.WebhookTest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err := h.Service.SendTest(r.Context(), req)
	respond.Write(w, r, h.Logger, domain.MessageResponse{Message: "Mensagem enviada."}, err, http.StatusOK)
}
