package notificationservice

import (
	"context"

	"barbearia/internal/domain"
)

// maxListLimit evita listagens arbitrariamente grandes.
const maxListLimit = 200

// List devolve a caixa de entrada da conta da sessão.
func (s *Service) List(ctx context.Context, session domain.Session, filter domain.NotificationFilter) ([]domain.Notification, error) {
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.inbox.List(ctx, session.Kind, session.AccountID, filter)
}

func (s *Service) CountUnread(ctx context.Context, session domain.Session) (domain.UnreadCount, error) {
	n, err := s.inbox.CountUnread(ctx, session.Kind, session.AccountID)
	if err != nil {
		return domain.UnreadCount{}, err
	}
	return domain.UnreadCount{Total: n}, nil
}

// MarkRead só altera notificações da própria conta; as de outra conta respondem 404.
func (s *Service) MarkRead(ctx context.Context, session domain.Session, id string) error {
	return s.inbox.MarkRead(ctx, session.Kind, session.AccountID, id)
}
