package middleware

import (
	"context"
	"net/http"
	"strings"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote (não exportado na prática, único por tipo).
type ContextKey int

const (
	SessionKey ContextKey = iota
)

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Middleware é a assinatura comum dos middlewares de rota.
type Middleware func(next http.HandlerFunc) http.HandlerFunc

// NewAuthMiddleware valida o JWT do header Authorization e anexa a domain.Session ao contexto.
// A verificação é apenas de assinatura e expiração.
func NewAuthMiddleware(tokenSvc TokenService, log logger.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Token não fornecido."))
				return
			}

			claims, err := tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "motivo": err.Error()})
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := WithSession(r.Context(), claims.Session())
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// WithSession anexa a sessão ao contexto. Exportado para os testes de handler.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// SessionFromContext extrai a sessão anexada pelo NewAuthMiddleware.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(SessionKey).(domain.Session)
	return s, ok
}

// MustSession é o atalho dos handlers de rotas autenticadas: sem sessão no contexto vira 401.
func MustSession(r *http.Request) (domain.Session, error) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		return domain.Session{}, apperror.NewUnauthorizedError("Autorização necessária. Token não processado.")
	}
	return s, nil
}

// RequireRoles permite a rota apenas para contas de equipe com um dos papéis listados.
// Deve ser encadeado depois do NewAuthMiddleware.
func RequireRoles(log logger.Logger, roles ...domain.StaffRole) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."))
				return
			}

			if !session.HasRole(roles...) {
				log.Warn("Acesso negado por papel.", map[string]interface{}{
					"conta_id":   session.AccountID,
					"tipo_conta": session.Kind,
					"path":       r.URL.Path,
				})
				respond.Error(w, r, log, apperror.NewForbiddenError("Você não tem a permissão necessária."))
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

// Chain aplica os middlewares na ordem em que foram passados (o primeiro é o mais externo).
func Chain(h http.HandlerFunc, mws ...Middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
