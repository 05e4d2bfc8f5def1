package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/token"
)

// --- Mocks ---

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Incr(ctx context.Context, key string, exp time.Duration) (int64, error) {
	args := m.Called(ctx, key, exp)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCache) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}
func (m *MockCache) Close() error { return nil }

// --- Helpers ---

var nopLog = logger.NewNop()

func sessionEcho(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_ = json.NewEncoder(w).Encode(s)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- Auth ---

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := token.NewService("segredo", time.Hour)
	h := NewAuthMiddleware(tokens, nopLog)(sessionEcho)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/perfil", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Category)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := token.NewService("segredo", time.Hour)
	h := NewAuthMiddleware(tokens, nopLog)(sessionEcho)

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenAttachesSession(t *testing.T) {
	tokens := token.NewService("segredo", time.Hour)
	tok, err := tokens.GenerateToken(domain.Session{AccountID: "b-1", CPF: "52998224725", Kind: domain.KindBarber, UnitID: "u-1"})
	require.NoError(t, err)

	h := NewAuthMiddleware(tokens, nopLog)(sessionEcho)
	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var s domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "b-1", s.AccountID)
	assert.Equal(t, domain.KindBarber, s.Kind)
	assert.Equal(t, "u-1", s.UnitID)
}

// --- Roles ---

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name    string
		session domain.Session
		want    int
	}{
		{"gerente permitido", domain.Session{Kind: domain.KindStaff, Role: domain.RoleManager}, http.StatusOK},
		{"funcionario negado", domain.Session{Kind: domain.KindStaff, Role: domain.RoleEmployee}, http.StatusForbidden},
		{"barbeiro negado", domain.Session{Kind: domain.KindBarber}, http.StatusForbidden},
		{"cliente com tipo forjado negado", domain.Session{Kind: domain.KindClient, Role: domain.RoleAdmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := RequireRoles(nopLog, domain.RoleAdmin, domain.RoleManager)(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/produtos", nil)
			req = req.WithContext(WithSession(req.Context(), tc.session))
			rec := httptest.NewRecorder()
			h(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireRoles_WithoutSession(t *testing.T) {
	h := RequireRoles(nopLog, domain.RoleAdmin)(func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChain_OrderIsOuterFirst(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}
	h := Chain(func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") }, mk("a"), mk("b"))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "handler"}, order)
}

// --- Rate limit ---

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	c := new(MockCache)
	key := "rate-limit:/api/auth/login:10.0.0.1"
	c.On("Incr", mock.Anything, key, time.Minute).Return(int64(2), nil).Once()
	c.On("Incr", mock.Anything, key, time.Minute).Return(int64(3), nil).Once()

	h := RateLimiter(c, nopLog, 2, time.Minute, time.Second)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, rec).Category)
	c.AssertExpectations(t)
}

func TestRateLimiter_FailOpenWhenCacheDown(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, mock.Anything, time.Minute).Return(int64(0), errors.New("connection refused"))

	h := RateLimiter(c, nopLog, 1, time.Minute, time.Second)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_RecoversPanic(t *testing.T) {
	h := RequestLogger(nopLog)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendas", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
