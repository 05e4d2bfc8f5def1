package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"barbearia/internal/domain"
)

// TokenService define o contrato para manipulação de JWTs.
type TokenService interface {
	GenerateToken(session domain.Session) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims define as informações da sessão armazenadas no JWT.
// tipo só existe para contas de equipe e unidade_id para equipe e barbeiros.
type CustomClaims struct {
	AccountID string `json:"id"`
	CPF       string `json:"cpf"`
	Kind      string `json:"tipo_conta"`
	Role      string `json:"tipo,omitempty"`
	UnitID    string `json:"unidade_id,omitempty"`
	jwt.RegisteredClaims
}

// Session converte as claims de volta para o tipo de domínio.
func (c *CustomClaims) Session() domain.Session {
	return domain.Session{
		AccountID: c.AccountID,
		CPF:       c.CPF,
		Kind:      domain.AccountKind(c.Kind),
		Role:      domain.StaffRole(c.Role),
		UnitID:    c.UnitID,
	}
}

const issuer = "Barbearia-API"

// Service implementa a interface TokenService
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um novo JWT assinado (HS256) com a validade configurada.
func (s *Service) GenerateToken(session domain.Session) (string, error) {
	now := s.now()
	claims := CustomClaims{
		AccountID: session.AccountID,
		CPF:       session.CPF,
		Kind:      string(session.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   session.AccountID,
		},
	}
	if session.Kind == domain.KindStaff {
		claims.Role = string(session.Role)
	}
	if session.Kind == domain.KindStaff || session.Kind == domain.KindBarber {
		claims.UnitID = session.UnitID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken confere assinatura e expiração; nenhuma consulta ao banco é feita.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}

	if !domain.AccountKind(claims.Kind).Valid() {
		return nil, errors.New("token com tipo de conta desconhecido")
	}

	return claims, nil
}
