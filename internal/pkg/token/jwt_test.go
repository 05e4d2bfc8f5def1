package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
)

func TestGenerateAndValidate_StaffCarriesRoleAndUnit(t *testing.T) {
	svc := NewService("segredo", 24*time.Hour)

	tok, err := svc.GenerateToken(domain.Session{
		AccountID: "u-1", CPF: "52998224725", Kind: domain.KindStaff,
		Role: domain.RoleManager, UnitID: "unid-1",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.AccountID)
	assert.Equal(t, "usuario", claims.Kind)
	assert.Equal(t, "gerente", claims.Role)
	assert.Equal(t, "unid-1", claims.UnitID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerate_ClientHasNoRoleNorUnit(t *testing.T) {
	svc := NewService("segredo", time.Hour)

	tok, err := svc.GenerateToken(domain.Session{
		AccountID: "c-1", CPF: "11144477735", Kind: domain.KindClient,
		Role: domain.RoleAdmin, UnitID: "unid-1",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.UnitID)
	assert.False(t, claims.Session().HasRole(domain.RoleAdmin))
}

func TestValidate_BarberKeepsUnitWithoutRole(t *testing.T) {
	svc := NewService("segredo", time.Hour)

	tok, err := svc.GenerateToken(domain.Session{
		AccountID: "b-1", Kind: domain.KindBarber, Role: domain.RoleAdmin, UnitID: "unid-2",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "unid-2", claims.UnitID)
	assert.Empty(t, claims.Role)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := NewService("segredo", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateToken(domain.Session{AccountID: "c-1", Kind: domain.KindClient})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := NewService("segredo-a", time.Hour).GenerateToken(domain.Session{AccountID: "c-1", Kind: domain.KindClient})
	require.NoError(t, err)

	_, err = NewService("segredo-b", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	claims := CustomClaims{
		AccountID: "x", Kind: "usuario", Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("segredo", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}
