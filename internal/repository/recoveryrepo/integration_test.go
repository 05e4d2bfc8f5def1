//go:build integration

package recoveryrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/database/dbtest"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/repository/accountrepo"
	"barbearia/internal/repository/recoveryrepo"
)

func setup(t *testing.T) (*recoveryrepo.RecoveryRepository, *accountrepo.AccountRepository, domain.Account) {
	t.Helper()
	db := dbtest.NewDB(t)
	log := logger.NewNop()
	accounts := accountrepo.NewAccountRepository(db, 5*time.Second, log)
	repo := recoveryrepo.NewRecoveryRepository(db, 5*time.Second, accounts, log)

	acc, err := accounts.Create(context.Background(), domain.Account{
		Kind:         domain.KindClient,
		Name:         "Ana",
		CPF:          "52998224725",
		Phone:        "5511999990000",
		PasswordHash: "hash-antigo",
	})
	require.NoError(t, err)
	return repo, accounts, acc
}

func TestRedeem_ChangesPasswordOnce(t *testing.T) {
	repo, accounts, acc := setup(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Create(ctx, domain.RecoveryToken{
		AccountID:   acc.ID,
		AccountKind: domain.KindClient,
		CPF:         acc.CPF,
		Code:        "A1B2C3",
		ExpiresAt:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	tok, err := repo.Redeem(ctx, acc.CPF, "A1B2C3", now, "hash-novo")
	require.NoError(t, err)
	assert.True(t, tok.Used)
	assert.Equal(t, acc.ID, tok.AccountID)

	got, err := accounts.FindByID(ctx, domain.KindClient, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-novo", got.PasswordHash)

	_, err = repo.Redeem(ctx, acc.CPF, "A1B2C3", now, "outro-hash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Token inválido ou expirado")
}

func TestRedeem_ExpiredCode(t *testing.T) {
	repo, accounts, acc := setup(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Create(ctx, domain.RecoveryToken{
		AccountID:   acc.ID,
		AccountKind: domain.KindClient,
		CPF:         acc.CPF,
		Code:        "ZZ9Y8X",
		ExpiresAt:   now.Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = repo.Redeem(ctx, acc.CPF, "ZZ9Y8X", now, "hash-novo")
	require.Error(t, err)

	got, err := accounts.FindByID(ctx, domain.KindClient, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-antigo", got.PasswordHash)
}

func TestRedeem_ConcurrentOnlyOneWins(t *testing.T) {
	repo, _, acc := setup(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Create(ctx, domain.RecoveryToken{
		AccountID:   acc.ID,
		AccountKind: domain.KindClient,
		CPF:         acc.CPF,
		Code:        "QW12ER",
		ExpiresAt:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Redeem(ctx, acc.CPF, "QW12ER", now, "hash-novo"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
