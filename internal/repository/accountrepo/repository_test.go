package accountrepo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
)

func TestLookupCoversEveryProbedKind(t *testing.T) {
	tables := map[string]bool{}
	for _, kind := range domain.ProbeOrder {
		k, err := lookup(kind)
		require.NoError(t, err, kind)
		tables[k.table] = true
	}
	assert.Equal(t, map[string]bool{"usuarios": true, "barbeiros": true, "clientes": true}, tables)
}

func TestLookupRejectsUnknownKind(t *testing.T) {
	_, err := lookup(domain.AccountKind("fornecedor"))
	assert.Error(t, err)
}

func TestSelectSQL_ScanTargetsMatchColumns(t *testing.T) {
	for kind, k := range kinds {
		cols := strings.Count(strings.SplitN(strings.TrimPrefix(selectSQL(k), "SELECT "), " FROM ", 2)[0], ",") + 1
		a := domain.Account{}
		assert.Equal(t, cols, 8+len(k.scanExtra(&a)), kind)
	}
}

func TestOwnerColumn(t *testing.T) {
	col, err := OwnerColumn(domain.KindBarber)
	require.NoError(t, err)
	assert.Equal(t, "barbeiro_id", col)

	col, err = OwnerColumn(domain.KindClient)
	require.NoError(t, err)
	assert.Equal(t, "cliente_id", col)
}
