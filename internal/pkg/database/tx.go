package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc é o trabalho executado dentro de uma transação.
type TxFunc func(tx *sql.Tx) error

// WithTx abre uma transação, executa fn e faz COMMIT.
// Qualquer erro retornado por fn (ou panic) provoca ROLLBACK, e o erro de fn é devolvido sem alteração
// para que os erros tipados (apperror) cheguem intactos ao serviço.
func WithTx(ctx context.Context, db *sql.DB, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("falha ao iniciar transação: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}
	return nil
}
