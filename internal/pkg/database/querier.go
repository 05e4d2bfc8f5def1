package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	apperror "barbearia/internal/errors"
)

// Querier é satisfeito por *sql.DB e *sql.Tx; permite que a mesma query rode dentro ou fora de transação.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Códigos SQLSTATE do PostgreSQL tratados pela API.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgInvalidDatetime     = "22007"
)

// MapError traduz erros do driver em erros tipados.
// Unicidade vira ConflictError; FK, CHECK e valores malformados viram ValidationError; o resto é InternalError (DB).
func MapError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return apperror.NewConflictError(uniqueMessage(pqErr))
		case pgForeignKeyViolation:
			return apperror.NewValidationError("Referência inválida: registro relacionado não existe ou está em uso.")
		case pgCheckViolation:
			return apperror.NewValidationError(fmt.Sprintf("Valor fora das regras (%s).", pqErr.Constraint))
		case pgInvalidText, pgInvalidDatetime:
			return apperror.NewValidationError("Parâmetro em formato inválido.")
		}
	}
	return apperror.NewDBError(msg, err)
}

func uniqueMessage(e *pq.Error) string {
	if strings.Contains(e.Constraint, "cpf") {
		return "CPF já cadastrado."
	}
	return "Registro duplicado."
}

// Filter monta cláusulas WHERE com placeholders numerados ($1, $2...).
// As condições são sempre literais do código; apenas os valores vêm da requisição.
type Filter struct {
	clauses []string
	args    []interface{}
}

// Add registra uma condição; "?" é substituído pelo próximo placeholder.
func (f *Filter) Add(cond string, arg interface{}) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(f.args)), 1))
}

// AddRaw registra uma condição sem argumento.
func (f *Filter) AddRaw(cond string) {
	f.clauses = append(f.clauses, cond)
}

// Arg adiciona um argumento sem cláusula e devolve o placeholder (ex.: LIMIT).
func (f *Filter) Arg(arg interface{}) string {
	f.args = append(f.args, arg)
	return fmt.Sprintf("$%d", len(f.args))
}

// Where devolve " WHERE a AND b" ou string vazia.
func (f *Filter) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

func (f *Filter) Args() []interface{} { return f.args }

// RequireRow devolve NotFound quando o UPDATE/DELETE não afetou nenhuma linha.
func RequireRow(res sql.Result, notFoundMsg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if n == 0 {
		return apperror.NewNotFoundError(notFoundMsg)
	}
	return nil
}
