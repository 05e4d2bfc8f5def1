// Package migrations embute os arquivos SQL do goose para o cmd/migrate e os testes de integração.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
