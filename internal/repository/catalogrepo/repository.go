package catalogrepo

import (
	"database/sql"
	"time"

	"barbearia/internal/pkg/logger"
)

// CatalogRepository agrupa categorias, serviços e produtos, que compartilham as mesmas regras de unidade e ativação.
type CatalogRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewCatalogRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CatalogRepository {
	return &CatalogRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}
