// Package store keeps the translated salary table in an in-memory DuckDB
// database and answers every filter, metric, and chart aggregation with SQL.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/datavisbr/painel-salarios/internal/translate"
)

// Store owns the DuckDB connection holding the salary table.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to DuckDB. An empty path means an in-memory database, which
// is the normal mode: the table only lives for the process lifetime.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB exposes the raw connection for ad-hoc queries (CLI rendering).
func (s *Store) DB() *sql.DB {
	return s.db
}

// createTable uses the Portuguese column schema. The seq column records
// ingestion order and drives deterministic tie-breaks (modal job title).
const createTable = `
	CREATE OR REPLACE TABLE salarios (
		seq             INTEGER NOT NULL,
		ano             INTEGER NOT NULL,
		senioridade     VARCHAR NOT NULL,
		contrato        VARCHAR NOT NULL,
		cargo           VARCHAR NOT NULL,
		salario         DOUBLE NOT NULL,
		usd             VARCHAR,
		salario_usd     DOUBLE NOT NULL,
		residencia      VARCHAR,
		remota          VARCHAR NOT NULL,
		empresa         VARCHAR,
		tamanho_empresa VARCHAR NOT NULL
	)
`

// Load replaces the salary table with the given translated records.
func (s *Store) Load(ctx context.Context, registros []translate.Registro) error {
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create salary table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO salarios VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range registros {
		if _, err := stmt.ExecContext(ctx,
			i, r.Ano, r.Senioridade, r.Contrato, r.Cargo,
			r.Salario, r.Moeda, r.SalarioUSD, r.Residencia,
			r.Remota, r.Empresa, r.TamanhoEmpresa,
		); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}

	s.logger.Debug("salary table loaded", "rows", len(registros))
	return nil
}
