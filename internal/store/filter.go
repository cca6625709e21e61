package store

import (
	"context"
	"fmt"
	"strings"
)

// Filter holds the multi-select values per dimension. An empty slice for a
// dimension selects every value, matching the dashboard convention where a
// cleared multi-select behaves as "all" instead of "none".
type Filter struct {
	Anos            []int
	Senioridades    []string
	Contratos       []string
	TamanhosEmpresa []string
	Cargos          []string
}

// Options are the distinct values available per filter dimension, always
// derived from the full translated table so that narrowing one filter never
// hides options in another.
type Options struct {
	Anos            []int
	Senioridades    []string
	Contratos       []string
	TamanhosEmpresa []string
	Cargos          []string
}

// where builds the WHERE clause and its bind args for the filter. No selected
// values in a dimension means no constraint on it.
func (f Filter) where() (string, []any) {
	var clauses []string
	var args []any

	in := func(column string, n int) string {
		return fmt.Sprintf("%s IN (%s)", column, strings.TrimSuffix(strings.Repeat("?, ", n), ", "))
	}

	if len(f.Anos) > 0 {
		clauses = append(clauses, in("ano", len(f.Anos)))
		for _, v := range f.Anos {
			args = append(args, v)
		}
	}
	for _, dim := range []struct {
		column string
		values []string
	}{
		{"senioridade", f.Senioridades},
		{"contrato", f.Contratos},
		{"tamanho_empresa", f.TamanhosEmpresa},
		{"cargo", f.Cargos},
	} {
		if len(dim.values) == 0 {
			continue
		}
		clauses = append(clauses, in(dim.column, len(dim.values)))
		for _, v := range dim.values {
			args = append(args, v)
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Options returns the distinct values per dimension from the full table.
func (s *Store) Options(ctx context.Context) (Options, error) {
	var opts Options

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT ano FROM salarios ORDER BY ano`)
	if err != nil {
		return opts, fmt.Errorf("failed to list years: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var ano int
		if err := rows.Scan(&ano); err != nil {
			return opts, fmt.Errorf("failed to scan year: %w", err)
		}
		opts.Anos = append(opts.Anos, ano)
	}
	if err := rows.Err(); err != nil {
		return opts, fmt.Errorf("error iterating years: %w", err)
	}

	for _, dim := range []struct {
		column string
		dest   *[]string
	}{
		{"senioridade", &opts.Senioridades},
		{"contrato", &opts.Contratos},
		{"tamanho_empresa", &opts.TamanhosEmpresa},
		{"cargo", &opts.Cargos},
	} {
		values, err := s.distinct(ctx, dim.column)
		if err != nil {
			return opts, err
		}
		*dim.dest = values
	}

	return opts, nil
}

func (s *Store) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM salarios ORDER BY %s`, column, column) //nolint:gosec // column names are fixed
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s values: %w", column, err)
	}
	defer func() { _ = rows.Close() }()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s value: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s values: %w", column, err)
	}
	return values, nil
}
