package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/datavisbr/painel-salarios/internal/translate"
)

// CargoMedia is the mean USD salary for one job title.
type CargoMedia struct {
	Cargo string  `json:"cargo"`
	Media float64 `json:"media"`
}

// GrupoContagem is a row count per group label.
type GrupoContagem struct {
	Grupo    string
	Contagem int
}

// GrupoMedia is the mean USD salary per group label.
type GrupoMedia struct {
	Grupo string
	Media float64
}

// PaisMedia is the mean USD salary per country code.
type PaisMedia struct {
	Pais  string
	Media float64
}

// TendenciaAno is the yearly mean/median/count of the USD salary.
type TendenciaAno struct {
	Ano      int
	Media    float64
	Mediana  float64
	Contagem int
}

// SalarioSenioridade pairs one observation with its seniority label, feeding
// the box plot.
type SalarioSenioridade struct {
	Senioridade string
	SalarioUSD  float64
}

// TopCargos returns the limit highest-paying job titles by mean USD salary,
// descending.
func (s *Store) TopCargos(ctx context.Context, f Filter, limit int) ([]CargoMedia, error) {
	where, args := f.where()
	query := fmt.Sprintf(`
		SELECT cargo, avg(salario_usd) AS media
		FROM salarios%s
		GROUP BY cargo
		ORDER BY media DESC
		LIMIT %d`, where, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank job titles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CargoMedia
	for rows.Next() {
		var cm CargoMedia
		if err := rows.Scan(&cm.Cargo, &cm.Media); err != nil {
			return nil, fmt.Errorf("failed to scan job title mean: %w", err)
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}

// Salarios returns the raw USD salary values of the filtered view, in
// ingestion order. The histogram bins these client-side.
func (s *Store) Salarios(ctx context.Context, f Filter) ([]float64, error) {
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, `SELECT salario_usd FROM salarios`+where+` ORDER BY seq`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ContagemPorModalidade counts rows per work-mode label, descending.
func (s *Store) ContagemPorModalidade(ctx context.Context, f Filter) ([]GrupoContagem, error) {
	where, args := f.where()
	query := `
		SELECT remota, count(*) AS contagem
		FROM salarios` + where + `
		GROUP BY remota
		ORDER BY contagem DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count work modes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []GrupoContagem
	for rows.Next() {
		var gc GrupoContagem
		if err := rows.Scan(&gc.Grupo, &gc.Contagem); err != nil {
			return nil, fmt.Errorf("failed to scan work-mode count: %w", err)
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// MediaPorModalidade computes the mean USD salary per work-mode label,
// descending.
func (s *Store) MediaPorModalidade(ctx context.Context, f Filter) ([]GrupoMedia, error) {
	where, args := f.where()
	query := `
		SELECT remota, avg(salario_usd) AS media
		FROM salarios` + where + `
		GROUP BY remota
		ORDER BY media DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to average work modes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []GrupoMedia
	for rows.Next() {
		var gm GrupoMedia
		if err := rows.Scan(&gm.Grupo, &gm.Media); err != nil {
			return nil, fmt.Errorf("failed to scan work-mode mean: %w", err)
		}
		out = append(out, gm)
	}
	return out, rows.Err()
}

// MediaPorSenioridade computes the mean USD salary per seniority label,
// descending.
func (s *Store) MediaPorSenioridade(ctx context.Context, f Filter) ([]GrupoMedia, error) {
	where, args := f.where()
	query := `
		SELECT senioridade, avg(salario_usd) AS media
		FROM salarios` + where + `
		GROUP BY senioridade
		ORDER BY media DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to average seniority levels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []GrupoMedia
	for rows.Next() {
		var gm GrupoMedia
		if err := rows.Scan(&gm.Grupo, &gm.Media); err != nil {
			return nil, fmt.Errorf("failed to scan seniority mean: %w", err)
		}
		out = append(out, gm)
	}
	return out, rows.Err()
}

// MediaPorPais computes the mean USD salary of Data Scientists per residence
// country, for the choropleth. A title selection that excludes Data
// Scientists yields no rows rather than widening the view.
func (s *Store) MediaPorPais(ctx context.Context, f Filter) ([]PaisMedia, error) {
	if len(f.Cargos) > 0 && !slices.Contains(f.Cargos, translate.CargoCientistaDados) {
		return nil, nil
	}
	sub := f
	sub.Cargos = []string{translate.CargoCientistaDados}

	where, args := sub.where()
	query := `
		SELECT residencia, avg(salario_usd) AS media
		FROM salarios` + where + `
		GROUP BY residencia
		ORDER BY residencia`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to average salaries per country: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []PaisMedia
	for rows.Next() {
		var pm PaisMedia
		if err := rows.Scan(&pm.Pais, &pm.Media); err != nil {
			return nil, fmt.Errorf("failed to scan country mean: %w", err)
		}
		out = append(out, pm)
	}
	return out, rows.Err()
}

// SalariosPorSenioridade returns every observation with its seniority label.
func (s *Store) SalariosPorSenioridade(ctx context.Context, f Filter) ([]SalarioSenioridade, error) {
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, `SELECT senioridade, salario_usd FROM salarios`+where+` ORDER BY seq`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries per seniority: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SalarioSenioridade
	for rows.Next() {
		var ss SalarioSenioridade
		if err := rows.Scan(&ss.Senioridade, &ss.SalarioUSD); err != nil {
			return nil, fmt.Errorf("failed to scan seniority salary: %w", err)
		}
		out = append(out, ss)
	}
	return out, rows.Err()
}

// TendenciaAnual aggregates the USD salary per year, ascending by year.
func (s *Store) TendenciaAnual(ctx context.Context, f Filter) ([]TendenciaAno, error) {
	where, args := f.where()
	query := `
		SELECT ano, avg(salario_usd), median(salario_usd), count(*)
		FROM salarios` + where + `
		GROUP BY ano
		ORDER BY ano`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute yearly trend: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []TendenciaAno
	for rows.Next() {
		var ta TendenciaAno
		if err := rows.Scan(&ta.Ano, &ta.Media, &ta.Mediana, &ta.Contagem); err != nil {
			return nil, fmt.Errorf("failed to scan yearly trend: %w", err)
		}
		out = append(out, ta)
	}
	return out, rows.Err()
}

// Registros returns up to limit rows of the filtered view for the detail
// table, in ingestion order.
func (s *Store) Registros(ctx context.Context, f Filter, limit int) ([]translate.Registro, error) {
	where, args := f.where()
	query := fmt.Sprintf(`
		SELECT ano, senioridade, contrato, cargo, salario, usd,
		       salario_usd, residencia, remota, empresa, tamanho_empresa
		FROM salarios%s
		ORDER BY seq
		LIMIT %d`, where, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []translate.Registro
	for rows.Next() {
		var r translate.Registro
		if err := rows.Scan(&r.Ano, &r.Senioridade, &r.Contrato, &r.Cargo, &r.Salario,
			&r.Moeda, &r.SalarioUSD, &r.Residencia, &r.Remota, &r.Empresa, &r.TamanhoEmpresa); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
