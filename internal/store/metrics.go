package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Snapshot aggregates the USD salary column of the filtered view. Every field
// is zero for an empty view; the division-by-zero cases never surface.
type Snapshot struct {
	SalarioMedio   float64 `json:"salario_medio"`
	SalarioMediano float64 `json:"salario_mediano"`
	SalarioMinimo  float64 `json:"salario_minimo"`
	SalarioMaximo  float64 `json:"salario_maximo"`
	DesvioPadrao   float64 `json:"desvio_padrao"`
	Percentil25    float64 `json:"percentil_25"`
	Percentil75    float64 `json:"percentil_75"`
	TotalRegistros int     `json:"total_registros"`
	CargoMaisComum string  `json:"cargo_mais_comum"`
	CargosUnicos   int     `json:"cargos_unicos"`
	VariacaoAnual  float64 `json:"variacao_anual"` // mean variation vs the previous year, in percent
}

// Metrics computes the metric snapshot for the filtered view.
func (s *Store) Metrics(ctx context.Context, f Filter) (Snapshot, error) {
	var snap Snapshot

	where, args := f.where()
	query := `
		SELECT
			count(*),
			avg(salario_usd),
			median(salario_usd),
			min(salario_usd),
			max(salario_usd),
			stddev(salario_usd),
			quantile_cont(salario_usd, 0.25),
			quantile_cont(salario_usd, 0.75),
			count(DISTINCT cargo)
		FROM salarios` + where

	var (
		media, mediana, minimo, maximo sql.NullFloat64
		desvio, p25, p75               sql.NullFloat64
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&snap.TotalRegistros, &media, &mediana, &minimo, &maximo, &desvio, &p25, &p75, &snap.CargosUnicos); err != nil {
		return snap, fmt.Errorf("failed to compute metrics: %w", err)
	}

	snap.SalarioMedio = media.Float64
	snap.SalarioMediano = mediana.Float64
	snap.SalarioMinimo = minimo.Float64
	snap.SalarioMaximo = maximo.Float64
	snap.DesvioPadrao = desvio.Float64
	snap.Percentil25 = p25.Float64
	snap.Percentil75 = p75.Float64

	if snap.TotalRegistros == 0 {
		return snap, nil
	}

	cargo, err := s.cargoMaisComum(ctx, f)
	if err != nil {
		return snap, err
	}
	snap.CargoMaisComum = cargo

	variacao, err := s.variacaoAnual(ctx, f)
	if err != nil {
		return snap, err
	}
	snap.VariacaoAnual = variacao

	return snap, nil
}

// cargoMaisComum returns the modal job title. Ties break on the title seen
// first during ingestion, so repeated renders are deterministic.
func (s *Store) cargoMaisComum(ctx context.Context, f Filter) (string, error) {
	where, args := f.where()
	query := `
		SELECT cargo
		FROM salarios` + where + `
		GROUP BY cargo
		ORDER BY count(*) DESC, min(seq) ASC
		LIMIT 1`

	var cargo string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&cargo)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to compute modal job title: %w", err)
	}
	return cargo, nil
}

// variacaoAnual compares the mean salary of the two most recent years in the
// view, in percent. Zero when the view spans fewer than two years.
func (s *Store) variacaoAnual(ctx context.Context, f Filter) (float64, error) {
	tendencia, err := s.TendenciaAnual(ctx, f)
	if err != nil {
		return 0, err
	}
	if len(tendencia) < 2 {
		return 0, nil
	}

	atual := tendencia[len(tendencia)-1].Media
	anterior := tendencia[len(tendencia)-2].Media
	if anterior <= 0 {
		return 0, nil
	}
	return (atual - anterior) / anterior * 100, nil
}
