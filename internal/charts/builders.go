package charts

import (
	"slices"

	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/translate"
)

const (
	binsHistograma = 30
	holeRosca      = 0.5
)

// TopCargos is the ranked horizontal bar of the highest-paying job titles,
// ascending on the Y axis so the top earner sits on top.
func TopCargos(cargos []store.CargoMedia) Figure {
	titulo := "Top 10 cargos por salário médio"
	if len(cargos) == 0 {
		return emptyFigure(titulo)
	}

	// The input arrives in descending mean order; the horizontal bar wants
	// it bottom-up.
	ordenado := slices.Clone(cargos)
	slices.Reverse(ordenado)

	x := make([]any, 0, len(ordenado))
	y := make([]any, 0, len(ordenado))
	for _, c := range ordenado {
		x = append(x, c.Media)
		y = append(y, c.Cargo)
	}

	return Figure{
		Data: []Trace{{Type: "bar", Orientation: "h", X: x, Y: y}},
		Layout: Layout{
			Title:  Title{Text: titulo, X: 0.1},
			XAxis:  &Axis{Title: Title{Text: "Média salarial anual (USD)"}},
			YAxis:  &Axis{CategoryOrder: "total ascending"},
			Margin: Margin{T: 48, B: 40, L: 220, R: 24},
		},
	}
}

// DistribuicaoSalarios is the salary histogram. Binning happens in Plotly
// with the configured bin count.
func DistribuicaoSalarios(salarios []float64) Figure {
	titulo := "Distribuição de salários anuais"
	if len(salarios) == 0 {
		return emptyFigure(titulo)
	}

	x := make([]any, 0, len(salarios))
	for _, s := range salarios {
		x = append(x, s)
	}

	return Figure{
		Data: []Trace{{Type: "histogram", X: x, NBinsX: binsHistograma}},
		Layout: Layout{
			Title:  Title{Text: titulo, X: 0.1},
			XAxis:  &Axis{Title: Title{Text: "Faixa salarial (USD)"}},
			YAxis:  &Axis{Title: Title{Text: "Frequência"}},
			Margin: defaultMargin,
		},
	}
}

// TiposTrabalho is the donut of row counts per work mode.
func TiposTrabalho(contagens []store.GrupoContagem) Figure {
	titulo := "Proporção dos tipos de trabalho"
	if len(contagens) == 0 {
		return emptyFigure(titulo)
	}

	labels := make([]string, 0, len(contagens))
	values := make([]int, 0, len(contagens))
	for _, c := range contagens {
		labels = append(labels, c.Grupo)
		values = append(values, c.Contagem)
	}

	return Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values,
			Hole:     holeRosca,
			TextInfo: "percent+label",
		}},
		Layout: Layout{Title: Title{Text: titulo, X: 0.1}, Margin: defaultMargin},
	}
}

// SalarioPorPais is the world choropleth of mean Data-Scientist salary per
// residence country.
func SalarioPorPais(paises []store.PaisMedia) Figure {
	titulo := "Salário médio de Cientista de Dados por país"
	if len(paises) == 0 {
		return emptyFigure(titulo)
	}

	locations := make([]string, 0, len(paises))
	z := make([]float64, 0, len(paises))
	for _, p := range paises {
		locations = append(locations, p.Pais)
		z = append(z, p.Media)
	}

	return Figure{
		Data: []Trace{{
			Type:       "choropleth",
			Locations:  locations,
			Z:          z,
			ColorScale: "RdYlGn",
		}},
		Layout: Layout{
			Title:  Title{Text: titulo, X: 0.1},
			Geo:    &Geo{Scope: "world"},
			Margin: Margin{T: 48, B: 8, L: 8, R: 8},
		},
	}
}

// BoxplotSenioridade compares salary distributions per seniority level,
// ordered from junior to executive.
func BoxplotSenioridade(observacoes []store.SalarioSenioridade) Figure {
	titulo := "Distribuição de Salários por Senioridade"
	if len(observacoes) == 0 {
		return emptyFigure(titulo)
	}

	porNivel := make(map[string][]any)
	for _, o := range observacoes {
		porNivel[o.Senioridade] = append(porNivel[o.Senioridade], o.SalarioUSD)
	}

	var traces []Trace
	for _, nivel := range translate.OrdemSenioridade {
		valores, ok := porNivel[nivel]
		if !ok {
			continue
		}
		traces = append(traces, Trace{Type: "box", Name: nivel, Y: valores})
		delete(porNivel, nivel)
	}
	// Untranslated residual levels go last.
	for nivel, valores := range porNivel {
		traces = append(traces, Trace{Type: "box", Name: nivel, Y: valores})
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title:      Title{Text: titulo, X: 0.1},
			XAxis:      &Axis{Title: Title{Text: "Nível de Senioridade"}},
			YAxis:      &Axis{Title: Title{Text: "Salário anual (USD)"}},
			ShowLegend: ptr(false),
			Margin:     defaultMargin,
		},
	}
}

// TendenciaTemporal plots yearly mean and median salary. It needs at least
// two years of data to draw a trend.
func TendenciaTemporal(tendencia []store.TendenciaAno) Figure {
	titulo := "Evolução Temporal dos Salários"
	if len(tendencia) < 2 {
		return emptyFigure(titulo)
	}

	anos := make([]any, 0, len(tendencia))
	medias := make([]any, 0, len(tendencia))
	medianas := make([]any, 0, len(tendencia))
	for _, t := range tendencia {
		anos = append(anos, t.Ano)
		medias = append(medias, t.Media)
		medianas = append(medianas, t.Mediana)
	}

	return Figure{
		Data: []Trace{
			{Type: "scatter", Mode: "lines+markers", Name: "Média", X: anos, Y: medias},
			{Type: "scatter", Mode: "lines+markers", Name: "Mediana", X: anos, Y: medianas},
		},
		Layout: Layout{
			Title:  Title{Text: titulo, X: 0.1},
			XAxis:  &Axis{Title: Title{Text: "Ano"}},
			YAxis:  &Axis{Title: Title{Text: "Salário anual (USD)"}},
			Margin: defaultMargin,
		},
	}
}

// SalarioPorTipoTrabalho compares mean salary per work mode.
func SalarioPorTipoTrabalho(medias []store.GrupoMedia) Figure {
	titulo := "Salário Médio por Tipo de Trabalho"
	if len(medias) == 0 {
		return emptyFigure(titulo)
	}

	x := make([]any, 0, len(medias))
	y := make([]any, 0, len(medias))
	for _, m := range medias {
		x = append(x, m.Grupo)
		y = append(y, m.Media)
	}

	return Figure{
		Data: []Trace{{Type: "bar", X: x, Y: y, Marker: &Marker{Color: "#2563eb"}}},
		Layout: Layout{
			Title:      Title{Text: titulo, X: 0.1},
			XAxis:      &Axis{Title: Title{Text: "Tipo de Trabalho"}},
			YAxis:      &Axis{Title: Title{Text: "Salário médio anual (USD)"}},
			ShowLegend: ptr(false),
			Margin:     defaultMargin,
		},
	}
}
