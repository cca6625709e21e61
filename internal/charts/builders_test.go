package charts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavisbr/painel-salarios/internal/store"
)

func TestTopCargos(t *testing.T) {
	fig := TopCargos([]store.CargoMedia{
		{Cargo: "Cientista de Dados", Media: 150000},
		{Cargo: "Engenheiro de Dados", Media: 140000},
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "bar", fig.Data[0].Type)
	assert.Equal(t, "h", fig.Data[0].Orientation)
	// Reversed so the highest mean renders at the top of the bar chart
	assert.Equal(t, []any{"Engenheiro de Dados", "Cientista de Dados"}, fig.Data[0].Y)
	assert.Equal(t, []any{float64(140000), float64(150000)}, fig.Data[0].X)
	assert.Equal(t, "Top 10 cargos por salário médio", fig.Layout.Title.Text)
}

func TestTopCargosEmpty(t *testing.T) {
	fig := TopCargos(nil)

	assert.True(t, fig.Empty())
	assert.Equal(t, "Top 10 cargos por salário médio", fig.Layout.Title.Text)
}

func TestDistribuicaoSalarios(t *testing.T) {
	fig := DistribuicaoSalarios([]float64{100000, 120000, 90000})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "histogram", fig.Data[0].Type)
	assert.Equal(t, 30, fig.Data[0].NBinsX)
	assert.Len(t, fig.Data[0].X, 3)
}

func TestTiposTrabalho(t *testing.T) {
	fig := TiposTrabalho([]store.GrupoContagem{
		{Grupo: "Remoto", Contagem: 10},
		{Grupo: "Presencial", Contagem: 5},
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "pie", fig.Data[0].Type)
	assert.Equal(t, 0.5, fig.Data[0].Hole)
	assert.Equal(t, []string{"Remoto", "Presencial"}, fig.Data[0].Labels)
	assert.Equal(t, []int{10, 5}, fig.Data[0].Values)
}

func TestSalarioPorPais(t *testing.T) {
	fig := SalarioPorPais([]store.PaisMedia{
		{Pais: "US", Media: 150000},
		{Pais: "BR", Media: 80000},
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "choropleth", fig.Data[0].Type)
	assert.Equal(t, "RdYlGn", fig.Data[0].ColorScale)
	assert.Equal(t, []string{"US", "BR"}, fig.Data[0].Locations)
	require.NotNil(t, fig.Layout.Geo)
	assert.Equal(t, "world", fig.Layout.Geo.Scope)
}

func TestBoxplotSenioridadeOrder(t *testing.T) {
	fig := BoxplotSenioridade([]store.SalarioSenioridade{
		{Senioridade: "Senior", SalarioUSD: 150000},
		{Senioridade: "junior", SalarioUSD: 60000},
		{Senioridade: "Desconhecido", SalarioUSD: 90000},
		{Senioridade: "Pleno", SalarioUSD: 100000},
	})

	require.Len(t, fig.Data, 4)
	// Known levels in junior-to-executive order, residual levels last
	assert.Equal(t, "junior", fig.Data[0].Name)
	assert.Equal(t, "Pleno", fig.Data[1].Name)
	assert.Equal(t, "Senior", fig.Data[2].Name)
	assert.Equal(t, "Desconhecido", fig.Data[3].Name)
	for _, trace := range fig.Data {
		assert.Equal(t, "box", trace.Type)
	}
}

func TestTendenciaTemporal(t *testing.T) {
	fig := TendenciaTemporal([]store.TendenciaAno{
		{Ano: 2024, Media: 120000, Mediana: 110000, Contagem: 2},
		{Ano: 2025, Media: 130000, Mediana: 125000, Contagem: 2},
	})

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "Média", fig.Data[0].Name)
	assert.Equal(t, "Mediana", fig.Data[1].Name)
	assert.Equal(t, []any{2024, 2025}, fig.Data[0].X)
}

func TestTendenciaTemporalSingleYear(t *testing.T) {
	fig := TendenciaTemporal([]store.TendenciaAno{
		{Ano: 2025, Media: 130000, Mediana: 125000, Contagem: 4},
	})

	// A trend needs at least two years
	assert.True(t, fig.Empty())
}

func TestSalarioPorTipoTrabalho(t *testing.T) {
	fig := SalarioPorTipoTrabalho([]store.GrupoMedia{
		{Grupo: "Remoto", Media: 140000},
		{Grupo: "Presencial", Media: 120000},
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "bar", fig.Data[0].Type)
	require.NotNil(t, fig.Data[0].Marker)
	assert.Equal(t, "#2563eb", fig.Data[0].Marker.Color)
}

func TestFigureJSON(t *testing.T) {
	fig := TiposTrabalho([]store.GrupoContagem{{Grupo: "Remoto", Contagem: 3}})

	raw, err := fig.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Contains(t, decoded, "data")
	assert.Contains(t, decoded, "layout")
}
