package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavisbr/painel-salarios/internal/store"
)

func TestGerarEmptyView(t *testing.T) {
	out := Gerar(store.Snapshot{}, nil, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "Nenhum dado disponível para gerar insights.", out[0])
}

func TestGerarGrowth(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, VariacaoAnual: 12.5}

	out := Gerar(snap, nil, nil)

	require.NotEmpty(t, out)
	assert.Contains(t, out[0], "Crescimento")
	assert.Contains(t, out[0], "12,5%")
}

func TestGerarDecline(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, VariacaoAnual: -8.0}

	out := Gerar(snap, nil, nil)

	require.NotEmpty(t, out)
	assert.Contains(t, out[0], "Redução")
}

func TestGerarHighVariability(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, DesvioPadrao: 60000}

	out := Gerar(snap, nil, nil)

	found := false
	for _, frase := range out {
		if strings.Contains(frase, "Alta variabilidade") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGerarSkewedDistribution(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 150000, SalarioMediano: 100000}

	out := Gerar(snap, nil, nil)

	found := false
	for _, frase := range out {
		if strings.Contains(frase, "assimétrica") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGerarRemoteVsOnSite(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, SalarioMediano: 100000}
	modalidades := []store.GrupoMedia{
		{Grupo: "Remoto", Media: 130000},
		{Grupo: "Presencial", Media: 100000},
	}

	out := Gerar(snap, modalidades, nil)

	require.NotEmpty(t, out)
	assert.Contains(t, out[0], "Trabalho remoto")
	assert.Contains(t, out[0], "30,0%")
}

func TestGerarRemoteGapBelowThreshold(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, SalarioMediano: 100000}
	modalidades := []store.GrupoMedia{
		{Grupo: "Remoto", Media: 102000},
		{Grupo: "Presencial", Media: 100000},
	}

	out := Gerar(snap, modalidades, nil)

	// A 2% gap is noise, not an insight
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "Analise os gráficos")
}

func TestGerarSeniorityGap(t *testing.T) {
	snap := store.Snapshot{TotalRegistros: 10, SalarioMedio: 100000, SalarioMediano: 100000}
	senioridades := []store.GrupoMedia{
		{Grupo: "executivo", Media: 200000},
		{Grupo: "Senior", Media: 150000},
		{Grupo: "junior", Media: 50000},
	}

	out := Gerar(snap, nil, senioridades)

	require.NotEmpty(t, out)
	assert.Contains(t, out[0], "Gap de senioridade")
	assert.Contains(t, out[0], "executivo")
	assert.Contains(t, out[0], "junior")
	assert.Contains(t, out[0], "300,0%")
}
