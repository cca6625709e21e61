// Package insights derives short textual findings from the metric snapshot
// and the grouped aggregates of the filtered view.
package insights

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datavisbr/painel-salarios/internal/store"
)

// ptBR formats percentages and amounts with Brazilian separators.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

const (
	limiarVariacaoPercentual = 5.0
	limiarCoeficienteVar     = 50.0
	limiarAssimetria         = 0.1
)

// Gerar builds the insight list. An empty view yields a single notice.
func Gerar(snap store.Snapshot, modalidades []store.GrupoMedia, senioridades []store.GrupoMedia) []string {
	if snap.TotalRegistros == 0 {
		return []string{"Nenhum dado disponível para gerar insights."}
	}

	var out []string

	if snap.VariacaoAnual > 0 {
		out = append(out, ptBR.Sprintf("Crescimento: os salários aumentaram %.1f%% em relação ao ano anterior.", snap.VariacaoAnual))
	} else if snap.VariacaoAnual < 0 {
		out = append(out, ptBR.Sprintf("Redução: os salários diminuíram %.1f%% em relação ao ano anterior.", -snap.VariacaoAnual))
	}

	if snap.SalarioMedio > 0 {
		cv := snap.DesvioPadrao / snap.SalarioMedio * 100
		if cv > limiarCoeficienteVar {
			out = append(out, ptBR.Sprintf("Alta variabilidade: os salários apresentam grande dispersão (CV: %.1f%%).", cv))
		}

		if snap.SalarioMedio-snap.SalarioMediano > snap.SalarioMedio*limiarAssimetria {
			out = append(out, "Distribuição assimétrica: a média é bem maior que a mediana, indicando salários muito altos puxando a média para cima.")
		}
	}

	if frase := compararModalidades(modalidades); frase != "" {
		out = append(out, frase)
	}
	if frase := compararSenioridades(senioridades); frase != "" {
		out = append(out, frase)
	}

	if len(out) == 0 {
		out = append(out, "Analise os gráficos abaixo para obter mais insights sobre os dados.")
	}
	return out
}

// compararModalidades contrasts remote and on-site mean salaries.
func compararModalidades(modalidades []store.GrupoMedia) string {
	var remoto, presencial float64
	for _, m := range modalidades {
		switch m.Grupo {
		case "Remoto":
			remoto = m.Media
		case "Presencial":
			presencial = m.Media
		}
	}
	if remoto <= 0 || presencial <= 0 {
		return ""
	}

	diferenca := (remoto - presencial) / presencial * 100
	if math.Abs(diferenca) <= limiarVariacaoPercentual {
		return ""
	}
	if diferenca > 0 {
		return ptBR.Sprintf("Trabalho remoto: profissionais remotos ganham em média %.1f%% mais que profissionais presenciais.", diferenca)
	}
	return ptBR.Sprintf("Trabalho presencial: profissionais presenciais ganham em média %.1f%% mais que profissionais remotos.", -diferenca)
}

// compararSenioridades reports the pay gap between the best and worst paid
// seniority levels. The input comes ordered by mean, descending.
func compararSenioridades(senioridades []store.GrupoMedia) string {
	if len(senioridades) < 2 {
		return ""
	}
	maior := senioridades[0]
	menor := senioridades[len(senioridades)-1]
	if menor.Media <= 0 {
		return ""
	}

	diferenca := (maior.Media - menor.Media) / menor.Media * 100
	return ptBR.Sprintf("Gap de senioridade: profissionais %s ganham em média %.1f%% mais que profissionais %s.", maior.Grupo, diferenca, menor.Grupo)
}
